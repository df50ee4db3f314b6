package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by Load for a path that does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat is returned for extensions other than .toml,
	// .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrValidationFailed matches every ValidationError.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError is a decoding failure. Line and Column are 1-based and zero
// when the decoder does not report them.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse error in %s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation, e.g. "logging.level".
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

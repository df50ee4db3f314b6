package editor

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrNoDocument indicates no document is focused.
	ErrNoDocument = errors.New("no active document")

	// ErrNotListing indicates a browse command ran outside a listing.
	ErrNotListing = errors.New("not a directory listing")

	// ErrNoLister indicates directory browsing is not configured.
	ErrNoLister = errors.New("directory listing unavailable")

	// ErrInvalidRegister indicates an unknown register name.
	ErrInvalidRegister = errors.New("invalid register")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "open", "browse")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %q", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for OperationError.
// Matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

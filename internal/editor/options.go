package editor

import (
	"context"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/register"
	"github.com/dshills/textobj/internal/syntax"
	"github.com/dshills/textobj/internal/vfs"
)

// Default configuration values.
const (
	DefaultParallelThreshold = 64
)

// Config holds session settings.
type Config struct {
	// HelpOverlay shows the object-code overlay while a request waits.
	HelpOverlay bool

	// ParallelThreshold is the selection size from which ranges are
	// resolved concurrently. Zero disables concurrency.
	ParallelThreshold int
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{HelpOverlay: true, ParallelThreshold: DefaultParallelThreshold}
}

// BaselineProvider supplies the committed content of a file, used as the
// diff baseline when the file is opened.
type BaselineProvider interface {
	Baseline(ctx context.Context, path string) (string, error)
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithConfig sets the session configuration.
func WithConfig(cfg Config) Option {
	return func(e *Editor) {
		if cfg.ParallelThreshold < 0 {
			cfg.ParallelThreshold = 0
		}
		e.cfg = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		e.logger = log.OrNull(l)
	}
}

// WithSyntax sets the language registry used for opened documents.
func WithSyntax(r *syntax.Registry) Option {
	return func(e *Editor) {
		e.syntax = r
	}
}

// WithFS sets the file system files and listings are read from.
func WithFS(fsys vfs.FS) Option {
	return func(e *Editor) {
		e.fs = fsys
	}
}

// WithListing sets the directory-listing configuration.
func WithListing(cfg dirlist.Config) Option {
	return func(e *Editor) {
		e.listing = cfg
	}
}

// WithBaselines sets the provider of diff baselines for opened files.
func WithBaselines(p BaselineProvider) Option {
	return func(e *Editor) {
		e.baselines = p
	}
}

// WithRegisters sets the register store.
func WithRegisters(s *register.Store) Option {
	return func(e *Editor) {
		if s != nil {
			e.registers = s
		}
	}
}

package editor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/document"
	"github.com/dshills/textobj/internal/help"
	"github.com/dshills/textobj/internal/input/mode"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/register"
	"github.com/dshills/textobj/internal/syntax"
	"github.com/dshills/textobj/internal/vfs"
)

// Severity classifies a status message.
type Severity uint8

const (
	// SeverityInfo is an informational message.
	SeverityInfo Severity = iota
	// SeverityError is an error message.
	SeverityError
)

// String returns a string representation of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// Status is the message shown in the status line.
type Status struct {
	Message  string
	Severity Severity
}

// Editor is a single-view editing session.
//
// Editor is safe for concurrent use, but commands are meant to be issued
// from one goroutine, in the order keys arrive.
type Editor struct {
	mu sync.Mutex

	cfg       Config
	logger    *log.Logger
	syntax    *syntax.Registry
	fs        vfs.FS
	listing   dirlist.Config
	lister    *dirlist.Lister
	baselines BaselineProvider
	registers *register.Store
	modes     *mode.Manager

	view     document.ViewID
	current  *document.Document
	listDir  string
	status   Status
	autoinfo *help.Info
	pending  *Request
	register rune
}

// New creates an editor holding an empty scratch document.
func New(opts ...Option) *Editor {
	e := &Editor{
		cfg:       DefaultConfig(),
		logger:    log.Null,
		fs:        vfs.NewOSFS(),
		listing:   dirlist.DefaultConfig(),
		registers: register.NewStore(),
		modes:     mode.NewManager(),
		view:      uuid.New(),
		register:  register.Unnamed,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("editor")
	e.lister = dirlist.New(e.fs, e.listing, e.logger)
	e.current = document.New(document.WithScratch(), document.WithSyntax(e.syntax))
	return e
}

// Config returns the session configuration.
func (e *Editor) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// SetConfig replaces the session configuration, for example after the
// configuration file was reloaded. Requests already pending keep the
// overlay they were created with.
func (e *Editor) SetConfig(cfg Config) {
	cfg.ParallelThreshold = max(cfg.ParallelThreshold, 0)
	e.mu.Lock()
	e.cfg = cfg
	e.mu.Unlock()
}

// Logger returns the session logger.
func (e *Editor) Logger() *log.Logger {
	return e.logger
}

// View returns the identifier of the session's view.
func (e *Editor) View() document.ViewID {
	return e.view
}

// Current returns the focused document.
func (e *Editor) Current() *document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Selection returns the selection of the focused document.
func (e *Editor) Selection() cursor.Selection {
	return e.Current().Selection(e.view)
}

// SetSelection replaces the selection of the focused document.
func (e *Editor) SetSelection(sel cursor.Selection) {
	e.Current().SetSelection(e.view, sel)
}

// Modes returns the mode manager.
func (e *Editor) Modes() *mode.Manager {
	return e.modes
}

// Mode returns the current editing mode.
func (e *Editor) Mode() mode.Mode {
	return e.modes.Current()
}

// Registers returns the register store.
func (e *Editor) Registers() *register.Store {
	return e.registers
}

// SelectRegister chooses the register the next operation uses.
func (e *Editor) SelectRegister(name rune) error {
	if !register.IsValid(name) {
		return ErrInvalidRegister
	}
	e.mu.Lock()
	e.register = name
	e.mu.Unlock()
	return nil
}

// takeRegister returns the selected register and resets the selection to
// the unnamed register.
func (e *Editor) takeRegister() rune {
	e.mu.Lock()
	defer e.mu.Unlock()
	name := e.register
	e.register = register.Unnamed
	return name
}

// SetStatus shows an informational message.
func (e *Editor) SetStatus(msg string) {
	e.setStatus(Status{Message: msg, Severity: SeverityInfo})
}

// SetError shows an error message.
func (e *Editor) SetError(msg string) {
	e.setStatus(Status{Message: msg, Severity: SeverityError})
}

func (e *Editor) setStatus(s Status) {
	e.mu.Lock()
	e.status = s
	e.mu.Unlock()
}

// Status returns the current status message.
func (e *Editor) Status() (Status, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status, e.status.Message != ""
}

// ClearStatus removes the status message.
func (e *Editor) ClearStatus() {
	e.setStatus(Status{})
}

// Autoinfo returns the help overlay, if one is shown.
func (e *Editor) Autoinfo() (help.Info, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.autoinfo == nil {
		return help.Info{}, false
	}
	return *e.autoinfo, true
}

func (e *Editor) setAutoinfo(info *help.Info) {
	e.mu.Lock()
	e.autoinfo = info
	e.mu.Unlock()
}

// Open focuses doc. The previous document is dropped from the view, and a
// scratch document is discarded entirely.
func (e *Editor) Open(doc *document.Document) {
	e.mu.Lock()
	prev := e.current
	e.current = doc
	e.listDir = ""
	e.mu.Unlock()

	if prev != nil && prev != doc {
		prev.RemoveView(e.view)
		if prev.IsScratch() {
			e.logger.Debug("closing scratch document %s", prev.ID())
		}
	}
}

// OpenBuffer opens a new document holding content.
func (e *Editor) OpenBuffer(content string, opts ...document.Option) *document.Document {
	all := append([]document.Option{document.WithContent(content), document.WithSyntax(e.syntax)}, opts...)
	doc := document.New(all...)
	e.Open(doc)
	return doc
}

// OpenFile reads path and focuses it. When a baseline provider is
// configured and knows the file, the document tracks a diff against it.
func (e *Editor) OpenFile(ctx context.Context, path string) (*document.Document, error) {
	abs, err := e.fs.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	data, err := e.fs.ReadFile(abs)
	if err != nil {
		return nil, NewOperationError("open", abs, err)
	}

	opts := []document.Option{
		document.WithContent(string(data)),
		document.WithPath(abs),
		document.WithSyntax(e.syntax),
	}
	if e.baselines != nil {
		base, err := e.baselines.Baseline(ctx, abs)
		if err != nil {
			e.logger.WithField("path", abs).Debug("no diff baseline: %v", err)
		} else {
			opts = append(opts, document.WithDiffBase(base))
		}
	}

	doc := document.New(opts...)
	e.Open(doc)
	e.logger.WithField("path", abs).Info("opened file")
	return doc, nil
}

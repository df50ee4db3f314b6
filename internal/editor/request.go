package editor

import (
	"github.com/dshills/textobj/internal/help"
	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/textobject"
)

// Operation is what happens to a resolved selection.
type Operation uint8

const (
	// OpSelect commits the selection and enters select mode.
	OpSelect Operation = iota
	// OpChange deletes the selection and enters insert mode.
	OpChange
	// OpDelete deletes the selection.
	OpDelete
	// OpYank copies the selection into a register.
	OpYank
)

// String returns a string representation of the operation.
func (o Operation) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpChange:
		return "change"
	case OpDelete:
		return "delete"
	case OpYank:
		return "yank"
	default:
		return "unknown"
	}
}

// Request is a text-object command waiting for its object code.
type Request struct {
	Span  textobject.Span
	Op    Operation
	Count int
}

// await records req as pending and shows the object-code overlay. A
// request already pending is replaced.
func (e *Editor) await(req Request) {
	req.Count = max(req.Count, 1)

	var info *help.Info
	if e.Config().HelpOverlay {
		i := help.TextObject(req.Span == textobject.Around)
		info = &i
	}

	e.mu.Lock()
	if e.pending != nil {
		e.logger.Debug("replacing pending %s request", e.pending.Op)
	}
	e.pending = &req
	e.autoinfo = info
	e.mu.Unlock()
}

// Pending returns the request waiting for an object code.
func (e *Editor) Pending() (Request, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == nil {
		return Request{}, false
	}
	return *e.pending, true
}

// CancelPending drops a waiting request and its overlay.
func (e *Editor) CancelPending() {
	e.mu.Lock()
	e.pending = nil
	e.autoinfo = nil
	e.mu.Unlock()
}

// HandleKey delivers a key to a waiting request. It reports whether the
// key was consumed, which is the case whenever a request is pending.
// Keys that carry no character leave the request waiting.
func (e *Editor) HandleKey(ev key.Event) bool {
	e.mu.Lock()
	req := e.pending
	if req == nil {
		e.mu.Unlock()
		return false
	}
	ch, ok := ev.Char()
	if !ok {
		e.mu.Unlock()
		e.logger.Debug("ignoring %s while awaiting object code", ev)
		return true
	}
	e.pending = nil
	e.autoinfo = nil
	e.mu.Unlock()

	e.runTextObject(*req, ch)
	return true
}

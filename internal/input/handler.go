package input

import (
	"fmt"
	"sync"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/input/mode"
	"github.com/dshills/textobj/internal/log"
)

// Outcome describes what happened to a key event.
type Outcome uint8

const (
	// Ignored keys completed no binding.
	Ignored Outcome = iota
	// Consumed keys were taken by a pending text-object request.
	Consumed
	// Pending keys are a prefix or count of a longer binding.
	Pending
	// Executed keys completed a binding whose command ran.
	Executed
	// Inserted keys were typed into the document in insert mode.
	Inserted
	// Failed keys completed a binding naming an unknown command.
	Failed
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Consumed:
		return "consumed"
	case Pending:
		return "pending"
	case Executed:
		return "executed"
	case Inserted:
		return "inserted"
	case Failed:
		return "failed"
	default:
		return "ignored"
	}
}

// Result is the outcome of one key event.
type Result struct {
	Outcome Outcome
	// Command and Count are set for Executed and Failed results.
	Command string
	Count   int
}

// Hook observes key handling. PreKeyEvent may consume the event by
// returning true.
type Hook interface {
	PreKeyEvent(ev key.Event) bool
	PostKeyEvent(ev key.Event, res Result)
}

// Handler is the entry point for key input. It is safe for concurrent use.
type Handler struct {
	mu      sync.Mutex
	editor  *editor.Editor
	matcher *keymap.Matcher
	hooks   []Hook
	logger  *log.Logger
}

// NewHandler creates a handler driving ed with the bindings in keys.
func NewHandler(ed *editor.Editor, keys *keymap.Registry) *Handler {
	return &Handler{
		editor:  ed,
		matcher: keymap.NewMatcher(keys),
		logger:  ed.Logger().WithComponent("input"),
	}
}

// AddHook registers a hook. Hooks run in registration order.
func (h *Handler) AddHook(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Editor returns the driven editor.
func (h *Handler) Editor() *editor.Editor {
	return h.editor
}

// HandleKeyEvent processes one key event.
func (h *Handler) HandleKeyEvent(ev key.Event) Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, hook := range h.hooks {
		if hook.PreKeyEvent(ev) {
			return Result{Outcome: Consumed}
		}
	}
	res := h.route(ev)
	for _, hook := range h.hooks {
		hook.PostKeyEvent(ev, res)
	}
	return res
}

func (h *Handler) route(ev key.Event) Result {
	if h.editor.HandleKey(ev) {
		return Result{Outcome: Consumed}
	}

	md := h.editor.Mode()
	m := h.matcher.Feed(md, ev)
	switch m.Status {
	case keymap.Partial:
		return Result{Outcome: Pending}
	case keymap.Matched:
		h.logger.Debug("%s: %s x%d", md, m.Command, m.Count)
		if !h.editor.Execute(m.Command, m.Count) {
			h.editor.SetError(fmt.Sprintf("unknown command %q", m.Command))
			return Result{Outcome: Failed, Command: m.Command, Count: m.Count}
		}
		return Result{Outcome: Executed, Command: m.Command, Count: m.Count}
	}

	if md == mode.Insert {
		if s, ok := insertion(ev); ok {
			h.editor.InsertText(s)
			return Result{Outcome: Inserted}
		}
	}
	return Result{Outcome: Ignored}
}

// insertion returns the text typed by ev in insert mode.
func insertion(ev key.Event) (string, bool) {
	switch ev.Key {
	case key.KeyEnter:
		return "\n", true
	case key.KeyTab:
		return "\t", true
	}
	if ch, ok := ev.Char(); ok {
		return string(ch), true
	}
	return "", false
}

// Feed parses seq with key.ParseSequence and handles every key.
func (h *Handler) Feed(seq string) error {
	evs, err := key.ParseSequence(seq)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		h.HandleKeyEvent(ev)
	}
	return nil
}

// Idle reports whether no binding or text-object request is in progress.
func (h *Handler) Idle() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.matcher.Pending() != "" {
		return false
	}
	_, pending := h.editor.Pending()
	return !pending
}

// PendingKeys returns the count and keys typed towards a binding, followed
// by the operation and span of a waiting text-object request.
func (h *Handler) PendingKeys() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	keys := h.matcher.Pending()
	if req, ok := h.editor.Pending(); ok {
		return keys + req.Op.String() + " " + req.Span.String()
	}
	return keys
}

// Reset drops keys typed towards a binding.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.matcher.Reset()
}

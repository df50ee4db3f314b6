package document

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/textobj/internal/diff"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/syntax"
)

// ViewID identifies a view onto a document.
type ViewID = uuid.UUID

// Snapshot is an immutable view of a document taken at one revision.
// Tree, Lang and Diff are nil when unavailable. Diff is a copy that later
// edits do not change.
type Snapshot struct {
	Text     *text.Text
	Revision uint64
	Tree     syntax.Tree
	Lang     *syntax.LangConfig
	Diff     *diff.Handle
}

// Document is an open buffer.
type Document struct {
	mu sync.RWMutex

	id       uuid.UUID
	path     string
	text     *text.Text
	revision uint64
	scratch  bool

	selections map[ViewID]cursor.Selection

	registry *syntax.Registry
	lang     *syntax.LangConfig
	diff     *diff.Handle

	// Initialization
	initContent string
	initBase    *string
}

// New creates a document with the given options.
func New(opts ...Option) *Document {
	d := &Document{
		id:         uuid.New(),
		selections: make(map[ViewID]cursor.Selection),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.text = text.New(d.initContent)
	if d.lang == nil && d.registry != nil && d.path != "" {
		if lang, ok := d.registry.Detect(d.path); ok {
			d.lang = lang
		}
	}
	if d.initBase != nil {
		d.diff = diff.NewHandle(*d.initBase, d.initContent)
	}
	d.initContent = ""
	d.initBase = nil
	return d
}

// ID returns the document's unique identifier.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the file path, if the document has one.
func (d *Document) Path() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path, d.path != ""
}

// IsScratch reports whether the document is disposable.
func (d *Document) IsScratch() bool {
	return d.scratch
}

// Text returns the current text snapshot.
func (d *Document) Text() *text.Text {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Revision returns the revision counter, incremented by every edit.
func (d *Document) Revision() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revision
}

// Language returns the document's language configuration.
func (d *Document) Language() (*syntax.LangConfig, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lang, d.lang != nil
}

// Syntax returns the syntax tree for the current revision.
func (d *Document) Syntax() (syntax.Tree, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.syntaxLocked()
}

func (d *Document) syntaxLocked() (syntax.Tree, bool) {
	if d.registry == nil || d.lang == nil {
		return nil, false
	}
	return d.registry.Parse(d.cacheKey(), d.lang, d.text.String())
}

func (d *Document) cacheKey() string {
	return fmt.Sprintf("%s:%d", d.id, d.revision)
}

// Diff returns the diff handle, if the document tracks a baseline.
func (d *Document) Diff() (*diff.Handle, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.diff, d.diff != nil
}

// SetDiffBase starts or replaces diff tracking against baseline.
func (d *Document) SetDiffBase(baseline string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.diff == nil {
		d.diff = diff.NewHandle(baseline, d.text.String())
		return
	}
	d.diff.SetBaseline(baseline)
}

// Snapshot captures the text, syntax tree, language and diff handle of the
// current revision.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := Snapshot{Text: d.text, Revision: d.revision, Lang: d.lang}
	if d.diff != nil {
		s.Diff = d.diff.Clone()
	}
	if tree, ok := d.syntaxLocked(); ok {
		s.Tree = tree
	}
	return s
}

// Selection returns the selection for view. Views without a selection
// start with a cursor at position 0.
func (d *Document) Selection(view ViewID) cursor.Selection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if sel, ok := d.selections[view]; ok {
		return sel
	}
	return cursor.NewSelection(cursor.Point(0))
}

// SetSelection replaces the selection for view, clamped to the text.
func (d *Document) SetSelection(view ViewID, sel cursor.Selection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selections[view] = sel.Clamp(d.text.Len())
}

// RemoveView forgets the selection for view.
func (d *Document) RemoveView(view ViewID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.selections, view)
}

// Commit sets the selection of view and then deletes spans from the text.
// Selections of every view are mapped through the deletion. It returns the
// selection of view after the edit.
func (d *Document) Commit(view ViewID, sel cursor.Selection, spans []cursor.Deletion) cursor.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.selections[view] = sel.Clamp(d.text.Len())

	spans = cursor.CoalesceDeletions(spans)
	if len(spans) == 0 {
		return d.selections[view]
	}

	t := d.text
	for i := len(spans) - 1; i >= 0; i-- {
		t = t.Delete(spans[i].From, spans[i].To)
	}
	for v, s := range d.selections {
		d.selections[v] = s.AdjustForDeletions(spans).Clamp(t.Len())
	}
	d.replaceTextLocked(t)
	return d.selections[view]
}

// Insert inserts s at pos, shifting selections at or after pos.
func (d *Document) Insert(pos int, s string) {
	if s == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	pos = d.text.Clamp(pos)
	n := len([]rune(s))
	for v, sel := range d.selections {
		d.selections[v] = sel.AdjustForInsertion(pos, n)
	}
	d.replaceTextLocked(d.text.Insert(pos, s))
}

// SetContent replaces the whole text, resetting every selection to the
// start of the document.
func (d *Document) SetContent(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for v := range d.selections {
		d.selections[v] = cursor.NewSelection(cursor.Point(0))
	}
	d.replaceTextLocked(text.New(content))
}

func (d *Document) replaceTextLocked(t *text.Text) {
	if d.registry != nil {
		d.registry.Forget(d.cacheKey())
	}
	d.text = t
	d.revision++
	if d.diff != nil {
		d.diff.Update(t.String())
	}
}

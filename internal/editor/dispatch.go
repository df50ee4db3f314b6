package editor

import (
	"fmt"
	"slices"

	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/input/mode"
)

// dispatch commits sel as the active selection and performs op on it.
func (e *Editor) dispatch(op Operation, sel cursor.Selection) {
	switch op {
	case OpSelect:
		e.SetSelection(sel)
		e.modes.Switch(mode.Select)
	case OpYank:
		e.SetSelection(sel)
		e.yank(sel)
	case OpDelete:
		e.deleteSelection(sel)
	case OpChange:
		e.deleteSelection(sel)
		e.modes.Switch(mode.Insert)
	}
}

// fragments returns the text of every range of sel.
func (e *Editor) fragments(sel cursor.Selection) []string {
	t := e.Current().Text()
	ranges := sel.Ranges()
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = t.Slice(r.From(), r.To())
	}
	return out
}

func (e *Editor) yank(sel cursor.Selection) {
	name := e.takeRegister()
	values := e.fragments(sel)
	if !e.registers.Yank(name, values) {
		e.logger.Debug("register %q discarded yank", name)
	}
	e.SetStatus(fmt.Sprintf("yanked %d selection(s) to register %c", len(values), name))
}

// deleteSelection stores the selected text in the active register, then
// removes it, leaving a cursor at each deletion point.
func (e *Editor) deleteSelection(sel cursor.Selection) {
	name := e.takeRegister()
	e.registers.Set(name, e.fragments(sel))

	ranges := sel.Ranges()
	spans := make([]cursor.Deletion, len(ranges))
	for i, r := range ranges {
		spans[i] = cursor.Deletion{From: r.From(), To: r.To()}
	}
	after := e.Current().Commit(e.view, sel, spans)
	e.SetSelection(after.Normalize())
}

// InsertText inserts s at the head of every range. Ranges are processed
// from the end of the document so earlier insertion points stay valid.
func (e *Editor) InsertText(s string) {
	doc := e.Current()
	ranges := e.Selection().Ranges()
	heads := make([]int, len(ranges))
	for i, r := range ranges {
		heads[i] = r.Head
	}
	slices.Sort(heads)
	heads = slices.Compact(heads)
	for i := len(heads) - 1; i >= 0; i-- {
		doc.Insert(heads[i], s)
	}
}

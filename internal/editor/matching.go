package editor

import (
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/input/mode"
)

// GotoMatchingPair moves the primary range to the bracket matching the one
// under its cursor. In select mode the range is extended from the original
// cursor to the match instead. Without a syntax tree nothing happens.
func (e *Editor) GotoMatchingPair() {
	doc := e.Current()
	tree, ok := doc.Syntax()
	if !ok {
		return
	}
	sel := doc.Selection(e.view)
	orig := sel.Primary().Cursor()
	pos, ok := tree.MatchingBracket(orig)
	if !ok {
		return
	}

	var r cursor.Range
	switch {
	case !e.modes.Is(mode.Select):
		r = cursor.NewRange(pos, pos+1)
	case pos > orig:
		r = cursor.NewRange(orig, pos+1)
	default:
		r = cursor.NewRange(orig+1, pos)
	}
	doc.SetSelection(e.view, sel.WithPrimary(r))
}

package editor

import (
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/input/mode"
	"github.com/dshills/textobj/internal/textobject"
)

// wordEdge is the word boundary a word-edge command extends to.
type wordEdge uint8

const (
	edgeEnd wordEdge = iota
	edgeBeginning
	edgeNextStart
)

// wordTarget returns the character a word-edge motion from pos lands on.
func wordTarget(t *text.Text, edge wordEdge, long bool, pos int) int {
	last := max(t.Len()-1, 0)
	switch edge {
	case edgeBeginning:
		return textobject.PrevWordStart(t, pos, long)
	case edgeNextStart:
		return min(max(textobject.NextWordStart(t, pos, long)-1, pos), last)
	default:
		return min(max(textobject.WordEnd(t, pos, long)-1, 0), last)
	}
}

// putCursor extends r so that its cursor lands on pos. The anchor moves by
// one character when the range flips direction so the character it was
// covering stays selected.
func putCursor(t *text.Text, r cursor.Range, pos int) cursor.Range {
	anchor := r.Anchor
	switch {
	case r.Head >= r.Anchor && pos < anchor:
		anchor = t.NextGraphemeBoundary(anchor)
	case r.Head < r.Anchor && pos >= anchor:
		anchor = t.PrevGraphemeBoundary(anchor)
	}
	if anchor <= pos {
		return cursor.NewRange(anchor, t.NextGraphemeBoundary(pos))
	}
	return cursor.NewRange(anchor, pos)
}

// extendWord extends every range to the count-th word edge.
func (e *Editor) extendWord(edge wordEdge, long bool, count int) {
	doc := e.Current()
	t := doc.Text()
	sel := doc.Selection(e.view).Transform(func(r cursor.Range) cursor.Range {
		pos := r.Cursor()
		for range max(count, 1) {
			pos = wordTarget(t, edge, long, pos)
		}
		return putCursor(t, r, pos)
	})
	doc.SetSelection(e.view, sel)
}

// lineSpan returns the first and last line r touches. A non-empty range
// ending at a line start does not touch that line.
func lineSpan(t *text.Text, r cursor.Range) (first, last int) {
	first = t.CharToLine(r.From())
	end := r.To()
	if end > r.From() {
		end--
	}
	return first, t.CharToLine(end)
}

// extendToLines extends r to whole lines, plus count-1 lines below.
func extendToLines(t *text.Text, r cursor.Range, count int) cursor.Range {
	first, last := lineSpan(t, r)
	start := t.LineToChar(first)
	end := t.LineToChar(min(last+max(count, 1), t.LineCount()))
	out := cursor.NewRange(start, end)
	if count > 1 {
		return out
	}
	return out.WithDirection(r.Direction())
}

func (e *Editor) extendLines(count int) cursor.Selection {
	doc := e.Current()
	t := doc.Text()
	return doc.Selection(e.view).Transform(func(r cursor.Range) cursor.Range {
		return extendToLines(t, r, count)
	})
}

// ChangeLine changes count whole lines.
func (e *Editor) ChangeLine(count int) {
	e.dispatch(OpChange, e.extendLines(count))
}

// YankLine yanks count whole lines.
func (e *Editor) YankLine(count int) {
	e.dispatch(OpYank, e.extendLines(count))
}

// DeleteLine deletes the cursor line count times.
func (e *Editor) DeleteLine(count int) {
	for range max(count, 1) {
		e.dispatch(OpDelete, e.extendLines(1))
	}
}

// extendToLineEnd extends every range to the last character of its cursor
// line. On an empty line the line ending is taken.
func (e *Editor) extendToLineEnd() cursor.Selection {
	doc := e.Current()
	t := doc.Text()
	return doc.Selection(e.view).Transform(func(r cursor.Range) cursor.Range {
		line := t.CharToLine(r.Cursor())
		pos := max(t.PrevGraphemeBoundary(t.LineContentEnd(line)), t.LineToChar(line))
		return putCursor(t, r, pos)
	})
}

// ChangeToEndOfLine changes from the cursor to the end of the line.
func (e *Editor) ChangeToEndOfLine() {
	e.dispatch(OpChange, e.extendToLineEnd())
}

// DeleteToEndOfLine deletes from the cursor to the end of the line.
func (e *Editor) DeleteToEndOfLine() {
	e.dispatch(OpDelete, e.extendToLineEnd())
}

// motion is a cursor movement.
type motion uint8

const (
	moveLeft motion = iota
	moveRight
	moveUp
	moveDown
)

func step(t *text.Text, m motion, pos int) int {
	switch m {
	case moveLeft:
		return max(t.PrevGraphemeBoundary(pos), t.LineToChar(t.CharToLine(pos)))
	case moveRight:
		line := t.CharToLine(pos)
		next := t.NextGraphemeBoundary(pos)
		if next >= t.LineContentEnd(line) {
			return pos
		}
		return next
	}

	line := t.CharToLine(pos)
	col := pos - t.LineToChar(line)
	target := line - 1
	if m == moveDown {
		target = line + 1
	}
	if target < 0 || target >= t.LineCount() {
		return pos
	}
	start := t.LineToChar(target)
	return min(start+col, max(t.LineContentEnd(target)-1, start))
}

// move moves every cursor count times. Select mode extends the ranges.
func (e *Editor) move(m motion, count int) {
	doc := e.Current()
	t := doc.Text()
	extend := e.modes.Is(mode.Select)
	sel := doc.Selection(e.view).Transform(func(r cursor.Range) cursor.Range {
		pos := r.Cursor()
		for range max(count, 1) {
			pos = step(t, m, pos)
		}
		if extend {
			return putCursor(t, r, pos)
		}
		return cursor.Point(pos)
	})
	doc.SetSelection(e.view, sel)
}

// NormalMode leaves insert or select mode, collapsing ranges to their
// cursors. Pending text-object requests are unaffected.
func (e *Editor) NormalMode() {
	if e.modes.Is(mode.Normal) || e.modes.Is(mode.Browse) {
		return
	}
	doc := e.Current()
	sel := doc.Selection(e.view).Transform(func(r cursor.Range) cursor.Range {
		return cursor.Point(r.Cursor())
	})
	doc.SetSelection(e.view, sel.Normalize())
	e.modes.Switch(mode.Normal)
}

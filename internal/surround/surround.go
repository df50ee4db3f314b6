// Package surround locates delimiter pairs enclosing a range.
//
// Two strategies are provided. Plain matching scans the text itself,
// stepping over nested pairs of the same kind. Tree matching consults the
// pairs recorded by a syntax tree, so delimiters inside comments and string
// literals are ignored. Both return the positions of the delimiters
// themselves; turning them into inside or around spans is up to callers.
package surround

import (
	"errors"

	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/syntax"
)

var (
	// ErrPairNotFound indicates no enclosing pair exists.
	ErrPairNotFound = errors.New("surround pair not found around all cursors")

	// ErrCursorOnAmbiguousPair indicates the cursor sits on a delimiter
	// that opens and closes alike, such as a quote.
	ErrCursorOnAmbiguousPair = errors.New("cursor on ambiguous surround pair")

	// ErrRangeExceedsText indicates the range reaches past the text.
	ErrRangeExceedsText = errors.New("cursor range exceeds text length")
)

// Pairs lists the bracket-like delimiters as open/close.
var Pairs = [][2]rune{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
	{'«', '»'},
	{'「', '」'},
	{'（', '）'},
}

// PairOf returns the open and close delimiters for ch. Characters that are
// not brackets pair with themselves.
func PairOf(ch rune) (open, close rune) {
	for _, p := range Pairs {
		if p[0] == ch || p[1] == ch {
			return p[0], p[1]
		}
	}
	return ch, ch
}

// IsOpen reports whether ch opens a bracket pair.
func IsOpen(ch rune) bool {
	for _, p := range Pairs {
		if p[0] == ch {
			return true
		}
	}
	return false
}

// IsClose reports whether ch closes a bracket pair.
func IsClose(ch rune) bool {
	for _, p := range Pairs {
		if p[1] == ch {
			return true
		}
	}
	return false
}

// IsQuote reports whether ch is a quote delimiter. Quotes are matched one
// line at a time.
func IsQuote(ch rune) bool {
	return ch == '\'' || ch == '"' || ch == '`'
}

// FindNthPairsPos finds the count-th pair of ch around the cursor of r by
// scanning t.
func FindNthPairsPos(t *text.Text, ch rune, r cursor.Range, count int) (open, close int, err error) {
	if t.Len() < 2 {
		return 0, 0, ErrPairNotFound
	}
	if r.To() > t.Len() {
		return 0, 0, ErrRangeExceedsText
	}
	pos := r.Cursor()
	if pos >= t.Len() {
		return 0, 0, ErrPairNotFound
	}
	count = max(count, 1)

	o, c := PairOf(ch)
	var okOpen, okClose bool
	if o == c {
		if cur, _ := t.Char(pos); cur == o {
			return 0, 0, ErrCursorOnAmbiguousPair
		}
		open, okOpen = t.FindNthPrev(o, pos, count)
		close, okClose = t.FindNthNext(c, pos, count)
	} else {
		open, okOpen = findNthOpen(t, o, c, pos, count)
		close, okClose = findNthClose(t, o, c, pos, count)
	}
	if !okOpen || !okClose {
		return 0, 0, ErrPairNotFound
	}
	return open, close, nil
}

// findNthOpen walks backward from pos to the count-th unmatched open. A
// cursor on open counts as the first match; a cursor on close belongs to
// the pair being searched for.
func findNthOpen(t *text.Text, open, close rune, pos, count int) (int, bool) {
	i := pos
	if ch, _ := t.Char(pos); ch == open {
		count--
		if count == 0 {
			return pos, true
		}
	}
	depth := 0
	for i--; i >= 0; i-- {
		ch, _ := t.Char(i)
		switch ch {
		case close:
			depth++
		case open:
			if depth > 0 {
				depth--
				continue
			}
			count--
			if count == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// findNthClose walks forward from pos to the count-th unmatched close.
func findNthClose(t *text.Text, open, close rune, pos, count int) (int, bool) {
	i := pos
	if ch, _ := t.Char(pos); ch == close {
		count--
		if count == 0 {
			return pos, true
		}
	}
	depth := 0
	for i++; i < t.Len(); i++ {
		ch, _ := t.Char(i)
		switch ch {
		case open:
			depth++
		case close:
			if depth > 0 {
				depth--
				continue
			}
			count--
			if count == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// FindNthClosestPairsPos finds the count-th bracket pair of any kind that
// encloses r, scanning t.
func FindNthClosestPairsPos(t *text.Text, r cursor.Range, count int) (open, close int, err error) {
	if r.To() > t.Len() {
		return 0, 0, ErrRangeExceedsText
	}
	count = max(count, 1)
	from := r.From()

	var stack []rune
	for pos := from; pos < t.Len(); pos++ {
		ch, _ := t.Char(pos)
		if IsOpen(ch) {
			// Opened after the range starts, so its close is stepped over.
			stack = append(stack, ch)
			continue
		}
		if !IsClose(ch) {
			continue
		}
		o, c := PairOf(ch)
		if n := len(stack); n > 0 && stack[n-1] == o {
			stack = stack[:n-1]
			continue
		}
		openPos, ok := findNthOpen(t, o, c, pos, 1)
		if !ok || openPos > from+1 || pos < r.To()-1 {
			continue
		}
		if count > 1 {
			count--
			continue
		}
		return openPos, pos, nil
	}
	return 0, 0, ErrPairNotFound
}

// FindNthPairsPosTree finds the count-th pair of ch enclosing the cursor of
// r among the pairs recorded by tree.
func FindNthPairsPosTree(tree syntax.Tree, ch rune, r cursor.Range, count int) (open, close int, err error) {
	o, _ := PairOf(ch)
	pos := r.Cursor()
	return nth(syntax.EnclosingPairs(tree, o, pos, pos+1), count)
}

// FindNthClosestPairsPosTree finds the count-th bracket pair of any kind
// enclosing r among the pairs recorded by tree.
func FindNthClosestPairsPosTree(tree syntax.Tree, r cursor.Range, count int) (open, close int, err error) {
	var brackets []syntax.Pair
	for _, p := range syntax.EnclosingPairs(tree, 0, r.From(), r.To()) {
		if IsOpen(p.OpenChar) {
			brackets = append(brackets, p)
		}
	}
	return nth(brackets, count)
}

func nth(pairs []syntax.Pair, count int) (int, int, error) {
	count = max(count, 1)
	if count > len(pairs) {
		return 0, 0, ErrPairNotFound
	}
	p := pairs[count-1]
	return p.Open, p.Close, nil
}

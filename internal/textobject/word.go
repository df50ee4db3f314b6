package textobject

import (
	"unicode"

	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
)

type charCategory uint8

const (
	catWhitespace charCategory = iota
	catEol
	catWord
	catPunctuation
	catUnknown
)

func categorize(ch rune) charCategory {
	switch {
	case text.IsLineEnding(ch):
		return catEol
	case unicode.IsSpace(ch):
		return catWhitespace
	case ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch):
		return catWord
	case unicode.In(ch, unicode.P, unicode.Sm, unicode.Sc, unicode.Sk):
		return catPunctuation
	default:
		return catUnknown
	}
}

func isBlank(ch rune) bool {
	c := categorize(ch)
	return c == catWhitespace || c == catEol
}

// resolveWord selects the word (or WORD) under the cursor. Around adds the
// whitespace after the word, or before it when nothing follows.
//
// The word count is accepted but a single word is always selected.
func resolveWord(ctx Context, k Kind, span Span, _ int, r cursor.Range) (cursor.Range, error) {
	t := ctx.Text
	long := k.Tag == TagBigWord

	pos := r.Cursor()
	// A selection ending in whitespace refers to the word before it.
	for !r.IsEmpty() && pos > r.From() {
		if ch, ok := t.Char(pos); !ok || !isBlank(ch) {
			break
		}
		pos--
	}

	start := wordBoundary(t, pos, false, long)
	end := pos
	if ch, ok := t.Char(pos); ok && !isBlank(ch) {
		end = wordBoundary(t, pos+1, true, long)
	}
	if start == end {
		return cursor.Point(start), nil
	}
	if span == Inside {
		return cursor.NewRange(start, end), nil
	}

	if right := countSpaces(t, end, true); right > 0 {
		return cursor.NewRange(start, end+right), nil
	}
	return cursor.NewRange(start-countSpaces(t, start, false), end), nil
}

// wordBoundary walks from pos while characters stay in one category and
// returns where it stopped. Backward walks look at the characters before
// pos. WORDs (long) only stop at whitespace.
func wordBoundary(t *text.Text, pos int, forward, long bool) int {
	n := t.Len()
	var prev charCategory
	switch {
	case forward && pos == 0, !forward && pos == n:
		prev = catWhitespace
	case forward:
		ch, _ := t.Char(pos - 1)
		prev = categorize(ch)
	default:
		ch, _ := t.Char(pos)
		prev = categorize(ch)
	}

	for {
		i := pos
		if !forward {
			i = pos - 1
		}
		ch, ok := t.Char(i)
		if !ok {
			return pos
		}
		c := categorize(ch)
		if c == catWhitespace || c == catEol {
			return pos
		}
		if !long && c != prev && pos != 0 && pos != n {
			return pos
		}
		if forward {
			pos++
		} else {
			pos--
		}
		prev = c
	}
}

// countSpaces counts non-newline whitespace forward from pos or backward
// from just before pos.
func countSpaces(t *text.Text, pos int, forward bool) int {
	n := 0
	for {
		i := pos + n
		if !forward {
			i = pos - n - 1
		}
		ch, ok := t.Char(i)
		if !ok || categorize(ch) != catWhitespace {
			return n
		}
		n++
	}
}

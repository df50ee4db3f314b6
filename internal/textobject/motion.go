package textobject

import "github.com/dshills/textobj/internal/engine/text"

// Word motions used by the word-edge commands. Positions are character
// indices; long selects WORD semantics.

// sameWord reports whether a and b belong to one word run.
func sameWord(a, b rune, long bool) bool {
	if isBlank(a) || isBlank(b) {
		return false
	}
	return long || categorize(a) == categorize(b)
}

// NextWordStart returns the start of the word after the one at pos.
func NextWordStart(t *text.Text, pos int, long bool) int {
	n := t.Len()
	if pos >= n {
		return n
	}
	cur, _ := t.Char(pos)
	i := pos + 1
	if !isBlank(cur) {
		for ; i < n; i++ {
			ch, _ := t.Char(i)
			if !sameWord(cur, ch, long) {
				break
			}
		}
	}
	for ; i < n; i++ {
		ch, _ := t.Char(i)
		if !isBlank(ch) {
			break
		}
	}
	return i
}

// WordEnd returns the position just past the end of the next word ending
// after pos.
func WordEnd(t *text.Text, pos int, long bool) int {
	n := t.Len()
	i := pos + 1
	for ; i < n; i++ {
		ch, _ := t.Char(i)
		if !isBlank(ch) {
			break
		}
	}
	if i >= n {
		return n
	}
	first, _ := t.Char(i)
	for i++; i < n; i++ {
		ch, _ := t.Char(i)
		if !sameWord(first, ch, long) {
			break
		}
	}
	return i
}

// PrevWordStart returns the start of the word that begins before pos.
func PrevWordStart(t *text.Text, pos int, long bool) int {
	i := min(pos, t.Len()) - 1
	for ; i >= 0; i-- {
		ch, _ := t.Char(i)
		if !isBlank(ch) {
			break
		}
	}
	if i < 0 {
		return 0
	}
	last, _ := t.Char(i)
	for ; i > 0; i-- {
		ch, _ := t.Char(i - 1)
		if !sameWord(last, ch, long) {
			break
		}
	}
	return i
}

// Package text provides an immutable, char-indexed snapshot of buffer
// content.
//
// All positions are character (rune) indices in the range [0, Len()].
// Lines are numbered from 0; a text with n line breaks has n+1 lines, the
// last of which may be empty. A break is any character for which
// IsLineEnding reports true, with CRLF counting as one. Line boundaries
// include the trailing break, so LineToChar(line+1) is the first character
// after it.
//
// A Text is safe for concurrent reads. Edits produce a new Text.
package text

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Text is an immutable snapshot of document content.
type Text struct {
	runes      []rune
	lineStarts []int
}

// New creates a Text from s.
func New(s string) *Text {
	runes := []rune(s)
	starts := []int{0}
	for i, r := range runes {
		if !IsLineEnding(r) {
			continue
		}
		// CRLF is a single break.
		if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			continue
		}
		starts = append(starts, i+1)
	}
	return &Text{runes: runes, lineStarts: starts}
}

// Len returns the number of characters.
func (t *Text) Len() int {
	return len(t.runes)
}

// String returns the full content.
func (t *Text) String() string {
	return string(t.runes)
}

// Char returns the character at i.
func (t *Text) Char(i int) (rune, bool) {
	if i < 0 || i >= len(t.runes) {
		return 0, false
	}
	return t.runes[i], true
}

// Slice returns the characters in [from, to), clamped to the text.
func (t *Text) Slice(from, to int) string {
	from = t.Clamp(from)
	to = t.Clamp(to)
	if from >= to {
		return ""
	}
	return string(t.runes[from:to])
}

// Clamp restricts i to [0, Len()].
func (t *Text) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(t.runes) {
		return len(t.runes)
	}
	return i
}

// LineCount returns the number of lines.
func (t *Text) LineCount() int {
	return len(t.lineStarts)
}

// CharToLine returns the line containing char index i.
// Indices past the end map to the last line.
func (t *Text) CharToLine(i int) int {
	i = t.Clamp(i)
	// First line start greater than i, minus one.
	return sort.SearchInts(t.lineStarts, i+1) - 1
}

// LineToChar returns the char index of the start of line.
// line == LineCount() returns Len(); other out-of-range lines are clamped.
func (t *Text) LineToChar(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(t.lineStarts) {
		return len(t.runes)
	}
	return t.lineStarts[line]
}

// LineBounds returns [start, end) of line including its newline.
func (t *Text) LineBounds(line int) (start, end int, ok bool) {
	if line < 0 || line >= len(t.lineStarts) {
		return 0, 0, false
	}
	return t.lineStarts[line], t.LineToChar(line + 1), true
}

// Line returns the text of line including its trailing newline.
func (t *Text) Line(line int) (string, bool) {
	start, end, ok := t.LineBounds(line)
	if !ok {
		return "", false
	}
	return string(t.runes[start:end]), true
}

// LineContentEnd returns the char index of the end of line, excluding the
// line ending.
func (t *Text) LineContentEnd(line int) int {
	start, end, ok := t.LineBounds(line)
	if !ok {
		return len(t.runes)
	}
	for end > start && IsLineEnding(t.runes[end-1]) {
		end--
	}
	return end
}

// IsBlankLine reports whether line consists only of a line ending (or is
// empty).
func (t *Text) IsBlankLine(line int) bool {
	start, end, ok := t.LineBounds(line)
	if !ok {
		return false
	}
	for _, r := range t.runes[start:end] {
		if !IsLineEnding(r) {
			return false
		}
	}
	return true
}

// CountInLine counts occurrences of ch on line.
func (t *Text) CountInLine(line int, ch rune) int {
	start, end, ok := t.LineBounds(line)
	if !ok {
		return 0
	}
	n := 0
	for _, r := range t.runes[start:end] {
		if r == ch {
			n++
		}
	}
	return n
}

// FindNthNext returns the index of the nth occurrence of ch at or after pos.
func (t *Text) FindNthNext(ch rune, pos, n int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	for i := max(pos, 0); i < len(t.runes); i++ {
		if t.runes[i] == ch {
			n--
			if n == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// FindNthPrev returns the index of the nth occurrence of ch before pos.
func (t *Text) FindNthPrev(ch rune, pos, n int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	for i := min(pos, len(t.runes)) - 1; i >= 0; i-- {
		if t.runes[i] == ch {
			n--
			if n == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// FindNextChar searches forward from the character after pos for the
// count-th occurrence of ch. When inclusive is false the result is the
// position just before the match, skipping a match adjacent to pos.
func (t *Text) FindNextChar(ch rune, pos, count int, inclusive bool) (int, bool) {
	start := min(pos+1, len(t.runes))
	if inclusive {
		return t.FindNthNext(ch, start, count)
	}
	if r, ok := t.Char(start); ok && r == ch {
		count++
	}
	i, ok := t.FindNthNext(ch, start, count)
	if !ok {
		return 0, false
	}
	return max(i-1, 0), true
}

// FindPrevChar searches backward from pos for the count-th occurrence of ch.
// When inclusive is false the result is the position just after the match.
func (t *Text) FindPrevChar(ch rune, pos, count int, inclusive bool) (int, bool) {
	if inclusive {
		return t.FindNthPrev(ch, pos, count)
	}
	if r, ok := t.Char(pos - 1); ok && r == ch {
		count++
	}
	i, ok := t.FindNthPrev(ch, pos, count)
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// NextGraphemeBoundary returns the first grapheme cluster boundary after i.
func (t *Text) NextGraphemeBoundary(i int) int {
	if i >= len(t.runes) {
		return len(t.runes)
	}
	if i < 0 {
		return 0
	}
	for _, b := range t.boundaries(i) {
		if b > i {
			return b
		}
	}
	return len(t.runes)
}

// PrevGraphemeBoundary returns the last grapheme cluster boundary before i.
func (t *Text) PrevGraphemeBoundary(i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(t.runes) {
		return len(t.runes)
	}
	prev := 0
	for _, b := range t.boundaries(i - 1) {
		if b >= i {
			break
		}
		prev = b
	}
	return prev
}

// boundaries returns the cluster boundaries of the line containing i,
// starting with the line start. Clusters never span lines since CRLF is a
// single break.
func (t *Text) boundaries(i int) []int {
	line := t.CharToLine(i)
	start, end, _ := t.LineBounds(line)
	bounds := []int{start}
	pos := start
	state := -1
	rest := string(t.runes[start:end])
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len([]rune(cluster))
		bounds = append(bounds, pos)
	}
	return bounds
}

// Insert returns a new Text with s inserted at pos.
func (t *Text) Insert(pos int, s string) *Text {
	pos = t.Clamp(pos)
	var sb strings.Builder
	sb.WriteString(string(t.runes[:pos]))
	sb.WriteString(s)
	sb.WriteString(string(t.runes[pos:]))
	return New(sb.String())
}

// Delete returns a new Text without the characters in [from, to).
func (t *Text) Delete(from, to int) *Text {
	from = t.Clamp(from)
	to = t.Clamp(to)
	if from >= to {
		return t
	}
	return New(string(t.runes[:from]) + string(t.runes[to:]))
}

// IsLineEnding reports whether r ends a line.
func IsLineEnding(r rune) bool {
	switch r {
	case '\n', '\r', '\u000B', '\u000C', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Package diff tracks line hunks between a baseline and the current text of
// a document.
//
// Hunks are computed in line mode with diffmatchpatch. Line numbers are
// zero-based and ranges are half-open. A hunk whose After range is empty is
// a pure removal; one whose Before range is empty is a pure insertion.
package diff

import (
	"sort"
	"strings"
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/textobj/internal/engine/text"
)

// LineRange is a half-open range of lines [Start, End).
type LineRange struct {
	Start, End int
}

// Len returns the number of lines.
func (r LineRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no lines.
func (r LineRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Hunk is a changed region: Before in the baseline, After in the current
// text.
type Hunk struct {
	Before LineRange
	After  LineRange
}

// IsRemoval reports whether the hunk only removes lines.
func (h Hunk) IsRemoval() bool {
	return h.After.IsEmpty()
}

// Handle holds the hunks for one document. It is safe for concurrent use.
type Handle struct {
	mu       sync.RWMutex
	baseline string
	current  string
	hunks    []Hunk
}

// NewHandle creates a handle comparing current against baseline.
func NewHandle(baseline, current string) *Handle {
	h := &Handle{baseline: baseline, current: current}
	h.hunks = Compute(baseline, current)
	return h
}

// Clone returns an independent handle with the same baseline, text and
// hunks. Later updates to either handle do not affect the other.
func (h *Handle) Clone() *Handle {
	h.mu.RLock()
	defer h.mu.RUnlock()
	hunks := make([]Hunk, len(h.hunks))
	copy(hunks, h.hunks)
	return &Handle{baseline: h.baseline, current: h.current, hunks: hunks}
}

// Update recomputes hunks against new current text.
func (h *Handle) Update(current string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = current
	h.hunks = Compute(h.baseline, current)
}

// SetBaseline replaces the baseline and recomputes hunks.
func (h *Handle) SetBaseline(baseline string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.baseline = baseline
	h.hunks = Compute(baseline, h.current)
}

// Len returns the number of hunks.
func (h *Handle) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.hunks)
}

// Hunks returns a copy of all hunks in order.
func (h *Handle) Hunks() []Hunk {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Hunk, len(h.hunks))
	copy(out, h.hunks)
	return out
}

// NthHunk returns the hunk at index i.
func (h *Handle) NthHunk(i int) (Hunk, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.hunks) {
		return Hunk{}, false
	}
	return h.hunks[i], true
}

// HunkAt returns the index of the hunk whose After range contains line.
// When includeRemoval is set, a removal hunk positioned at line also
// matches.
func (h *Handle) HunkAt(line int, includeRemoval bool) (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	// First hunk that ends after line, or a removal sitting exactly on it.
	i := sort.Search(len(h.hunks), func(i int) bool {
		a := h.hunks[i].After
		return a.End > line || (a.IsEmpty() && a.Start >= line)
	})
	if i == len(h.hunks) {
		return 0, false
	}
	a := h.hunks[i].After
	if a.IsEmpty() {
		if includeRemoval && a.Start == line {
			return i, true
		}
		return 0, false
	}
	if a.Start <= line {
		return i, true
	}
	return 0, false
}

// Compute returns the line hunks between before and after. Lines are split
// the way text.Text splits them.
func Compute(before, after string) []Hunk {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(splitBreaks(before), splitBreaks(after))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var (
		hunks   []Hunk
		cur     *Hunk
		oldLine int
		newLine int
	)
	flush := func() {
		if cur != nil {
			hunks = append(hunks, *cur)
			cur = nil
		}
	}
	for _, d := range diffs {
		n := countLines(d.Text)
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			oldLine += n
			newLine += n
		case diffmatchpatch.DiffDelete:
			if cur == nil {
				cur = &Hunk{Before: LineRange{oldLine, oldLine}, After: LineRange{newLine, newLine}}
			}
			oldLine += n
			cur.Before.End = oldLine
		case diffmatchpatch.DiffInsert:
			if cur == nil {
				cur = &Hunk{Before: LineRange{oldLine, oldLine}, After: LineRange{newLine, newLine}}
			}
			newLine += n
			cur.After.End = newLine
		}
	}
	flush()
	return hunks
}

// splitBreaks appends a newline to every line break other than LF and
// CRLF, so that line mode sees the same lines as text.Text.
func splitBreaks(s string) string {
	if !strings.ContainsFunc(s, otherBreak) {
		return s
	}
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i, r := range runes {
		sb.WriteRune(r)
		if otherBreak(r) && (r != '\r' || i+1 >= len(runes) || runes[i+1] != '\n') {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func otherBreak(r rune) bool {
	return r != '\n' && text.IsLineEnding(r)
}

func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

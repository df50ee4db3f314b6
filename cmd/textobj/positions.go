package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
)

// parseRange parses a cursor argument:
//
//	42          character offset
//	3:5         line 3, column 5 (both 1-based)
//	10..20      range with anchor 10 and head 20; either end may be L:C
func parseRange(t *text.Text, arg string) (cursor.Range, error) {
	if anchor, head, ok := strings.Cut(arg, ".."); ok {
		a, err := parsePosition(t, anchor)
		if err != nil {
			return cursor.Range{}, err
		}
		h, err := parsePosition(t, head)
		if err != nil {
			return cursor.Range{}, err
		}
		return cursor.NewRange(a, h), nil
	}
	p, err := parsePosition(t, arg)
	if err != nil {
		return cursor.Range{}, err
	}
	return cursor.Point(p), nil
}

func parsePosition(t *text.Text, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if line, col, ok := strings.Cut(arg, ":"); ok {
		l, err := strconv.Atoi(line)
		if err != nil || l < 1 || l > t.LineCount() {
			return 0, fmt.Errorf("invalid line in %q", arg)
		}
		c, err := strconv.Atoi(col)
		if err != nil || c < 1 {
			return 0, fmt.Errorf("invalid column in %q", arg)
		}
		start := t.LineToChar(l - 1)
		end := t.LineContentEnd(l - 1)
		if start+c-1 > end {
			return 0, fmt.Errorf("column %d past end of line %d", c, l)
		}
		return start + c - 1, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", arg)
	}
	if n < 0 || n > t.Len() {
		return 0, fmt.Errorf("position %d outside text of length %d", n, t.Len())
	}
	return n, nil
}

// parseSelection builds a selection from args. The first arg is the
// primary range. No args yields a cursor at the start of the text.
func parseSelection(t *text.Text, args []string) (cursor.Selection, error) {
	if len(args) == 0 {
		return cursor.NewSelection(cursor.Point(0)), nil
	}
	ranges := make([]cursor.Range, len(args))
	for i, s := range args {
		r, err := parseRange(t, s)
		if err != nil {
			return cursor.Selection{}, err
		}
		ranges[i] = r
	}
	return cursor.NewMulti(ranges, 0)
}

// lineCol returns the 1-based line and column of pos.
func lineCol(t *text.Text, pos int) (int, int) {
	line := t.CharToLine(pos)
	return line + 1, pos - t.LineToChar(line) + 1
}

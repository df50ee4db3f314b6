package textobject

import (
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/surround"
)

func resolveClosestPair(ctx Context, _ Kind, span Span, count int, r cursor.Range) (cursor.Range, error) {
	var (
		open, close int
		err         error
	)
	if ctx.Tree != nil {
		open, close, err = surround.FindNthClosestPairsPosTree(ctx.Tree, r, count)
	} else {
		open, close, err = surround.FindNthClosestPairsPos(ctx.Text, r, count)
	}
	if err != nil {
		return r, nil
	}
	return pairRange(ctx.Text, open, close, span, r.Direction()), nil
}

func resolveLiteralPair(ctx Context, k Kind, span Span, count int, r cursor.Range) (cursor.Range, error) {
	if out, ok := MatchPair(ctx, k.Char, span, count, r); ok {
		return out, nil
	}
	return r, nil
}

// MatchPair finds the count-th pair of ch around r. Quotes are matched
// within the line holding the cursor. Other delimiters use the syntax tree
// when it recognises them and plain text matching otherwise.
func MatchPair(ctx Context, ch rune, span Span, count int, r cursor.Range) (cursor.Range, bool) {
	if ctx.Text == nil {
		return r, false
	}
	count = max(count, 1)
	if surround.IsQuote(ch) {
		return matchQuote(ctx.Text, ch, span, count, r)
	}

	var (
		open, close int
		err         error
	)
	if o, _ := surround.PairOf(ch); ctx.Tree != nil && ctx.Tree.Handles(o) {
		open, close, err = surround.FindNthPairsPosTree(ctx.Tree, ch, r, count)
	} else {
		open, close, err = surround.FindNthPairsPos(ctx.Text, ch, r, count)
	}
	if err != nil {
		return r, false
	}
	return pairRange(ctx.Text, open, close, span, r.Direction()), true
}

// matchQuote matches ch on the cursor's line in line-local coordinates and
// translates the result back.
func matchQuote(t *text.Text, ch rune, span Span, count int, r cursor.Range) (cursor.Range, bool) {
	line := t.CharToLine(r.Cursor())
	start, end, ok := t.LineBounds(line)
	if !ok || r.From() < start {
		return r, false
	}
	local := r.Shift(-start)
	open, close, err := surround.FindNthPairsPos(text.New(t.Slice(start, end)), ch, local, count)
	if err != nil {
		return r, false
	}
	return pairRange(t, open+start, close+start, span, r.Direction()), true
}

// pairRange converts delimiter positions into a range. Inside excludes both
// delimiters and Around includes them.
func pairRange(t *text.Text, open, close int, span Span, dir cursor.Direction) cursor.Range {
	var from, to int
	switch span {
	case Around:
		from, to = open, t.NextGraphemeBoundary(close)
	default:
		from, to = t.NextGraphemeBoundary(open), close
	}
	return cursor.NewRange(from, to).WithDirection(dir)
}

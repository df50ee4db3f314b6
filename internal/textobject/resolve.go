package textobject

import (
	"errors"

	"github.com/dshills/textobj/internal/diff"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/syntax"
)

// ErrDiffUnavailable is returned when the diff object is used on a document
// without a diff.
var ErrDiffUnavailable = errors.New("Diff is not available in current buffer") //nolint:staticcheck // shown to the user verbatim

// Context is the read-only document state resolution consults. Tree, Lang
// and Diff are nil when unavailable.
type Context struct {
	Text *text.Text
	Tree syntax.Tree
	Lang *syntax.LangConfig
	Diff *diff.Handle
}

type resolveFunc func(ctx Context, k Kind, span Span, count int, r cursor.Range) (cursor.Range, error)

// resolvers is indexed by Tag; every tag has an entry.
var resolvers = [tagCount]resolveFunc{
	TagNone:        resolveNone,
	TagWord:        resolveWord,
	TagBigWord:     resolveWord,
	TagParagraph:   resolveParagraph,
	TagSyntaxNode:  resolveNode,
	TagClosestPair: resolveClosestPair,
	TagLiteralPair: resolveLiteralPair,
	TagChangedHunk: resolveHunk,
}

// Resolve maps r through the object k. The result is r itself when no
// object is found. count selects the count-th object outward and is
// treated as 1 when smaller.
func Resolve(ctx Context, k Kind, span Span, count int, r cursor.Range) (cursor.Range, error) {
	if ctx.Text == nil || k.Tag >= tagCount {
		return r, nil
	}
	return resolvers[k.Tag](ctx, k, span, max(count, 1), r)
}

func resolveNone(_ Context, _ Kind, _ Span, _ int, r cursor.Range) (cursor.Range, error) {
	return r, nil
}

// resolveNode selects the syntax object named by k. Both a tree and a
// language serving the object are required.
func resolveNode(ctx Context, k Kind, span Span, count int, r cursor.Range) (cursor.Range, error) {
	if ctx.Tree == nil || ctx.Lang == nil || !ctx.Lang.Supports(k.Name) {
		return r, nil
	}
	objs := ctx.Tree.TextObjects(k.Name, r.Cursor())
	if len(objs) == 0 {
		return r, nil
	}
	obj := objs[min(count, len(objs))-1]
	s := obj.Around
	if span == Inside {
		s = obj.Inside
	}
	if s.To > ctx.Text.Len() {
		return r, nil
	}
	return cursor.NewRange(s.From, s.To), nil
}

// resolveHunk selects the lines of the diff hunk under the cursor.
func resolveHunk(ctx Context, _ Kind, _ Span, _ int, r cursor.Range) (cursor.Range, error) {
	if ctx.Diff == nil {
		return r, ErrDiffUnavailable
	}
	line := ctx.Text.CharToLine(r.Cursor())
	idx, ok := ctx.Diff.HunkAt(line, false)
	if !ok {
		return r, nil
	}
	hunk, ok := ctx.Diff.NthHunk(idx)
	if !ok {
		return r, nil
	}
	start := ctx.Text.LineToChar(hunk.After.Start)
	end := ctx.Text.LineToChar(hunk.After.End)
	return cursor.NewRange(start, end).WithDirection(r.Direction()), nil
}

package editor

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/surround"
	"github.com/dshills/textobj/internal/textobject"
)

// runTextObject resolves the object named by ch for every range of the
// current selection and dispatches req.Op on the result.
func (e *Editor) runTextObject(req Request, ch rune) {
	doc := e.Current()
	snap := doc.Snapshot()
	ctx := textobject.Context{Text: snap.Text, Tree: snap.Tree, Lang: snap.Lang, Diff: snap.Diff}
	kind := textobject.Parse(ch)
	logger := e.logger.WithFields(map[string]any{
		"object": kind.String(),
		"span":   req.Span.String(),
		"op":     req.Op.String(),
	})

	if kind.NeedsDiff() && ctx.Diff == nil {
		e.SetStatus(textobject.ErrDiffUnavailable.Error())
		return
	}

	sel := doc.Selection(e.view)
	out, err := e.transform(sel, func(r cursor.Range) (cursor.Range, error) {
		return textobject.Resolve(ctx, kind, req.Span, req.Count, r)
	})
	if err != nil {
		if errors.Is(err, textobject.ErrDiffUnavailable) {
			e.SetStatus(err.Error())
		} else {
			e.SetError(err.Error())
		}
		return
	}

	if logger.Enabled(log.LevelDebug) {
		before := sel.Ranges()
		for i, r := range out.Ranges() {
			logger.Debug("range %d: %s -> %s", i, before[i], r)
		}
	}

	if out.Changed(sel) {
		e.dispatch(req.Op, out)
		return
	}
	if !kind.IsLiteral() {
		return
	}
	if next, ok := e.searchForward(ctx, kind.Char, req, sel); ok {
		logger.Debug("found pair after forward search")
		e.dispatch(req.Op, next)
	}
}

// transform maps every range through f. Large selections are resolved
// concurrently; the result keeps one range per input range, in order.
func (e *Editor) transform(sel cursor.Selection, f func(cursor.Range) (cursor.Range, error)) (cursor.Selection, error) {
	threshold := e.Config().ParallelThreshold
	if threshold <= 0 || sel.Len() < threshold {
		return sel.TransformErr(f)
	}

	in := sel.Ranges()
	out := make([]cursor.Range, len(in))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range in {
		g.Go(func() error {
			nr, err := f(r)
			if err != nil {
				return err
			}
			out[i] = nr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sel, err
	}
	return cursor.NewMulti(out, sel.PrimaryIndex())
}

// searchForward moves every range to the next occurrence of ch and retries
// the pair match from there. Quote searches require two quotes on the
// cursor line of every range. Ranges whose retry fails keep their original
// value; ok is false when no range found a pair.
func (e *Editor) searchForward(ctx textobject.Context, ch rune, req Request, sel cursor.Selection) (cursor.Selection, bool) {
	t := ctx.Text
	quote := surround.IsQuote(ch)
	if quote {
		for _, r := range sel.Ranges() {
			if t.CountInLine(t.CharToLine(r.Cursor()), ch) < 2 {
				return sel, false
			}
		}
	}

	found := false
	out := sel.Transform(func(r cursor.Range) cursor.Range {
		cur := r.Cursor()
		pos, ok := t.FindNextChar(ch, cur, 1, true)
		if !ok {
			return r
		}
		moved := cursor.NewRange(cur, t.NextGraphemeBoundary(pos))
		if quote {
			moved = moved.Shift(1)
		}
		next, ok := textobject.MatchPair(ctx, ch, req.Span, req.Count, moved)
		if !ok {
			return r
		}
		found = true
		return next
	})
	return out, found
}

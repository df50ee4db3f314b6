package textobject

import (
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
)

// resolveParagraph selects count paragraphs starting with the one under
// the cursor. Paragraphs are runs of non-blank lines. Inside stops at the
// last paragraph; Around also takes the blank lines after it, or the blank
// lines before the first paragraph when none follow.
//
// On a blank line, Inside selects the blank run and Around extends it over
// the count paragraphs that follow.
func resolveParagraph(ctx Context, _ Kind, span Span, count int, r cursor.Range) (cursor.Range, error) {
	t := ctx.Text
	lines := t.LineCount()
	line := t.CharToLine(r.Cursor())

	blank := t.IsBlankLine(line)
	start := runStart(t, line, blank)
	end := line

	if blank {
		end = runEnd(t, line, true, lines)
		if span == Around {
			for i := 0; i < count && end < lines; i++ {
				end = runEnd(t, end, false, lines)
				if i+1 < count {
					end = runEnd(t, end, true, lines)
				}
			}
		}
		return lineRange(t, start, end), nil
	}

	for i := 0; i < count && end < lines; i++ {
		if i > 0 {
			end = runEnd(t, end, true, lines)
		}
		end = runEnd(t, end, false, lines)
	}
	if span == Inside {
		return lineRange(t, start, end), nil
	}

	if trailing := runEnd(t, end, true, lines); trailing > end {
		return lineRange(t, start, trailing), nil
	}
	return lineRange(t, runStart(t, start-1, true), end), nil
}

// runStart returns the first line of the run of lines with the given
// blankness that ends at line. It returns line+1 when line itself does not
// match.
func runStart(t *text.Text, line int, blank bool) int {
	for line >= 0 && t.IsBlankLine(line) == blank {
		line--
	}
	return line + 1
}

// runEnd returns the line after the run of lines with the given blankness
// starting at line.
func runEnd(t *text.Text, line int, blank bool, lines int) int {
	for line < lines && t.IsBlankLine(line) == blank {
		line++
	}
	return line
}

func lineRange(t *text.Text, start, end int) cursor.Range {
	return cursor.NewRange(t.LineToChar(start), t.LineToChar(end))
}

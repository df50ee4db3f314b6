package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/input/mode"
)

// TabWidth is the number of columns a tab occupies.
const TabWidth = 4

// Styles are the styles used for drawing.
type Styles struct {
	Text      tcell.Style
	Selection tcell.Style
	Cursor    tcell.Style
	Status    tcell.Style
	Error     tcell.Style
	Overlay   tcell.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
		Cursor:    tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
		Status:    tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		Error:     tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorRed).Bold(true),
		Overlay:   tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite),
	}
}

// Draw renders the document, status line and help overlay.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	textHeight := h - 1

	t := a.editor.Current().Text()
	sel := a.editor.Selection()
	a.scrollTo(t.CharToLine(sel.Primary().Cursor()), textHeight)

	cx, cy := -1, -1
	for row := 0; row < textHeight; row++ {
		line := a.top + row
		if line >= t.LineCount() {
			break
		}
		if x, ok := a.drawLine(t, sel, line, row, w); ok {
			cx, cy = x, row
		}
	}

	a.drawStatus(w, h-1)
	a.drawOverlay(w, textHeight)

	if cx >= 0 {
		a.screen.ShowCursor(cx, cy)
		if a.editor.Mode().CursorStyle() == mode.CursorBar {
			a.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
		} else {
			a.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		}
	} else {
		a.screen.HideCursor()
	}
	a.screen.Show()
}

// scrollTo adjusts the first visible line so line is on screen.
func (a *App) scrollTo(line, height int) {
	if height <= 0 {
		return
	}
	if line < a.top {
		a.top = line
	}
	if line >= a.top+height {
		a.top = line - height + 1
	}
}

// drawLine draws one document line at screen row y. It reports the column
// of the primary cursor when it lies on this line.
func (a *App) drawLine(t *text.Text, sel cursor.Selection, line, y, width int) (int, bool) {
	start, end, _ := t.LineBounds(line)
	primary := sel.Primary().Cursor()
	ranges := sel.Ranges()

	cursorX, found := -1, false
	x := 0
	for pos := start; pos <= end && x < width; pos++ {
		if pos == end && (pos < t.Len() || pos != primary) {
			break
		}
		ch, _ := t.Char(pos)
		style := a.styles.Text
		if selected(ranges, pos) {
			style = a.styles.Selection
		}
		if isCursor(ranges, pos) {
			style = a.styles.Cursor
		}
		if pos == primary {
			cursorX, found = x, true
		}

		r, n := glyph(ch, x)
		for i := 0; i < n && x < width; i++ {
			a.screen.SetContent(x, y, r, nil, style)
			x += max(runewidth.RuneWidth(r), 1)
		}
	}
	return cursorX, found
}

// glyph returns the rune drawn for ch and how many cells it repeats over.
func glyph(ch rune, x int) (rune, int) {
	switch {
	case ch == '\t':
		return ' ', TabWidth - x%TabWidth
	case ch == 0 || text.IsLineEnding(ch):
		return ' ', 1
	default:
		return ch, 1
	}
}

func selected(ranges []cursor.Range, pos int) bool {
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

func isCursor(ranges []cursor.Range, pos int) bool {
	for _, r := range ranges {
		if r.Cursor() == pos {
			return true
		}
	}
	return false
}

// drawStatus draws the mode, document name, pending keys and message.
func (a *App) drawStatus(width, y int) {
	style := a.styles.Status
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}

	x := a.drawText(0, y, width, " "+a.editor.Mode().DisplayName()+" ", style.Bold(true))
	x = a.drawText(x, y, width, " "+a.documentName(), style)

	if st, ok := a.editor.Status(); ok {
		msgStyle := style
		if st.Severity == editor.SeverityError {
			msgStyle = a.styles.Error
		}
		x = a.drawText(x, y, width, "  "+st.Message, msgStyle)
	}

	if pending := a.input.PendingKeys(); pending != "" {
		pw := runewidth.StringWidth(pending)
		a.drawText(max(width-pw-1, x+1), y, width, pending, style)
	}
}

func (a *App) documentName() string {
	if dir, ok := a.editor.ListingDir(); ok {
		return dir + "/"
	}
	if path, ok := a.editor.Current().Path(); ok {
		return path
	}
	return "[scratch]"
}

// drawOverlay draws the help overlay in the bottom right of the text area.
func (a *App) drawOverlay(width, height int) {
	info, ok := a.editor.Autoinfo()
	if !ok {
		return
	}
	lines := info.Truncate(max(width-2, 1))
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 2
	top := max(height-len(lines), 0)
	left := max(width-boxW, 0)

	for i, l := range lines {
		y := top + i
		if y >= height {
			break
		}
		for x := left; x < width; x++ {
			a.screen.SetContent(x, y, ' ', nil, a.styles.Overlay)
		}
		style := a.styles.Overlay
		if i == 0 {
			style = style.Bold(true)
		}
		a.drawText(left+1, y, width, l, style)
	}
}

// drawText draws s from column x, clipped at width, and returns the
// column after the last cell written.
func (a *App) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

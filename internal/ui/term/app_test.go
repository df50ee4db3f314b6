package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/input/mode"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newApp(t *testing.T, content string, w, h int, bindings ...*keymap.Keymap) (*App, tcell.SimulationScreen) {
	t.Helper()
	reg := keymap.NewRegistry()
	require.NoError(t, keymap.LoadDefaults(reg))
	for _, km := range bindings {
		require.NoError(t, reg.Register(km))
	}
	ed := editor.New()
	ed.OpenBuffer(content)
	s := newScreen(t, w, h)
	return New(s, ed, reg), s
}

func feed(t *testing.T, a *App, seq string) {
	t.Helper()
	evs, err := key.ParseSequence(seq)
	require.NoError(t, err)
	for _, ev := range evs {
		a.HandleKey(ev)
	}
}

func row(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func styleAt(s tcell.SimulationScreen, x, y int) tcell.Style {
	_, _, style, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return style
}

func screenText(s tcell.SimulationScreen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = row(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestDrawDocument(t *testing.T) {
	a, s := newApp(t, "hello\nworld", 30, 5)
	a.Draw()

	assert.Equal(t, "hello", row(s, 0))
	assert.Equal(t, "world", row(s, 1))
	assert.Equal(t, "", row(s, 2))
	status := row(s, 4)
	assert.Contains(t, status, "NOR")
	assert.Contains(t, status, "[scratch]")
	assert.Equal(t, a.styles.Cursor, styleAt(s, 0, 0))
}

func TestSelectInsidePair(t *testing.T) {
	a, s := newApp(t, "(foo bar)", 30, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(2)))

	feed(t, a, "mi(")
	assert.Equal(t, mode.Select, a.Editor().Mode())
	assert.Equal(t, cursor.NewRange(1, 8), a.Editor().Selection().Primary())

	a.Draw()
	assert.Contains(t, row(s, 4), "SEL")
	assert.Equal(t, a.styles.Text, styleAt(s, 0, 0))
	assert.Equal(t, a.styles.Selection, styleAt(s, 1, 0))
	assert.Equal(t, a.styles.Cursor, styleAt(s, 7, 0))
	assert.Equal(t, a.styles.Text, styleAt(s, 8, 0))
}

func TestHelpOverlayWhilePending(t *testing.T) {
	a, s := newApp(t, "(foo)", 60, 20)

	feed(t, a, "mi")
	_, pending := a.Editor().Pending()
	require.True(t, pending)

	a.Draw()
	out := screenText(s)
	assert.Contains(t, out, "Match inside")
	assert.Contains(t, out, "Closest surrounding pair")
	assert.Contains(t, row(s, 19), "select inside")

	feed(t, a, "<Esc>")
	_, pending = a.Editor().Pending()
	assert.True(t, pending, "escape does not cancel the request")

	feed(t, a, "(")
	a.Draw()
	assert.NotContains(t, screenText(s), "Match inside")
}

func TestPendingKeysOnStatusLine(t *testing.T) {
	a, s := newApp(t, "text", 30, 5)

	feed(t, a, "2d")
	assert.Equal(t, "2d", a.PendingKeys())
	a.Draw()
	assert.True(t, strings.HasSuffix(row(s, 4), "2d"), row(s, 4))
}

func TestDeleteInsidePair(t *testing.T) {
	a, s := newApp(t, "x (foo) y", 30, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(4)))

	feed(t, a, "di(")
	a.Draw()
	assert.Equal(t, "x () y", row(s, 0))
	assert.Equal(t, mode.Normal, a.Editor().Mode())
}

func TestChangeThenType(t *testing.T) {
	a, s := newApp(t, "x (foo) y", 30, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(4)))

	feed(t, a, "ci(")
	assert.Equal(t, mode.Insert, a.Editor().Mode())
	feed(t, a, "bar")
	a.Draw()
	assert.Contains(t, row(s, 4), "INS")

	feed(t, a, "<Esc>")
	a.Draw()
	assert.Equal(t, "x (bar) y", row(s, 0))
	assert.Equal(t, mode.Normal, a.Editor().Mode())
}

func TestInsertSpecialKeys(t *testing.T) {
	a, s := newApp(t, "ab", 30, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(1)))
	a.Editor().Modes().Switch(mode.Insert)

	feed(t, a, "<Enter><Tab>")
	a.Draw()
	assert.Equal(t, "a\n\tb", a.Editor().Current().Text().String())
	assert.Equal(t, "a", row(s, 0))
	assert.Equal(t, "    b", row(s, 1))
}

func TestStatusClearedOnNextKey(t *testing.T) {
	a, s := newApp(t, "x (foo) y", 60, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(4)))

	feed(t, a, "yi(")
	a.Draw()
	assert.Contains(t, row(s, 4), "yanked 1 selection(s)")

	feed(t, a, "l")
	a.Draw()
	assert.NotContains(t, row(s, 4), "yanked")
}

func TestUnknownCommand(t *testing.T) {
	custom := keymap.New(mode.Normal).Add("Z", "explode", "")
	a, s := newApp(t, "text", 60, 5, custom)

	feed(t, a, "Z")
	st, ok := a.Editor().Status()
	require.True(t, ok)
	assert.Equal(t, editor.SeverityError, st.Severity)

	a.Draw()
	assert.Contains(t, row(s, 4), `unknown command "explode"`)
	assert.Equal(t, a.styles.Error, styleAt(s, strings.Index(row(s, 4), "unknown"), 4))
}

func TestScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i)
	}
	a, s := newApp(t, strings.Join(lines, "\n"), 20, 5)

	feed(t, a, "10j")
	a.Draw()
	assert.Equal(t, "l7", row(s, 0))
	assert.Equal(t, "l10", row(s, 3))

	feed(t, a, "9k")
	a.Draw()
	assert.Equal(t, "l1", row(s, 0))
}

func TestQuitKeys(t *testing.T) {
	for _, r := range []rune{'q', 'c'} {
		a, _ := newApp(t, "", 10, 3)
		assert.False(t, a.Quit())
		a.HandleKey(key.NewRuneEvent(r, key.ModCtrl))
		assert.True(t, a.Quit())
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		ch   rune
		x    int
		want rune
		n    int
	}{
		{'a', 0, 'a', 1},
		{'\t', 0, ' ', TabWidth},
		{'\t', 1, ' ', TabWidth - 1},
		{'\n', 3, ' ', 1},
		{0, 0, ' ', 1},
	}
	for _, tt := range tests {
		r, n := glyph(tt.ch, tt.x)
		assert.Equal(t, tt.want, r, "%q", tt.ch)
		assert.Equal(t, tt.n, n, "%q", tt.ch)
	}
}

func TestRunHandlesInjectedKeys(t *testing.T) {
	a, s := newApp(t, "(foo)", 30, 5)
	a.Editor().SetSelection(cursor.NewSelection(cursor.Point(2)))

	for _, r := range "mi(" {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, cursor.NewRange(1, 4), a.Editor().Selection().Primary())
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newApp(t, "text", 30, 5)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/input/mode"
)

func newHandler(t *testing.T, content string, cursorAt int, extra ...*keymap.Keymap) *Handler {
	t.Helper()
	reg := keymap.NewRegistry()
	require.NoError(t, keymap.LoadDefaults(reg))
	for _, km := range extra {
		require.NoError(t, reg.Register(km))
	}
	ed := editor.New()
	ed.OpenBuffer(content)
	ed.SetSelection(cursor.NewSelection(cursor.Point(cursorAt)))
	return NewHandler(ed, reg)
}

func text(h *Handler) string {
	return h.Editor().Current().Text().String()
}

func TestKeySequenceOutcomes(t *testing.T) {
	h := newHandler(t, "x (foo) y", 4)

	steps := []struct {
		key  rune
		want Outcome
	}{
		{'d', Pending},
		{'i', Executed},
		{'(', Consumed},
	}
	for _, s := range steps {
		res := h.HandleKeyEvent(key.NewRuneEvent(s.key, key.ModNone))
		assert.Equal(t, s.want, res.Outcome, "key %q", s.key)
	}
	assert.Equal(t, "x () y", text(h))
	assert.True(t, h.Idle())
}

func TestExecutedResultCarriesCount(t *testing.T) {
	h := newHandler(t, "abcdef", 0)

	require.NoError(t, h.Feed("3"))
	res := h.HandleKeyEvent(key.NewRuneEvent('l', key.ModNone))
	assert.Equal(t, Result{Outcome: Executed, Command: "move_char_right", Count: 3}, res)
	assert.Equal(t, cursor.Point(3), h.Editor().Selection().Primary())
}

func TestPendingKeys(t *testing.T) {
	h := newHandler(t, "(a)", 1)

	require.NoError(t, h.Feed("1"))
	assert.Equal(t, "1", h.PendingKeys())
	require.NoError(t, h.Feed("2m"))
	assert.Equal(t, "12m", h.PendingKeys())
	assert.False(t, h.Idle())

	require.NoError(t, h.Feed("a"))
	assert.Equal(t, "select around", h.PendingKeys())
	req, ok := h.Editor().Pending()
	require.True(t, ok)
	assert.Equal(t, 12, req.Count)

	h.Editor().CancelPending()
	assert.True(t, h.Idle())
	assert.Equal(t, "", h.PendingKeys())
}

func TestResetDropsTypedKeys(t *testing.T) {
	h := newHandler(t, "text", 0)
	require.NoError(t, h.Feed("5d"))
	h.Reset()
	assert.True(t, h.Idle())
}

func TestUnboundKeyIgnored(t *testing.T) {
	h := newHandler(t, "text", 0)
	res := h.HandleKeyEvent(key.NewRuneEvent('Q', key.ModNone))
	assert.Equal(t, Ignored, res.Outcome)
	assert.Equal(t, "text", text(h))
}

func TestUnknownCommandFails(t *testing.T) {
	custom := keymap.New(mode.Normal).Add("Z", "explode", "")
	h := newHandler(t, "text", 0, custom)

	res := h.HandleKeyEvent(key.NewRuneEvent('Z', key.ModNone))
	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, "explode", res.Command)
	st, ok := h.Editor().Status()
	require.True(t, ok)
	assert.Equal(t, editor.SeverityError, st.Severity)
	assert.Equal(t, `unknown command "explode"`, st.Message)
}

func TestInsertMode(t *testing.T) {
	h := newHandler(t, "x (foo) y", 4)

	require.NoError(t, h.Feed("ci("))
	assert.Equal(t, mode.Insert, h.Editor().Mode())

	for _, r := range "a1" {
		res := h.HandleKeyEvent(key.NewRuneEvent(r, key.ModNone))
		assert.Equal(t, Inserted, res.Outcome)
	}
	require.NoError(t, h.Feed("<Enter><Tab><Left>"))
	assert.Equal(t, "x (a1\n\t) y", text(h))

	res := h.HandleKeyEvent(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	assert.Equal(t, Executed, res.Outcome)
	assert.Equal(t, mode.Normal, h.Editor().Mode())
}

func TestFeedRejectsMalformedSequence(t *testing.T) {
	h := newHandler(t, "text", 0)
	assert.ErrorIs(t, h.Feed("<Esc"), key.ErrUnmatchedBracket)
}

type recordingHook struct {
	consume rune
	seen    []Outcome
}

func (r *recordingHook) PreKeyEvent(ev key.Event) bool {
	return ev.Rune == r.consume
}

func (r *recordingHook) PostKeyEvent(_ key.Event, res Result) {
	r.seen = append(r.seen, res.Outcome)
}

func TestHooks(t *testing.T) {
	h := newHandler(t, "abc", 0)
	hook := &recordingHook{consume: 'l'}
	h.AddHook(hook)

	res := h.HandleKeyEvent(key.NewRuneEvent('l', key.ModNone))
	assert.Equal(t, Consumed, res.Outcome)
	assert.Equal(t, cursor.Point(0), h.Editor().Selection().Primary(), "hook swallowed the move")

	require.NoError(t, h.Feed("mi"))
	assert.Equal(t, []Outcome{Pending, Executed}, hook.seen)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "executed", Executed.String())
	assert.Equal(t, "ignored", Outcome(99).String())
}

package key

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEventChar(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want rune
		ok   bool
	}{
		{"letter", NewRuneEvent('m', ModNone), 'm', true},
		{"shifted letter", NewRuneEvent('M', ModShift), 'M', true},
		{"punctuation", NewRuneEvent('(', ModNone), '(', true},
		{"ctrl letter", NewRuneEvent('w', ModCtrl), 0, false},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), 0, false},
		{"arrow", NewSpecialEvent(KeyLeft, ModNone), 0, false},
		{"control rune", NewRuneEvent('\x01', ModNone), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.ev.Char()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: Char() = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('s', ModCtrl), "<C-s>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyLeft, ModShift), "<S-Left>"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"<", NewRuneEvent('<', ModNone)},
		{"Esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<C-s>", NewRuneEvent('s', ModCtrl)},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"Alt+Left", NewSpecialEvent(KeyLeft, ModAlt)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
		}
	}

	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySpec", err)
	}
	if _, err := Parse("<X-a>"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Parse(<X-a>) error = %v, want ErrInvalidSpec", err)
	}
}

func TestParseSequence(t *testing.T) {
	events, err := ParseSequence("mi(<Esc>ma\"")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := []Event{
		NewRuneEvent('m', ModNone),
		NewRuneEvent('i', ModNone),
		NewRuneEvent('(', ModNone),
		NewSpecialEvent(KeyEscape, ModNone),
		NewRuneEvent('m', ModNone),
		NewRuneEvent('a', ModNone),
		NewRuneEvent('"', ModNone),
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, events[i], want[i])
		}
	}

	if _, err := ParseSequence("a<Esc"); !errors.Is(err, ErrUnmatchedBracket) {
		t.Errorf("error = %v, want ErrUnmatchedBracket", err)
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), NewRuneEvent('w', ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), NewSpecialEvent(KeyEscape, ModNone)},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), NewSpecialEvent(KeyLeft, ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), NewRuneEvent('x', ModAlt)},
	}
	for _, tt := range tests {
		if got := FromTcell(tt.ev); got != tt.want {
			t.Errorf("%s: FromTcell = %#v, want %#v", tt.name, got, tt.want)
		}
	}

	ctrl := FromTcell(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	if ctrl.Rune != 'w' || !ctrl.Modifiers.Has(ModCtrl) {
		t.Errorf("ctrl-w = %#v", ctrl)
	}
}

func TestTcellRoundTrip(t *testing.T) {
	for _, ev := range []Event{
		NewRuneEvent('"', ModNone),
		NewSpecialEvent(KeyRight, ModNone),
		NewSpecialEvent(KeyEnter, ModNone),
	} {
		if got := FromTcell(ToTcell(ev)); got != ev {
			t.Errorf("round trip of %#v = %#v", ev, got)
		}
	}
}

package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "(", "\""
//   - Special keys: "Enter", "Esc", "Tab", "BS", "Left"
//   - With modifiers: "Ctrl+S", "Alt+Left"
//   - Vim-style: "<C-s>", "<Esc>", "<Space>", "<lt>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return NewRuneEvent(r, ModNone), nil
	}
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"))
	}
	if strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"))
	}
	return parseName(spec, ModNone)
}

// ParseSequence splits a key sequence such as `mi(<Esc>dw` into events.
// Bracketed tokens are parsed with Parse; every other character is a key.
func ParseSequence(seq string) ([]Event, error) {
	var events []Event
	for len(seq) > 0 {
		if seq[0] == '<' {
			end := strings.IndexByte(seq, '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, seq)
			}
			ev, err := Parse(seq[:end+1])
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			seq = seq[end+1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(seq)
		events = append(events, NewRuneEvent(r, ModNone))
		seq = seq[size:]
	}
	return events, nil
}

func parseParts(parts []string) (Event, error) {
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Event{}, ErrInvalidSpec
	}
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c", "ctrl", "control":
			mods = mods.With(ModCtrl)
		case "a", "alt":
			mods = mods.With(ModAlt)
		case "s", "shift":
			mods = mods.With(ModShift)
		case "m", "d", "meta", "cmd":
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseName(parts[len(parts)-1], mods)
}

func parseName(name string, mods Modifier) (Event, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if mods.Has(ModCtrl) && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return NewRuneEvent(r, mods), nil
	}
	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

package key

import "github.com/gdamore/tcell/v2"

var fromTcellKey = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
}

var toTcellKey = map[Key]tcell.Key{
	KeyRune:      tcell.KeyRune,
	KeyEscape:    tcell.KeyEscape,
	KeyEnter:     tcell.KeyEnter,
	KeyTab:       tcell.KeyTab,
	KeyBackspace: tcell.KeyBackspace2,
	KeyDelete:    tcell.KeyDelete,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyPageUp:    tcell.KeyPgUp,
	KeyPageDown:  tcell.KeyPgDn,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
}

// FromTcell converts a terminal key event. Control-letter keys become
// Ctrl-modified character events; unknown keys map to KeyNone.
func FromTcell(ev *tcell.EventKey) Event {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && k != tcell.KeyTab && k != tcell.KeyEnter && k != tcell.KeyBackspace {
		return NewRuneEvent(rune('a'+int(k-tcell.KeyCtrlA)), mods.With(ModCtrl))
	}
	if ours, ok := fromTcellKey[k]; ok {
		if ours == KeyRune {
			return NewRuneEvent(ev.Rune(), mods)
		}
		return NewSpecialEvent(ours, mods)
	}
	return Event{Key: KeyNone, Modifiers: mods}
}

// ToTcell converts an event back into a terminal key event, for feeding
// simulated screens.
func ToTcell(e Event) *tcell.EventKey {
	k, ok := toTcellKey[e.Key]
	if !ok {
		k = tcell.KeyNUL
	}
	return tcell.NewEventKey(k, e.Rune, convertToTcellMod(e.Modifiers))
}

func convertMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

func convertToTcellMod(m Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}

// Package key provides the key event model consumed by the editor.
//
// An Event is either a character key (Key == KeyRune with Rune set) or a
// special key such as Escape or an arrow. Only unmodified character keys
// carry an object code for a pending text-object request; see Event.Char.
//
// Events are produced from terminal input with FromTcell, or from key
// notation with Parse and ParseSequence:
//
//	"a", "Esc", "Ctrl+S", "<C-s>", "<Left>", "mi("
package key

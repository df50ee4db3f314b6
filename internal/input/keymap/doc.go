// Package keymap maps key sequences to editor command names per mode.
//
// A Keymap holds the bindings of one mode. Key sequences use the notation
// of key.ParseSequence:
//
//	"mi"      m followed by i
//	"<C-d>"   Ctrl+D
//	"<Esc>"   Escape
//
// A Registry combines keymaps, and a Matcher feeds it one key at a time,
// accumulating a numeric count prefix and reporting whether the keys so
// far are a complete binding, a prefix of one, or unbound:
//
//	m := keymap.NewMatcher(registry)
//	res := m.Feed(mode.Normal, ev)
//	if res.Status == keymap.Matched {
//	    // run res.Command with res.Count
//	}
package keymap

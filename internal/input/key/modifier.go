package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

// Modifier keys. ModNone is the empty set.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// modifierNames lists modifiers in the order they are written in key
// sequences, e.g. "C-A-x".
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "C"},
	{ModAlt, "A"},
	{ModMeta, "M"},
	{ModShift, "S"},
}

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the prefix notation, e.g. "C-A".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "-")
}

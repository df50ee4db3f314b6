package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/textobj/internal/input/mode"
)

// Keymap holds the bindings of one mode.
type Keymap struct {
	// Mode is the mode this keymap applies to.
	Mode mode.Mode

	// Bindings are the key-to-command mappings. Later bindings for the
	// same keys win.
	Bindings []Binding
}

// New creates an empty keymap for m.
func New(m mode.Mode) *Keymap {
	return &Keymap{Mode: m}
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, command, description string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, command).WithDescription(description))
	return k
}

// Validate checks that every binding parses and, when known is non-nil,
// names a known command.
func (k *Keymap) Validate(known func(string) bool) error {
	var errs []error
	for i, b := range k.Bindings {
		if _, err := parseBinding(b); err != nil {
			errs = append(errs, fmt.Errorf("%s binding %d: %w", k.Mode, i, err))
			continue
		}
		if known != nil && !known(b.Command) {
			errs = append(errs, fmt.Errorf("%s binding %s: unknown command %q", k.Mode, b.Keys, b.Command))
		}
	}
	return errors.Join(errs...)
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	return &Keymap{Mode: k.Mode, Bindings: append([]Binding(nil), k.Bindings...)}
}

// FromTable builds keymaps from a mode-name to keys-to-command table, as
// found in configuration files.
func FromTable(table map[string]map[string]string) ([]*Keymap, error) {
	var out []*Keymap
	for name, keys := range table {
		m, err := mode.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		km := New(m)
		for _, seq := range sortedKeys(keys) {
			km.Add(seq, keys[seq], "")
		}
		out = append(out, km)
	}
	sortKeymaps(out)
	return out, nil
}

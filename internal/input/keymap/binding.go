package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/textobj/internal/input/key"
)

// Binding maps a key sequence to a command name.
type Binding struct {
	// Keys is the key sequence, e.g. "mi" or "<C-d>".
	Keys string `toml:"keys" yaml:"keys"`

	// Command is the editor command to run.
	Command string `toml:"command" yaml:"command"`

	// Description documents the binding.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// NewBinding creates a binding.
func NewBinding(keys, command string) Binding {
	return Binding{Keys: keys, Command: command}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// parsedBinding is a binding with its sequence in canonical form.
type parsedBinding struct {
	Binding
	seq []string
}

func parseBinding(b Binding) (parsedBinding, error) {
	if b.Keys == "" {
		return parsedBinding{}, fmt.Errorf("empty keys for %q", b.Command)
	}
	if b.Command == "" {
		return parsedBinding{}, fmt.Errorf("binding %s: empty command", b.Keys)
	}
	events, err := key.ParseSequence(b.Keys)
	if err != nil {
		return parsedBinding{}, fmt.Errorf("binding %s: %w", b.Keys, err)
	}
	return parsedBinding{Binding: b, seq: canonical(events)}, nil
}

// canonical renders events so that equal keys compare equal.
func canonical(events []key.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.String()
	}
	return out
}

func seqKey(seq []string) string {
	return strings.Join(seq, "\x00")
}

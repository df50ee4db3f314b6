package keymap

import (
	"strconv"
	"strings"

	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/mode"
)

// Result is the outcome of feeding one key to a Matcher.
type Result struct {
	Status  Status
	Command string
	// Count is the count prefix, 1 when none was typed.
	Count int
}

// Matcher accumulates keys until they form a binding. It is not safe for
// concurrent use.
type Matcher struct {
	registry *Registry
	count    CountState
	keys     []key.Event
}

// NewMatcher creates a matcher over r.
func NewMatcher(r *Registry) *Matcher {
	return &Matcher{registry: r}
}

// Feed adds ev to the keys typed so far in mode md. Digits typed before any
// other key of a sequence accumulate the count, except in insert mode.
// Matched and Unbound results reset the matcher.
func (m *Matcher) Feed(md mode.Mode, ev key.Event) Result {
	if ch, ok := ev.Char(); ok && len(m.keys) == 0 && md != mode.Insert && m.count.AccumulateDigit(ch) {
		return Result{Status: Partial, Count: m.count.Get()}
	}

	m.keys = append(m.keys, ev)
	b, status := m.registry.Lookup(md, m.keys)
	res := Result{Status: status, Command: b.Command, Count: m.count.Get()}
	if status != Partial {
		m.Reset()
	}
	return res
}

// Reset drops typed keys and the count.
func (m *Matcher) Reset() {
	m.keys = m.keys[:0]
	m.count.Reset()
}

// Pending renders the count and keys typed so far, e.g. "2d".
func (m *Matcher) Pending() string {
	var sb strings.Builder
	if m.count.Active {
		sb.WriteString(strconv.Itoa(m.count.Value))
	}
	for _, ev := range m.keys {
		sb.WriteString(ev.String())
	}
	return sb.String()
}

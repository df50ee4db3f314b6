package keymap

import (
	"sort"
	"sync"

	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/mode"
)

// Status is the outcome of looking up a key sequence.
type Status uint8

const (
	// Unbound means no binding starts with the sequence.
	Unbound Status = iota
	// Partial means the sequence is a proper prefix of a binding.
	Partial
	// Matched means the sequence is bound.
	Matched
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case Partial:
		return "partial"
	case Matched:
		return "matched"
	default:
		return "unbound"
	}
}

// modeBindings indexes the bindings of one mode.
type modeBindings struct {
	exact    map[string]Binding
	prefixes map[string]int
}

func newModeBindings() *modeBindings {
	return &modeBindings{exact: make(map[string]Binding), prefixes: make(map[string]int)}
}

func (mb *modeBindings) add(pb parsedBinding) {
	k := seqKey(pb.seq)
	if _, ok := mb.exact[k]; !ok {
		for i := 1; i < len(pb.seq); i++ {
			mb.prefixes[seqKey(pb.seq[:i])]++
		}
	}
	mb.exact[k] = pb.Binding
}

// Registry holds the keymaps of every mode. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	modes map[mode.Mode]*modeBindings
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modes: make(map[mode.Mode]*modeBindings)}
}

// Register adds the bindings of km, replacing bindings with equal keys.
// Nothing is registered when any binding fails to parse.
func (r *Registry) Register(km *Keymap) error {
	if err := km.Validate(nil); err != nil {
		return err
	}
	parsed := make([]parsedBinding, len(km.Bindings))
	for i, b := range km.Bindings {
		parsed[i], _ = parseBinding(b)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	mb, ok := r.modes[km.Mode]
	if !ok {
		mb = newModeBindings()
		r.modes[km.Mode] = mb
	}
	for _, pb := range parsed {
		mb.add(pb)
	}
	return nil
}

// Lookup reports how the key sequence relates to the bindings of m. A
// sequence that is both bound and a prefix of a longer binding is Partial.
func (r *Registry) Lookup(m mode.Mode, seq []key.Event) (Binding, Status) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mb, ok := r.modes[m]
	if !ok || len(seq) == 0 {
		return Binding{}, Unbound
	}
	k := seqKey(canonical(seq))
	if mb.prefixes[k] > 0 {
		return Binding{}, Partial
	}
	if b, ok := mb.exact[k]; ok {
		return b, Matched
	}
	return Binding{}, Unbound
}

// Bindings returns the bindings of m sorted by keys.
func (r *Registry) Bindings(m mode.Mode) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mb, ok := r.modes[m]
	if !ok {
		return nil
	}
	out := make([]Binding, 0, len(mb.exact))
	for _, b := range mb.exact {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortKeymaps(kms []*Keymap) {
	sort.Slice(kms, func(i, j int) bool { return kms[i].Mode < kms[j].Mode })
}

// Package register stores text captured by yank and delete operations.
//
// Register names follow the vim convention used by the editor:
//
//	"      unnamed, the default target
//	a-z    named registers; A-Z appends to the lowercase register
//	0      last yank
//	_      black hole, discards everything
//
// A register value holds one string per selection range.
package register

import (
	"slices"
	"sync"
	"unicode"
)

// Well-known register names.
const (
	Unnamed   = '"'
	LastYank  = '0'
	BlackHole = '_'
)

// Type categorizes registers by their behavior.
type Type uint8

const (
	// TypeInvalid is returned for names that are not registers.
	TypeInvalid Type = iota
	// TypeUnnamed is the default register (").
	TypeUnnamed
	// TypeNamed is a named register (a-z, A-Z).
	TypeNamed
	// TypeLastYank is the yank register (0).
	TypeLastYank
	// TypeBlackHole is the black hole register (_).
	TypeBlackHole
)

// TypeOf returns the type of register for a given name.
func TypeOf(name rune) Type {
	switch {
	case name == Unnamed:
		return TypeUnnamed
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		return TypeNamed
	case name == LastYank:
		return TypeLastYank
	case name == BlackHole:
		return TypeBlackHole
	default:
		return TypeInvalid
	}
}

// IsValid returns true if the register name is valid.
func IsValid(name rune) bool {
	return TypeOf(name) != TypeInvalid
}

// Store manages all registers. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[rune][]string
}

// NewStore creates an empty register store.
func NewStore() *Store {
	return &Store{values: make(map[rune][]string)}
}

// Get returns a copy of the register's values.
// Uppercase names read the lowercase register.
func (s *Store) Get(name rune) ([]string, bool) {
	if TypeOf(name) == TypeNamed {
		name = unicode.ToLower(name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Set stores values in a register. Writing an uppercase named register
// appends to its lowercase counterpart. Unknown names and the black hole
// register discard the write and return false.
func (s *Store) Set(name rune, values []string) bool {
	typ := TypeOf(name)
	if typ == TypeInvalid || typ == TypeBlackHole {
		return false
	}

	appendMode := false
	if typ == TypeNamed && unicode.IsUpper(name) {
		name = unicode.ToLower(name)
		appendMode = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if appendMode {
		s.values[name] = append(s.values[name], values...)
	} else {
		s.values[name] = slices.Clone(values)
	}
	return true
}

// Yank stores yanked text in the target register, and in register 0 when
// the target is the unnamed register.
func (s *Store) Yank(name rune, values []string) bool {
	if !s.Set(name, values) {
		return false
	}
	if name == Unnamed {
		s.Set(LastYank, values)
	}
	return true
}

// Clear removes every register's content.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.values)
}

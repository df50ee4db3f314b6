package mode

import "sync"

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current mode and coordinates transitions.
type Manager struct {
	mu        sync.RWMutex
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Is reports whether the current mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.Current() == mode
}

// Switch changes to mode. Callbacks run outside the lock and only when the
// mode actually changes.
func (m *Manager) Switch(mode Mode) {
	m.mu.Lock()
	old := m.current
	if old == mode {
		m.mu.Unlock()
		return
	}
	m.previous = old
	m.current = mode
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(old, mode)
	}
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

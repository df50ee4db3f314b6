package git

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultBaselineTTL is how long a HEAD version stays cached.
const DefaultBaselineTTL = 30 * time.Second

// Manager finds the repository of a file and serves HEAD versions of
// files. Repositories are kept open by root path and baselines are cached
// by absolute file path.
type Manager struct {
	mu        sync.Mutex
	repos     map[string]*Repository
	baselines *gocache.Cache
	closed    atomic.Bool
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	ttl time.Duration
}

// WithBaselineTTL sets how long baselines are reused. Zero or negative
// disables caching.
func WithBaselineTTL(d time.Duration) Option {
	return func(o *managerOptions) {
		o.ttl = d
	}
}

// NewManager creates a Manager.
func NewManager(opts ...Option) *Manager {
	o := managerOptions{ttl: DefaultBaselineTTL}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Manager{repos: make(map[string]*Repository)}
	if o.ttl > 0 {
		m.baselines = gocache.New(o.ttl, 2*o.ttl)
	}
	return m
}

// Open opens the repository rooted at path.
func (m *Manager) Open(path string) (*Repository, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if repo, ok := m.repos[path]; ok {
		return repo, nil
	}
	repo, err := openRepository(path)
	if err != nil {
		return nil, err
	}
	m.repos[path] = repo
	return repo, nil
}

// Discover opens the repository containing path.
func (m *Manager) Discover(path string) (*Repository, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}
	root, err := discoverRepository(path)
	if err != nil {
		return nil, err
	}
	return m.Open(root)
}

// Baseline returns the HEAD version of the file at path. Failures are not
// cached.
func (m *Manager) Baseline(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if m.baselines != nil {
		if v, ok := m.baselines.Get(abs); ok {
			return v.(string), nil
		}
	}

	repo, err := m.Discover(abs)
	if err != nil {
		return "", err
	}
	base, err := repo.Baseline(ctx, abs)
	if err != nil {
		return "", err
	}
	if m.baselines != nil {
		m.baselines.SetDefault(abs, base)
	}
	return base, nil
}

// Forget drops the cached baseline of path, e.g. after a commit.
func (m *Manager) Forget(path string) {
	if m.baselines == nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		m.baselines.Delete(abs)
	}
}

// Close releases every repository. Further calls return ErrManagerClosed.
func (m *Manager) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	m.mu.Lock()
	m.repos = make(map[string]*Repository)
	m.mu.Unlock()
	if m.baselines != nil {
		m.baselines.Flush()
	}
	return nil
}

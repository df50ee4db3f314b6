package syntax

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache lifetimes for parsed trees.
const (
	DefaultTreeExpiration  = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Parser builds a Tree from source text. A nil Tree means the source could
// not be parsed at all.
type Parser func(src string) Tree

// Registry maps languages to parsers and caches parsed trees.
type Registry struct {
	mu      sync.RWMutex
	langs   []*LangConfig
	parsers map[string]Parser
	trees   *gocache.Cache
}

// NewRegistry creates a registry with the built-in Go language. Additional
// configurations override built-ins of the same name; configurations for
// languages without a parser are still detected but never produce a tree.
func NewRegistry(langs ...LangConfig) *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
		trees:   gocache.New(DefaultTreeExpiration, DefaultCleanupInterval),
	}
	r.Register(GoLanguage(), ParseGo)
	for _, l := range langs {
		r.Register(l, nil)
	}
	return r
}

// Register adds or replaces a language. A nil parser keeps any parser
// already registered under the same name.
func (r *Registry) Register(cfg LangConfig, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cfg
	replaced := false
	for i, l := range r.langs {
		if l.Name == c.Name {
			r.langs[i] = &c
			replaced = true
			break
		}
	}
	if !replaced {
		r.langs = append(r.langs, &c)
	}
	if p != nil {
		r.parsers[c.Name] = p
	}
}

// Language returns the configuration registered under name.
func (r *Registry) Language(name string) (*LangConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.langs {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Detect returns the language whose extensions match path.
func (r *Registry) Detect(path string) (*LangConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.langs {
		if l.Matches(path) {
			return l, true
		}
	}
	return nil, false
}

// Parse returns the tree for src in lang, consulting the cache under key.
// Callers build key from something that changes whenever src does, such as
// a document id and revision.
func (r *Registry) Parse(key string, lang *LangConfig, src string) (Tree, bool) {
	if lang == nil {
		return nil, false
	}

	r.mu.RLock()
	parse, ok := r.parsers[lang.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	cacheKey := fmt.Sprintf("%s:%s", lang.Name, key)
	if v, found := r.trees.Get(cacheKey); found {
		if tree, ok := v.(Tree); ok {
			return tree, true
		}
	}

	tree := parse(src)
	if tree == nil {
		return nil, false
	}
	r.trees.Set(cacheKey, tree, gocache.DefaultExpiration)
	return tree, true
}

// Forget drops cached trees for key in every language.
func (r *Registry) Forget(key string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.langs {
		r.trees.Delete(fmt.Sprintf("%s:%s", l.Name, key))
	}
}

// CachedTrees returns the number of trees currently cached.
func (r *Registry) CachedTrees() int {
	return r.trees.ItemCount()
}

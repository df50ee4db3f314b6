package vfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

var (
	errIsDir  = syscall.EISDIR
	errNotDir = syscall.ENOTDIR
)

// MemFS implements FS in memory. Paths are slash-separated and rooted
// at "/". It is safe for concurrent use.
type MemFS struct {
	mu       sync.RWMutex
	files    map[string][]byte
	dirs     map[string]bool
	denied   map[string]bool
	wd       string
	modified time.Time
}

// NewMemFS creates an empty in-memory file system with working directory
// "/".
func NewMemFS() *MemFS {
	return &MemFS{
		files:    make(map[string][]byte),
		dirs:     map[string]bool{"/": true},
		denied:   make(map[string]bool),
		wd:       "/",
		modified: time.Now(),
	}
}

var _ FS = (*MemFS)(nil)

// AddFile adds a file, creating parent directories.
func (m *MemFS) AddFile(filePath, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	m.mkdirAll(path.Dir(filePath))
	m.files[filePath] = []byte(content)
}

// AddDir adds a directory and its parents.
func (m *MemFS) AddDir(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(cleanPath(dirPath))
}

// Deny makes reads of p fail with fs.ErrPermission.
func (m *MemFS) Deny(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[cleanPath(p)] = true
}

// Chdir sets the working directory.
func (m *MemFS) Chdir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wd = cleanPath(dir)
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if m.denied[filePath] {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrPermission}
	}
	content, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if info, ok := m.info(filePath); ok {
		return info, nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// ReadDir reads a directory and returns its entries sorted by name.
func (m *MemFS) ReadDir(dirPath string) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dirPath = cleanPath(dirPath)
	if m.denied[dirPath] {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrPermission}
	}
	if !m.dirs[dirPath] {
		if _, ok := m.files[dirPath]; ok {
			return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: errNotDir}
		}
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}

	prefix := dirPath
	if prefix != "/" {
		prefix += "/"
	}
	seen := make(map[string]bool)
	var entries []FileInfo
	add := func(p string) {
		rest := strings.TrimPrefix(p, prefix)
		if p == dirPath || !strings.HasPrefix(p, prefix) || strings.Contains(rest, "/") || seen[rest] {
			return
		}
		seen[rest] = true
		info, _ := m.info(p)
		entries = append(entries, info)
	}
	for p := range m.files {
		add(p)
	}
	for p := range m.dirs {
		add(p)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Abs returns the path resolved against the working directory.
func (m *MemFS) Abs(p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		m.mu.RLock()
		p = path.Join(m.wd, p)
		m.mu.RUnlock()
	}
	return cleanPath(p), nil
}

// Join joins path elements.
func (m *MemFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns the directory portion of a path.
func (m *MemFS) Dir(p string) string {
	return path.Dir(cleanPath(p))
}

// Getwd returns the working directory.
func (m *MemFS) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wd, nil
}

func (m *MemFS) info(p string) (FileInfo, bool) {
	if content, ok := m.files[p]; ok {
		return NewFileInfo(p, path.Base(p), int64(len(content)), 0o644, m.modified), true
	}
	if m.dirs[p] {
		return NewFileInfo(p, path.Base(p), 0, fs.ModeDir|0o755, m.modified), true
	}
	return FileInfo{}, false
}

func (m *MemFS) mkdirAll(dir string) {
	for d := dir; ; d = path.Dir(d) {
		m.dirs[d] = true
		if d == "/" {
			return
		}
	}
}

func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

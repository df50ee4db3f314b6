// Package vfs provides the file system abstraction used by the directory
// listing and document loading.
//
// OSFS reads the operating system's file system; MemFS is an in-memory
// implementation for tests.
package vfs

import (
	"io/fs"
	"time"
)

// FS is the read side of a file system.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// ReadDir reads a directory and returns its entries sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Abs returns the absolute, cleaned path.
	Abs(path string) (string, error)

	// Join joins path elements.
	Join(elem ...string) string

	// Dir returns the directory portion of a path.
	Dir(path string) string

	// Getwd returns the working directory.
	Getwd() (string, error)
}

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path, name string, size int64, mode fs.FileMode, modTime time.Time) FileInfo {
	return FileInfo{path: path, name: name, size: size, mode: mode, modTime: modTime}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.mode.IsDir() }

package git

import "errors"

var (
	// ErrNotRepository is returned by Open for a directory without a
	// usable .git entry.
	ErrNotRepository = errors.New("not a git repository")

	// ErrRepositoryNotFound is returned by Discover when no parent
	// directory holds a repository.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNotTracked is returned for files with no version at HEAD.
	ErrNotTracked = errors.New("file not tracked at HEAD")

	// ErrOutsideRepository is returned for paths outside the repository root.
	ErrOutsideRepository = errors.New("path outside repository")

	// ErrManagerClosed is returned after Close.
	ErrManagerClosed = errors.New("manager closed")
)

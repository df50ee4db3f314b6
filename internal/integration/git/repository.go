package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository represents a git repository.
type Repository struct {
	path string
}

// openRepository opens an existing git repository.
func openRepository(path string) (*Repository, error) {
	gitDir := filepath.Join(path, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("stat .git: %w", err)
	}

	// .git can be a directory or a file (for worktrees)
	if !info.IsDir() {
		content, err := os.ReadFile(gitDir)
		if err != nil {
			return nil, fmt.Errorf("read .git file: %w", err)
		}
		if !bytes.HasPrefix(content, []byte("gitdir:")) {
			return nil, ErrNotRepository
		}
	}

	return &Repository{path: path}, nil
}

// discoverRepository finds the repository root from any path within it.
func discoverRepository(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}

	current := absPath
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrRepositoryNotFound
		}
		current = parent
	}
}

// Path returns the repository root path.
func (r *Repository) Path() string {
	return r.path
}

// RelPath returns path relative to the repository root, slash separated.
func (r *Repository) RelPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	rel, err := filepath.Rel(r.path, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideRepository)
	}
	return filepath.ToSlash(rel), nil
}

// Baseline returns the content of path as recorded at HEAD.
func (r *Repository) Baseline(ctx context.Context, path string) (string, error) {
	rel, err := r.RelPath(path)
	if err != nil {
		return "", err
	}
	out, err := r.git(ctx, "show", "HEAD:"+rel)
	if err != nil {
		var gerr *commandError
		if errors.As(err, &gerr) && gerr.missingObject() {
			return "", fmt.Errorf("%s: %w", rel, ErrNotTracked)
		}
		return "", err
	}
	return out, nil
}

// git executes a git command in the repository.
func (r *Repository) git(ctx context.Context, args ...string) (string, error) {
	return newGitCommand(r.path, args...).run(ctx)
}

// gitCommand represents a git command to execute.
type gitCommand struct {
	dir  string
	args []string
}

// newGitCommand creates a new git command.
func newGitCommand(dir string, args ...string) *gitCommand {
	return &gitCommand{dir: dir, args: args}
}

// commandError reports a failed git invocation with its stderr.
type commandError struct {
	args   []string
	stderr string
	err    error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("git %s: %s", strings.Join(e.args, " "), e.stderr)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// missingObject reports whether git could not find the requested object,
// as happens for files that are new since HEAD or repositories without
// commits.
func (e *commandError) missingObject() bool {
	for _, s := range []string{"does not exist in", "exists on disk, but not in", "invalid object name", "bad revision"} {
		if strings.Contains(e.stderr, s) {
			return true
		}
	}
	return false
}

// run executes the git command.
func (c *gitCommand) run(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", c.args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &commandError{args: c.args, stderr: strings.TrimSpace(stderr.String()), err: err}
	}
	return stdout.String(), nil
}

package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testRepo creates a temporary git repository.
func testRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	gitCmd(t, dir, "init")
	gitCmd(t, dir, "config", "user.email", "test@example.com")
	gitCmd(t, dir, "config", "user.name", "Test User")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// gitCmd runs a git command in the repo.
func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	mgr := NewManager()
	defer mgr.Close()

	repo, err := mgr.Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if repo.Path() != dir {
		t.Errorf("Path() = %q, want %q", repo.Path(), dir)
	}

	again, _ := mgr.Discover(dir)
	if again != repo {
		t.Error("expected repository to be reused")
	}
}

func TestDiscoverOutsideRepository(t *testing.T) {
	mgr := NewManager()
	defer mgr.Close()

	// The filesystem root is not expected to be a repository.
	if _, err := mgr.Discover(string(filepath.Separator)); !errors.Is(err, ErrRepositoryNotFound) {
		t.Errorf("expected ErrRepositoryNotFound, got %v", err)
	}
}

func TestOpenRejectsBogusGitFile(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, ".git", "not a gitdir pointer")

	if _, err := NewManager().Open(dir); !errors.Is(err, ErrNotRepository) {
		t.Errorf("expected ErrNotRepository, got %v", err)
	}
}

func TestManagerClosed(t *testing.T) {
	mgr := NewManager()
	_ = mgr.Close()
	if _, err := mgr.Open(t.TempDir()); !errors.Is(err, ErrManagerClosed) {
		t.Errorf("expected ErrManagerClosed, got %v", err)
	}
}

func TestRelPath(t *testing.T) {
	dir := t.TempDir()
	repo := &Repository{path: dir}

	rel, err := repo.RelPath(filepath.Join(dir, "src", "main.go"))
	if err != nil {
		t.Fatalf("RelPath: %v", err)
	}
	if rel != "src/main.go" {
		t.Errorf("RelPath = %q, want src/main.go", rel)
	}

	if _, err := repo.RelPath(filepath.Dir(dir)); !errors.Is(err, ErrOutsideRepository) {
		t.Errorf("expected ErrOutsideRepository, got %v", err)
	}
}

func TestBaseline(t *testing.T) {
	dir := testRepo(t)
	path := createFile(t, dir, "src/file.txt", "one\ntwo\n")
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "initial")
	createFile(t, dir, "src/file.txt", "one\nTWO\nthree\n")

	repo, err := NewManager().Discover(path)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	base, err := repo.Baseline(context.Background(), path)
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if base != "one\ntwo\n" {
		t.Errorf("baseline = %q", base)
	}

	viaManager, err := NewManager().Baseline(context.Background(), path)
	if err != nil || viaManager != base {
		t.Errorf("manager baseline = %q, %v", viaManager, err)
	}

	untracked := createFile(t, dir, "new.txt", "x")
	if _, err := repo.Baseline(context.Background(), untracked); !errors.Is(err, ErrNotTracked) {
		t.Errorf("expected ErrNotTracked, got %v", err)
	}
}

func TestBaselineCache(t *testing.T) {
	dir := testRepo(t)
	path := createFile(t, dir, "a.txt", "v1\n")
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "v1")

	ctx := context.Background()
	cached := NewManager()
	uncached := NewManager(WithBaselineTTL(0))

	for _, m := range []*Manager{cached, uncached} {
		if base, err := m.Baseline(ctx, path); err != nil || base != "v1\n" {
			t.Fatalf("baseline = %q, %v", base, err)
		}
	}

	createFile(t, dir, "a.txt", "v2\n")
	gitCmd(t, dir, "commit", "-am", "v2")

	if base, _ := cached.Baseline(ctx, path); base != "v1\n" {
		t.Errorf("cached baseline = %q, want v1", base)
	}
	if base, _ := uncached.Baseline(ctx, path); base != "v2\n" {
		t.Errorf("uncached baseline = %q, want v2", base)
	}

	cached.Forget(path)
	if base, _ := cached.Baseline(ctx, path); base != "v2\n" {
		t.Errorf("baseline after Forget = %q, want v2", base)
	}
}

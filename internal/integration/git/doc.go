// Package git reads baseline file contents from Git repositories.
//
// The diff text object compares a document against the version of its file
// recorded at HEAD. This package discovers the repository containing a
// file and reads that version through the git CLI.
//
// # Usage
//
//	mgr := git.NewManager()
//	repo, err := mgr.Discover("/path/to/project/src/main.go")
//	if err != nil {
//	    return err
//	}
//	base, err := repo.Baseline(ctx, "/path/to/project/src/main.go")
//
// Manager.Baseline combines both steps and caches the result for
// DefaultBaselineTTL. Files that are untracked or new since HEAD report
// ErrNotTracked.
package git

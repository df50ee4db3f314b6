// Package dirlist renders directory listings for the browse buffer and
// resolves listing lines back to paths.
//
// A listing is "../" followed by subdirectories (with a trailing slash)
// and then files, each group sorted lexicographically, one entry per
// newline-terminated line.
package dirlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/vfs"
)

// ParentEntry is the first line of every listing.
const ParentEntry = "../"

// ErrUnreadable is returned when a directory cannot be listed.
var ErrUnreadable = errors.New("unable to read dir")

// Config controls listing contents.
type Config struct {
	// ShowHidden includes entries whose names start with a dot.
	ShowHidden bool
	// DirsFirst lists directories before files. When false both are
	// merged into one sorted group.
	DirsFirst bool
}

// DefaultConfig returns the configuration matching netrw-style listings.
func DefaultConfig() Config {
	return Config{ShowHidden: true, DirsFirst: true}
}

// Listing is a rendered directory.
type Listing struct {
	// Dir is the absolute path of the listed directory.
	Dir string
	// Text is the listing buffer content.
	Text string
}

// Target is what a listing line refers to.
type Target struct {
	Path  string
	IsDir bool
}

// Lister lists directories of a file system.
type Lister struct {
	fs     vfs.FS
	cfg    Config
	logger *log.Logger
}

// New creates a Lister. The config is used as given.
func New(fsys vfs.FS, cfg Config, logger *log.Logger) *Lister {
	return &Lister{
		fs:     fsys,
		cfg:    cfg,
		logger: log.OrNull(logger).WithComponent("dirlist"),
	}
}

// FS returns the underlying file system.
func (l *Lister) FS() vfs.FS {
	return l.fs
}

// Config returns the listing configuration.
func (l *Lister) Config() Config {
	return l.cfg
}

// List renders dir. Unreadable directories are logged and reported with
// ErrUnreadable.
func (l *Lister) List(dir string) (Listing, error) {
	abs, err := l.fs.Abs(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, dir, err)
	}
	entries, err := l.fs.ReadDir(abs)
	if err != nil {
		l.logger.WithField("dir", abs).Info("unable to read dir: %v", err)
		return Listing{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, abs, err)
	}
	return Listing{Dir: abs, Text: Render(entries, l.cfg)}, nil
}

// Render formats entries as listing text.
func Render(entries []vfs.FileInfo, cfg Config) string {
	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		if !cfg.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, name+"/")
		} else {
			files = append(files, name)
		}
	}

	var groups [][]string
	if cfg.DirsFirst {
		sort.Strings(dirs)
		sort.Strings(files)
		groups = [][]string{dirs, files}
	} else {
		all := append(dirs, files...)
		sort.Strings(all)
		groups = [][]string{all}
	}

	var sb strings.Builder
	sb.WriteString(ParentEntry + "\n")
	for _, g := range groups {
		for _, name := range g {
			sb.WriteString(name)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Resolve maps a listing line of dir to its target. Lines ending in a
// slash are directories; "../" is the parent of dir.
func (l *Lister) Resolve(dir, line string) (Target, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Target{}, false
	}
	if line == ParentEntry {
		return Target{Path: l.fs.Dir(dir), IsDir: true}, true
	}
	if name, ok := strings.CutSuffix(line, "/"); ok {
		return Target{Path: l.fs.Join(dir, name), IsDir: true}, true
	}
	return Target{Path: l.fs.Join(dir, strings.TrimSpace(line))}, true
}

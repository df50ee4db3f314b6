package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/textobj/internal/engine/document"
	"github.com/dshills/textobj/internal/input/mode"
)

// Browse replaces the current document with a listing of its directory,
// or of the working directory when it has no path. A listing is
// refreshed in place. Unreadable directories leave everything as it was.
func (e *Editor) Browse() error {
	dir, err := e.browseDir()
	if err != nil {
		return err
	}
	return e.openListing(dir)
}

// BrowseDir opens a listing of dir.
func (e *Editor) BrowseDir(dir string) error {
	return e.openListing(dir)
}

func (e *Editor) browseDir() (string, error) {
	if dir, ok := e.ListingDir(); ok {
		return dir, nil
	}
	if path, ok := e.Current().Path(); ok {
		return e.fs.Dir(path), nil
	}
	wd, err := e.fs.Getwd()
	if err != nil {
		return "", NewOperationError("browse", "", err)
	}
	return wd, nil
}

// ListingDir returns the directory shown when the current document is a
// listing.
func (e *Editor) ListingDir() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listDir, e.listDir != ""
}

func (e *Editor) openListing(dir string) error {
	listing, err := e.lister.List(dir)
	if err != nil {
		return err
	}
	doc := document.New(
		document.WithContent(listing.Text),
		document.WithPath(listing.Dir),
		document.WithScratch(),
	)
	e.Open(doc)
	e.mu.Lock()
	e.listDir = listing.Dir
	e.mu.Unlock()
	e.modes.Switch(mode.Browse)
	return nil
}

// CurrentLineText returns the line under the primary cursor, including its
// line ending.
func (e *Editor) CurrentLineText() (string, bool) {
	doc := e.Current()
	t := doc.Text()
	line := t.CharToLine(doc.Selection(e.view).Primary().Cursor())
	return t.Line(line)
}

// OpenEntry opens the listing entry under the primary cursor: directories
// are listed, files are opened. A file that cannot be opened is reported
// in the status line and the listing stays open.
func (e *Editor) OpenEntry(ctx context.Context) error {
	dir, ok := e.ListingDir()
	if !ok {
		return ErrNotListing
	}
	line, ok := e.CurrentLineText()
	if !ok {
		return nil
	}
	target, ok := e.lister.Resolve(dir, line)
	if !ok {
		return nil
	}
	if target.IsDir {
		return e.openListing(target.Path)
	}

	e.logger.WithField("path", target.Path).Debug("opening listing entry")
	if _, err := e.OpenFile(ctx, target.Path); err != nil {
		e.SetError(fmt.Sprintf("unable to open %q", strings.TrimSpace(target.Path)))
		return shownError{err}
	}
	e.modes.Switch(mode.Normal)
	return nil
}

// ParentDir replaces the listing with a listing of its parent directory.
func (e *Editor) ParentDir() error {
	dir, ok := e.ListingDir()
	if !ok {
		return ErrNotListing
	}
	return e.openListing(e.fs.Dir(dir))
}

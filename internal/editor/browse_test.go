package editor

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/input/mode"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/vfs"
)

func newFS() *vfs.MemFS {
	m := vfs.NewMemFS()
	m.AddDir("/proj/b")
	m.AddDir("/proj/a")
	m.AddFile("/proj/z.txt", "zed\n")
	m.AddFile("/proj/m.txt", "em\n")
	m.Chdir("/proj")
	return m
}

// gotoLine puts the cursor at the start of line.
func gotoLine(t *testing.T, e *Editor, line int) {
	t.Helper()
	setCursors(t, e, e.Current().Text().LineToChar(line))
}

func TestBrowseWorkingDirectory(t *testing.T) {
	e := New(WithFS(newFS()))

	require.NoError(t, e.Browse())

	assert.Equal(t, "../\na/\nb/\nm.txt\nz.txt\n", e.Current().Text().String())
	assert.True(t, e.Current().IsScratch())
	dir, ok := e.ListingDir()
	require.True(t, ok)
	assert.Equal(t, "/proj", dir)
	path, _ := e.Current().Path()
	assert.Equal(t, "/proj", path)
	assert.Equal(t, mode.Browse, e.Mode())
}

func TestBrowseFileDirectory(t *testing.T) {
	e := New(WithFS(newFS()))
	_, err := e.OpenFile(context.Background(), "/proj/m.txt")
	require.NoError(t, err)

	require.NoError(t, e.Browse())
	dir, _ := e.ListingDir()
	assert.Equal(t, "/proj", dir)
}

func TestBrowseHonoursListingConfig(t *testing.T) {
	m := newFS()
	m.AddFile("/proj/.hidden", "")
	e := New(WithFS(m), WithListing(dirlist.Config{ShowHidden: false, DirsFirst: true}))

	require.NoError(t, e.Browse())
	assert.NotContains(t, e.Current().Text().String(), ".hidden")
}

func TestOpenEntry(t *testing.T) {
	e := New(WithFS(newFS()))
	require.NoError(t, e.Browse())

	gotoLine(t, e, 3)
	line, ok := e.CurrentLineText()
	require.True(t, ok)
	assert.Equal(t, "m.txt\n", line)

	require.NoError(t, e.OpenEntry(context.Background()))
	path, ok := e.Current().Path()
	require.True(t, ok)
	assert.Equal(t, "/proj/m.txt", path)
	assert.Equal(t, "em\n", e.Current().Text().String())
	assert.Equal(t, mode.Normal, e.Mode())
	_, ok = e.ListingDir()
	assert.False(t, ok)
}

func TestOpenEntryDirectories(t *testing.T) {
	fsys := newFS()
	fsys.AddFile("/proj/a/inner.go", "package a\n")
	e := New(WithFS(fsys))
	require.NoError(t, e.Browse())

	gotoLine(t, e, 1)
	require.NoError(t, e.OpenEntry(context.Background()))
	dir, _ := e.ListingDir()
	assert.Equal(t, "/proj/a", dir)
	assert.Equal(t, "../\ninner.go\n", e.Current().Text().String())

	gotoLine(t, e, 0)
	require.NoError(t, e.OpenEntry(context.Background()))
	dir, _ = e.ListingDir()
	assert.Equal(t, "/proj", dir)

	require.NoError(t, e.ParentDir())
	dir, _ = e.ListingDir()
	assert.Equal(t, "/", dir)
	assert.Equal(t, "../\nproj/\n", e.Current().Text().String())
}

func TestOpenEntryFailure(t *testing.T) {
	fsys := newFS()
	fsys.Deny("/proj/z.txt")
	e := New(WithFS(fsys))
	require.NoError(t, e.Browse())
	listing := e.Current()

	gotoLine(t, e, 4)
	err := e.OpenEntry(context.Background())
	require.Error(t, err)

	st, ok := e.Status()
	require.True(t, ok)
	assert.Equal(t, SeverityError, st.Severity)
	assert.Equal(t, "unable to open \"/proj/z.txt\"", st.Message)
	assert.Same(t, listing, e.Current())
	assert.Equal(t, mode.Browse, e.Mode())
}

func TestBrowseUnreadableDirectory(t *testing.T) {
	fsys := newFS()
	fsys.Deny("/proj")
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelInfo, Output: &buf})
	e := New(WithFS(fsys), WithLogger(logger))
	doc := e.OpenBuffer("keep")

	err := e.Browse()
	require.ErrorIs(t, err, dirlist.ErrUnreadable)
	assert.Same(t, doc, e.Current())
	assert.Equal(t, mode.Normal, e.Mode())
	_, ok := e.Status()
	assert.False(t, ok)
	assert.True(t, strings.Contains(buf.String(), "unable to read dir"), buf.String())
}

func TestBrowseCommandsOutsideListing(t *testing.T) {
	e := newEditor(t, "text")
	assert.ErrorIs(t, e.OpenEntry(context.Background()), ErrNotListing)
	assert.ErrorIs(t, e.ParentDir(), ErrNotListing)
}

func TestBrowseCommandUnreadableIsSilent(t *testing.T) {
	fsys := newFS()
	fsys.Deny("/proj")
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelInfo, Output: &buf})
	e := New(WithFS(fsys), WithLogger(logger))
	doc := e.OpenBuffer("keep")

	require.True(t, e.Execute("netrw", 1))

	_, shown := e.Status()
	assert.False(t, shown)
	assert.Same(t, doc, e.Current())
	assert.Equal(t, "keep", e.Current().Text().String())
	assert.Equal(t, mode.Normal, e.Mode())
	assert.Contains(t, buf.String(), "unable to read dir")
}

func TestParentDirCommandUnreadableIsSilent(t *testing.T) {
	fsys := newFS()
	e := New(WithFS(fsys))
	require.NoError(t, e.BrowseDir("/proj/a"))
	listing := e.Current()
	fsys.Deny("/proj")

	require.True(t, e.Execute("netrw_parent_dir", 1))

	_, shown := e.Status()
	assert.False(t, shown)
	assert.Same(t, listing, e.Current())
	dir, _ := e.ListingDir()
	assert.Equal(t, "/proj/a", dir)
}

func TestOpenEntryCommandReportsErrors(t *testing.T) {
	t.Run("outside listing", func(t *testing.T) {
		e := newEditor(t, "text")

		require.True(t, e.Execute("open_netrw", 1))

		st, ok := e.Status()
		require.True(t, ok)
		assert.Equal(t, SeverityError, st.Severity)
		assert.Equal(t, ErrNotListing.Error(), st.Message)
	})

	t.Run("unopenable file", func(t *testing.T) {
		fsys := newFS()
		fsys.Deny("/proj/z.txt")
		e := New(WithFS(fsys))
		require.NoError(t, e.Browse())
		gotoLine(t, e, 4)

		require.True(t, e.Execute("open_netrw", 1))

		st, ok := e.Status()
		require.True(t, ok)
		assert.Equal(t, SeverityError, st.Severity)
		assert.Equal(t, "unable to open \"/proj/z.txt\"", st.Message)
		assert.Equal(t, mode.Browse, e.Mode())
	})

	t.Run("unreadable directory", func(t *testing.T) {
		fsys := newFS()
		fsys.Deny("/proj/a")
		e := New(WithFS(fsys))
		require.NoError(t, e.Browse())
		gotoLine(t, e, 1)

		require.True(t, e.Execute("open_netrw", 1))

		_, shown := e.Status()
		assert.False(t, shown)
		dir, _ := e.ListingDir()
		assert.Equal(t, "/proj", dir)
	})
}

func TestBrowseDir(t *testing.T) {
	e := New(WithFS(newFS()))

	require.NoError(t, e.BrowseDir("/proj/a"))

	dir, ok := e.ListingDir()
	require.True(t, ok)
	assert.Equal(t, "/proj/a", dir)
	assert.Equal(t, "../\n", e.Current().Text().String())
	assert.Equal(t, mode.Browse, e.Mode())
}

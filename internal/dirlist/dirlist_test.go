package dirlist

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *vfs.MemFS {
	m := vfs.NewMemFS()
	m.AddDir("/proj/b")
	m.AddDir("/proj/a")
	m.AddFile("/proj/z.txt", "z")
	m.AddFile("/proj/m.txt", "m")
	return m
}

func TestListOrdering(t *testing.T) {
	l := New(newFS(), DefaultConfig(), nil)

	listing, err := l.List("/proj")
	require.NoError(t, err)
	assert.Equal(t, "/proj", listing.Dir)
	assert.Equal(t, "../\na/\nb/\nm.txt\nz.txt\n", listing.Text)
}

func TestListConfig(t *testing.T) {
	m := newFS()
	m.AddFile("/proj/.hidden", "")

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default shows hidden", DefaultConfig(), "../\na/\nb/\n.hidden\nm.txt\nz.txt\n"},
		{"hide dotfiles", Config{DirsFirst: true}, "../\na/\nb/\nm.txt\nz.txt\n"},
		{"merged groups", Config{}, "../\na/\nb/\nm.txt\nz.txt\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := New(m, tt.cfg, nil).List("/proj")
			require.NoError(t, err)
			assert.Equal(t, tt.want, listing.Text)
		})
	}
}

func TestListMergedSortsTogether(t *testing.T) {
	m := vfs.NewMemFS()
	m.AddDir("/d/zdir")
	m.AddFile("/d/afile", "")

	listing, err := New(m, Config{}, nil).List("/d")
	require.NoError(t, err)
	assert.Equal(t, "../\nafile\nzdir/\n", listing.Text)
}

func TestListUnreadableIsLogged(t *testing.T) {
	m := newFS()
	m.Deny("/proj")

	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelInfo, Output: &buf})

	_, err := New(m, DefaultConfig(), logger).List("/proj")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
	assert.True(t, strings.Contains(buf.String(), "unable to read dir"), buf.String())
}

func TestResolve(t *testing.T) {
	l := New(newFS(), DefaultConfig(), nil)

	tests := []struct {
		line string
		want Target
		ok   bool
	}{
		{"../\n", Target{Path: "/", IsDir: true}, true},
		{"a/\n", Target{Path: "/proj/a", IsDir: true}, true},
		{"m.txt\n", Target{Path: "/proj/m.txt"}, true},
		{"\n", Target{}, false},
	}
	for _, tt := range tests {
		got, ok := l.Resolve("/proj", tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

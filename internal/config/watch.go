package config

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Run after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// DefaultWatchDelay is how long the file must stay quiet before a reload.
const DefaultWatchDelay = 100 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDelay sets the quiet period before a reload. Saving a file often
// produces several events; they are folded into one reload.
func WithDelay(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.delay = d
	}
}

// Watcher reloads a configuration file whenever it changes.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file through a rename are still observed.
type Watcher struct {
	path    string
	delay   time.Duration
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The file does not need to exist yet.
func NewWatcher(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &Watcher{path: abs, delay: DefaultWatchDelay, watcher: fsw}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls fn with the result of Load once the file has been written or
// created and then left alone for the watch delay. It returns when ctx is
// done. Watcher errors are passed to fn with a zero Config. fn is only
// called from the goroutine running Run.
func (w *Watcher) Run(ctx context.Context, fn func(Config, error)) error {
	reload := make(chan struct{}, 1)
	d := newDebouncer(w.delay, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	defer d.Cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-reload:
			fn(Load(w.path))

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if w.relevant(ev) {
				d.Call()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			fn(Config{}, err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch reloads the file at path on every change and hands the result to
// fn until ctx is done.
func Watch(ctx context.Context, path string, fn func(Config, error), opts ...WatchOption) error {
	w, err := NewWatcher(path, opts...)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx, fn)
}

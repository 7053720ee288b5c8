package watch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher delivers a signal whenever the watched document changes on
// disk. The TUI drains Changes between frames and decides what a
// reload means; the watcher itself never touches playback state.
//
// fsnotify is used when the platform supports it; otherwise the
// watcher degrades to polling the file's mtime once a second.
type Watcher struct {
	path    string
	changes chan struct{}
	done    chan struct{}

	fs        *fsnotify.Watcher
	poll      time.Duration
	forcePoll bool
}

// Option adjusts watcher behavior.
type Option func(*Watcher)

// WithPollInterval overrides the mtime polling interval used by the
// fallback watcher.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) { w.poll = d }
}

// ForcePolling skips fsnotify and always polls.
func ForcePolling() Option {
	return func(w *Watcher) { w.forcePoll = true }
}

// New starts watching path. Close must be called to release it.
func New(path string, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		path:    path,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		poll:    time.Second,
	}

	for _, opt := range opts {
		opt(w)
	}

	// Watch the directory rather than the file: editors that replace
	// the file on save (rename + create) would otherwise drop the watch.
	if !w.forcePoll {
		if fw, err := fsnotify.NewWatcher(); err == nil {
			if err := fw.Add(filepath.Dir(path)); err == nil {
				w.fs = fw
			} else {
				fw.Close()
			}
		}
	}

	if w.fs != nil {
		go w.runNotify()
	} else {
		go w.runPoll()
	}
	return w, nil
}

// Changes is signalled (coalesced) when the file changed.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	if w.fs != nil {
		return w.fs.Close()
	}
	return nil
}

func (w *Watcher) runNotify() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.signal()
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) runPoll() {
	last := w.mtime()
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			cur := w.mtime()
			if !cur.IsZero() && cur.After(last) {
				last = cur
				w.signal()
			}
		}
	}
}

func (w *Watcher) mtime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default: // a signal is already pending, coalesce
	}
}

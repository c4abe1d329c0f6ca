package watcher

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrStopped is returned by Start after Stop.
var ErrStopped = errors.New("watcher: stopped")

// Watcher reports changes to a single file. It watches the parent
// directory so editors that save by rename are still seen.
type Watcher struct {
	path      string
	debouncer *Debouncer
	changes   chan struct{}

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	stopped bool
	done    chan struct{}
}

// New creates a watcher for path. Nothing is watched until Start.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return &Watcher{
		path:      abs,
		debouncer: NewDebouncer(debounce),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers one value per debounced burst of writes. Bursts that
// arrive while a value is still unread are merged into it. The channel is
// closed by Stop.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins watching.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	if w.fsw != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw
	go w.loop(fsw)
	return nil
}

func (w *Watcher) loop(fsw *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("watcher: change", "path", ev.Name, "op", ev.Op.String())
			w.debouncer.Trigger(w.notify)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watcher: error", "err", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Stop ends watching, cancels any pending notification and closes the
// Changes channel. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	w.debouncer.Cancel()
	close(w.done)
	if w.fsw != nil {
		w.fsw.Close()
	}
	close(w.changes)
}

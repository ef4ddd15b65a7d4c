package storage

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes (temp file + rename, WAL churn).
const DefaultDebounce = 150 * time.Millisecond

// ErrNothingToWatch is returned when no paths were given.
var ErrNothingToWatch = errors.New("no paths to watch")

// WatcherParams holds parameters for creating a Watcher.
type WatcherParams struct {
	Paths    []string
	Debounce time.Duration
	Logger   *log.Logger
}

// Watcher reports changes to the storage files made by other processes.
// It watches the parent directory so atomic rename-over writes are seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	names    map[string]bool
	debounce time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	changes chan struct{}
	done    chan struct{}
	closed  bool
}

// NewWatcher starts watching the given paths.
func NewWatcher(params WatcherParams) (*Watcher, error) {
	if len(params.Paths) == 0 {
		return nil, ErrNothingToWatch
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		names:    make(map[string]bool),
		debounce: params.Debounce,
		logger:   params.Logger,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	dirs := make(map[string]bool)
	for _, p := range params.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.names[filepath.Base(abs)] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

// Changes receives once per debounced burst of changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. The Changes channel is left open.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.trigger()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("storage watcher error", "err", err)
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	// Non-blocking send; a pending signal already covers this change.
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

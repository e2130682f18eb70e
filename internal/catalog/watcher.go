package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the minimum gap between two reloads.
const WatchDebounce = 400 * time.Millisecond

// Watcher reports changes to a catalog file. The parent directory is watched
// so that editors which replace the file on save are still seen.
type Watcher struct {
	Path        string
	Started     bool
	Waiting     bool
	Events      chan struct{}
	Done        chan struct{}
	LastRefresh time.Time

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. Nothing is watched until Start.
func NewWatcher(path string) *Watcher {
	return &Watcher{Path: filepath.Clean(path)}
}

// Start begins watching. It returns false when already started or when no
// path is set.
func (w *Watcher) Start() (bool, error) {
	if w.Started || w.Path == "" || w.Path == "." {
		return false, nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := fw.Add(filepath.Dir(w.Path)); err != nil {
		_ = fw.Close()
		return false, err
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()
	w.Started = true
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})

	go w.run(fw)
	logger.Debugf("watching %s", w.Path)
	return true, nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		_ = w.watcher.Close()
		w.watcher = nil
	}
}

// NextEvent returns the event channel if nobody is waiting on it yet.
func (w *Watcher) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is handled.
func (w *Watcher) ResetWaiting() {
	w.Waiting = false
}

// ShouldRefresh applies the debounce window.
func (w *Watcher) ShouldRefresh(now time.Time) bool {
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < WatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

// Signal queues a change notification. Repeated signals before the event is
// read collapse into one.
func (w *Watcher) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// Relevant reports whether an fsnotify event concerns the catalog file.
func (w *Watcher) Relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.Path
}

func (w *Watcher) run(fw *fsnotify.Watcher) {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.Relevant(event) {
				w.Signal()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Errorf("watcher error: %v", err)
		}
	}
}

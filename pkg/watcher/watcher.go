// Package watcher reloads scene files when they change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a set of files and invokes a callback after changes,
// debounced so editors that write in bursts trigger a single reload.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	onChange func(string)
	timers   map[string]*time.Timer
	watched  map[string]bool
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		fs:       fs,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		watched:  make(map[string]bool),
	}, nil
}

// Watch registers files and the callback invoked with the changed path.
// Paths are resolved to absolute before registration.
func (w *Watcher) Watch(files []string, onChange func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onChange = onChange
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", file, err)
		}
		if w.watched[abs] {
			continue
		}
		if err := w.fs.Add(abs); err != nil {
			return fmt.Errorf("watch %s: %w", abs, err)
		}
		w.watched[abs] = true
	}
	return nil
}

// Start launches the event loop in a goroutine. It exits when the
// watcher is closed.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			// Writes and creates both count: many editors replace the
			// file instead of writing in place.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.schedule(event.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			fmt.Printf("watcher error: %v\n", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer for a path
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watched[path] || w.onChange == nil {
		return
	}
	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	callback := w.onChange
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher and its event loop
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()
	return w.fs.Close()
}

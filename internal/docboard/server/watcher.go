package server

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mkrogh/annodoc/internal/scanner"
)

// EventType represents the type of source file event.
type EventType int

const (
	// Created indicates a new recognized source file appeared.
	Created EventType = iota
	// Updated indicates an existing source file was modified.
	Updated
	// Removed indicates a source file was deleted or renamed away.
	Removed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// SourceEvent represents a change to a recognized source file.
type SourceEvent struct {
	Type EventType
	Path string // relative to the watched root, slash-separated
}

// SourceWatcher monitors a source tree for changes to recognized files.
// fsnotify watches are not recursive, so every directory under the root is
// added individually and new directories are added as they appear.
type SourceWatcher struct {
	root    string
	watcher *fsnotify.Watcher
	events  chan SourceEvent

	// Debouncing
	debounceDelay  time.Duration
	debounceTimers map[string]*time.Timer
	timersMu       sync.Mutex

	// Track known files for detecting created vs updated
	knownFiles   map[string]struct{}
	knownFilesMu sync.RWMutex

	// Lifecycle
	stopCh    chan struct{}
	stoppedCh chan struct{}
	running   bool
	runningMu sync.Mutex
}

// NewSourceWatcher creates a watcher for the given root directory.
func NewSourceWatcher(root string) *SourceWatcher {
	return &SourceWatcher{
		root:           root,
		events:         make(chan SourceEvent, 100),
		debounceDelay:  100 * time.Millisecond,
		debounceTimers: make(map[string]*time.Timer),
		knownFiles:     make(map[string]struct{}),
		stopCh:         make(chan struct{}),
		stoppedCh:      make(chan struct{}),
	}
}

// Start begins watching the source tree.
func (w *SourceWatcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := w.addDirs(); err != nil {
		w.watcher.Close()
		return err
	}

	w.running = true
	go w.watchLoop()

	return nil
}

// Stop terminates the watcher and closes the events channel.
func (w *SourceWatcher) Stop() {
	w.runningMu.Lock()
	if !w.running {
		w.runningMu.Unlock()
		return
	}
	w.running = false
	w.runningMu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh

	if w.watcher != nil {
		w.watcher.Close()
	}

	w.timersMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.timersMu.Unlock()

	close(w.events)
}

// Events returns the channel for receiving source events.
func (w *SourceWatcher) Events() <-chan SourceEvent {
	return w.events
}

// addDirs registers every directory under the root and records existing
// recognized files as known.
func (w *SourceWatcher) addDirs() error {
	return filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != w.root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules") {
				return filepath.SkipDir
			}
			return w.watcher.Add(p)
		}
		if _, ok := scanner.DetectLanguage(p); ok {
			if rel, relErr := w.relPath(p); relErr == nil {
				w.knownFilesMu.Lock()
				w.knownFiles[rel] = struct{}{}
				w.knownFilesMu.Unlock()
			}
		}
		return nil
	})
}

func (w *SourceWatcher) relPath(p string) (string, error) {
	rel, err := filepath.Rel(w.root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// watchLoop is the main event loop that processes fsnotify events.
func (w *SourceWatcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue (non-fatal)
			_ = err
		}
	}
}

// handleFsEvent processes a single fsnotify event.
func (w *SourceWatcher) handleFsEvent(event fsnotify.Event) {
	// A new directory needs its own watch.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				_ = w.watcher.Add(event.Name)
			}
			return
		}
	}

	if _, ok := scanner.DetectLanguage(event.Name); !ok {
		return
	}
	rel, err := w.relPath(event.Name)
	if err != nil {
		return
	}
	w.debounceEvent(rel, event.Op)
}

// debounceEvent debounces rapid changes to the same file.
func (w *SourceWatcher) debounceEvent(rel string, op fsnotify.Op) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if timer, exists := w.debounceTimers[rel]; exists {
		timer.Stop()
	}

	capturedRel := rel
	capturedOp := op

	w.debounceTimers[rel] = time.AfterFunc(w.debounceDelay, func() {
		w.processChange(capturedRel, capturedOp)
	})
}

// processChange handles a debounced file change.
func (w *SourceWatcher) processChange(rel string, op fsnotify.Op) {
	if op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		w.knownFilesMu.Lock()
		delete(w.knownFiles, rel)
		w.knownFilesMu.Unlock()
		w.emit(SourceEvent{Type: Removed, Path: rel})
		return
	}

	w.knownFilesMu.RLock()
	_, known := w.knownFiles[rel]
	w.knownFilesMu.RUnlock()

	eventType := Updated
	if !known {
		eventType = Created
		w.knownFilesMu.Lock()
		w.knownFiles[rel] = struct{}{}
		w.knownFilesMu.Unlock()
	}

	// The file may be gone again by the time the debounce fires.
	if _, err := os.Stat(filepath.Join(w.root, filepath.FromSlash(rel))); err != nil {
		return
	}

	w.emit(SourceEvent{Type: eventType, Path: rel})
}

func (w *SourceWatcher) emit(event SourceEvent) {
	select {
	case <-w.stopCh:
		// A late debounce timer must not send after Stop.
		return
	default:
	}
	select {
	case w.events <- event:
	default:
		// Channel full, drop event
	}
}

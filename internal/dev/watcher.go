package dev

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Change represents a detected route file change.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// WatcherConfig configures the route directory watcher.
type WatcherConfig struct {
	// Root is the route directory to watch recursively.
	Root string

	// Ignore contains glob patterns the watcher does not react to,
	// matched against paths relative to Root.
	Ignore []string

	// Debounce is the quiet period after the last event before the
	// callback fires.
	Debounce time.Duration

	// Logger receives watcher diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultIgnore contains default patterns the watcher skips.
var DefaultIgnore = []string{
	"**/.git/**",
	"**/*.tmp",
	"**/*.swp",
	"**/*~",
}

// Watcher monitors a route directory and reports batched changes.
// New subdirectories are picked up as they appear.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	onChange func([]Change)
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the configured root directory.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addWatchRecursive(fw, config.Root); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		config:  config,
		watcher: fw,
	}, nil
}

// OnChange sets the callback invoked with each debounced batch of changes.
func (w *Watcher) OnChange(fn func([]Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start runs the watch loop until the context is canceled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	defer close(doneCh)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending []Change
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(w.config.Debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(w.config.Debounce)
		timerC = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-timerC:
			timerC = nil
			batch := pending
			pending = nil
			w.mu.Lock()
			callback := w.onChange
			w.mu.Unlock()
			if callback != nil && len(batch) > 0 {
				callback(batch)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("watcher error", "error", err)
		case evt, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if evt.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(evt.Name); statErr == nil && fi.IsDir() {
					if addErr := addWatchRecursive(w.watcher, evt.Name); addErr != nil {
						w.config.Logger.Warn("failed to watch new directory",
							"path", evt.Name, "error", addErr)
					}
				}
			}
			if w.shouldTrigger(evt) {
				pending = append(pending, Change{Path: evt.Name, Op: evt.Op})
				resetTimer()
			}
		}
	}
}

// Stop stops the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	doneCh := w.doneCh
	w.mu.Unlock()

	_ = w.watcher.Close()
	<-doneCh
}

// IsRunning reports whether the watch loop is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) shouldTrigger(evt fsnotify.Event) bool {
	if strings.TrimSpace(evt.Name) == "" {
		return false
	}
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if strings.HasPrefix(filepath.Base(evt.Name), ".") {
		return false
	}

	rel, err := filepath.Rel(w.config.Root, evt.Name)
	if err != nil {
		rel = evt.Name
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.config.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

func addWatchRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(path)
	})
}

package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// collectChanges starts a watcher on root and returns a channel that
// receives each debounced batch.
func collectChanges(t *testing.T, root string, ignore []string) chan []Change {
	t.Helper()

	w, err := NewWatcher(WatcherConfig{
		Root:     root,
		Ignore:   ignore,
		Debounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	batches := make(chan []Change, 16)
	w.OnChange(func(changes []Change) {
		batches <- changes
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = w.Start(ctx) }()
	t.Cleanup(func() {
		cancel()
		w.Stop()
	})

	// Give the watch loop a moment to come up.
	time.Sleep(100 * time.Millisecond)
	return batches
}

func waitForBatch(t *testing.T, batches chan []Change) []Change {
	t.Helper()
	select {
	case batch := <-batches:
		return batch
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change batch")
		return nil
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	root := t.TempDir()
	batches := collectChanges(t, root, nil)

	target := filepath.Join(root, "users.go")
	if err := os.WriteFile(target, []byte("package routes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	batch := waitForBatch(t, batches)
	found := false
	for _, c := range batch {
		if c.Path == target {
			found = true
		}
	}
	if !found {
		t.Errorf("batch %v does not mention %s", batch, target)
	}
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()
	batches := collectChanges(t, root, nil)

	sub := filepath.Join(root, "users")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	waitForBatch(t, batches)

	// A file inside the new directory must be seen too.
	target := filepath.Join(sub, "index.go")
	if err := os.WriteFile(target, []byte("package routes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case batch := <-batches:
			for _, c := range batch {
				if c.Path == target {
					return
				}
			}
		case <-deadline:
			t.Fatalf("never saw a change for %s", target)
		}
	}
}

func TestWatcherIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	batches := collectChanges(t, root, []string{"**/*.tmp"})

	if err := os.WriteFile(filepath.Join(root, "scratch.tmp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	// The watched file lands after the ignored one so at least one batch
	// arrives either way.
	target := filepath.Join(root, "posts.go")
	if err := os.WriteFile(target, []byte("package routes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	batch := waitForBatch(t, batches)
	for _, c := range batch {
		if strings.HasSuffix(c.Path, ".tmp") {
			t.Errorf("ignored file reported: %s", c.Path)
		}
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(WatcherConfig{Root: root, Debounce: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	go func() { _ = w.Start(context.Background()) }()
	time.Sleep(50 * time.Millisecond)
	if !w.IsRunning() {
		t.Fatal("watcher not running after Start")
	}

	w.Stop()
	w.Stop()
	if w.IsRunning() {
		t.Error("watcher still running after Stop")
	}
}

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"json write", fsnotify.Event{Name: "hero.json", Op: fsnotify.Write}, true},
		{"yaml create", fsnotify.Event{Name: "hero.yaml", Op: fsnotify.Create}, true},
		{"yml write", fsnotify.Event{Name: "hero.yml", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "hero.json", Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: "hero.json", Op: fsnotify.Remove}, false},
		{"wrong extension", fsnotify.Event{Name: "hero.txt", Op: fsnotify.Write}, false},
		{"hidden file", fsnotify.Event{Name: "/tmp/.hero.json", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevantEvent(tt.event); got != tt.want {
				t.Errorf("relevantEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)
	defer d.stop()

	var count atomic.Int64
	for i := 0; i < 5; i++ {
		d.trigger(func() { count.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("expected one callback after a burst, got %d", got)
	}
}

func TestWatcher_TriggersOnWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(discardLogger(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{dir}, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watch loop time to register the directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "hero.json")
	if err := os.WriteFile(path, []byte(`{"code":"hero"}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change callback after writing a watched file")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not return after cancellation")
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	w, err := NewWatcher(discardLogger(), 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	err = w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, func() {})
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
}

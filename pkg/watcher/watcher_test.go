package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls, last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected 1 call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("Expected latest callback to run, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("Expected cancelled callback not to run")
	}
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	if got := NewDebouncer(0).Window(); got != DefaultDebounce {
		t.Errorf("Expected %v, got %v", DefaultDebounce, got)
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	if err := os.WriteFile(path, []byte("name: A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Writes to a sibling file are ignored
	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644)
	select {
	case <-w.Changes():
		t.Fatal("Expected sibling write to be ignored")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("name: B\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected change notification")
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "x.yaml"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
	if err := w.Start(); err != ErrStopped {
		t.Errorf("Expected ErrStopped, got %v", err)
	}
}

func TestWatcher_StopClosesChanges(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "x.yaml"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	done := make(chan bool)
	go func() {
		_, ok := <-w.Changes()
		done <- ok
	}()
	w.Stop()

	select {
	case ok := <-done:
		if ok {
			t.Error("Expected closed channel, got a change")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected reader to be released by Stop")
	}

	// A late debounced notify after Stop must not panic
	w.notify()
}

package monitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerStartStopLifecycle(t *testing.T) {
	mgr := New()
	path := filepath.Join(t.TempDir(), "m.jsonl")

	started := make(chan struct{})
	id := mgr.Start("test", path, func(ctx context.Context, outputPath string) error {
		close(started)
		<-ctx.Done()
		return nil
	})

	<-started
	active := mgr.ListActive()
	if len(active) != 1 || active[0].ID != id {
		t.Fatalf("expected monitor %s active, got %+v", id, active)
	}

	if !mgr.Stop(id) {
		t.Fatal("expected first Stop to return true")
	}
	if mgr.Stop(id) {
		t.Fatal("expected second Stop to return false")
	}
}

func TestManagerIDsAreMonotonicPerType(t *testing.T) {
	mgr := New()
	path := filepath.Join(t.TempDir(), "m.jsonl")
	noop := func(ctx context.Context, outputPath string) error { <-ctx.Done(); return nil }

	id1 := mgr.Start("file", path, noop)
	id2 := mgr.Start("file", path, noop)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %s twice", id1)
	}
	if id1 != "file-1" || id2 != "file-2" {
		t.Fatalf("expected ids file-1 then file-2, got %s then %s", id1, id2)
	}
	mgr.Stop(id1)
	mgr.Stop(id2)
}

func TestManagerDisposeStopsEverything(t *testing.T) {
	mgr := New()
	path := filepath.Join(t.TempDir(), "m.jsonl")
	noop := func(ctx context.Context, outputPath string) error { <-ctx.Done(); return nil }

	mgr.Start("window", path, noop)
	mgr.Start("clipboard", path, noop)

	mgr.Dispose()

	deadline := time.Now().Add(time.Second)
	for len(mgr.ListActive()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected ListActive to become empty after Dispose")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestManagerProducerWritesStartedEvent(t *testing.T) {
	mgr := New()
	path := filepath.Join(t.TempDir(), "m.jsonl")

	done := make(chan struct{})
	id := mgr.Start("test", path, func(ctx context.Context, outputPath string) error {
		err := mgr.WriteEventAsync(outputPath, map[string]any{"type": "monitor_started"})
		close(done)
		<-ctx.Done()
		return err
	})
	<-done
	mgr.Stop(id)

	events, err := mgr.ReadEventsAsync(path, nil)
	if err != nil {
		t.Fatalf("ReadEventsAsync: %v", err)
	}
	if len(events) != 1 || events[0]["type"] != "monitor_started" {
		t.Fatalf("expected one monitor_started event, got %+v", events)
	}
}

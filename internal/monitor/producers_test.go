package monitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/joestump/harnessd/internal/facade/fake"
)

func waitForEvents(t *testing.T, mgr *Manager, path string, min int) []map[string]any {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		events, err := mgr.ReadEventsAsync(path, nil)
		if err != nil {
			t.Fatalf("ReadEventsAsync: %v", err)
		}
		if len(events) >= min {
			return events
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d events, got %d: %+v", min, len(events), events)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestClipboardProducerEmitsOnChange(t *testing.T) {
	mgr := New()
	clip := fake.NewClipboard()
	path := filepath.Join(t.TempDir(), "clip.jsonl")

	id := mgr.Start("clipboard", path, ClipboardProducer(mgr, clip, 50))
	waitForEvents(t, mgr, path, 1) // monitor_started

	_ = clip.SetText(context.Background(), "hello world")
	events := waitForEvents(t, mgr, path, 2)
	mgr.Stop(id)

	found := false
	for _, e := range events {
		if e["type"] == "clipboard_changed" {
			found = true
			if e["preview"] != "hello world" {
				t.Fatalf("unexpected preview: %v", e["preview"])
			}
		}
	}
	if !found {
		t.Fatalf("expected a clipboard_changed event, got %+v", events)
	}
}

func TestProcessProducerEmitsStartedForNewProcess(t *testing.T) {
	mgr := New()
	state := fake.NewState()
	proc := fake.NewProcess(state)
	path := filepath.Join(t.TempDir(), "proc.jsonl")

	id := mgr.Start("process", path, ProcessProducer(mgr, proc, 50))
	waitForEvents(t, mgr, path, 1)

	state.AddProcess("calc.exe", "/bin/calc", 0)
	// monitor_started, then process_started for the seeded process and for calc.exe.
	events := waitForEvents(t, mgr, path, 3)

	mgr.Stop(id)

	found := false
	for _, e := range events {
		if e["type"] == "process_started" && e["name"] == "calc.exe" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a process_started event for calc.exe, got %+v", events)
	}
}

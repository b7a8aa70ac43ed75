package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteAndReadEventsPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	events := []map[string]any{
		{"type": "monitor_started", "timestamp": "2026-01-01T00:00:00Z"},
		{"type": "file_created", "path": "a.txt", "timestamp": "2026-01-01T00:00:01Z"},
		{"type": "file_created", "path": "b.txt", "timestamp": "2026-01-01T00:00:02Z"},
	}
	for _, e := range events {
		if err := writeEventAsync(path, e); err != nil {
			t.Fatalf("writeEventAsync: %v", err)
		}
	}

	got, err := readEventsAsync(path, nil)
	if err != nil {
		t.Fatalf("readEventsAsync: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[1]["path"] != "a.txt" || got[2]["path"] != "b.txt" {
		t.Fatalf("event order not preserved: %+v", got)
	}
}

func TestReadEventsFiltersBySince(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	_ = writeEventAsync(path, map[string]any{"type": "a", "timestamp": "2026-01-01T00:00:00Z"})
	_ = writeEventAsync(path, map[string]any{"type": "b", "timestamp": "2026-01-01T00:00:10Z"})

	since, _ := time.Parse(time.RFC3339, "2026-01-01T00:00:05Z")
	got, err := readEventsAsync(path, &since)
	if err != nil {
		t.Fatalf("readEventsAsync: %v", err)
	}
	if len(got) != 1 || got[0]["type"] != "b" {
		t.Fatalf("expected only event after since, got %+v", got)
	}
}

func TestReadEventsMissingFileIsEmpty(t *testing.T) {
	got, err := readEventsAsync(filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestReadEventsSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	_ = writeEventAsync(path, map[string]any{"type": "good"})
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open events file: %v", err)
	}
	_, _ = f.WriteString("{not json\n\n")
	_ = f.Close()

	got, err := readEventsAsync(path, nil)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 well-formed event, got %d err %v", len(got), err)
	}
}

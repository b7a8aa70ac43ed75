package fake

import (
	"context"
	"testing"
)

func TestNewCapabilitiesWiresEverySurface(t *testing.T) {
	caps := NewCapabilities()
	if caps.Mouse == nil || caps.Keyboard == nil || caps.Clipboard == nil || caps.Screen == nil {
		t.Fatal("input/screen surfaces must be non-nil")
	}
	if caps.Window == nil || caps.Process == nil || caps.UIAutomation == nil || caps.Observer == nil {
		t.Fatal("state-backed surfaces must be non-nil")
	}
	if caps.FileSystem == nil || caps.Shell == nil || caps.SystemInfo == nil {
		t.Fatal("os-backed surfaces must be non-nil")
	}
	if caps.VirtualDesktop == nil || caps.TemplateMatcher == nil || caps.DialogHandler == nil {
		t.Fatal("remaining surfaces must be non-nil")
	}
	if caps.ActionRecorder == nil || caps.DocumentReader == nil || caps.HWPReader == nil || caps.OCR == nil {
		t.Fatal("recorder/document surfaces must be non-nil")
	}
	if caps.Updater == nil {
		t.Fatal("updater surface must be non-nil")
	}
}

func TestCapabilitiesWindowAndProcessShareState(t *testing.T) {
	caps := NewCapabilities()
	ctx := context.Background()

	wins, err := caps.Window.List(ctx)
	if err != nil || len(wins) != 1 {
		t.Fatalf("expected 1 seeded window, got %d err %v", len(wins), err)
	}

	procs, err := caps.Process.ListByWindow(ctx, wins[0].Handle)
	if err != nil || len(procs) != 1 {
		t.Fatalf("expected process lookup by window to resolve, got %d err %v", len(procs), err)
	}
	if procs[0].PID != wins[0].ProcessID {
		t.Fatalf("process PID mismatch: %d vs %d", procs[0].PID, wins[0].ProcessID)
	}
}

func TestCapabilitiesObserverReflectsClipboard(t *testing.T) {
	caps := NewCapabilities()
	ctx := context.Background()

	if err := caps.Clipboard.SetText(ctx, "hello"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	text, err := caps.Observer.ClipboardText(ctx)
	if err != nil || text != "hello" {
		t.Fatalf("expected observer to see clipboard text, got %q err %v", text, err)
	}
}

func TestUIAutomationFindAndClick(t *testing.T) {
	caps := NewCapabilities()
	ctx := context.Background()

	wins, _ := caps.Window.List(ctx)
	el, err := caps.UIAutomation.Find(ctx, wins[0].Handle, "button")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := caps.UIAutomation.Click(ctx, el.ID); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if err := caps.UIAutomation.Click(ctx, "nonexistent"); err == nil {
		t.Fatal("expected error clicking unknown element")
	}
}

func TestDocumentReaderOpenAndReadSheet(t *testing.T) {
	caps := NewCapabilities()
	ctx := context.Background()

	handle, err := caps.DocumentReader.Open(ctx, "/tmp/report.xlsx")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sheets, err := caps.DocumentReader.ListSheets(ctx, handle)
	if err != nil || len(sheets) != 1 {
		t.Fatalf("ListSheets: %v %v", sheets, err)
	}
	rows, err := caps.DocumentReader.ReadSheet(ctx, handle, sheets[0])
	if err != nil || len(rows) == 0 {
		t.Fatalf("ReadSheet: %v %v", rows, err)
	}
}

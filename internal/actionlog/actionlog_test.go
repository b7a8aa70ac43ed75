package actionlog

import "testing"

func TestRecord_GetRecent_NewestFirst(t *testing.T) {
	l := New()
	l.Record("mouse.click", nil, 5, true)
	l.Record("window.focus", nil, 3, true)

	recent := l.GetRecent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Tool != "window.focus" {
		t.Errorf("expected newest first, got %q", recent[0].Tool)
	}
	if recent[1].Tool != "mouse.click" {
		t.Errorf("expected oldest last, got %q", recent[1].Tool)
	}
}

func TestGetRecent_NonPositiveReturnsEmpty(t *testing.T) {
	l := New()
	l.Record("mouse.click", nil, 1, true)
	if got := l.GetRecent(0); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
	if got := l.GetRecent(-5); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestRecord_EvictsOldestAtCapacity(t *testing.T) {
	l := New()
	for i := 0; i < Capacity+10; i++ {
		l.Record("file.write", nil, int64(i), true)
	}
	if l.Len() != Capacity {
		t.Fatalf("expected len=%d, got %d", Capacity, l.Len())
	}
	recent := l.GetRecent(Capacity)
	// Newest record carries durationMs = Capacity+9 (0-indexed last append).
	if recent[0].DurationMs != int64(Capacity+9) {
		t.Errorf("expected newest duration %d, got %d", Capacity+9, recent[0].DurationMs)
	}
	// Oldest surviving record should be record #10 (the first 10 evicted).
	if recent[len(recent)-1].DurationMs != 10 {
		t.Errorf("expected oldest surviving duration 10, got %d", recent[len(recent)-1].DurationMs)
	}
}

func TestClear_EmptiesBuffer(t *testing.T) {
	l := New()
	l.Record("mouse.click", nil, 1, true)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty after clear, got %d", l.Len())
	}
}

func TestGetRecent_KLessThanCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Record("ui.click", nil, int64(i), true)
	}
	got := l.GetRecent(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}

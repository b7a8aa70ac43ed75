package safezone

import "testing"

func TestSetAndCurrent(t *testing.T) {
	s := New()
	if s.Current() != nil {
		t.Fatal("expected no zone initially")
	}
	s.Set("Notepad", &Rect{X: 0, Y: 0, Width: 800, Height: 600})
	got := s.Current()
	if got == nil || got.Window != "Notepad" {
		t.Fatalf("expected zone set on Notepad, got %+v", got)
	}
}

func TestSet_OverwritesExisting(t *testing.T) {
	s := New()
	s.Set("A", nil)
	s.Set("B", nil)
	if s.Current().Window != "B" {
		t.Errorf("expected overwrite to B, got %q", s.Current().Window)
	}
}

func TestClear_RemovesZone(t *testing.T) {
	s := New()
	s.Set("A", nil)
	s.Clear()
	if s.Current() != nil {
		t.Error("expected zone cleared")
	}
}

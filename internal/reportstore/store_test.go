package reportstore

import "testing"

func TestInsertGetList(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	id, err := s.Insert("window_snapshot", "markdown", "# Report\nhello", "report.generate")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	r, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Kind != "window_snapshot" || r.Content != "# Report\nhello" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if r.Summary != nil {
		t.Fatalf("expected no summary yet, got %v", *r.Summary)
	}

	list, err := s.List(10)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: %v %v", list, err)
	}
}

func TestSetSummary(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	id, _ := s.Insert("action_log", "text", "...", "report.generate")
	if err := s.SetSummary(id, "three window mutations in the last minute"); err != nil {
		t.Fatalf("SetSummary: %v", err)
	}
	r, _ := s.Get(id)
	if r.Summary == nil || *r.Summary != "three window mutations in the last minute" {
		t.Fatalf("unexpected summary: %v", r.Summary)
	}
}

func TestGetMissingReturnsError(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.Get(999); err == nil {
		t.Fatal("expected error for missing report")
	}
}

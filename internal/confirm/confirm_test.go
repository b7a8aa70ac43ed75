package confirm

import (
	"encoding/json"
	"os"
	"testing"
)

func TestCreate_WritesFile(t *testing.T) {
	s := NewWithDir(t.TempDir())
	r, err := s.Create("shell.run rm -rf /tmp/x", "destructive command")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Status != StatusPending {
		t.Errorf("expected pending, got %s", r.Status)
	}
	if _, err := os.Stat(r.FilePath); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestCheck_PicksUpExternalApproval(t *testing.T) {
	s := NewWithDir(t.TempDir())
	r, _ := s.Create("shell.run", "reason")

	// Simulate an external editor approving the request on disk.
	data, _ := os.ReadFile(r.FilePath)
	var onDisk map[string]any
	_ = json.Unmarshal(data, &onDisk)
	onDisk["status"] = "approved"
	updated, _ := json.Marshal(onDisk)
	if err := os.WriteFile(r.FilePath, updated, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Check(r.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.Status != StatusApproved {
		t.Errorf("expected approved, got %s", got.Status)
	}
	if got.ResolvedAt == nil {
		t.Error("expected resolvedAt to be set")
	}
}

func TestCheck_UnknownID(t *testing.T) {
	s := NewWithDir(t.TempDir())
	if _, err := s.Check("deadbeef"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestApproveDeny(t *testing.T) {
	s := NewWithDir(t.TempDir())
	r, _ := s.Create("a", "r")
	got, err := s.Approve(r.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != StatusApproved || got.ResolvedAt == nil {
		t.Errorf("expected approved with resolvedAt, got %+v", got)
	}

	r2, _ := s.Create("b", "r2")
	got2, err := s.Deny(r2.ID)
	if err != nil {
		t.Fatalf("deny: %v", err)
	}
	if got2.Status != StatusDenied {
		t.Errorf("expected denied, got %s", got2.Status)
	}
}

func TestListPending_OnlyPending(t *testing.T) {
	s := NewWithDir(t.TempDir())
	p1, _ := s.Create("a", "r")
	p2, _ := s.Create("b", "r")
	_, _ = s.Approve(p2.ID)

	pending := s.ListPending()
	if len(pending) != 1 || pending[0].ID != p1.ID {
		t.Errorf("expected only %s pending, got %+v", p1.ID, pending)
	}
}

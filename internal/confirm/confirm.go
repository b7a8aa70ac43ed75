// Package confirm implements the file-backed confirmation store (C6): an
// external approval channel for dangerous actions. The on-disk JSON file is
// the source of truth; an external editor may flip its status to approved
// or denied, and Check re-reads it.
package confirm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a ConfirmationRequest.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Request describes a single pending or resolved confirmation.
type Request struct {
	ID         string     `json:"id"`
	Action     string     `json:"action"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	FilePath   string     `json:"filePath"`
}

// Store tracks in-memory Requests backed by a JSON file per request under
// a single directory.
type Store struct {
	mu       sync.Mutex
	requests map[string]*Request
	tempDir  string
}

// New creates a Store writing confirmation files under os.TempDir().
func New() *Store {
	return &Store{requests: make(map[string]*Request), tempDir: os.TempDir()}
}

// NewWithDir creates a Store writing confirmation files under dir. The
// harnessd host uses it with <state-dir>/confirm; tests pass a temp dir.
func NewWithDir(dir string) *Store {
	return &Store{requests: make(map[string]*Request), tempDir: dir}
}

func newID() string {
	return uuid.NewString()[:8]
}

func (s *Store) pathFor(id string) string {
	return filepath.Join(s.tempDir, fmt.Sprintf("harness-confirm-%s.json", id))
}

func (s *Store) write(r *Request) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal confirmation %s: %w", r.ID, err)
	}
	if err := os.WriteFile(r.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("write confirmation file %s: %w", r.FilePath, err)
	}
	return nil
}

// Create allocates a new pending confirmation request and writes its file.
func (s *Store) Create(action, reason string) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	r := &Request{
		ID:        id,
		Action:    action,
		Reason:    reason,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
		FilePath:  s.pathFor(id),
	}
	if err := s.write(r); err != nil {
		return nil, err
	}
	s.requests[id] = r
	cp := *r
	return &cp, nil
}

// readDisk loads the confirmation JSON stored at path. Caller must hold s.mu.
func (s *Store) readDisk(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse confirmation file %s: %w", path, err)
	}
	return &r, nil
}

// Check re-reads the on-disk file. If the status changed to approved or
// denied since the in-memory copy and resolvedAt is unset, it stamps
// resolvedAt with the current time and persists that back to disk.
func (s *Store) Check(id string) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("not_found")
	}

	onDisk, err := s.readDisk(mem.FilePath)
	if err != nil {
		return nil, fmt.Errorf("not_found")
	}

	if onDisk.Status != StatusPending && onDisk.ResolvedAt == nil {
		now := time.Now().UTC()
		onDisk.ResolvedAt = &now
		if err := s.write(onDisk); err != nil {
			return nil, err
		}
	}

	s.requests[id] = onDisk
	cp := *onDisk
	return &cp, nil
}

func (s *Store) resolve(id string, status Status) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("not_found")
	}

	now := time.Now().UTC()
	mem.Status = status
	mem.ResolvedAt = &now
	if err := s.write(mem); err != nil {
		return nil, err
	}
	cp := *mem
	return &cp, nil
}

// Approve transitions id to approved and stamps resolvedAt.
func (s *Store) Approve(id string) (*Request, error) {
	return s.resolve(id, StatusApproved)
}

// Deny transitions id to denied and stamps resolvedAt.
func (s *Store) Deny(id string) (*Request, error) {
	return s.resolve(id, StatusDenied)
}

// ListPending returns all in-memory requests still pending.
func (s *Store) ListPending() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Request
	for _, r := range s.requests {
		if r.Status == StatusPending {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}

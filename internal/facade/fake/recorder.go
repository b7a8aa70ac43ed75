package fake

import (
	"context"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// ActionRecorder is an in-memory macro recorder. Record is called by the
// catalog's mutation wrapper after each successful mutation, and keeps the
// action only while recording is active; Stop returns and clears the buffer.
type ActionRecorder struct {
	mu        sync.Mutex
	recording bool
	actions   []facade.RecordedAction
}

func NewActionRecorder() *ActionRecorder { return &ActionRecorder{} }

func (r *ActionRecorder) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = true
	r.actions = nil
	return nil
}

func (r *ActionRecorder) Stop(_ context.Context) ([]facade.RecordedAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = false
	out := r.actions
	r.actions = nil
	return out, nil
}

func (r *ActionRecorder) IsRecording(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording, nil
}

func (r *ActionRecorder) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = nil
	return nil
}

// Record appends a dispatched mutation if recording is currently active.
// Called by the dispatch layer, not part of the facade.ActionRecorder
// interface itself.
func (r *ActionRecorder) Record(tool string, params map[string]any, atMillis int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.actions = append(r.actions, facade.RecordedAction{Tool: tool, Parameters: params, At: atMillis})
}

// Package monitor implements the Monitor Manager and the six typed event
// producers (file/process/window/clipboard/dialog/screen) that write
// append-only JSONL event streams independently of the command dispatch
// path.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joestump/harnessd/internal/estop"
)

// Info describes one registered monitor.
type Info struct {
	ID         string
	Type       string
	OutputPath string
	StartedAt  time.Time
	IsRunning  bool
}

// Producer is a long-lived task spawned by Start. It must observe ctx
// cancellation and return promptly when it fires.
type Producer func(ctx context.Context, outputPath string) error

type entry struct {
	info Info
	stop *estop.Stop
}

// Manager owns the lifecycle of background event producers.
type Manager struct {
	mu       sync.Mutex
	monitors map[string]*entry
	counters map[string]int
}

func New() *Manager {
	return &Manager{monitors: make(map[string]*entry), counters: make(map[string]int)}
}

// Start allocates an id of the form "<type>-<n>", spawns producer in its
// own goroutine scoped to a fresh cancellation signal, and returns the id
// immediately. The monitor is recorded as running until it is stopped or
// the producer itself returns.
func (m *Manager) Start(monitorType, outputPath string, producer Producer) string {
	m.mu.Lock()
	m.counters[monitorType]++
	id := fmt.Sprintf("%s-%d", monitorType, m.counters[monitorType])
	sig := estop.New()
	e := &entry{
		info: Info{ID: id, Type: monitorType, OutputPath: outputPath, StartedAt: time.Now().UTC(), IsRunning: true},
		stop: sig,
	}
	m.monitors[id] = e
	m.mu.Unlock()

	go func() {
		_ = producer(sig.Signal(), outputPath)
		m.mu.Lock()
		if cur, ok := m.monitors[id]; ok {
			cur.info.IsRunning = false
		}
		m.mu.Unlock()
	}()

	return id
}

// Stop cancels the monitor's signal and marks it not running. Returns true
// iff the id existed and was running.
func (m *Manager) Stop(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.monitors[id]
	if !ok || !e.info.IsRunning {
		return false
	}
	e.stop.Trigger()
	e.info.IsRunning = false
	return true
}

// ListActive returns currently running monitors.
func (m *Manager) ListActive() []Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Info
	for _, e := range m.monitors {
		if e.info.IsRunning {
			out = append(out, e.info)
		}
	}
	return out
}

// Dispose stops every running monitor concurrently.
func (m *Manager) Dispose() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.monitors))
	for id, e := range m.monitors {
		if e.info.IsRunning {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			m.Stop(id)
			return nil
		})
	}
	_ = g.Wait()
}

// WriteEventAsync appends one compact JSON event to path, serialized per
// path across concurrent producers.
func (m *Manager) WriteEventAsync(path string, event map[string]any) error {
	return writeEventAsync(path, event)
}

// ReadEventsAsync streams JSON-line events back from path, optionally
// filtered to those strictly after since.
func (m *Manager) ReadEventsAsync(path string, since *time.Time) ([]map[string]any, error) {
	return readEventsAsync(path, since)
}

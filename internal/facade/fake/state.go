// Package fake implements in-memory Capabilities for tests and for running
// the command core without any real OS automation back-end (§6.2: "tests
// and development use in-memory fakes").
package fake

import (
	"fmt"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// State is the shared window/process registry backing the window, process,
// UI-automation, and observer fakes, so they agree on what exists. The
// dialog fake keeps its own registry.
type State struct {
	mu         sync.Mutex
	windows    map[string]*facade.WindowInfo
	processes  map[int]*facade.ProcessInfo
	foreground string
	nextHandle int
	nextPID    int
}

// NewState seeds a small deterministic set of windows and processes so
// catalog handlers have something to find in tests.
func NewState() *State {
	s := &State{
		windows:   make(map[string]*facade.WindowInfo),
		processes: make(map[int]*facade.ProcessInfo),
	}
	pid := s.addProcessLocked("notepad.exe", "/bin/notepad", 0)
	handle := s.addWindowLocked("Untitled - Notepad", pid, facade.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	s.foreground = handle
	return s
}

func (s *State) addProcessLocked(name, path string, parent int) int {
	s.nextPID++
	pid := s.nextPID
	s.processes[pid] = &facade.ProcessInfo{PID: pid, Name: name, Path: path, ParentPID: parent}
	return pid
}

func (s *State) addWindowLocked(title string, pid int, bounds facade.Rect) string {
	s.nextHandle++
	handle := fmt.Sprintf("win-%d", s.nextHandle)
	w := &facade.WindowInfo{Handle: handle, Title: title, ProcessID: pid, Bounds: bounds, Visible: true}
	s.windows[handle] = w
	if p, ok := s.processes[pid]; ok {
		p.WindowIDs = append(p.WindowIDs, handle)
	}
	return handle
}

// AddWindow registers a new window for test fixtures, returning its handle.
func (s *State) AddWindow(title string, pid int, bounds facade.Rect) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addWindowLocked(title, pid, bounds)
}

// AddProcess registers a new process for test fixtures, returning its PID.
func (s *State) AddProcess(name, path string, parent int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addProcessLocked(name, path, parent)
}

func (s *State) window(handle string) (*facade.WindowInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[handle]
	if !ok {
		return nil, false
	}
	cp := *w
	return &cp, true
}

func (s *State) process(pid int) (*facade.ProcessInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.processes[pid]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

package fake

import (
	"context"
	"fmt"
	"time"

	"github.com/joestump/harnessd/internal/facade"
)

// Window is an in-memory Window backed by a shared State.
type Window struct{ state *State }

func NewWindow(s *State) *Window { return &Window{state: s} }

func (w *Window) List(_ context.Context) ([]facade.WindowInfo, error) {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	out := make([]facade.WindowInfo, 0, len(w.state.windows))
	for _, win := range w.state.windows {
		out = append(out, *win)
	}
	return out, nil
}

func (w *Window) Get(_ context.Context, handle string) (facade.WindowInfo, error) {
	win, ok := w.state.window(handle)
	if !ok {
		return facade.WindowInfo{}, fmt.Errorf("window not found: %s", handle)
	}
	return *win, nil
}

func (w *Window) GetForeground(_ context.Context) (facade.WindowInfo, error) {
	w.state.mu.Lock()
	handle := w.state.foreground
	w.state.mu.Unlock()
	return w.Get(context.Background(), handle)
}

func (w *Window) mutate(handle string, fn func(*facade.WindowInfo)) error {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	win, ok := w.state.windows[handle]
	if !ok {
		return fmt.Errorf("window not found: %s", handle)
	}
	fn(win)
	return nil
}

func (w *Window) Focus(_ context.Context, handle string) error {
	if _, ok := w.state.window(handle); !ok {
		return fmt.Errorf("window not found: %s", handle)
	}
	w.state.mu.Lock()
	w.state.foreground = handle
	w.state.mu.Unlock()
	return nil
}

func (w *Window) Resize(_ context.Context, handle string, width, height int) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Bounds.Width = width; win.Bounds.Height = height })
}

func (w *Window) Close(_ context.Context, handle string) error {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	if _, ok := w.state.windows[handle]; !ok {
		return fmt.Errorf("window not found: %s", handle)
	}
	delete(w.state.windows, handle)
	return nil
}

func (w *Window) Minimize(_ context.Context, handle string) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Minimized = true; win.Maximized = false })
}

func (w *Window) Maximize(_ context.Context, handle string) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Maximized = true; win.Minimized = false })
}

func (w *Window) Restore(_ context.Context, handle string) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Maximized = false; win.Minimized = false })
}

func (w *Window) Move(_ context.Context, handle string, x, y int) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Bounds.X = x; win.Bounds.Y = y })
}

func (w *Window) Hide(_ context.Context, handle string) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Visible = false })
}

func (w *Window) Show(_ context.Context, handle string) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Visible = true })
}

func (w *Window) SetAlwaysOnTop(_ context.Context, handle string, on bool) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.AlwaysOn = on })
}

func (w *Window) SetOpacity(_ context.Context, handle string, opacity float64) error {
	return w.mutate(handle, func(win *facade.WindowInfo) { win.Opacity = opacity })
}

func (w *Window) Wait(ctx context.Context, titleContains string, timeoutMs int) (facade.WindowInfo, error) {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		wins, _ := w.List(ctx)
		for _, win := range wins {
			if titleContains == "" || contains(win.Title, titleContains) {
				return win, nil
			}
		}
		if time.Now().After(deadline) {
			return facade.WindowInfo{}, fmt.Errorf("window not found: timeout waiting for %q", titleContains)
		}
		select {
		case <-ctx.Done():
			return facade.WindowInfo{}, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (w *Window) WaitClose(ctx context.Context, handle string, timeoutMs int) error {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		if _, ok := w.state.window(handle); !ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("window not found: timeout waiting for close of %s", handle)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (w *Window) WaitIdle(_ context.Context, handle string, _ int) error {
	if _, ok := w.state.window(handle); !ok {
		return fmt.Errorf("window not found: %s", handle)
	}
	return nil
}

func (w *Window) GetChildren(_ context.Context, _ string) ([]facade.WindowInfo, error) {
	return nil, nil
}

func (w *Window) FindByPID(_ context.Context, pid int) ([]facade.WindowInfo, error) {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	var out []facade.WindowInfo
	for _, win := range w.state.windows {
		if win.ProcessID == pid {
			out = append(out, *win)
		}
	}
	return out, nil
}

func contains(haystack, needle string) bool {
	return len(needle) == 0 || (len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0)
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// Process is an in-memory Process backed by a shared State.
type Process struct{ state *State }

func NewProcess(s *State) *Process { return &Process{state: s} }

func (p *Process) List(_ context.Context) ([]facade.ProcessInfo, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	out := make([]facade.ProcessInfo, 0, len(p.state.processes))
	for _, proc := range p.state.processes {
		out = append(out, *proc)
	}
	return out, nil
}

func (p *Process) GetInfo(_ context.Context, pid int) (facade.ProcessInfo, error) {
	proc, ok := p.state.process(pid)
	if !ok {
		return facade.ProcessInfo{}, fmt.Errorf("process not found: %d", pid)
	}
	return *proc, nil
}

func (p *Process) Check(_ context.Context, pid int) (bool, error) {
	_, ok := p.state.process(pid)
	return ok, nil
}

func (p *Process) WaitExit(ctx context.Context, pid int, timeoutMs int) error {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		if _, ok := p.state.process(pid); !ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("process not found: timeout waiting for exit of %d", pid)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (p *Process) ListByWindow(_ context.Context, handle string) ([]facade.ProcessInfo, error) {
	win, ok := p.state.window(handle)
	if !ok {
		return nil, fmt.Errorf("window not found: %s", handle)
	}
	proc, ok := p.state.process(win.ProcessID)
	if !ok {
		return nil, nil
	}
	return []facade.ProcessInfo{*proc}, nil
}

func (p *Process) FindByPort(_ context.Context, _ int) ([]facade.ProcessInfo, error) {
	return nil, nil
}

func (p *Process) FindByPath(_ context.Context, path string) ([]facade.ProcessInfo, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	var out []facade.ProcessInfo
	for _, proc := range p.state.processes {
		if proc.Path == path {
			out = append(out, *proc)
		}
	}
	return out, nil
}

func (p *Process) GetChildren(_ context.Context, pid int) ([]facade.ProcessInfo, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	var out []facade.ProcessInfo
	for _, proc := range p.state.processes {
		if proc.ParentPID == pid {
			out = append(out, *proc)
		}
	}
	return out, nil
}

func (p *Process) FindByWindow(_ context.Context, handle string) (facade.ProcessInfo, error) {
	win, ok := p.state.window(handle)
	if !ok {
		return facade.ProcessInfo{}, fmt.Errorf("window not found: %s", handle)
	}
	proc, ok := p.state.process(win.ProcessID)
	if !ok {
		return facade.ProcessInfo{}, fmt.Errorf("process not found for window: %s", handle)
	}
	return *proc, nil
}

func (p *Process) Start(_ context.Context, path string, _ []string) (int, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	return p.state.addProcessLocked(path, path, 0), nil
}

func (p *Process) StartAdvanced(_ context.Context, path string, _ []string, _ string, _ map[string]string) (int, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	return p.state.addProcessLocked(path, path, 0), nil
}

func (p *Process) Stop(_ context.Context, pid int) error {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	if _, ok := p.state.processes[pid]; !ok {
		return fmt.Errorf("process not found: %d", pid)
	}
	delete(p.state.processes, pid)
	return nil
}

func (p *Process) StopByName(_ context.Context, name string) (int, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	n := 0
	for pid, proc := range p.state.processes {
		if proc.Name == name {
			delete(p.state.processes, pid)
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("process not found: %s", name)
	}
	return n, nil
}

func (p *Process) StopTree(_ context.Context, pid int) (int, error) {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	if _, ok := p.state.processes[pid]; !ok {
		return 0, fmt.Errorf("process not found: %d", pid)
	}
	toStop := []int{pid}
	stopped := 0
	for len(toStop) > 0 {
		cur := toStop[len(toStop)-1]
		toStop = toStop[:len(toStop)-1]
		if _, ok := p.state.processes[cur]; !ok {
			continue
		}
		for pid2, proc := range p.state.processes {
			if proc.ParentPID == cur {
				toStop = append(toStop, pid2)
			}
		}
		delete(p.state.processes, cur)
		stopped++
	}
	return stopped, nil
}

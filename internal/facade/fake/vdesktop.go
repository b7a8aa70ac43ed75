package fake

import (
	"context"
	"fmt"
	"sync"
)

// VirtualDesktop is an in-memory virtual desktop manager with a fixed set
// of desktops seeded at construction and window-to-desktop assignment kept
// separately from the shared window State.
type VirtualDesktop struct {
	mu        sync.Mutex
	desktops  []string
	current   string
	placement map[string]string // window handle -> desktop id
}

func NewVirtualDesktop() *VirtualDesktop {
	return &VirtualDesktop{
		desktops:  []string{"desktop-1", "desktop-2"},
		current:   "desktop-1",
		placement: make(map[string]string),
	}
}

func (v *VirtualDesktop) List(_ context.Context) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.desktops))
	copy(out, v.desktops)
	return out, nil
}

func (v *VirtualDesktop) Current(_ context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, nil
}

func (v *VirtualDesktop) SwitchTo(_ context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, d := range v.desktops {
		if d == id {
			v.current = id
			return nil
		}
	}
	return fmt.Errorf("desktop not found: %s", id)
}

func (v *VirtualDesktop) MoveWindow(_ context.Context, handle, desktopID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	found := false
	for _, d := range v.desktops {
		if d == desktopID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("desktop not found: %s", desktopID)
	}
	v.placement[handle] = desktopID
	return nil
}

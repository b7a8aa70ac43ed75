package fake

import (
	"context"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// Mouse is an in-memory Mouse that tracks pointer position only.
type Mouse struct {
	mu       sync.Mutex
	position facade.Point
}

func NewMouse() *Mouse { return &Mouse{} }

func (m *Mouse) Click(_ context.Context, x, y int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = facade.Point{X: x, Y: y}
	return nil
}

func (m *Mouse) DoubleClick(ctx context.Context, x, y int, button string) error {
	return m.Click(ctx, x, y, button)
}

func (m *Mouse) Move(_ context.Context, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = facade.Point{X: x, Y: y}
	return nil
}

func (m *Mouse) Drag(_ context.Context, from, to facade.Point, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = to
	_ = from
	return nil
}

func (m *Mouse) Scroll(_ context.Context, _, _ int) error             { return nil }
func (m *Mouse) ScrollHorizontal(_ context.Context, _ int) error      { return nil }
func (m *Mouse) DragWindow(_ context.Context, _ string, _ facade.Point) error { return nil }
func (m *Mouse) ButtonDown(_ context.Context, _ string) error         { return nil }
func (m *Mouse) ButtonUp(_ context.Context, _ string) error           { return nil }

func (m *Mouse) SmoothMove(_ context.Context, to facade.Point, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = to
	return nil
}

func (m *Mouse) Position(_ context.Context) (facade.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

// Keyboard is an in-memory Keyboard that tracks currently-held keys and
// lock-key toggle state, and the last typed text (useful for assertions).
type Keyboard struct {
	mu       sync.Mutex
	held     map[string]bool
	locks    map[string]bool
	LastType string
}

func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[string]bool), locks: make(map[string]bool)}
}

func (k *Keyboard) Type(_ context.Context, text string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.LastType = text
	return nil
}

func (k *Keyboard) Press(_ context.Context, _ string) error { return nil }

func (k *Keyboard) KeyDown(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = true
	return nil
}

func (k *Keyboard) KeyUp(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
	return nil
}

func (k *Keyboard) ToggleLock(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.locks[key] = !k.locks[key]
	return nil
}

func (k *Keyboard) Hotkey(_ context.Context, _ []string) error { return nil }

func (k *Keyboard) HotkeyWait(_ context.Context, _ []string, _ int) error { return nil }

func (k *Keyboard) IsPressed(_ context.Context, key string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key], nil
}

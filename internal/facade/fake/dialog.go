package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// DialogHandler is an in-memory registry of dialog-class windows, kept
// separate from the main window State since dialogs are transient and
// usually not meant to be enumerated by the general Window surface.
type DialogHandler struct {
	mu      sync.Mutex
	dialogs map[string]facade.WindowInfo
	texts   map[string]string
}

func NewDialogHandler() *DialogHandler {
	return &DialogHandler{dialogs: make(map[string]facade.WindowInfo), texts: make(map[string]string)}
}

// AddDialog is a test fixture helper for seeding a pending dialog.
func (d *DialogHandler) AddDialog(win facade.WindowInfo, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialogs[win.Handle] = win
	d.texts[win.Handle] = text
}

func (d *DialogHandler) List(_ context.Context) ([]facade.WindowInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]facade.WindowInfo, 0, len(d.dialogs))
	for _, win := range d.dialogs {
		out = append(out, win)
	}
	return out, nil
}

func (d *DialogHandler) Accept(_ context.Context, handle string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.dialogs[handle]; !ok {
		return fmt.Errorf("window not found: %s", handle)
	}
	delete(d.dialogs, handle)
	delete(d.texts, handle)
	return nil
}

func (d *DialogHandler) Dismiss(ctx context.Context, handle string) error {
	return d.Accept(ctx, handle)
}

func (d *DialogHandler) GetText(_ context.Context, handle string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := d.texts[handle]
	if !ok {
		return "", fmt.Errorf("window not found: %s", handle)
	}
	return text, nil
}

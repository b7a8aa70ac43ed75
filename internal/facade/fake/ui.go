package fake

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// UIAutomation is an in-memory accessibility tree: each window handle maps
// to a single flat element tree seeded at construction.
type UIAutomation struct {
	state *State
	mu    sync.Mutex
	trees map[string]facade.UIElement
	byID  map[string]*facade.UIElement
}

func NewUIAutomation(s *State) *UIAutomation {
	u := &UIAutomation{state: s, trees: make(map[string]facade.UIElement), byID: make(map[string]*facade.UIElement)}
	return u
}

// treeFor lazily builds a deterministic tree for a window so Find/GetTree
// work without requiring callers to pre-seed one.
func (u *UIAutomation) treeFor(handle string) facade.UIElement {
	u.mu.Lock()
	defer u.mu.Unlock()
	if t, ok := u.trees[handle]; ok {
		return t
	}
	button := facade.UIElement{ID: handle + "-ok", Role: "button", Name: "OK", Enabled: true}
	input := facade.UIElement{ID: handle + "-input", Role: "edit", Name: "Input", Enabled: true}
	root := facade.UIElement{ID: handle + "-root", Role: "window", Name: handle, Enabled: true, Children: []facade.UIElement{button, input}}
	u.trees[handle] = root
	u.byID[button.ID] = &button
	u.byID[input.ID] = &input
	return root
}

func (u *UIAutomation) GetFocused(ctx context.Context) (facade.UIElement, error) {
	u.state.mu.Lock()
	handle := u.state.foreground
	u.state.mu.Unlock()
	return u.GetTree(ctx, handle)
}

func (u *UIAutomation) GetTree(_ context.Context, handle string) (facade.UIElement, error) {
	if _, ok := u.state.window(handle); !ok {
		return facade.UIElement{}, fmt.Errorf("window not found: %s", handle)
	}
	return u.treeFor(handle), nil
}

func (u *UIAutomation) Find(_ context.Context, handle, selector string) (facade.UIElement, error) {
	tree := u.treeFor(handle)
	for _, c := range tree.Children {
		if c.Name == selector || c.Role == selector || c.ID == selector {
			return c, nil
		}
	}
	return facade.UIElement{}, fmt.Errorf("element not found: %s", selector)
}

func (u *UIAutomation) WaitElement(ctx context.Context, handle, selector string, _ int) (facade.UIElement, error) {
	return u.Find(ctx, handle, selector)
}

func (u *UIAutomation) Annotate(_ context.Context, _ string) ([]byte, error) {
	return encodeSolid(800, 600, color.RGBA{R: 255, G: 0, B: 0, A: 255})
}

func (u *UIAutomation) DetectClickables(_ context.Context, handle string) ([]facade.UIElement, error) {
	tree := u.treeFor(handle)
	var out []facade.UIElement
	for _, c := range tree.Children {
		if c.Role == "button" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *UIAutomation) DetectInputs(_ context.Context, handle string) ([]facade.UIElement, error) {
	tree := u.treeFor(handle)
	var out []facade.UIElement
	for _, c := range tree.Children {
		if c.Role == "edit" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *UIAutomation) GetAt(_ context.Context, _ facade.Point) (facade.UIElement, error) {
	u.state.mu.Lock()
	handle := u.state.foreground
	u.state.mu.Unlock()
	return u.treeFor(handle), nil
}

func (u *UIAutomation) element(elementID string) (*facade.UIElement, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	el, ok := u.byID[elementID]
	if !ok {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return el, nil
}

func (u *UIAutomation) Click(_ context.Context, elementID string) error {
	_, err := u.element(elementID)
	return err
}

func (u *UIAutomation) SetValue(_ context.Context, elementID, value string) error {
	el, err := u.element(elementID)
	if err != nil {
		return err
	}
	u.mu.Lock()
	el.Value = value
	u.mu.Unlock()
	return nil
}

func (u *UIAutomation) TypeInto(ctx context.Context, elementID, text string) error {
	return u.SetValue(ctx, elementID, text)
}

func (u *UIAutomation) Invoke(_ context.Context, elementID string) error {
	_, err := u.element(elementID)
	return err
}

func (u *UIAutomation) SelectMenu(_ context.Context, _ string, path string) error {
	if path == "" {
		return fmt.Errorf("empty menu path")
	}
	return nil
}

func (u *UIAutomation) Select(_ context.Context, elementID, _ string) error {
	_, err := u.element(elementID)
	return err
}

func (u *UIAutomation) Expand(_ context.Context, elementID string) error {
	_, err := u.element(elementID)
	return err
}

package fake

import (
	"context"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// Clipboard is an in-memory clipboard holding one of text/html/image/files
// at a time, mirroring how a real OS clipboard holds one logical payload
// with multiple format renderings.
type Clipboard struct {
	mu    sync.Mutex
	text  string
	html  string
	image string
	files []string
}

func NewClipboard() *Clipboard { return &Clipboard{} }

func (c *Clipboard) GetText(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *Clipboard) GetHTML(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.html, nil
}

func (c *Clipboard) GetImageBase64(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image, nil
}

func (c *Clipboard) GetFiles(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.files))
	copy(out, c.files)
	return out, nil
}

func (c *Clipboard) GetFormats(_ context.Context) (facade.ClipboardFormats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return facade.ClipboardFormats{
		HasText:  c.text != "",
		HasHTML:  c.html != "",
		HasImage: c.image != "",
		HasFiles: len(c.files) > 0,
	}, nil
}

func (c *Clipboard) SetText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *Clipboard) SetImageBase64(_ context.Context, data string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = data
	return nil
}

func (c *Clipboard) SetHTML(_ context.Context, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.html = html
	return nil
}

func (c *Clipboard) SetFiles(_ context.Context, paths []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = append([]string(nil), paths...)
	return nil
}

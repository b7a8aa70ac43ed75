package fake

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"

	"github.com/joestump/harnessd/internal/facade"
)

// Screen is an in-memory screen that renders a flat-colored bitmap for any
// capture call, so hashing/change-detection logic has real PNG bytes to
// work with in tests.
type Screen struct {
	Fill color.RGBA
}

func NewScreen() *Screen { return &Screen{Fill: color.RGBA{R: 30, G: 30, B: 30, A: 255}} }

func encodeSolid(w, h int, fill color.RGBA) ([]byte, error) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Screen) Capture(_ context.Context) ([]byte, error) {
	return encodeSolid(1920, 1080, s.Fill)
}

func (s *Screen) CaptureRegion(_ context.Context, r facade.Rect) ([]byte, error) {
	return encodeSolid(r.Width, r.Height, s.Fill)
}

func (s *Screen) CaptureWindow(_ context.Context, _ string) ([]byte, error) {
	return encodeSolid(800, 600, s.Fill)
}

func (s *Screen) CaptureMonitor(_ context.Context, _ string) ([]byte, error) {
	return encodeSolid(1920, 1080, s.Fill)
}

func (s *Screen) CaptureWindowRegion(_ context.Context, _ string, r facade.Rect) ([]byte, error) {
	return encodeSolid(r.Width, r.Height, s.Fill)
}

// Display is an in-memory single-monitor Display.
type Display struct {
	Monitor  facade.DisplayInfo
	Cursor   facade.Point
}

func NewDisplay() *Display {
	return &Display{Monitor: facade.DisplayInfo{ID: "display-0", Bounds: facade.Rect{Width: 1920, Height: 1080}, Primary: true, DPI: 96}}
}

func (d *Display) List(_ context.Context) ([]facade.DisplayInfo, error) {
	return []facade.DisplayInfo{d.Monitor}, nil
}

func (d *Display) GetPrimary(_ context.Context) (facade.DisplayInfo, error) {
	return d.Monitor, nil
}

func (d *Display) GetAt(_ context.Context, _ facade.Point) (facade.DisplayInfo, error) {
	return d.Monitor, nil
}

func (d *Display) GetCursorPosition(_ context.Context) (facade.Point, error) {
	return d.Cursor, nil
}

func (d *Display) SetCursorPosition(_ context.Context, p facade.Point) error {
	d.Cursor = p
	return nil
}

package fake

import (
	"context"

	"github.com/joestump/harnessd/internal/facade"
)

// OCR is an in-memory OCR engine that returns a fixed transcript, so
// handler wiring and response shaping can be tested without a real OCR
// backend.
type OCR struct {
	Text string
	Hits []facade.TextHit
}

func NewOCR() *OCR {
	return &OCR{
		Text: "",
		Hits: nil,
	}
}

func (o *OCR) Read(_ context.Context) (string, error) {
	return o.Text, nil
}

func (o *OCR) ReadRegion(_ context.Context, _ facade.Rect) (string, error) {
	return o.Text, nil
}

func (o *OCR) ReadDetailed(_ context.Context, _ facade.Rect) ([]facade.TextHit, error) {
	return o.Hits, nil
}

func (o *OCR) ReadImage(_ context.Context, _ string) (string, error) {
	return o.Text, nil
}

// TemplateMatcher is an in-memory image matcher that never finds a match
// unless a caller sets Match/Found directly (test fixtures can do this).
type TemplateMatcher struct {
	Match facade.Rect
	Found bool
}

func NewTemplateMatcher() *TemplateMatcher { return &TemplateMatcher{} }

func (t *TemplateMatcher) FindImage(_ context.Context, _ string, _ float64) (facade.Rect, bool, error) {
	return t.Match, t.Found, nil
}

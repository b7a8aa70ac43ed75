package fake

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// document is the shared in-memory shape both DocumentReader and HWPReader
// open handles against — enough structure to exercise the catalog's
// office.* commands without a real Office/HWPX parsing backend.
type document struct {
	path      string
	text      string
	tables    [][][]string
	sheets    map[string][][]string
	sheetList []string
	slides    []string
	bookmarks []string
	metadata  map[string]any
}

// DocumentReader is an in-memory Office-family document reader.
type DocumentReader struct {
	mu      sync.Mutex
	nextID  int64
	docs    map[string]*document
	Fixture func(path string) *document
}

func NewDocumentReader() *DocumentReader {
	return &DocumentReader{docs: make(map[string]*document)}
}

func (d *DocumentReader) defaultDoc(path string) *document {
	return &document{
		path:      path,
		text:      "",
		sheets:    map[string][][]string{"Sheet1": {{"a", "b"}, {"1", "2"}}},
		sheetList: []string{"Sheet1"},
		slides:    []string{""},
		bookmarks: nil,
		metadata:  map[string]any{"path": path},
	}
}

func (d *DocumentReader) Open(_ context.Context, path string) (string, error) {
	doc := d.defaultDoc(path)
	if d.Fixture != nil {
		doc = d.Fixture(path)
	}
	id := fmt.Sprintf("doc-%d", atomic.AddInt64(&d.nextID, 1))
	d.mu.Lock()
	d.docs[id] = doc
	d.mu.Unlock()
	return id, nil
}

func (d *DocumentReader) get(docHandle string) (*document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, ok := d.docs[docHandle]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", docHandle)
	}
	return doc, nil
}

func (d *DocumentReader) ReadText(_ context.Context, docHandle string) (string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return "", err
	}
	return doc.text, nil
}

func (d *DocumentReader) ReadTables(_ context.Context, docHandle string) ([][][]string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return nil, err
	}
	return doc.tables, nil
}

func (d *DocumentReader) GetMetadata(_ context.Context, docHandle string) (map[string]any, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return nil, err
	}
	return doc.metadata, nil
}

func (d *DocumentReader) ListBookmarks(_ context.Context, docHandle string) ([]string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return nil, err
	}
	return doc.bookmarks, nil
}

func (d *DocumentReader) GotoBookmark(_ context.Context, docHandle, bookmark string) error {
	doc, err := d.get(docHandle)
	if err != nil {
		return err
	}
	for _, b := range doc.bookmarks {
		if b == bookmark {
			return nil
		}
	}
	return fmt.Errorf("bookmark not found: %s", bookmark)
}

func (d *DocumentReader) ReadSheet(_ context.Context, docHandle, sheetName string) ([][]string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return nil, err
	}
	rows, ok := doc.sheets[sheetName]
	if !ok {
		return nil, fmt.Errorf("sheet not found: %s", sheetName)
	}
	return rows, nil
}

func (d *DocumentReader) ListSheets(_ context.Context, docHandle string) ([]string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return nil, err
	}
	return doc.sheetList, nil
}

func (d *DocumentReader) ExportPDF(_ context.Context, docHandle, _ string) error {
	_, err := d.get(docHandle)
	return err
}

func (d *DocumentReader) ReadSlideText(_ context.Context, docHandle string, slideIndex int) (string, error) {
	doc, err := d.get(docHandle)
	if err != nil {
		return "", err
	}
	if slideIndex < 0 || slideIndex >= len(doc.slides) {
		return "", fmt.Errorf("slide not found: %d", slideIndex)
	}
	return doc.slides[slideIndex], nil
}

// HWPReader is an in-memory HWPX reader sharing the same document handle
// space semantics as DocumentReader but kept as a distinct type, since a
// real implementation would use a wholly different parser.
type HWPReader struct {
	mu     sync.Mutex
	nextID int64
	docs   map[string]*document
}

func NewHWPReader() *HWPReader {
	return &HWPReader{docs: make(map[string]*document)}
}

func (h *HWPReader) Open(_ context.Context, path string) (string, error) {
	id := fmt.Sprintf("hwp-%d", atomic.AddInt64(&h.nextID, 1))
	h.mu.Lock()
	h.docs[id] = &document{path: path, metadata: map[string]any{"path": path}}
	h.mu.Unlock()
	return id, nil
}

func (h *HWPReader) get(docHandle string) (*document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	doc, ok := h.docs[docHandle]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", docHandle)
	}
	return doc, nil
}

func (h *HWPReader) ReadText(_ context.Context, docHandle string) (string, error) {
	doc, err := h.get(docHandle)
	if err != nil {
		return "", err
	}
	return doc.text, nil
}

func (h *HWPReader) GetMetadata(_ context.Context, docHandle string) (map[string]any, error) {
	doc, err := h.get(docHandle)
	if err != nil {
		return nil, err
	}
	return doc.metadata, nil
}

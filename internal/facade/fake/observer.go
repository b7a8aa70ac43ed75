package fake

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joestump/harnessd/internal/facade"
)

// Observer is the snapshot primitive the monitor package's producers diff
// against. It reads the real filesystem (so file-change detection tests
// can exercise an actual directory) but reads processes/windows/clipboard
// from the shared in-memory State and Clipboard fakes.
type Observer struct {
	state     *State
	clipboard *Clipboard
	dialogs   *DialogHandler
}

func NewObserver(s *State, c *Clipboard, d *DialogHandler) *Observer {
	return &Observer{state: s, clipboard: c, dialogs: d}
}

func (o *Observer) ListFiles(_ context.Context, dir string, recursive bool) ([]facade.FileInfo, error) {
	var out []facade.FileInfo
	walk := func(path string, entry os.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if entry.IsDir() && !recursive {
			return filepath.SkipDir
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		out = append(out, facade.FileInfo{
			Path:    path,
			Size:    info.Size(),
			IsDir:   entry.IsDir(),
			ModTime: info.ModTime(),
		})
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *Observer) ListProcesses(ctx context.Context) ([]facade.ProcessInfo, error) {
	return NewProcess(o.state).List(ctx)
}

func (o *Observer) ListWindows(ctx context.Context) ([]facade.WindowInfo, error) {
	return NewWindow(o.state).List(ctx)
}

func (o *Observer) ForegroundWindow(ctx context.Context) (facade.WindowInfo, error) {
	return NewWindow(o.state).GetForeground(ctx)
}

func (o *Observer) ClipboardText(ctx context.Context) (string, error) {
	return o.clipboard.GetText(ctx)
}

func (o *Observer) ListDialogs(ctx context.Context) ([]facade.WindowInfo, error) {
	return o.dialogs.List(ctx)
}

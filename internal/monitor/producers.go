package monitor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/joestump/harnessd/internal/facade"
)

func sleepWithCancel(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func started(monitorType string, config map[string]any) map[string]any {
	event := map[string]any{"type": "monitor_started", "monitorType": monitorType, "timestamp": nowISO()}
	for k, v := range config {
		event[k] = v
	}
	return event
}

// FileProducer wraps fsnotify under dir (recursive) and flushes a queue of
// raw events to the JSONL output roughly every 500ms.
func FileProducer(mgr *Manager, dir string) Producer {
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("file", map[string]any{"target": dir})); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		if err := addRecursive(watcher, dir); err != nil {
			return err
		}

		var queue []map[string]any
		flush := func() {
			for _, e := range queue {
				_ = mgr.WriteEventAsync(outputPath, e)
			}
			queue = nil
		}
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				flush()
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					flush()
					return nil
				}
				kind := ""
				switch {
				case ev.Op&fsnotify.Create != 0:
					kind = "file_created"
				case ev.Op&fsnotify.Write != 0:
					kind = "file_changed"
				case ev.Op&fsnotify.Remove != 0:
					kind = "file_deleted"
				case ev.Op&fsnotify.Rename != 0:
					kind = "file_renamed"
				default:
					continue
				}
				queue = append(queue, map[string]any{"type": kind, "path": ev.Name, "timestamp": nowISO()})
			case <-ticker.C:
				flush()
			case _, ok := <-watcher.Errors:
				if !ok {
					flush()
					return nil
				}
			}
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = watcher.Add(path)
		}
		return nil
	})
}

// ProcessProducer compares the PID set every max(intervalMs, 500).
func ProcessProducer(mgr *Manager, proc facade.Process, intervalMs int) Producer {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval < 500*time.Millisecond {
		interval = 500 * time.Millisecond
	}
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("process", map[string]any{"intervalMs": interval.Milliseconds()})); err != nil {
			return err
		}
		seen := map[int]bool{}
		for {
			list, err := proc.List(ctx)
			if err == nil {
				current := map[int]bool{}
				for _, p := range list {
					current[p.PID] = true
					if !seen[p.PID] {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "process_started", "pid": p.PID, "name": p.Name, "timestamp": nowISO()})
					}
				}
				for pid := range seen {
					if !current[pid] {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "process_exited", "pid": pid, "timestamp": nowISO()})
					}
				}
				seen = current
			}
			if !sleepWithCancel(ctx, interval) {
				return nil
			}
		}
	}
}

type windowState struct {
	title   string
	visible bool
}

// WindowProducer tracks handle -> (title, visible) and the foreground
// handle, emitting created/closed/title-changed/focused events.
func WindowProducer(mgr *Manager, win facade.Window, intervalMs int) Producer {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("window", nil)); err != nil {
			return err
		}
		state := map[string]windowState{}
		foreground := ""
		for {
			list, err := win.List(ctx)
			if err == nil {
				current := map[string]windowState{}
				for _, w := range list {
					current[w.Handle] = windowState{title: w.Title, visible: w.Visible}
					prev, ok := state[w.Handle]
					if !ok {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "window_created", "handle": w.Handle, "title": w.Title, "timestamp": nowISO()})
					} else if prev.title != w.Title {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "window_title_changed", "handle": w.Handle, "title": w.Title, "timestamp": nowISO()})
					}
				}
				for handle := range state {
					if _, ok := current[handle]; !ok {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "window_closed", "handle": handle, "timestamp": nowISO()})
					}
				}
				state = current

				if fg, err := win.GetForeground(ctx); err == nil && fg.Handle != foreground {
					foreground = fg.Handle
					_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "window_focused", "handle": fg.Handle, "timestamp": nowISO()})
				}
			}
			if !sleepWithCancel(ctx, interval) {
				return nil
			}
		}
	}
}

// ClipboardProducer hashes the current clipboard text and emits
// clipboard_changed on a hash change, no more often than every 1000ms.
func ClipboardProducer(mgr *Manager, clip facade.Clipboard, intervalMs int) Producer {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval < time.Second {
		interval = time.Second
	}
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("clipboard", nil)); err != nil {
			return err
		}
		lastHash := ""
		for {
			text, err := clip.GetText(ctx)
			if err == nil {
				sum := sha256.Sum256([]byte(text))
				hash := hex.EncodeToString(sum[:])
				if hash != lastHash {
					if lastHash != "" {
						preview := text
						if len(preview) > 200 {
							preview = preview[:200] + "…"
						}
						_ = mgr.WriteEventAsync(outputPath, map[string]any{
							"type": "clipboard_changed", "preview": preview, "length": len(text), "timestamp": nowISO(),
						})
					}
					lastHash = hash
				}
			}
			if !sleepWithCancel(ctx, interval) {
				return nil
			}
		}
	}
}

// DialogProducer identifies dialog-class windows via the DialogHandler and
// emits appeared/closed events.
func DialogProducer(mgr *Manager, dialogs facade.DialogHandler, intervalMs int) Producer {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("dialog", nil)); err != nil {
			return err
		}
		seen := map[string]bool{}
		for {
			list, err := dialogs.List(ctx)
			if err == nil {
				current := map[string]bool{}
				for _, w := range list {
					current[w.Handle] = true
					if !seen[w.Handle] {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "dialog_appeared", "handle": w.Handle, "title": w.Title, "timestamp": nowISO()})
					}
				}
				for handle := range seen {
					if !current[handle] {
						_ = mgr.WriteEventAsync(outputPath, map[string]any{"type": "dialog_closed", "handle": handle, "timestamp": nowISO()})
					}
				}
				seen = current
			}
			if !sleepWithCancel(ctx, interval) {
				return nil
			}
		}
	}
}

// ScreenProducer hashes captured pixel bytes and, on change, writes a PNG
// snapshot and emits screen_changed. The first capture is the baseline and
// emits no change event.
func ScreenProducer(mgr *Manager, screen facade.Screen, target string, intervalMs int) Producer {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 1000 * time.Millisecond
	}
	return func(ctx context.Context, outputPath string) error {
		if err := mgr.WriteEventAsync(outputPath, started("screen", map[string]any{"target": target})); err != nil {
			return err
		}
		snapshotDir := strippedExt(outputPath) + "-snapshots"
		lastHash := ""
		for {
			var data []byte
			var err error
			if target == "" {
				data, err = screen.Capture(ctx)
			} else {
				data, err = screen.CaptureWindow(ctx, target)
			}
			if err == nil {
				sum := sha256.Sum256(data)
				hash := hex.EncodeToString(sum[:])
				if lastHash == "" {
					lastHash = hash
				} else if hash != lastHash {
					lastHash = hash
					if err := os.MkdirAll(snapshotDir, 0o755); err == nil {
						snapPath := filepath.Join(snapshotDir, fmt.Sprintf("snap-%s.png", time.Now().UTC().Format("20060102-150405.000")))
						if werr := os.WriteFile(snapPath, data, 0o644); werr == nil {
							_ = mgr.WriteEventAsync(outputPath, map[string]any{
								"type": "screen_changed", "path": snapPath, "hash": hash, "timestamp": nowISO(),
							})
						}
					}
				}
			}
			if !sleepWithCancel(ctx, interval) {
				return nil
			}
		}
	}
}

func strippedExt(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)]
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

// registerObserve wires a single composite snapshot command over the
// low-level Observer surface the monitor producers (C8) poll internally.
// It gives a caller the same one-shot view without starting a monitor.
func registerObserve(r *command.Registry, d *Deps) {
	o := d.Caps.Observer

	r.Register(command.Descriptor{
		Name: "observe.snapshot", Category: "observe", Description: "Take a one-shot snapshot of windows, processes, the foreground window, clipboard text, and open dialogs.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			windows, err := o.ListWindows(ctx)
			if err != nil {
				return fail(err)
			}
			processes, err := o.ListProcesses(ctx)
			if err != nil {
				return fail(err)
			}
			foreground, err := o.ForegroundWindow(ctx)
			if err != nil {
				return fail(err)
			}
			clipboard, err := o.ClipboardText(ctx)
			if err != nil {
				return fail(err)
			}
			dialogs, err := o.ListDialogs(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{
				"windowCount":   len(windows),
				"processCount":  len(processes),
				"foreground":    foreground,
				"clipboardText": clipboard,
				"dialogCount":   len(dialogs),
			})
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

// registerCoord wires commands that convert between screen and
// window-relative coordinate spaces. These are pure math over
// window.get's bounds; no dedicated facade surface backs them.
func registerCoord(r *command.Registry, d *Deps) {
	w := d.Caps.Window

	r.Register(command.Descriptor{
		Name: "coord.screen_to_window", Category: "coord", Description: "Convert a screen coordinate into one relative to a window's top-left corner.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "x", Type: command.TypeInt, Required: true, Description: "screen x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "screen y coordinate"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			win, err := w.Get(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"x": reqInt(args, "x") - win.Bounds.X, "y": reqInt(args, "y") - win.Bounds.Y})
		}),
	})

	r.Register(command.Descriptor{
		Name: "coord.window_to_screen", Category: "coord", Description: "Convert a window-relative coordinate into a screen coordinate.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "x", Type: command.TypeInt, Required: true, Description: "window-relative x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "window-relative y coordinate"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			win, err := w.Get(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"x": reqInt(args, "x") + win.Bounds.X, "y": reqInt(args, "y") + win.Bounds.Y})
		}),
	})

	r.Register(command.Descriptor{
		Name: "coord.center_of", Category: "coord", Description: "Get the screen coordinate at the center of a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			win, err := w.Get(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"x": win.Bounds.X + win.Bounds.Width/2, "y": win.Bounds.Y + win.Bounds.Height/2})
		}),
	})

	r.Register(command.Descriptor{
		Name: "coord.clamp_to_window", Category: "coord", Description: "Clamp a window-relative coordinate to stay within the window's bounds.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "x", Type: command.TypeInt, Required: true, Description: "window-relative x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "window-relative y coordinate"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			win, err := w.Get(ctx, handle)
			if err != nil {
				return fail(err)
			}
			x, y := reqInt(args, "x"), reqInt(args, "y")
			x = clamp(x, 0, win.Bounds.Width)
			y = clamp(y, 0, win.Bounds.Height)
			return ok(map[string]any{"x": x, "y": y})
		}),
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

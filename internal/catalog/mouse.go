package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

func registerMouse(r *command.Registry, d *Deps) {
	m := d.Caps.Mouse

	r.Register(command.Descriptor{
		Name: "mouse.click", Category: "mouse", Description: "Click the mouse at a screen coordinate.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button"},
		},
		Handler: mutation(d, "mouse.click", func(ctx context.Context, args map[string]any) result {
			if err := m.Click(ctx, reqInt(args, "x"), reqInt(args, "y"), optString(args, "button")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"clicked": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.click_double", Category: "mouse", Description: "Double-click the mouse at a screen coordinate.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button"},
		},
		Handler: mutation(d, "mouse.click_double", func(ctx context.Context, args map[string]any) result {
			if err := m.DoubleClick(ctx, reqInt(args, "x"), reqInt(args, "y"), optString(args, "button")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"clicked": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.move", Category: "mouse", Description: "Move the mouse cursor to a screen coordinate.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
		},
		Handler: mutation(d, "mouse.move", func(ctx context.Context, args map[string]any) result {
			if err := m.Move(ctx, reqInt(args, "x"), reqInt(args, "y")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"moved": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.drag", Category: "mouse", Description: "Drag the mouse from one coordinate to another.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "fromX", Type: command.TypeInt, Required: true, Description: "start x coordinate"},
			{Name: "fromY", Type: command.TypeInt, Required: true, Description: "start y coordinate"},
			{Name: "toX", Type: command.TypeInt, Required: true, Description: "end x coordinate"},
			{Name: "toY", Type: command.TypeInt, Required: true, Description: "end y coordinate"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button"},
		},
		Handler: mutation(d, "mouse.drag", func(ctx context.Context, args map[string]any) result {
			from := facade.Point{X: reqInt(args, "fromX"), Y: reqInt(args, "fromY")}
			to := facade.Point{X: reqInt(args, "toX"), Y: reqInt(args, "toY")}
			if err := m.Drag(ctx, from, to, optString(args, "button")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"dragged": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.scroll", Category: "mouse", Description: "Scroll the mouse wheel vertically and horizontally.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "dx", Type: command.TypeInt, Required: false, DefaultValue: "0", Description: "horizontal scroll amount"},
			{Name: "dy", Type: command.TypeInt, Required: true, Description: "vertical scroll amount"},
		},
		Handler: mutation(d, "mouse.scroll", func(ctx context.Context, args map[string]any) result {
			if err := m.Scroll(ctx, reqInt(args, "dx"), reqInt(args, "dy")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"scrolled": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.drag_window", Category: "mouse", Description: "Drag a window by its handle to a new position.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "toX", Type: command.TypeInt, Required: true, Description: "target x coordinate"},
			{Name: "toY", Type: command.TypeInt, Required: true, Description: "target y coordinate"},
		},
		Handler: mutation(d, "mouse.drag_window", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			to := facade.Point{X: reqInt(args, "toX"), Y: reqInt(args, "toY")}
			if err := m.DragWindow(ctx, handle, to); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.scroll_horizontal", Category: "mouse", Description: "Scroll the mouse wheel horizontally.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "amount", Type: command.TypeInt, Required: true, Description: "horizontal scroll amount"}},
		Handler: mutation(d, "mouse.scroll_horizontal", func(ctx context.Context, args map[string]any) result {
			if err := m.ScrollHorizontal(ctx, reqInt(args, "amount")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"scrolled": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.button_down", Category: "mouse", Description: "Press and hold a mouse button.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button"}},
		Handler: mutation(d, "mouse.button_down", func(ctx context.Context, args map[string]any) result {
			if err := m.ButtonDown(ctx, optString(args, "button")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"pressed": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.button_up", Category: "mouse", Description: "Release a held mouse button.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button"}},
		Handler: mutation(d, "mouse.button_up", func(ctx context.Context, args map[string]any) result {
			if err := m.ButtonUp(ctx, optString(args, "button")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"released": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.smooth_move", Category: "mouse", Description: "Move the mouse smoothly to a coordinate over a duration.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
			{Name: "durationMs", Type: command.TypeInt, Required: false, DefaultValue: "250", Description: "movement duration in milliseconds"},
		},
		Handler: mutation(d, "mouse.smooth_move", func(ctx context.Context, args map[string]any) result {
			to := facade.Point{X: reqInt(args, "x"), Y: reqInt(args, "y")}
			if err := m.SmoothMove(ctx, to, reqInt(args, "durationMs")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"moved": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "mouse.get", Category: "mouse", Description: "Get the current mouse cursor position.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			p, err := m.Position(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(p)
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

func registerDisplay(r *command.Registry, d *Deps) {
	disp := d.Caps.Display

	r.Register(command.Descriptor{
		Name: "display.list", Category: "display", Description: "List every connected monitor.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := disp.List(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "display.get_primary", Category: "display", Description: "Get the primary monitor.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			info, err := disp.GetPrimary(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "display.get_at", Category: "display", Description: "Get the monitor containing a screen coordinate.",
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			p := facade.Point{X: reqInt(args, "x"), Y: reqInt(args, "y")}
			info, err := disp.GetAt(ctx, p)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "display.get_cursor_position", Category: "display", Description: "Get the current pointer position.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			p, err := disp.GetCursorPosition(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(p)
		}),
	})

	r.Register(command.Descriptor{
		Name: "display.set_cursor_position", Category: "display", Description: "Set the pointer position.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
		},
		Handler: mutation(d, "display.set_cursor_position", func(ctx context.Context, args map[string]any) result {
			p := facade.Point{X: reqInt(args, "x"), Y: reqInt(args, "y")}
			if err := disp.SetCursorPosition(ctx, p); err != nil {
				return fail(err)
			}
			return ok(p)
		}),
	})
}

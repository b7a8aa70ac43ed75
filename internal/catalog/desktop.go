package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerDesktop(r *command.Registry, d *Deps) {
	vd := d.Caps.VirtualDesktop

	r.Register(command.Descriptor{
		Name: "desktop.list", Category: "desktop", Description: "List every virtual desktop.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := vd.List(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "desktop.current", Category: "desktop", Description: "Get the id of the currently active virtual desktop.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			id, err := vd.Current(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"id": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "desktop.switch_to", Category: "desktop", Description: "Switch to a virtual desktop.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "id", Type: command.TypeString, Required: true, Description: "virtual desktop id"}},
		Handler: mutation(d, "desktop.switch_to", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "id")
			if err != nil {
				return fail(err)
			}
			if err := vd.SwitchTo(ctx, id); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"id": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "desktop.move_window", Category: "desktop", Description: "Move a window to a virtual desktop.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "desktopId", Type: command.TypeString, Required: true, Description: "virtual desktop id"},
		},
		Handler: mutation(d, "desktop.move_window", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			desktopID, err := reqString(args, "desktopId")
			if err != nil {
				return fail(err)
			}
			if err := vd.MoveWindow(ctx, handle, desktopID); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle, "desktopId": desktopID})
		}),
	})
}

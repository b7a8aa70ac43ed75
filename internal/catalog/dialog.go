package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerDialog(r *command.Registry, d *Deps) {
	h := d.Caps.DialogHandler

	r.Register(command.Descriptor{
		Name: "dialog.list", Category: "dialog", Description: "List currently open dialog windows.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := h.List(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "dialog.accept", Category: "dialog", Description: "Accept a dialog (its default/OK action).",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "dialog window handle"}},
		Handler: mutation(d, "dialog.accept", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := h.Accept(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "dialog.dismiss", Category: "dialog", Description: "Dismiss a dialog (its cancel/close action).",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "dialog window handle"}},
		Handler: mutation(d, "dialog.dismiss", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := h.Dismiss(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})
}

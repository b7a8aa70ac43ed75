package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
)

func registerUpdate(r *command.Registry, d *Deps) {
	u := d.Caps.Updater

	r.Register(command.Descriptor{
		Name: "update.check", Category: "update", Description: "Check whether a newer daemon release is available.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			info, err := u.CheckForUpdate(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "update.apply", Category: "update", Description: "Download and install the latest release, if one is available.",
		IsMutation: true,
		Handler: mutation(d, "update.apply", func(ctx context.Context, args map[string]any) result {
			info, err := u.CheckForUpdate(ctx)
			if err != nil {
				return fail(errWithCode(envelope.CodeUpdateFailed, err.Error()))
			}
			if !info.Available {
				return ok(map[string]any{"applied": false, "reason": "already up to date"})
			}
			if err := u.ApplyUpdate(ctx, info); err != nil {
				return fail(errWithCode(envelope.CodeUpdateFailed, err.Error()))
			}
			return ok(map[string]any{"applied": true, "version": info.LatestVersion})
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerRecord(r *command.Registry, d *Deps) {
	rec := d.Caps.ActionRecorder

	r.Register(command.Descriptor{
		Name: "record.start", Category: "record", Description: "Start recording the user's input actions.",
		IsMutation: true,
		Handler: mutation(d, "record.start", func(ctx context.Context, args map[string]any) result {
			if err := rec.Start(ctx); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"recording": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "record.stop", Category: "record", Description: "Stop recording and return the captured actions.",
		IsMutation: true,
		Handler: mutation(d, "record.stop", func(ctx context.Context, args map[string]any) result {
			actions, err := rec.Stop(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(actions, len(actions)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "record.status", Category: "record", Description: "Check whether action recording is currently active.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			recording, err := rec.IsRecording(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(check(recording, "recording"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "record.clear", Category: "record", Description: "Discard any captured actions without stopping recording.",
		IsMutation: true,
		Handler: mutation(d, "record.clear", func(ctx context.Context, args map[string]any) result {
			if err := rec.Clear(ctx); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"cleared": true})
		}),
	})
}

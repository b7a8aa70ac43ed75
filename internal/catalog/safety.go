package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
	"github.com/joestump/harnessd/internal/safezone"
)

func registerSafety(r *command.Registry, d *Deps) {
	r.Register(command.Descriptor{
		Name: "safety.action_log_get", Category: "safety", Description: "Get the most recent entries from the action log.",
		Parameters: []command.Param{{Name: "limit", Type: command.TypeInt, Required: false, DefaultValue: "20", Description: "maximum number of records to return"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			recent := d.Log.GetRecent(reqInt(args, "limit"))
			return ok(items(recent, len(recent)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.action_log_clear", Category: "safety", Description: "Clear the action log.",
		IsMutation: true,
		Handler: mutation(d, "safety.action_log_clear", func(ctx context.Context, args map[string]any) result {
			d.Log.Clear()
			return ok(map[string]any{"cleared": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.rate_limit_status", Category: "safety", Description: "Get the current rate limit and the admitted-mutation rate for the current window.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			return ok(map[string]any{
				"limit":       d.Limiter.Limit(),
				"currentRate": d.Limiter.CurrentRate(),
			})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.safe_zone_set", Category: "safety", Description: "Restrict input-synthesis mutations to a window, optionally further narrowed to a pixel region within it.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "window", Type: command.TypeString, Required: true, Description: "window title or handle the zone is scoped to"},
			{Name: "x", Type: command.TypeInt, Required: false, Description: "region left, in window-relative pixels"},
			{Name: "y", Type: command.TypeInt, Required: false, Description: "region top, in window-relative pixels"},
			{Name: "width", Type: command.TypeInt, Required: false, Description: "region width in pixels"},
			{Name: "height", Type: command.TypeInt, Required: false, Description: "region height in pixels"},
		},
		Handler: mutation(d, "safety.safe_zone_set", func(ctx context.Context, args map[string]any) result {
			window, err := reqString(args, "window")
			if err != nil {
				return fail(err)
			}
			var region *safezone.Rect
			if w, h := reqInt(args, "width"), reqInt(args, "height"); w > 0 && h > 0 {
				region = &safezone.Rect{X: reqInt(args, "x"), Y: reqInt(args, "y"), Width: w, Height: h}
			}
			d.SafeZone.Set(window, region)
			return ok(map[string]any{"window": window})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.safe_zone_get", Category: "safety", Description: "Get the current safe-zone restriction, if any.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			cfg := d.SafeZone.Current()
			if cfg == nil {
				return ok(map[string]any{"configured": false})
			}
			return ok(map[string]any{"configured": true, "window": cfg.Window, "region": cfg.Region})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.safe_zone_clear", Category: "safety", Description: "Remove the current safe-zone restriction.",
		IsMutation: true,
		Handler: mutation(d, "safety.safe_zone_clear", func(ctx context.Context, args map[string]any) result {
			d.SafeZone.Clear()
			return ok(map[string]any{"cleared": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.estop_trigger", Category: "safety", Description: "Trip the emergency stop, cancelling any in-flight cancellable operations and stopping every running monitor.",
		IsMutation: true,
		Handler: mutation(d, "safety.estop_trigger", func(ctx context.Context, args map[string]any) result {
			d.EStop.Trigger()
			stopped := 0
			for _, m := range d.Monitors.ListActive() {
				if d.Monitors.Stop(m.ID) {
					stopped++
				}
			}
			return ok(map[string]any{"triggered": true, "monitorsStopped": stopped})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.estop_reset", Category: "safety", Description: "Clear a tripped emergency stop and install a fresh signal for future operations.",
		IsMutation: true,
		Handler: mutation(d, "safety.estop_reset", func(ctx context.Context, args map[string]any) result {
			d.EStop.Reset()
			return ok(map[string]any{"triggered": false})
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.estop_status", Category: "safety", Description: "Check whether the emergency stop is currently tripped.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			return ok(check(d.EStop.IsTriggered(), "estop"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.confirm_create", Category: "safety", Description: "Open a pending out-of-band confirmation request for a dangerous action, written to a file an external approver can edit.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "action", Type: command.TypeString, Required: true, Description: "description of the action awaiting approval"},
			{Name: "reason", Type: command.TypeString, Required: false, Description: "why confirmation is being requested"},
		},
		Handler: mutation(d, "safety.confirm_create", func(ctx context.Context, args map[string]any) result {
			action, err := reqString(args, "action")
			if err != nil {
				return fail(err)
			}
			req, err := d.Confirm.Create(action, optString(args, "reason"))
			if err != nil {
				return fail(err)
			}
			return ok(req)
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.confirm_check", Category: "safety", Description: "Re-read a confirmation request's on-disk file and report its current status.",
		Parameters: []command.Param{{Name: "id", Type: command.TypeString, Required: true, Description: "confirmation request id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "id")
			if err != nil {
				return fail(err)
			}
			req, err := d.Confirm.Check(id)
			if err != nil {
				return fail(errWithCode(envelope.CodeNotFound, "confirmation request not found"))
			}
			return ok(req)
		}),
	})

	r.Register(command.Descriptor{
		Name: "safety.confirm_list_pending", Category: "safety", Description: "List all confirmation requests still awaiting approval.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			pending := d.Confirm.ListPending()
			return ok(items(pending, len(pending)))
		}),
	})
}

package catalog

import (
	"context"
	"time"

	"github.com/joestump/harnessd/internal/command"
)

func registerSession(r *command.Registry, d *Deps) {
	r.Register(command.Descriptor{
		Name: "session.status", Category: "session", Description: "Get an overview of the running automation session: uptime, recent action count, active monitors, and safety state.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			zone := "none"
			if cfg := d.SafeZone.Current(); cfg != nil {
				zone = cfg.Window
			}
			return ok(map[string]any{
				"startedAt":      d.Session.StartedAt().Format(time.RFC3339),
				"uptimeMs":       d.Session.Uptime(time.Now()).Milliseconds(),
				"recentActions":  d.Log.Len(),
				"activeMonitors": len(d.Monitors.ListActive()),
				"estopTriggered": d.EStop.IsTriggered(),
				"safeZone":       zone,
			})
		}),
	})

	r.Register(command.Descriptor{
		Name: "session.uptime", Category: "session", Description: "Get how long the current automation session has been running.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			return ok(map[string]any{"uptimeMs": d.Session.Uptime(time.Now()).Milliseconds()})
		}),
	})

	r.Register(command.Descriptor{
		Name: "session.get_recent_actions", Category: "session", Description: "Get the most recently dispatched mutations from the action log.",
		Parameters: []command.Param{{Name: "limit", Type: command.TypeInt, Required: false, DefaultValue: "20", Description: "maximum number of records to return"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			recent := d.Log.GetRecent(reqInt(args, "limit"))
			return ok(items(recent, len(recent)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "session.reset", Category: "session", Description: "Clear the action log, starting a fresh record of mutations.",
		IsMutation: true,
		Handler: mutation(d, "session.reset", func(ctx context.Context, args map[string]any) result {
			d.Log.Clear()
			return ok(map[string]any{"cleared": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "session.redact", Category: "session", Description: "Replace known secret values in a string with [REDACTED:...] placeholders.",
		Parameters: []command.Param{{Name: "text", Type: command.TypeString, Required: true, Description: "text to scrub"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			text, _ := args["text"].(string)
			return ok(content(d.Secrets.Redact(text), "text"))
		}),
	})
}

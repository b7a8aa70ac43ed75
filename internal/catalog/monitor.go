package catalog

import (
	"context"
	"time"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
	"github.com/joestump/harnessd/internal/monitor"
)

func registerMonitor(r *command.Registry, d *Deps) {
	mgr := d.Monitors

	r.Register(command.Descriptor{
		Name: "monitor.start", Category: "monitor", Description: "Start a background monitor that appends JSONL events to outputPath.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "kind", Type: command.TypeString, Required: true, Description: "monitor kind: file, process, window, clipboard, dialog, or screen"},
			{Name: "outputPath", Type: command.TypeString, Required: true, Description: "JSONL file to append events to"},
			{Name: "target", Type: command.TypeString, Required: false, DefaultValue: `""`, Description: "kind-specific target: a directory for file, a window handle for screen"},
			{Name: "intervalMs", Type: command.TypeInt, Required: false, DefaultValue: "1000", Description: "polling interval in milliseconds"},
		},
		Handler: mutation(d, "monitor.start", func(ctx context.Context, args map[string]any) result {
			kind, err := reqString(args, "kind")
			if err != nil {
				return fail(err)
			}
			outputPath, err := reqString(args, "outputPath")
			if err != nil {
				return fail(err)
			}
			target := optString(args, "target")
			interval := reqInt(args, "intervalMs")

			var producer monitor.Producer
			switch kind {
			case "file":
				if target == "" {
					return fail(errWithCode(envelope.CodeInvalidParameter, "Parameter 'target' is required for kind 'file'"))
				}
				producer = monitor.FileProducer(mgr, target)
			case "process":
				producer = monitor.ProcessProducer(mgr, d.Caps.Process, interval)
			case "window":
				producer = monitor.WindowProducer(mgr, d.Caps.Window, interval)
			case "clipboard":
				producer = monitor.ClipboardProducer(mgr, d.Caps.Clipboard, interval)
			case "dialog":
				producer = monitor.DialogProducer(mgr, d.Caps.DialogHandler, interval)
			case "screen":
				producer = monitor.ScreenProducer(mgr, d.Caps.Screen, target, interval)
			default:
				return fail(errWithCode(envelope.CodeInvalidParameter, "Parameter 'kind' must be one of: file, process, window, clipboard, dialog, screen"))
			}

			id := mgr.Start(kind, outputPath, producer)
			return ok(map[string]any{"id": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "monitor.stop", Category: "monitor", Description: "Stop a running monitor by id.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "id", Type: command.TypeString, Required: true, Description: "monitor id"}},
		Handler: mutation(d, "monitor.stop", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "id")
			if err != nil {
				return fail(err)
			}
			if !mgr.Stop(id) {
				return fail(errWithCode(envelope.CodeMonitorNotFound, "monitor not found: "+id))
			}
			return ok(map[string]any{"id": id, "stopped": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "monitor.list", Category: "monitor", Description: "List every currently running monitor.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list := mgr.ListActive()
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "monitor.read", Category: "monitor", Description: "Read the events a monitor has appended to its JSONL output, optionally since a timestamp.",
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "JSONL output path"},
			{Name: "since", Type: command.TypeNullableString, Required: false, DefaultValue: "null", Description: "RFC3339 timestamp; only events strictly after it are returned"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			var since *time.Time
			if raw, ok := args["since"].(string); ok && raw != "" {
				parsed, err := time.Parse(time.RFC3339Nano, raw)
				if err != nil {
					return fail(errWithCode(envelope.CodeInvalidParameter, "Parameter 'since' must be an RFC3339 timestamp"))
				}
				since = &parsed
			}
			events, err := mgr.ReadEventsAsync(path, since)
			if err != nil {
				return fail(err)
			}
			return ok(items(events, len(events)))
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

// registerApp wires an application-lifecycle layer over Process and
// Observer: an "app" is just a process that owns at least one top-level
// window. There is no dedicated facade surface for this distinction; it is
// computed from the existing Process/Observer surfaces.
func registerApp(r *command.Registry, d *Deps) {
	r.Register(command.Descriptor{
		Name: "app.list", Category: "app", Description: "List running applications: distinct processes that currently own a top-level window.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			windows, err := d.Caps.Observer.ListWindows(ctx)
			if err != nil {
				return fail(err)
			}
			seen := make(map[int]bool)
			var apps []map[string]any
			for _, w := range windows {
				if seen[w.ProcessID] {
					continue
				}
				seen[w.ProcessID] = true
				apps = append(apps, map[string]any{"pid": w.ProcessID, "title": w.Title})
			}
			return ok(items(apps, len(apps)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "app.launch", Category: "app", Description: "Launch an application by executable path.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "executable path"},
			{Name: "args", Type: command.ParamType("array"), Required: false, DefaultValue: "[]", Description: "command-line arguments"},
		},
		Handler: mutation(d, "app.launch", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			argv, err := reqStringSlice(args, "args")
			if err != nil {
				return fail(err)
			}
			pid, err := d.Caps.Process.Start(ctx, path, argv)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"pid": pid})
		}),
	})

	r.Register(command.Descriptor{
		Name: "app.quit", Category: "app", Description: "Quit every running instance of an application by executable name.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "name", Type: command.TypeString, Required: true, Description: "executable name"}},
		Handler: mutation(d, "app.quit", func(ctx context.Context, args map[string]any) result {
			name, err := reqString(args, "name")
			if err != nil {
				return fail(err)
			}
			count, err := d.Caps.Process.StopByName(ctx, name)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"stopped": count})
		}),
	})
}

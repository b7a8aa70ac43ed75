package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerProcess(r *command.Registry, d *Deps) {
	p := d.Caps.Process

	r.Register(command.Descriptor{
		Name: "process.list", Category: "process", Description: "List every running process.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := p.List(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.get_info", Category: "process", Description: "Get details for one process by pid.",
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			info, err := p.GetInfo(ctx, reqInt(args, "pid"))
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.check", Category: "process", Description: "Check whether a process is currently running.",
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			running, err := p.Check(ctx, reqInt(args, "pid"))
			if err != nil {
				return fail(err)
			}
			return ok(check(running, ""))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.wait_exit", Category: "process", Description: "Wait for a process to exit.",
		Parameters: []command.Param{
			{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			if err := p.WaitExit(ctx, reqInt(args, "pid"), timeout); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"exited": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.list_by_window", Category: "process", Description: "List the processes that own a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			list, err := p.ListByWindow(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.find_by_port", Category: "process", Description: "Find processes listening on a network port.",
		Parameters: []command.Param{{Name: "port", Type: command.TypeInt, Required: true, Description: "network port"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := p.FindByPort(ctx, reqInt(args, "port"))
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.find_by_path", Category: "process", Description: "Find processes whose executable matches a path.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "executable path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			list, err := p.FindByPath(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.get_children", Category: "process", Description: "List the child processes of a process.",
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := p.GetChildren(ctx, reqInt(args, "pid"))
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.find_by_window", Category: "process", Description: "Find the process that owns a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			info, err := p.FindByWindow(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.start", Category: "process", Description: "Start a new process.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "executable path"},
			{Name: "args", Type: command.ParamType("array"), Required: false, DefaultValue: "[]", Description: "command-line arguments"},
		},
		Handler: mutation(d, "process.start", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			argv, err := reqStringSlice(args, "args")
			if err != nil {
				return fail(err)
			}
			pid, err := p.Start(ctx, path, argv)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"pid": pid})
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.start_advanced", Category: "process", Description: "Start a new process with a working directory and environment overrides.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "executable path"},
			{Name: "args", Type: command.ParamType("array"), Required: false, DefaultValue: "[]", Description: "command-line arguments"},
			{Name: "cwd", Type: command.TypeString, Required: false, DefaultValue: `""`, Description: "working directory"},
			{Name: "env", Type: command.ParamType("map"), Required: false, DefaultValue: "{}", Description: "environment variable overrides"},
		},
		Handler: mutation(d, "process.start_advanced", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			argv, err := reqStringSlice(args, "args")
			if err != nil {
				return fail(err)
			}
			env, err := optStringMap(args, "env")
			if err != nil {
				return fail(err)
			}
			pid, err := p.StartAdvanced(ctx, path, argv, optString(args, "cwd"), env)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"pid": pid})
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.stop", Category: "process", Description: "Stop a process by pid.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: mutation(d, "process.stop", func(ctx context.Context, args map[string]any) result {
			pid := reqInt(args, "pid")
			if err := p.Stop(ctx, pid); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"pid": pid, "stopped": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.stop_by_name", Category: "process", Description: "Stop every process matching an executable name.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "name", Type: command.TypeString, Required: true, Description: "executable name"}},
		Handler: mutation(d, "process.stop_by_name", func(ctx context.Context, args map[string]any) result {
			name, err := reqString(args, "name")
			if err != nil {
				return fail(err)
			}
			count, err := p.StopByName(ctx, name)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"stopped": count})
		}),
	})

	r.Register(command.Descriptor{
		Name: "process.stop_tree", Category: "process", Description: "Stop a process and all of its descendants.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: mutation(d, "process.stop_tree", func(ctx context.Context, args map[string]any) result {
			count, err := p.StopTree(ctx, reqInt(args, "pid"))
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"stopped": count})
		}),
	})
}

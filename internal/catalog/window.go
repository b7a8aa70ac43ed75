package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerWindow(r *command.Registry, d *Deps) {
	w := d.Caps.Window

	r.Register(command.Descriptor{
		Name: "window.list", Category: "window", Description: "List every top-level window.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := w.List(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.get", Category: "window", Description: "Get details for one window by handle.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			win, err := w.Get(ctx, optString(args, "handle"))
			if err != nil {
				return fail(err)
			}
			return ok(win)
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.get_foreground", Category: "window", Description: "Get the currently focused window.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			win, err := w.GetForeground(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(win)
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.focus", Category: "window", Description: "Bring a window to the foreground.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.focus", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Focus(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.resize", Category: "window", Description: "Resize a window to the given width and height.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "width", Type: command.TypeInt, Required: true, Description: "new width in pixels"},
			{Name: "height", Type: command.TypeInt, Required: true, Description: "new height in pixels"},
		},
		Handler: mutation(d, "window.resize", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			width, height := reqInt(args, "width"), reqInt(args, "height")
			if err := validDimensions(width, height); err != nil {
				return fail(err)
			}
			if err := w.Resize(ctx, handle, width, height); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.close", Category: "window", Description: "Close a window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.close", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Close(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.minimize", Category: "window", Description: "Minimize a window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.minimize", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Minimize(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.maximize", Category: "window", Description: "Maximize a window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.maximize", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Maximize(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.restore", Category: "window", Description: "Restore a minimized or maximized window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.restore", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Restore(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.move", Category: "window", Description: "Move a window to the given screen coordinates.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "x", Type: command.TypeInt, Required: true, Description: "target x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "target y coordinate"},
		},
		Handler: mutation(d, "window.move", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Move(ctx, handle, reqInt(args, "x"), reqInt(args, "y")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.hide", Category: "window", Description: "Hide a window without closing it.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.hide", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Hide(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.show", Category: "window", Description: "Show a previously hidden window.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: mutation(d, "window.show", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.Show(ctx, handle); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.set_always_on_top", Category: "window", Description: "Toggle whether a window stays above others.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "on", Type: command.TypeBool, Required: true, Description: "whether to enable always-on-top"},
		},
		Handler: mutation(d, "window.set_always_on_top", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.SetAlwaysOnTop(ctx, handle, reqBool(args, "on")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.set_opacity", Category: "window", Description: "Set a window's opacity between 0 and 1.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "opacity", Type: command.TypeDouble, Required: true, Description: "opacity from 0.0 to 1.0"},
		},
		Handler: mutation(d, "window.set_opacity", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			if err := w.SetOpacity(ctx, handle, reqFloat(args, "opacity")); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.wait", Category: "window", Description: "Wait for a window whose title contains a substring.",
		Parameters: []command.Param{
			{Name: "titleContains", Type: command.TypeString, Required: false, DefaultValue: `""`, Description: "substring to match against window titles"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			win, err := w.Wait(ctx, optString(args, "titleContains"), timeout)
			if err != nil {
				return fail(err)
			}
			return ok(win)
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.wait_close", Category: "window", Description: "Wait for a window to close.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			if err := w.WaitClose(ctx, handle, timeout); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle, "closed": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.wait_idle", Category: "window", Description: "Wait for a window to stop actively updating.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			if err := w.WaitIdle(ctx, handle, timeout); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle, "idle": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.get_children", Category: "window", Description: "List child windows of a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			list, err := w.GetChildren(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "window.find_by_pid", Category: "window", Description: "Find windows owned by a process.",
		Parameters: []command.Param{{Name: "pid", Type: command.TypeInt, Required: true, Description: "process id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			list, err := w.FindByPID(ctx, reqInt(args, "pid"))
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})
}

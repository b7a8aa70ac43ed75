package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

func registerUI(r *command.Registry, d *Deps) {
	u := d.Caps.UIAutomation

	r.Register(command.Descriptor{
		Name: "ui.get_focused", Category: "ui", Description: "Get the currently focused UI element.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			el, err := u.GetFocused(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(el)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.get_tree", Category: "ui", Description: "Get the full UI element tree of a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			el, err := u.GetTree(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(el)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.find", Category: "ui", Description: "Find a UI element within a window by selector.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "selector", Type: command.TypeString, Required: true, Description: "element selector"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			selector, err := reqString(args, "selector")
			if err != nil {
				return fail(err)
			}
			el, err := u.Find(ctx, handle, selector)
			if err != nil {
				return fail(err)
			}
			return ok(el)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.wait_element", Category: "ui", Description: "Wait for a UI element matching a selector to appear.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "selector", Type: command.TypeString, Required: true, Description: "element selector"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			selector, err := reqString(args, "selector")
			if err != nil {
				return fail(err)
			}
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			el, err := u.WaitElement(ctx, handle, selector, timeout)
			if err != nil {
				return fail(err)
			}
			return ok(el)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.annotate", Category: "ui", Description: "Render a window screenshot with clickable elements outlined.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			data, err := u.Annotate(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.detect_clickables", Category: "ui", Description: "Detect the clickable elements within a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			list, err := u.DetectClickables(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.detect_inputs", Category: "ui", Description: "Detect the text input elements within a window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			list, err := u.DetectInputs(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.get_at", Category: "ui", Description: "Get the UI element at a screen coordinate.",
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x coordinate"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y coordinate"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			p := facade.Point{X: reqInt(args, "x"), Y: reqInt(args, "y")}
			el, err := u.GetAt(ctx, p)
			if err != nil {
				return fail(err)
			}
			return ok(el)
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.click", Category: "ui", Description: "Click a UI element by id.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"}},
		Handler: mutation(d, "ui.click", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			if err := u.Click(ctx, id); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.set_value", Category: "ui", Description: "Set a UI element's value directly.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"},
			{Name: "value", Type: command.TypeString, Required: true, Description: "new value"},
		},
		Handler: mutation(d, "ui.set_value", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			value, _ := args["value"].(string)
			if err := u.SetValue(ctx, id, value); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.type_into", Category: "ui", Description: "Type text into a UI element.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"},
			{Name: "text", Type: command.TypeString, Required: true, Description: "text to type"},
		},
		Handler: mutation(d, "ui.type_into", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			text, _ := args["text"].(string)
			if err := u.TypeInto(ctx, id, text); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.invoke", Category: "ui", Description: "Invoke a UI element's default action.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"}},
		Handler: mutation(d, "ui.invoke", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			if err := u.Invoke(ctx, id); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.select_menu", Category: "ui", Description: "Select a menu item by path, e.g. \"File > Save As\".",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "path", Type: command.TypeString, Required: true, Description: "menu path"},
		},
		Handler: mutation(d, "ui.select_menu", func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			if err := u.SelectMenu(ctx, handle, path); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"path": path})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.select", Category: "ui", Description: "Select an option within a list or combo-box element.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"},
			{Name: "option", Type: command.TypeString, Required: true, Description: "option to select"},
		},
		Handler: mutation(d, "ui.select", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			option, err := reqString(args, "option")
			if err != nil {
				return fail(err)
			}
			if err := u.Select(ctx, id, option); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})

	r.Register(command.Descriptor{
		Name: "ui.expand", Category: "ui", Description: "Expand a collapsible UI element, such as a tree node.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "elementId", Type: command.TypeString, Required: true, Description: "UI element id"}},
		Handler: mutation(d, "ui.expand", func(ctx context.Context, args map[string]any) result {
			id, err := reqString(args, "elementId")
			if err != nil {
				return fail(err)
			}
			if err := u.Expand(ctx, id); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"elementId": id})
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerKeyboard(r *command.Registry, d *Deps) {
	k := d.Caps.Keyboard

	r.Register(command.Descriptor{
		Name: "keyboard.type", Category: "keyboard", Description: "Type a string of text.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "text", Type: command.TypeString, Required: true, Description: "text to type"}},
		Handler: mutation(d, "keyboard.type", func(ctx context.Context, args map[string]any) result {
			text, err := reqString(args, "text")
			if err != nil {
				return fail(err)
			}
			if err := k.Type(ctx, text); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"typed": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.press", Category: "keyboard", Description: "Press and release a single key.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "key name"}},
		Handler: mutation(d, "keyboard.press", func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			if err := k.Press(ctx, key); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"key": key})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.key_down", Category: "keyboard", Description: "Press and hold a key.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "key name"}},
		Handler: mutation(d, "keyboard.key_down", func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			if err := k.KeyDown(ctx, key); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"key": key})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.key_up", Category: "keyboard", Description: "Release a held key.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "key name"}},
		Handler: mutation(d, "keyboard.key_up", func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			if err := k.KeyUp(ctx, key); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"key": key})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.toggle_lock", Category: "keyboard", Description: "Toggle a lock key such as caps lock or num lock.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "lock key name"}},
		Handler: mutation(d, "keyboard.toggle_lock", func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			if err := k.ToggleLock(ctx, key); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"key": key})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.hotkey", Category: "keyboard", Description: "Press a combination of keys together.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "keys", Type: command.ParamType("array"), Required: true, Description: "keys to press together, e.g. [\"ctrl\", \"c\"]"}},
		Handler: mutation(d, "keyboard.hotkey", func(ctx context.Context, args map[string]any) result {
			keys, err := reqStringSlice(args, "keys")
			if err != nil {
				return fail(err)
			}
			if err := k.Hotkey(ctx, keys); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"keys": keys})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.hotkey_wait", Category: "keyboard", Description: "Press a key combination and wait up to a timeout for it to register.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "keys", Type: command.ParamType("array"), Required: true, Description: "keys to press together"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait, in milliseconds"},
		},
		Handler: mutation(d, "keyboard.hotkey_wait", func(ctx context.Context, args map[string]any) result {
			keys, err := reqStringSlice(args, "keys")
			if err != nil {
				return fail(err)
			}
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			if err := k.HotkeyWait(ctx, keys, timeout); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"keys": keys})
		}),
	})

	r.Register(command.Descriptor{
		Name: "keyboard.is_pressed", Category: "keyboard", Description: "Check whether a key is currently held down.",
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "key name"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			pressed, err := k.IsPressed(ctx, key)
			if err != nil {
				return fail(err)
			}
			return ok(check(pressed, key))
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerClipboard(r *command.Registry, d *Deps) {
	c := d.Caps.Clipboard

	r.Register(command.Descriptor{
		Name: "clipboard.get_text", Category: "clipboard", Description: "Get the clipboard's plain-text contents.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			text, err := c.GetText(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, ""))
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.get_html", Category: "clipboard", Description: "Get the clipboard's HTML contents.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			html, err := c.GetHTML(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(content(html, "html"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.get_image", Category: "clipboard", Description: "Get the clipboard's image contents as base64.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			b64, err := c.GetImageBase64(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"imageBase64": b64, "format": "png"})
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.get_files", Category: "clipboard", Description: "Get the file paths currently on the clipboard.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			paths, err := c.GetFiles(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(items(paths, len(paths)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.get_formats", Category: "clipboard", Description: "List the data formats currently available on the clipboard.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			formats, err := c.GetFormats(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(formats)
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.set_text", Category: "clipboard", Description: "Set the clipboard's plain-text contents.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "text", Type: command.TypeString, Required: true, Description: "text to place on the clipboard"}},
		Handler: mutation(d, "clipboard.set_text", func(ctx context.Context, args map[string]any) result {
			text, err := reqString(args, "text")
			if err != nil {
				return fail(err)
			}
			if err := c.SetText(ctx, text); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"set": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.set_image", Category: "clipboard", Description: "Set the clipboard's image contents from base64-encoded image data.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "imageBase64", Type: command.TypeString, Required: true, Description: "base64-encoded image data"}},
		Handler: mutation(d, "clipboard.set_image", func(ctx context.Context, args map[string]any) result {
			data, err := reqString(args, "imageBase64")
			if err != nil {
				return fail(err)
			}
			if err := c.SetImageBase64(ctx, data); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"set": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.set_html", Category: "clipboard", Description: "Set the clipboard's HTML contents.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "html", Type: command.TypeString, Required: true, Description: "HTML markup to place on the clipboard"}},
		Handler: mutation(d, "clipboard.set_html", func(ctx context.Context, args map[string]any) result {
			html, err := reqString(args, "html")
			if err != nil {
				return fail(err)
			}
			if err := c.SetHTML(ctx, html); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"set": true})
		}),
	})

	r.Register(command.Descriptor{
		Name: "clipboard.set_files", Category: "clipboard", Description: "Set the clipboard's file list.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "paths", Type: command.ParamType("array"), Required: true, Description: "file paths to place on the clipboard"}},
		Handler: mutation(d, "clipboard.set_files", func(ctx context.Context, args map[string]any) result {
			paths, err := reqStringSlice(args, "paths")
			if err != nil {
				return fail(err)
			}
			if err := c.SetFiles(ctx, paths); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"set": true, "count": len(paths)})
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

func registerOCR(r *command.Registry, d *Deps) {
	o := d.Caps.OCR

	r.Register(command.Descriptor{
		Name: "ocr.read", Category: "ocr", Description: "Read all text visible on the screen.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			text, err := o.Read(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "ocr.read_region", Category: "ocr", Description: "Read text within a rectangular screen region.",
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "region origin x"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "region origin y"},
			{Name: "width", Type: command.TypeInt, Required: true, Description: "region width"},
			{Name: "height", Type: command.TypeInt, Required: true, Description: "region height"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			width, height := reqInt(args, "width"), reqInt(args, "height")
			if err := validDimensions(width, height); err != nil {
				return fail(err)
			}
			rect := facade.Rect{X: reqInt(args, "x"), Y: reqInt(args, "y"), Width: width, Height: height}
			text, err := o.ReadRegion(ctx, rect)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "ocr.read_detailed", Category: "ocr", Description: "Read text within a rectangular screen region, with per-hit bounding boxes and confidence.",
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "region origin x"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "region origin y"},
			{Name: "width", Type: command.TypeInt, Required: true, Description: "region width"},
			{Name: "height", Type: command.TypeInt, Required: true, Description: "region height"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			width, height := reqInt(args, "width"), reqInt(args, "height")
			if err := validDimensions(width, height); err != nil {
				return fail(err)
			}
			rect := facade.Rect{X: reqInt(args, "x"), Y: reqInt(args, "y"), Width: width, Height: height}
			hits, err := o.ReadDetailed(ctx, rect)
			if err != nil {
				return fail(err)
			}
			return ok(items(hits, len(hits)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "ocr.read_image", Category: "ocr", Description: "Read text from an image file on disk.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "image file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			text, err := o.ReadImage(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

// registerOffice wires commands that read Office-family documents
// (Word/Excel/PowerPoint) and HWPX documents through two related facade
// surfaces that share an open-handle model: office.open picks whichever
// backend matches the file extension.
func registerOffice(r *command.Registry, d *Deps) {
	doc := d.Caps.DocumentReader
	hwp := d.Caps.HWPReader

	r.Register(command.Descriptor{
		Name: "office.open", Category: "office", Description: "Open an Office document (Word, Excel, PowerPoint) and return a handle for subsequent office.* calls.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "document file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			handle, err := doc.Open(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.read_text", Category: "office", Description: "Read the full text content of an open document.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			text, err := doc.ReadText(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.read_tables", Category: "office", Description: "Read every table in an open Word document as rows of cells.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			tables, err := doc.ReadTables(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(tables, len(tables)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.get_metadata", Category: "office", Description: "Read an open document's metadata (author, title, revision, etc).",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			meta, err := doc.GetMetadata(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(meta)
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.list_sheets", Category: "office", Description: "List the sheet names in an open Excel workbook.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			sheets, err := doc.ListSheets(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(items(sheets, len(sheets)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.read_sheet", Category: "office", Description: "Read a named sheet's cells from an open Excel workbook.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"},
			{Name: "sheetName", Type: command.TypeString, Required: true, Description: "sheet name"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			sheetName, err := reqString(args, "sheetName")
			if err != nil {
				return fail(err)
			}
			rows, err := doc.ReadSheet(ctx, handle, sheetName)
			if err != nil {
				return fail(err)
			}
			return ok(items(rows, len(rows)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.read_slide_text", Category: "office", Description: "Read the text content of one slide from an open PowerPoint deck.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open"},
			{Name: "slideIndex", Type: command.TypeInt, Required: true, Description: "zero-based slide index"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			text, err := doc.ReadSlideText(ctx, handle, reqInt(args, "slideIndex"))
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.open_hwp", Category: "office", Description: "Open an HWPX (Korean word processor) document and return a handle.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "document file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			handle, err := hwp.Open(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"handle": handle})
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.read_hwp_text", Category: "office", Description: "Read the full text content of an open HWPX document.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open_hwp"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			text, err := hwp.ReadText(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "office.get_hwp_metadata", Category: "office", Description: "Read an open HWPX document's metadata.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "document handle from office.open_hwp"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			meta, err := hwp.GetMetadata(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return ok(meta)
		}),
	})
}

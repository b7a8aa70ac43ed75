package catalog

import (
	"context"
	"encoding/base64"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

func imageResult(data []byte) result {
	return ok(map[string]any{"imageBase64": base64.StdEncoding.EncodeToString(data), "format": "png"})
}

func registerScreen(r *command.Registry, d *Deps) {
	s := d.Caps.Screen

	r.Register(command.Descriptor{
		Name: "screen.capture", Category: "screen", Description: "Capture the full screen.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			data, err := s.Capture(ctx)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})

	r.Register(command.Descriptor{
		Name: "screen.capture_region", Category: "screen", Description: "Capture a rectangular region of the screen.",
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
			data, err := s.CaptureRegion(ctx, rect)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})

	r.Register(command.Descriptor{
		Name: "screen.capture_window", Category: "screen", Description: "Capture the contents of one window.",
		Parameters: []command.Param{{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			data, err := s.CaptureWindow(ctx, handle)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})

	r.Register(command.Descriptor{
		Name: "screen.capture_monitor", Category: "screen", Description: "Capture the contents of one monitor.",
		Parameters: []command.Param{{Name: "monitorId", Type: command.TypeString, Required: true, Description: "monitor id"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			monitorID, err := reqString(args, "monitorId")
			if err != nil {
				return fail(err)
			}
			data, err := s.CaptureMonitor(ctx, monitorID)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})

	r.Register(command.Descriptor{
		Name: "screen.capture_window_region", Category: "screen", Description: "Capture a rectangular region within one window.",
		Parameters: []command.Param{
			{Name: "handle", Type: command.TypeString, Required: true, Description: "window handle"},
			{Name: "x", Type: command.TypeInt, Required: true, Description: "region origin x, relative to the window"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "region origin y, relative to the window"},
			{Name: "width", Type: command.TypeInt, Required: true, Description: "region width"},
			{Name: "height", Type: command.TypeInt, Required: true, Description: "region height"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			handle, err := reqString(args, "handle")
			if err != nil {
				return fail(err)
			}
			width, height := reqInt(args, "width"), reqInt(args, "height")
			if err := validDimensions(width, height); err != nil {
				return fail(err)
			}
			rect := facade.Rect{X: reqInt(args, "x"), Y: reqInt(args, "y"), Width: width, Height: height}
			data, err := s.CaptureWindowRegion(ctx, handle, rect)
			if err != nil {
				return fail(err)
			}
			return imageResult(data)
		}),
	})
}

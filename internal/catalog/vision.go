package catalog

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/facade"
)

// regionOrPrimary resolves an optional x/y/width/height region to the
// primary display's bounds when the caller omits it.
func regionOrPrimary(ctx context.Context, d *Deps, args map[string]any) (facade.Rect, error) {
	w, h := reqInt(args, "width"), reqInt(args, "height")
	if w > 0 && h > 0 {
		return facade.Rect{X: reqInt(args, "x"), Y: reqInt(args, "y"), Width: w, Height: h}, nil
	}
	primary, err := d.Caps.Display.GetPrimary(ctx)
	if err != nil {
		return facade.Rect{}, err
	}
	return primary.Bounds, nil
}

func registerVision(r *command.Registry, d *Deps) {
	r.Register(command.Descriptor{
		Name: "vision.find_text", Category: "vision", Description: "Search OCR'd screen content for text matching a substring and report the bounding box of each hit.",
		Parameters: []command.Param{
			{Name: "query", Type: command.TypeString, Required: true, Description: "substring to search for, case-insensitive"},
			{Name: "x", Type: command.TypeInt, Required: false, Description: "region origin x; defaults to the primary display"},
			{Name: "y", Type: command.TypeInt, Required: false, Description: "region origin y"},
			{Name: "width", Type: command.TypeInt, Required: false, Description: "region width"},
			{Name: "height", Type: command.TypeInt, Required: false, Description: "region height"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			query, err := reqString(args, "query")
			if err != nil {
				return fail(err)
			}
			region, err := regionOrPrimary(ctx, d, args)
			if err != nil {
				return fail(err)
			}
			hits, err := d.Caps.OCR.ReadDetailed(ctx, region)
			if err != nil {
				return fail(err)
			}
			var matches []facade.TextHit
			for _, h := range hits {
				if strings.Contains(strings.ToLower(h.Text), strings.ToLower(query)) {
					matches = append(matches, h)
				}
			}
			return ok(items(matches, len(matches)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.read_region", Category: "vision", Description: "Read the text visible within a screen region, defaulting to the primary display.",
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: false, Description: "region origin x; defaults to the primary display"},
			{Name: "y", Type: command.TypeInt, Required: false, Description: "region origin y"},
			{Name: "width", Type: command.TypeInt, Required: false, Description: "region width"},
			{Name: "height", Type: command.TypeInt, Required: false, Description: "region height"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			region, err := regionOrPrimary(ctx, d, args)
			if err != nil {
				return fail(err)
			}
			text, err := d.Caps.OCR.ReadRegion(ctx, region)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.wait_text", Category: "vision", Description: "Poll OCR until text matching a substring appears on screen, or time out.",
		Parameters: []command.Param{
			{Name: "query", Type: command.TypeString, Required: true, Description: "substring to wait for, case-insensitive"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			query, err := reqString(args, "query")
			if err != nil {
				return fail(err)
			}
			timeoutMs := reqInt(args, "timeoutMs")
			if err := validTimeout(timeoutMs); err != nil {
				return fail(err)
			}
			deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
			for {
				text, err := d.Caps.OCR.Read(ctx)
				if err != nil {
					return fail(err)
				}
				if strings.Contains(strings.ToLower(text), strings.ToLower(query)) {
					return ok(check(true, query))
				}
				if time.Now().After(deadline) {
					return ok(check(false, query))
				}
				select {
				case <-ctx.Done():
					return fail(ctx.Err())
				case <-time.After(200 * time.Millisecond):
				}
			}
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.snapshot", Category: "vision", Description: "Capture the screen and OCR it in one call, returning both the image and the recognized text.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			img, err := d.Caps.Screen.Capture(ctx)
			if err != nil {
				return fail(err)
			}
			text, err := d.Caps.OCR.Read(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{
				"imageBase64": base64.StdEncoding.EncodeToString(img),
				"format":      "png",
				"text":        text,
			})
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.wait_change", Category: "vision", Description: "Poll the screen until its captured bytes differ from the initial capture, or time out.",
		Parameters: []command.Param{
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "5000", Description: "maximum time to wait"},
			{Name: "pollMs", Type: command.TypeInt, Required: false, DefaultValue: "250", Description: "interval between captures"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			timeoutMs := reqInt(args, "timeoutMs")
			if err := validTimeout(timeoutMs); err != nil {
				return fail(err)
			}
			pollMs := reqInt(args, "pollMs")
			if pollMs <= 0 {
				pollMs = 250
			}
			baseline, err := d.Caps.Screen.Capture(ctx)
			if err != nil {
				return fail(err)
			}
			deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
			for {
				select {
				case <-ctx.Done():
					return fail(ctx.Err())
				case <-time.After(time.Duration(pollMs) * time.Millisecond):
				}
				next, err := d.Caps.Screen.Capture(ctx)
				if err != nil {
					return fail(err)
				}
				if !bytes.Equal(baseline, next) {
					return ok(check(true, "screen changed"))
				}
				if time.Now().After(deadline) {
					return ok(check(false, "no change observed"))
				}
			}
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.click_text", Category: "vision", Description: "Find text on screen by substring and click the center of its first match.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "query", Type: command.TypeString, Required: true, Description: "substring to search for, case-insensitive"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button to click with"},
		},
		Handler: mutation(d, "vision.click_text", func(ctx context.Context, args map[string]any) result {
			query, err := reqString(args, "query")
			if err != nil {
				return fail(err)
			}
			region, err := regionOrPrimary(ctx, d, args)
			if err != nil {
				return fail(err)
			}
			hits, err := d.Caps.OCR.ReadDetailed(ctx, region)
			if err != nil {
				return fail(err)
			}
			for _, h := range hits {
				if strings.Contains(strings.ToLower(h.Text), strings.ToLower(query)) {
					cx, cy := h.Bounds.X+h.Bounds.Width/2, h.Bounds.Y+h.Bounds.Height/2
					button := optString(args, "button")
					if button == "" {
						button = "left"
					}
					if err := d.Caps.Mouse.Click(ctx, cx, cy, button); err != nil {
						return fail(err)
					}
					return ok(map[string]any{"x": cx, "y": cy, "text": h.Text})
				}
			}
			return fail(errNotFoundText(query))
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.click_and_verify", Category: "vision", Description: "Click a screen point, then OCR a region around it and confirm expected text now appears there.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "x", Type: command.TypeInt, Required: true, Description: "x to click"},
			{Name: "y", Type: command.TypeInt, Required: true, Description: "y to click"},
			{Name: "expectedText", Type: command.TypeString, Required: true, Description: "substring expected to appear after the click"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button to click with"},
			{Name: "settleMs", Type: command.TypeInt, Required: false, DefaultValue: "300", Description: "delay before re-reading the screen"},
		},
		Handler: mutation(d, "vision.click_and_verify", func(ctx context.Context, args map[string]any) result {
			x, y := reqInt(args, "x"), reqInt(args, "y")
			expected, err := reqString(args, "expectedText")
			if err != nil {
				return fail(err)
			}
			button := optString(args, "button")
			if button == "" {
				button = "left"
			}
			if err := d.Caps.Mouse.Click(ctx, x, y, button); err != nil {
				return fail(err)
			}
			settleMs := reqInt(args, "settleMs")
			if settleMs <= 0 {
				settleMs = 300
			}
			select {
			case <-ctx.Done():
				return fail(ctx.Err())
			case <-time.After(time.Duration(settleMs) * time.Millisecond):
			}
			text, err := d.Caps.OCR.Read(ctx)
			if err != nil {
				return fail(err)
			}
			found := strings.Contains(strings.ToLower(text), strings.ToLower(expected))
			return ok(check(found, expected))
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.type_and_verify", Category: "vision", Description: "Type text into the focused element, then read it back and confirm it matches.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "text", Type: command.TypeString, Required: true, Description: "text to type"},
		},
		Handler: mutation(d, "vision.type_and_verify", func(ctx context.Context, args map[string]any) result {
			text, err := reqString(args, "text")
			if err != nil {
				return fail(err)
			}
			if err := d.Caps.Keyboard.Type(ctx, text); err != nil {
				return fail(err)
			}
			focused, err := d.Caps.UIAutomation.GetFocused(ctx)
			if err != nil {
				return fail(err)
			}
			found := strings.Contains(focused.Value, text)
			return ok(check(found, text))
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.find_image", Category: "vision", Description: "Search the screen for a template image and report its bounding box if found.",
		Parameters: []command.Param{
			{Name: "templatePath", Type: command.TypeString, Required: true, Description: "path to the template image file"},
			{Name: "threshold", Type: command.TypeFloat, Required: false, DefaultValue: "0.8", Description: "minimum match confidence, 0-1"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "templatePath")
			if err != nil {
				return fail(err)
			}
			threshold := reqFloat(args, "threshold")
			if threshold <= 0 {
				threshold = 0.8
			}
			rect, found, err := d.Caps.TemplateMatcher.FindImage(ctx, path, threshold)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"found": found, "bounds": rect})
		}),
	})

	r.Register(command.Descriptor{
		Name: "vision.click_image", Category: "vision", Description: "Find a template image on screen and click its center.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "templatePath", Type: command.TypeString, Required: true, Description: "path to the template image file"},
			{Name: "threshold", Type: command.TypeFloat, Required: false, DefaultValue: "0.8", Description: "minimum match confidence, 0-1"},
			{Name: "button", Type: command.TypeString, Required: false, DefaultValue: `"left"`, Description: "mouse button to click with"},
		},
		Handler: mutation(d, "vision.click_image", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "templatePath")
			if err != nil {
				return fail(err)
			}
			threshold := reqFloat(args, "threshold")
			if threshold <= 0 {
				threshold = 0.8
			}
			rect, found, err := d.Caps.TemplateMatcher.FindImage(ctx, path, threshold)
			if err != nil {
				return fail(err)
			}
			if !found {
				return fail(errWithCode("image_not_found", "no match for "+path))
			}
			cx, cy := rect.X+rect.Width/2, rect.Y+rect.Height/2
			button := optString(args, "button")
			if button == "" {
				button = "left"
			}
			if err := d.Caps.Mouse.Click(ctx, cx, cy, button); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"x": cx, "y": cy})
		}),
	})
}

func errNotFoundText(what string) error {
	return errWithCode("text_not_found", "no match for "+what)
}

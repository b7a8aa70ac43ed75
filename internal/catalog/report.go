package catalog

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/reportstore"
)

func renderMarkdown(d *Deps) string {
	var b strings.Builder
	b.WriteString("# Session Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().UTC().Format(time.RFC3339))

	b.WriteString("## Active monitors\n\n")
	monitors := d.Monitors.ListActive()
	if len(monitors) == 0 {
		b.WriteString("None.\n\n")
	} else {
		for _, m := range monitors {
			fmt.Fprintf(&b, "- `%s` (%s) since %s\n", m.ID, m.Type, m.StartedAt.Format(time.RFC3339))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recent actions\n\n")
	recent := d.Log.GetRecent(50)
	if len(recent) == 0 {
		b.WriteString("None.\n")
	} else {
		for _, rec := range recent {
			status := "ok"
			if !rec.Success {
				status = "failed"
			}
			fmt.Fprintf(&b, "- `%s` — %s (%dms, %s)\n", rec.Tool, rec.TimestampUTC.Format(time.RFC3339), rec.DurationMs, status)
		}
	}
	return b.String()
}

func registerReport(r *command.Registry, d *Deps) {
	r.Register(command.Descriptor{
		Name: "report.generate", Category: "report", Description: "Render the current action log and monitor roster into a markdown report and persist it.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "kind", Type: command.TypeString, Required: false, DefaultValue: `"session_summary"`, Description: "a label describing what this report captures"}},
		Handler: mutation(d, "report.generate", func(ctx context.Context, args map[string]any) result {
			content := renderMarkdown(d)
			id, err := d.Reports.Insert(optString(args, "kind"), "markdown", content, "report.generate")
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"id": id, "content": content})
		}),
	})

	r.Register(command.Descriptor{
		Name: "report.export", Category: "report", Description: "Fetch a persisted report, optionally rendered to HTML.",
		Parameters: []command.Param{
			{Name: "id", Type: command.TypeLong, Required: true, Description: "report id"},
			{Name: "format", Type: command.TypeString, Required: false, DefaultValue: `"markdown"`, Description: "markdown or html"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			rep, err := d.Reports.Get(reqInt64(args, "id"))
			if err != nil {
				return fail(err)
			}
			if optString(args, "format") == "html" {
				var buf bytes.Buffer
				if err := goldmark.Convert([]byte(rep.Content), &buf); err != nil {
					return fail(err)
				}
				return ok(content(buf.String(), "html"))
			}
			return ok(content(rep.Content, "markdown"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "report.summarize", Category: "report", Description: "Generate a short natural-language summary of a persisted report.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "id", Type: command.TypeLong, Required: true, Description: "report id"},
			{Name: "model", Type: command.TypeString, Required: false, DefaultValue: `"claude-haiku-4-5"`, Description: "Anthropic model id"},
		},
		Handler: mutation(d, "report.summarize", func(ctx context.Context, args map[string]any) result {
			id := reqInt64(args, "id")
			rep, err := d.Reports.Get(id)
			if err != nil {
				return fail(err)
			}
			summary, err := reportstore.Summarize(ctx, rep.Content, optString(args, "model"))
			if err != nil {
				return fail(err)
			}
			if err := d.Reports.SetSummary(id, summary); err != nil {
				return fail(err)
			}
			return ok(content(summary, "text"))
		}),
	})
}

package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerSystem(r *command.Registry, d *Deps) {
	si := d.Caps.SystemInfo

	r.Register(command.Descriptor{
		Name: "system.get_info", Category: "system", Description: "Get host operating system and hardware information.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			info, err := si.GetInfo(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "system.get_env", Category: "system", Description: "Get the value of an environment variable.",
		Parameters: []command.Param{{Name: "key", Type: command.TypeString, Required: true, Description: "environment variable name"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			key, err := reqString(args, "key")
			if err != nil {
				return fail(err)
			}
			value, err := si.GetEnv(ctx, key)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"key": key, "value": value})
		}),
	})

	r.Register(command.Descriptor{
		Name: "system.list_env", Category: "system", Description: "List every environment variable.",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			env, err := si.ListEnv(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(env)
		}),
	})

	r.Register(command.Descriptor{
		Name: "system.get_metrics", Category: "system", Description: "Get host resource usage metrics (CPU, memory).",
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			metrics, err := si.GetMetrics(ctx)
			if err != nil {
				return fail(err)
			}
			return ok(metrics)
		}),
	})
}

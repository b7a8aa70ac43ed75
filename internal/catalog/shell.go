package catalog

import (
	"context"

	"github.com/joestump/harnessd/internal/command"
)

func registerShell(r *command.Registry, d *Deps) {
	sh := d.Caps.Shell

	r.Register(command.Descriptor{
		Name: "shell.run", Category: "shell", Description: "Run a shell command and capture its output.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "command", Type: command.TypeString, Required: true, Description: "executable or command to run"},
			{Name: "args", Type: command.ParamType("array"), Required: false, DefaultValue: "[]", Description: "command-line arguments"},
			{Name: "cwd", Type: command.TypeString, Required: false, DefaultValue: `""`, Description: "working directory"},
			{Name: "timeoutMs", Type: command.TypeInt, Required: false, DefaultValue: "30000", Description: "maximum time to run, in milliseconds; 0 means no timeout"},
		},
		Handler: mutation(d, "shell.run", func(ctx context.Context, args map[string]any) result {
			cmd, err := reqString(args, "command")
			if err != nil {
				return fail(err)
			}
			argv, err := reqStringSlice(args, "args")
			if err != nil {
				return fail(err)
			}
			timeout := reqInt(args, "timeoutMs")
			if err := validTimeout(timeout); err != nil {
				return fail(err)
			}
			stdout, stderr, exitCode, err := sh.Run(ctx, cmd, argv, optString(args, "cwd"), timeout)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"stdout": stdout, "stderr": stderr, "exitCode": exitCode})
		}),
	})
}

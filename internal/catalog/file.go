package catalog

import (
	"context"
	"encoding/base64"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/envelope"
)

func registerFile(r *command.Registry, d *Deps) {
	f := d.Caps.FileSystem

	r.Register(command.Descriptor{
		Name: "file.read", Category: "file", Description: "Read a file's contents as text.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			text, err := f.Read(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(content(text, "text"))
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.read_bytes", Category: "file", Description: "Read a file's contents as base64-encoded bytes.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			data, err := f.ReadBytes(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"dataBase64": base64.StdEncoding.EncodeToString(data)})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.list", Category: "file", Description: "List the entries of a directory.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "directory path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			list, err := f.List(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(items(list, len(list)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.check", Category: "file", Description: "Check whether a path exists.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			exists, err := f.Check(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(check(exists, ""))
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.info", Category: "file", Description: "Get metadata for a file or directory.",
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "file path"}},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			info, err := f.Info(ctx, path)
			if err != nil {
				return fail(err)
			}
			return ok(info)
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.search", Category: "file", Description: "Search a directory tree for paths matching a glob pattern.",
		Parameters: []command.Param{
			{Name: "root", Type: command.TypeString, Required: true, Description: "directory to search from"},
			{Name: "pattern", Type: command.TypeString, Required: true, Description: "glob pattern"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			root, err := reqString(args, "root")
			if err != nil {
				return fail(err)
			}
			pattern, err := reqString(args, "pattern")
			if err != nil {
				return fail(err)
			}
			matches, err := f.Search(ctx, root, pattern)
			if err != nil {
				return fail(err)
			}
			return ok(items(matches, len(matches)))
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.hash", Category: "file", Description: "Compute a hash digest of a file's contents.",
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "file path"},
			{Name: "algorithm", Type: command.TypeString, Required: false, DefaultValue: `"sha256"`, Description: "hash algorithm: md5, sha1, or sha256"},
		},
		Handler: readOnly(func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			digest, err := f.Hash(ctx, path, optString(args, "algorithm"))
			if err != nil {
				return fail(err)
			}
			return ok(map[string]any{"hash": digest})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.write", Category: "file", Description: "Write text to a file, overwriting any existing contents.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "file path"},
			{Name: "content", Type: command.TypeString, Required: true, Description: "text to write"},
		},
		Handler: mutation(d, "file.write", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			text, _ := args["content"].(string)
			if err := f.Write(ctx, path, text); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"path": path})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.write_bytes", Category: "file", Description: "Write base64-encoded bytes to a file, overwriting any existing contents.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "path", Type: command.TypeString, Required: true, Description: "file path"},
			{Name: "dataBase64", Type: command.TypeString, Required: true, Description: "base64-encoded data to write"},
		},
		Handler: mutation(d, "file.write_bytes", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			encoded, err := reqString(args, "dataBase64")
			if err != nil {
				return fail(err)
			}
			data, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return fail(errWithCode(envelope.CodeInvalidParameter, "Parameter 'dataBase64' must be valid base64"))
			}
			if err := f.WriteBytes(ctx, path, data); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"path": path})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.copy", Category: "file", Description: "Copy a file or directory to a new path.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "src", Type: command.TypeString, Required: true, Description: "source path"},
			{Name: "dst", Type: command.TypeString, Required: true, Description: "destination path"},
		},
		Handler: mutation(d, "file.copy", func(ctx context.Context, args map[string]any) result {
			src, err := reqString(args, "src")
			if err != nil {
				return fail(err)
			}
			dst, err := reqString(args, "dst")
			if err != nil {
				return fail(err)
			}
			if err := f.Copy(ctx, src, dst); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"src": src, "dst": dst})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.move", Category: "file", Description: "Move or rename a file or directory.",
		IsMutation: true,
		Parameters: []command.Param{
			{Name: "src", Type: command.TypeString, Required: true, Description: "source path"},
			{Name: "dst", Type: command.TypeString, Required: true, Description: "destination path"},
		},
		Handler: mutation(d, "file.move", func(ctx context.Context, args map[string]any) result {
			src, err := reqString(args, "src")
			if err != nil {
				return fail(err)
			}
			dst, err := reqString(args, "dst")
			if err != nil {
				return fail(err)
			}
			if err := f.Move(ctx, src, dst); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"src": src, "dst": dst})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.create_directory", Category: "file", Description: "Create a directory, including any missing parents.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "directory path"}},
		Handler: mutation(d, "file.create_directory", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			if err := f.CreateDirectory(ctx, path); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"path": path})
		}),
	})

	r.Register(command.Descriptor{
		Name: "file.delete", Category: "file", Description: "Delete a file or directory.",
		IsMutation: true,
		Parameters: []command.Param{{Name: "path", Type: command.TypeString, Required: true, Description: "file path"}},
		Handler: mutation(d, "file.delete", func(ctx context.Context, args map[string]any) result {
			path, err := reqString(args, "path")
			if err != nil {
				return fail(err)
			}
			if err := f.Delete(ctx, path); err != nil {
				return fail(err)
			}
			return ok(map[string]any{"path": path, "deleted": true})
		}),
	})
}

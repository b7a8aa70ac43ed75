// Package osimpl provides real OS-backed implementations of the facade
// surfaces that are generic stdlib operations rather than platform UI
// automation: FileSystem, Shell, and SystemInfo.
package osimpl

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joestump/harnessd/internal/facade"
)

// FileSystem implements facade.FileSystem against the real OS filesystem.
type FileSystem struct{}

func NewFileSystem() *FileSystem { return &FileSystem{} }

func (FileSystem) Read(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (FileSystem) ReadBytes(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (FileSystem) List(_ context.Context, path string) ([]facade.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]facade.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, facade.FileInfo{
			Path:    filepath.Join(path, entry.Name()),
			Size:    info.Size(),
			IsDir:   entry.IsDir(),
			ModTime: info.ModTime(),
		})
	}
	return out, nil
}

func (FileSystem) Check(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (FileSystem) Info(_ context.Context, path string) (facade.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return facade.FileInfo{}, err
	}
	return facade.FileInfo{Path: path, Size: info.Size(), IsDir: info.IsDir(), ModTime: info.ModTime()}, nil
}

func (FileSystem) Search(_ context.Context, root, pattern string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err == nil && matched {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (FileSystem) Hash(_ context.Context, path, algorithm string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var h interface {
		io.Writer
		Sum([]byte) []byte
	}
	switch algorithm {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256", "":
		h = sha256.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (FileSystem) Write(_ context.Context, path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func (FileSystem) WriteBytes(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (FileSystem) Copy(_ context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

func (FileSystem) Move(_ context.Context, src, dst string) error {
	return os.Rename(src, dst)
}

func (FileSystem) CreateDirectory(_ context.Context, path string) error {
	return os.MkdirAll(path, 0o755)
}

func (FileSystem) Delete(_ context.Context, path string) error {
	return os.RemoveAll(path)
}

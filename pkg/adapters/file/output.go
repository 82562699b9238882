// Package file implements ports.FileOutput on top of a billy.Filesystem.
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Output writes the output params file and copies module files.
type Output struct {
	fs      billy.Filesystem
	resolve func(string) (string, error)
}

// New creates an Output over fs. Paths are interpreted by fs.
func New(fs billy.Filesystem) *Output {
	return &Output{fs: fs}
}

// NewOS creates an Output over the host filesystem. Relative paths resolve
// against the working directory, like the module sees them.
func NewOS() *Output {
	return &Output{fs: osfs.New("/"), resolve: filepath.Abs}
}

// WriteTextToFile creates or truncates path and writes text, creating parent
// directories as needed.
func (o *Output) WriteTextToFile(path, text string) error {
	path, err := o.path(path)
	if err != nil {
		return err
	}
	if err := o.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := util.WriteFile(o.fs, path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst. An existing dst is never overwritten.
func (o *Output) CopyFile(src, dst string) error {
	src, err := o.path(src)
	if err != nil {
		return err
	}
	dst, err = o.path(dst)
	if err != nil {
		return err
	}

	in, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	if _, err := o.fs.Stat(dst); err == nil {
		return fmt.Errorf("failed to copy to %s: %w", dst, os.ErrExist)
	}

	if err := o.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close target: %w", err)
	}
	return nil
}

func (o *Output) path(p string) (string, error) {
	if o.resolve == nil {
		return p, nil
	}
	abs, err := o.resolve(p)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", p, err)
	}
	return abs, nil
}

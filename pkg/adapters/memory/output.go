package memory

import (
	"fmt"
	"os"
)

// Copy records one CopyFile call.
type Copy struct {
	Src string
	Dst string
}

// Output implements ports.FileOutput in memory and records every call.
// Not safe for concurrent use.
type Output struct {
	Files  map[string]string
	Copies []Copy
	Writes []string

	// Fail, when set, is consulted before each operation ("copy" or "write")
	// and its error is returned instead of performing it.
	Fail func(op, path string) error
}

// NewOutput creates an empty in-memory output.
func NewOutput() *Output {
	return &Output{Files: make(map[string]string)}
}

// Seed stores a file as if the module had produced it.
func (o *Output) Seed(path, content string) error {
	o.Files[path] = content
	return nil
}

// Read returns the content stored at path.
func (o *Output) Read(path string) (string, error) {
	content, ok := o.Files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

// WriteTextToFile stores text at path.
func (o *Output) WriteTextToFile(path, text string) error {
	o.Writes = append(o.Writes, path)
	if err := o.fail("write", path); err != nil {
		return err
	}
	o.Files[path] = text
	return nil
}

// CopyFile duplicates the content of src at dst. Missing sources are an error,
// existing targets are not overwritten.
func (o *Output) CopyFile(src, dst string) error {
	o.Copies = append(o.Copies, Copy{Src: src, Dst: dst})
	if err := o.fail("copy", src); err != nil {
		return err
	}
	content, ok := o.Files[src]
	if !ok {
		return fmt.Errorf("failed to open source: %w", os.ErrNotExist)
	}
	if _, exists := o.Files[dst]; exists {
		return fmt.Errorf("failed to copy to %s: %w", dst, os.ErrExist)
	}
	o.Files[dst] = content
	return nil
}

// Written returns the text of the last write to path.
func (o *Output) Written(path string) (string, bool) {
	for _, w := range o.Writes {
		if w == path {
			content, ok := o.Files[path]
			return content, ok
		}
	}
	return "", false
}

func (o *Output) fail(op, path string) error {
	if o.Fail == nil {
		return nil
	}
	return o.Fail(op, path)
}

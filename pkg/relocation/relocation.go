// Package relocation moves module-produced file references under the output root.
//
// A path already under the root is kept as is. Any other path is copied to
// root + path and the rewritten path is what gets recorded as output.
package relocation

import (
	"path"
	"strings"

	"github.com/apeer-micro/adk/pkg/domain"
)

// CopyFunc copies src to dst. It must leave src in place.
type CopyFunc func(src, dst string) error

// Relocator rewrites file references against a fixed output root.
type Relocator struct {
	root string
	copy CopyFunc
}

// New creates a Relocator for root that copies files with copyFn.
// An empty root falls back to domain.OutputRoot.
func New(root string, copyFn CopyFunc) *Relocator {
	return &Relocator{root: NormalizeRoot(root), copy: copyFn}
}

// Root returns the normalized output root, always ending in "/".
func (r *Relocator) Root() string { return r.root }

// Relocate returns the path under the root that should be recorded for p,
// copying the file there when p is outside the root.
func (r *Relocator) Relocate(p string) (string, error) {
	if Under(r.root, p) {
		if escapes(r.root, p) {
			return "", domain.NewOutputError("", domain.ErrInvalidPath, "Could not relocate %q: path leaves %q", p, r.root)
		}
		return p, nil
	}

	target, err := Target(r.root, p)
	if err != nil {
		return "", err
	}
	if err := r.copy(p, target); err != nil {
		return "", domain.NewOutputError("", err, "Could not copy %q to %q", p, target)
	}
	return target, nil
}

// RelocateMany relocates every path in order. The first failure aborts the batch.
func (r *Relocator) RelocateMany(paths []string) ([]string, error) {
	targets := make([]string, len(paths))
	for i, p := range paths {
		target, err := r.Relocate(p)
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}
	return targets, nil
}

// Under reports whether p already starts with root.
func Under(root, p string) bool {
	return strings.HasPrefix(p, NormalizeRoot(root))
}

// Target computes root + p. Leading slashes of an absolute p are folded into
// the root so "/data/a.png" maps to "/output/data/a.png".
func Target(root, p string) (string, error) {
	root = NormalizeRoot(root)
	rel := strings.TrimLeft(p, "/")
	if strings.TrimSpace(rel) == "" {
		return "", domain.NewOutputError("", domain.ErrInvalidPath, "Could not relocate %q: empty path", p)
	}
	target := path.Clean(root + rel)
	if escapes(root, target) {
		return "", domain.NewOutputError("", domain.ErrInvalidPath, "Could not relocate %q: path leaves %q", p, root)
	}
	return target, nil
}

// NormalizeRoot makes sure root ends with a single "/".
func NormalizeRoot(root string) string {
	if root == "" {
		return domain.OutputRoot
	}
	return strings.TrimRight(root, "/") + "/"
}

func escapes(root, p string) bool {
	cleaned := path.Clean(p)
	return !strings.HasPrefix(cleaned+"/", root) || cleaned+"/" == root
}

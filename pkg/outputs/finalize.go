package outputs

import (
	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/apeer-micro/adk/pkg/relocation"
)

// WriteFunc writes text to the file at path, replacing its content.
type WriteFunc func(path, text string) error

// Finalize serializes acc and writes it to root + destination with a single
// write attempt. It returns the path that was written.
func Finalize(root, destination string, acc *Accumulator, write WriteFunc) (string, error) {
	target, err := relocation.Target(root, destination)
	if err != nil {
		return "", domain.NewOutputError("", domain.ErrInvalidPath, "Could not resolve output params file %q", destination)
	}

	data, err := acc.MarshalJSON()
	if err != nil {
		return "", domain.NewOutputError("", err, "Could not encode outputs")
	}

	if err := write(target, string(data)); err != nil {
		return "", domain.NewOutputError("", err, "Could not write outputs to %q", target)
	}
	return target, nil
}

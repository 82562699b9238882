package cli

import (
	"fmt"

	"github.com/apeer-micro/adk/pkg/schema"
)

// Validate checks the envelope against the schema file at schemaPath.
func Validate(opts Options, schemaPath string) error {
	s, err := schema.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	if _, err := createKit(opts, s); err != nil {
		return err
	}
	_, err = fmt.Fprintf(opts.Stdout, "Inputs match %s (%d fields)\n", schemaPath, len(s))
	return err
}

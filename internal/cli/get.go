package cli

import (
	"fmt"

	"github.com/apeer-micro/adk"
	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/apeer-micro/adk/pkg/outputs"
)

// Kinds lists the values accepted by Get, in help order.
var Kinds = []string{"string", "int", "float", "bool", "[string]", "[float]", "[bool]"}

// Get reads a single input with the typed getter named by kind and prints it.
// Strings are printed raw, everything else as JSON.
func Get(opts Options, key, kind string) error {
	kit, err := createKit(opts, nil)
	if err != nil {
		return err
	}

	value, err := readInput(kit, key, kind)
	if err != nil {
		return err
	}

	if s, ok := value.(string); ok {
		_, err = fmt.Fprintln(opts.Stdout, s)
		return err
	}
	data, err := outputs.Encode(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.Stdout, string(data))
	return err
}

func readInput(kit *adk.DevKit, key, kind string) (any, error) {
	switch kind {
	case "string":
		return kit.GetString(key)
	case "int":
		return kit.GetInt(key)
	case "float":
		return kit.GetFloat(key)
	case "bool":
		return kit.GetBool(key)
	case "[string]":
		return kit.GetStrings(key)
	case "[float]":
		return kit.GetFloats(key)
	case "[bool]":
		return kit.GetBools(key)
	default:
		return nil, domain.NewInputError(key, domain.ErrUnsupportedKind,
			"Could not read input %q: unknown kind %q (want one of %v)", key, kind, Kinds)
	}
}

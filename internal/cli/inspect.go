package cli

import (
	"fmt"
	"text/tabwriter"
)

// Inspect prints where the outputs would be written and every input with its JSON kind.
func Inspect(opts Options) error {
	kit, err := createKit(opts, nil)
	if err != nil {
		return err
	}

	in := kit.Input()
	w := tabwriter.NewWriter(opts.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "output params file:\t%s\n", in.Destination())
	fmt.Fprintf(w, "written to:\t%s\n", kit.OutputParamsPath())
	fmt.Fprintf(w, "inputs:\t%d\n", len(in.Keys()))
	for _, key := range in.Keys() {
		kind, _ := in.Kind(key)
		fmt.Fprintf(w, "  %s\t%s\n", key, kind)
	}
	return w.Flush()
}

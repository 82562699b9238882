package main

import (
	"github.com/apeer-micro/adk/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the inputs of the envelope",
	Long:  `Prints the output params file, where it would be written and every input with its JSON kind.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Inspect(options(cmd))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

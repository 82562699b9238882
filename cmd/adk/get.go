package main

import (
	"fmt"
	"strings"

	"github.com/apeer-micro/adk/internal/cli"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Read a single input",
	Long: fmt.Sprintf(`Reads KEY with the typed getter named by --kind (%s).
Strings are printed raw, other values as JSON.`, strings.Join(cli.Kinds, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		return cli.Get(options(cmd), args[0], kind)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringP("kind", "k", "string", "Expected kind of the input")
}

package main

import (
	"github.com/apeer-micro/adk/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the envelope against a schema file",
	Long:  `Loads a YAML or JSON schema file and reports every input that is missing or has the wrong kind.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		return cli.Validate(options(cmd), schemaPath)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("schema", "", "Path to the schema file")
	_ = validateCmd.MarkFlagRequired("schema")
}

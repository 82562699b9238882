package main

import (
	"fmt"
	"strings"

	"github.com/apeer-micro/adk"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "adk version %s\n", strings.TrimSpace(adk.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

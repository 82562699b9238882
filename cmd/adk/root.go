package main

import (
	"fmt"
	"os"

	"github.com/apeer-micro/adk/internal/cli"
	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adk",
	Short: "adk inspects the input envelope of an APEER module",
	Long: `adk reads the module input envelope from the environment, the same way a module does,
and lets you inspect or validate it before the module runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("env-var", domain.EnvInputJSON, "Environment variable holding the input envelope")
	rootCmd.PersistentFlags().String("output-root", domain.OutputRoot, "Directory outputs are relocated to")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// options collects the persistent flags of cmd.
func options(cmd *cobra.Command) cli.Options {
	envVar, _ := cmd.Flags().GetString("env-var")
	outputRoot, _ := cmd.Flags().GetString("output-root")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Options{
		EnvVar:     envVar,
		OutputRoot: outputRoot,
		LogLevel:   logLevel,
		Stdout:     cmd.OutOrStdout(),
	}
}

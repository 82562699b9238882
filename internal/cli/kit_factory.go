package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/apeer-micro/adk"
	"github.com/apeer-micro/adk/internal/logging"
	"github.com/apeer-micro/adk/pkg/ports"
	"github.com/apeer-micro/adk/pkg/schema"
)

// Options holds the settings shared by every command.
type Options struct {
	EnvVar     string
	OutputRoot string
	LogLevel   string

	// Environment overrides the process environment. Used by tests.
	Environment ports.Environment
	// Stdout receives command results. Logs always go to Stderr.
	Stdout io.Writer
}

// createLogger maps the --log-level flag to a logger on Stderr.
func createLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// createKit initializes a DevKit with the CLI conventions applied.
func createKit(opts Options, s schema.Schema) (*adk.DevKit, error) {
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	kitOpts := []adk.Option{adk.WithLogger(logger)}
	if opts.EnvVar != "" {
		kitOpts = append(kitOpts, adk.WithEnvVar(opts.EnvVar))
	}
	if opts.OutputRoot != "" {
		kitOpts = append(kitOpts, adk.WithOutputRoot(opts.OutputRoot))
	}
	if opts.Environment != nil {
		kitOpts = append(kitOpts, adk.WithEnvironment(opts.Environment))
	}
	if len(s) > 0 {
		kitOpts = append(kitOpts, adk.WithInputSchema(s))
	}

	kit, err := adk.New(kitOpts...)
	if err != nil {
		return nil, fmt.Errorf("error reading inputs: %w", err)
	}
	return kit, nil
}

package adk

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/apeer-micro/adk/pkg/adapters/env"
	"github.com/apeer-micro/adk/pkg/adapters/file"
	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/apeer-micro/adk/pkg/envelope"
	"github.com/apeer-micro/adk/pkg/outputs"
	"github.com/apeer-micro/adk/pkg/ports"
	"github.com/apeer-micro/adk/pkg/relocation"
	"github.com/apeer-micro/adk/pkg/schema"
)

// DevKit is the entry point for a module: it reads the input envelope once and
// collects outputs until Finalize writes them.
// A DevKit serves a single module run and is not safe for concurrent use.
type DevKit struct {
	environment ports.Environment
	fileOutput  ports.FileOutput
	logger      *slog.Logger
	envVar      string
	outputRoot  string
	inputSchema schema.Schema

	input     *envelope.Envelope
	outputs   *outputs.Accumulator
	relocator *relocation.Relocator
	finalized bool
}

// Option defines a functional option for configuring the DevKit.
type Option func(*DevKit)

// WithEnvironment injects the environment the envelope is read from.
// Defaults to the process environment.
func WithEnvironment(e ports.Environment) Option {
	return func(d *DevKit) {
		d.environment = e
	}
}

// WithFileOutput injects the filesystem used for copies and the final write.
// Defaults to the host filesystem.
func WithFileOutput(o ports.FileOutput) Option {
	return func(d *DevKit) {
		d.fileOutput = o
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DevKit) {
		d.logger = logger
	}
}

// WithEnvVar changes the variable holding the envelope (default: WFE_INPUT_JSON).
func WithEnvVar(name string) Option {
	return func(d *DevKit) {
		d.envVar = name
	}
}

// WithOutputRoot changes the output root (default: /output/).
func WithOutputRoot(root string) Option {
	return func(d *DevKit) {
		d.outputRoot = root
	}
}

// WithInputSchema makes New reject envelopes that do not match s.
func WithInputSchema(s schema.Schema) Option {
	return func(d *DevKit) {
		d.inputSchema = s
	}
}

// New reads and decodes the input envelope. Call Finalize after all other
// operations so the outputs are written.
//
// It returns a *domain.EnvironmentError when the variable is missing or blank,
// is not a JSON object, lacks the output params file field, or does not match
// the input schema.
func New(opts ...Option) (*DevKit, error) {
	d := &DevKit{
		envVar:     domain.EnvInputJSON,
		outputRoot: domain.OutputRoot,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.environment == nil {
		d.environment = env.NewOS()
	}
	if d.fileOutput == nil {
		d.fileOutput = file.NewOS()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.logger = d.logger.With("component", "adk")

	d.logger.Info("Initializing")

	raw, ok := d.environment.Lookup(d.envVar)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, domain.NewEnvironmentError(domain.ErrEnvNotSet,
			"Could not find %q in environment variables", d.envVar)
	}
	d.logger.Debug("Found input envelope", "var", d.envVar, "value", raw)

	input, err := envelope.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(d.inputSchema, input.Values()); err != nil {
		return nil, domain.NewEnvironmentError(err, "Inputs in %q do not match the input schema", d.envVar)
	}

	d.input = input
	d.outputs = outputs.New()
	d.relocator = relocation.New(d.outputRoot, d.fileOutput.CopyFile)

	d.logger.Info("Successfully read input envelope",
		"var", d.envVar,
		"output_params_file", input.Destination(),
	)
	return d, nil
}

// Input exposes the decoded envelope.
func (d *DevKit) Input() *envelope.Envelope { return d.input }

// GetString returns the string input stored under key.
func (d *DevKit) GetString(key string) (string, error) { return d.input.String(key) }

// GetInt returns the integer input stored under key.
func (d *DevKit) GetInt(key string) (int, error) { return d.input.Int(key) }

// GetFloat returns the numeric input stored under key.
func (d *DevKit) GetFloat(key string) (float64, error) { return d.input.Float(key) }

// GetBool returns the boolean input stored under key.
func (d *DevKit) GetBool(key string) (bool, error) { return d.input.Bool(key) }

// GetStrings returns the string array stored under key.
func (d *DevKit) GetStrings(key string) ([]string, error) { return d.input.Strings(key) }

// GetFloats returns the numeric array stored under key.
func (d *DevKit) GetFloats(key string) ([]float64, error) { return d.input.Floats(key) }

// GetBools returns the boolean array stored under key.
func (d *DevKit) GetBools(key string) ([]bool, error) { return d.input.Bools(key) }

// Bind decodes all inputs into the struct pointed to by target.
func (d *DevKit) Bind(target any) error { return d.input.Bind(target) }

// SetOutput records value under key. The value is encoded immediately, so
// unsupported values fail here with a *domain.OutputError.
func (d *DevKit) SetOutput(key string, value any) error {
	if err := d.checkOpen(key); err != nil {
		return err
	}
	if err := d.outputs.Set(key, value); err != nil {
		return err
	}
	d.logger.Debug("Set output", "key", key)
	return nil
}

// SetFileOutput records a file output. Files outside the output root are
// copied there first and the rewritten path is what gets recorded.
func (d *DevKit) SetFileOutput(key, path string) error {
	if err := d.checkOpen(key); err != nil {
		return err
	}
	target, err := d.relocator.Relocate(path)
	if err != nil {
		return withKey(err, key)
	}
	if target != path {
		d.logger.Info("Copied file output", "key", key, "from", path, "to", target)
	}
	return d.outputs.Set(key, target)
}

// SetFileOutputs is SetFileOutput for a list of files. Order is preserved and
// the first failing copy aborts without recording anything.
func (d *DevKit) SetFileOutputs(key string, paths []string) error {
	if err := d.checkOpen(key); err != nil {
		return err
	}
	targets, err := d.relocator.RelocateMany(paths)
	if err != nil {
		return withKey(err, key)
	}
	d.logger.Info("Copied file outputs", "key", key, "count", len(targets))
	return d.outputs.Set(key, targets)
}

// Finalize writes all outputs to the output params file named by the envelope.
// It succeeds at most once; later calls return an error wrapping domain.ErrFinalized.
// A failed write leaves the DevKit open so the caller can decide what to do.
func (d *DevKit) Finalize() error {
	if err := d.checkOpen(""); err != nil {
		return err
	}
	written, err := outputs.Finalize(d.relocator.Root(), d.input.Destination(), d.outputs, d.fileOutput.WriteTextToFile)
	if err != nil {
		d.logger.Error("Could not write outputs", "error", err)
		return err
	}
	d.finalized = true
	d.logger.Info("Finalized module", "path", written, "outputs", d.outputs.Len())
	return nil
}

// Finalized reports whether Finalize has succeeded.
func (d *DevKit) Finalized() bool { return d.finalized }

// OutputParamsPath returns the path Finalize writes to, or "" when the
// envelope names a file outside the output root.
func (d *DevKit) OutputParamsPath() string {
	target, err := relocation.Target(d.relocator.Root(), d.input.Destination())
	if err != nil {
		return ""
	}
	return target
}

func (d *DevKit) checkOpen(key string) error {
	if d.finalized {
		return domain.NewOutputError(key, domain.ErrFinalized, "Could not accept outputs after finalize")
	}
	return nil
}

func withKey(err error, key string) error {
	var outErr *domain.OutputError
	if errors.As(err, &outErr) && outErr.Key == "" {
		outErr.Key = key
	}
	return err
}

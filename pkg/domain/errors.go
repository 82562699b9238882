package domain

import (
	"errors"
	"fmt"
)

// LogPrefix marks every diagnostic produced by the adapter.
const LogPrefix = "[ADK] "

// Sentinel causes. Error kinds below wrap one of these so callers can match
// the reason with errors.Is and the kind with errors.As.
var (
	// ErrEnvNotSet is returned when the input variable is absent or blank.
	ErrEnvNotSet = errors.New("environment variable not set")
	// ErrInvalidJSON is returned when the input envelope is not a JSON object.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrMissingDestination is returned when the envelope lacks the output params file field.
	ErrMissingDestination = errors.New("missing output params file")

	// ErrMissingKey is returned when an input key is not in the envelope.
	ErrMissingKey = errors.New("key not found")
	// ErrKindMismatch is returned when the stored JSON type does not match the requested kind.
	ErrKindMismatch = errors.New("kind mismatch")
	// ErrUnsupportedKind is returned for kinds outside string, int, float, bool and their arrays.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrNonUniformArray is returned when an array element cannot be coerced to the element kind.
	ErrNonUniformArray = errors.New("non-uniform array")

	// ErrUnencodable is returned when an output value cannot be represented in the output JSON.
	ErrUnencodable = errors.New("value not encodable")
	// ErrInvalidPath is returned for output file paths that are empty or escape the output root.
	ErrInvalidPath = errors.New("invalid output path")
	// ErrFinalized is returned for outputs set or finalized after the module was finalized.
	ErrFinalized = errors.New("module already finalized")
)

// EnvironmentError reports a failure to read or decode the input envelope.
// The adapter instance cannot be used once this is returned.
type EnvironmentError struct {
	Msg string
	Err error
}

func (e *EnvironmentError) Error() string { return prefixed(e.Msg, e.Err) }

func (e *EnvironmentError) Unwrap() error { return e.Err }

// InputError reports a failed input lookup.
type InputError struct {
	Key string
	Msg string
	Err error
}

func (e *InputError) Error() string { return prefixed(e.Msg, e.Err) }

func (e *InputError) Unwrap() error { return e.Err }

// OutputError reports a failed output, relocation or finalize call.
// Key is empty when the failure is not tied to one output (finalize).
type OutputError struct {
	Key string
	Msg string
	Err error
}

func (e *OutputError) Error() string { return prefixed(e.Msg, e.Err) }

func (e *OutputError) Unwrap() error { return e.Err }

// NewEnvironmentError builds an EnvironmentError with a formatted message.
func NewEnvironmentError(cause error, format string, args ...any) *EnvironmentError {
	return &EnvironmentError{Msg: fmt.Sprintf(format, args...), Err: cause}
}

// NewInputError builds an InputError for key with a formatted message.
func NewInputError(key string, cause error, format string, args ...any) *InputError {
	return &InputError{Key: key, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// NewOutputError builds an OutputError for key with a formatted message.
func NewOutputError(key string, cause error, format string, args ...any) *OutputError {
	return &OutputError{Key: key, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func prefixed(msg string, cause error) string {
	if cause == nil {
		return LogPrefix + msg
	}
	return LogPrefix + msg + ": " + cause.Error()
}

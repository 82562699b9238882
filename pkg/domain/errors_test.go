package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds_Prefix(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "environment without cause",
			err:  NewEnvironmentError(nil, "Could not find %q in environment variables", EnvInputJSON),
			want: `[ADK] Could not find "WFE_INPUT_JSON" in environment variables`,
		},
		{
			name: "input with cause",
			err:  NewInputError("threshold", ErrKindMismatch, "Could not read input %q as int", "threshold"),
			want: `[ADK] Could not read input "threshold" as int: kind mismatch`,
		},
		{
			name: "output with cause",
			err:  NewOutputError("image", ErrInvalidPath, "Could not relocate %q", "../x"),
			want: `[ADK] Could not relocate "../x": invalid output path`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKinds_Unwrap(t *testing.T) {
	ioErr := errors.New("disk full")
	err := fmt.Errorf("finalize: %w", NewOutputError("", ioErr, "Could not write output params"))

	var outErr *OutputError
	assert.True(t, errors.As(err, &outErr))
	assert.ErrorIs(t, err, ioErr)

	var inErr *InputError
	assert.False(t, errors.As(err, &inErr))

	envErr := NewEnvironmentError(ErrInvalidJSON, "Could not decode %q", EnvInputJSON)
	assert.ErrorIs(t, envErr, ErrInvalidJSON)
	assert.NotErrorIs(t, envErr, ErrEnvNotSet)
}

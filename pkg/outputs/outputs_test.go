package outputs

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Values(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "value_one", `"value_one"`},
		{"quoted string", `say "hi"`, `"say \"hi\""`},
		{"true", true, `true`},
		{"false", false, `false`},
		{"int", 42, `42`},
		{"negative int64", int64(-7), `-7`},
		{"uint8", uint8(255), `255`},
		{"float", 47.11, `47.11`},
		{"whole float", 42.0, `42`},
		{"small float", -1e-6, `-1e-06`},
		{"large float", 1e21, `1e+21`},
		{"float32", float32(0.5), `0.5`},
		{"json number", json.Number("123.654"), `123.654`},
		{"json integer", json.Number("+5"), `5`},
		{"zero", 0.0, `0`},
		{"strings", []string{"value1", "value2", "value3"}, `["value1","value2","value3"]`},
		{"floats", []float64{42, 47.11}, `[42,47.11]`},
		{"ints", []int{1, 2, 3}, `[1,2,3]`},
		{"bools", []bool{true, false}, `[true,false]`},
		{"empty", []string{}, `[]`},
		{"uniform any", []any{1, 2.5, int64(3)}, `[1,2.5,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}

func TestEncode_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"nan", math.NaN()},
		{"inf", math.Inf(-1)},
		{"map", map[string]any{"nested": true}},
		{"struct", struct{ A int }{1}},
		{"nested slice", []any{[]string{"a"}}},
		{"mixed slice", []any{"a", 1}},
		{"slice with nan", []float64{1, math.NaN()}},
		{"slice of maps", []map[string]string{{"a": "b"}}},
		{"bad json number", json.Number("forty-two")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.value)
			assert.ErrorIs(t, err, domain.ErrUnencodable)
		})
	}
}

func TestAccumulator_SingleStringIsExact(t *testing.T) {
	acc := New()
	require.NoError(t, acc.Set("key_one", "value_one"))

	data, err := acc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"key_one":"value_one"}`, string(data))
}

func TestAccumulator_Order(t *testing.T) {
	acc := New()
	require.NoError(t, acc.Set("key_one", 42))
	require.NoError(t, acc.Set("key_two", 47.11))
	require.NoError(t, acc.Set("key_three", -1e-6))
	require.NoError(t, acc.Set("key_one", 43))

	assert.Equal(t, 3, acc.Len())
	assert.Equal(t, []string{"key_one", "key_two", "key_three"}, acc.Keys())

	data, err := acc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"key_one":43,"key_two":47.11,"key_three":-1e-06}`, string(data))

	raw, ok := acc.Get("key_two")
	assert.True(t, ok)
	assert.Equal(t, "47.11", string(raw))
}

func TestAccumulator_RejectsImmediately(t *testing.T) {
	acc := New()
	require.NoError(t, acc.Set("kept", true))

	err := acc.Set("bad", map[string]int{"x": 1})

	var outErr *domain.OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, "bad", outErr.Key)
	assert.ErrorIs(t, err, domain.ErrUnencodable)
	assert.Equal(t, []string{"kept"}, acc.Keys(), "rejected values are not stored")
}

func TestAccumulator_Empty(t *testing.T) {
	data, err := New().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestFinalize(t *testing.T) {
	acc := New()
	require.NoError(t, acc.Set("key_one", "value_one"))

	var gotPath, gotText string
	written, err := Finalize(domain.OutputRoot, "out.json", acc, func(path, text string) error {
		gotPath, gotText = path, text
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "/output/out.json", written)
	assert.Equal(t, "/output/out.json", gotPath)
	assert.Equal(t, `{"key_one":"value_one"}`, gotText)
}

func TestFinalize_WriteFailure(t *testing.T) {
	diskErr := errors.New("read-only file system")
	calls := 0
	_, err := Finalize(domain.OutputRoot, "out.json", New(), func(path, text string) error {
		calls++
		return diskErr
	})

	var outErr *domain.OutputError
	require.True(t, errors.As(err, &outErr))
	assert.ErrorIs(t, err, diskErr)
	assert.Equal(t, 1, calls, "finalize never retries")
}

func TestFinalize_InvalidDestination(t *testing.T) {
	calls := 0
	_, err := Finalize(domain.OutputRoot, "../out.json", New(), func(path, text string) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPath)
	assert.Zero(t, calls)
}

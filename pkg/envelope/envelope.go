// Package envelope decodes the JSON input envelope handed to a module and
// answers typed lookups against it.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/apeer-micro/adk/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Envelope is the decoded input envelope. It is immutable after Parse.
type Envelope struct {
	destination string
	values      map[string]any
}

// Parse decodes raw into an Envelope.
// It fails with a *domain.EnvironmentError when raw is not a JSON object or when
// the output params file field is missing or not a string.
func Parse(raw string) (*Envelope, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	// Numbers stay json.Number so Int can tell 42 from 42.5 without float rounding.
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, domain.NewEnvironmentError(fmt.Errorf("%w: %w", domain.ErrInvalidJSON, err),
			"Could not decode input envelope")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.NewEnvironmentError(domain.ErrInvalidJSON,
			"Could not decode input envelope: trailing data after object")
	}

	values, ok := root.(map[string]any)
	if !ok {
		return nil, domain.NewEnvironmentError(domain.ErrInvalidJSON,
			"Could not decode input envelope: expected object, got %s", kindOf(root))
	}

	dest, err := destination(values)
	if err != nil {
		return nil, err
	}

	return &Envelope{destination: dest, values: values}, nil
}

func destination(values map[string]any) (string, error) {
	key := domain.KeyOutputParamsFile
	raw, ok := values[key]
	if !ok {
		key = domain.KeyLegacyOutputParamsFile
		raw, ok = values[key]
	}
	if !ok {
		return "", domain.NewEnvironmentError(domain.ErrMissingDestination,
			"Could not find %q in input envelope", domain.KeyOutputParamsFile)
	}

	dest, ok := raw.(string)
	if !ok {
		return "", domain.NewEnvironmentError(domain.ErrMissingDestination,
			"Field %q must be a string, got %s", key, kindOf(raw))
	}
	if strings.TrimSpace(dest) == "" {
		return "", domain.NewEnvironmentError(domain.ErrMissingDestination, "Field %q is empty", key)
	}
	return dest, nil
}

// Destination returns the output params file name, relative to the output root.
func (e *Envelope) Destination() string { return e.destination }

// Has reports whether key is present in the envelope.
func (e *Envelope) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Keys returns the input keys in sorted order, without the output params file fields.
func (e *Envelope) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		if k == domain.KeyOutputParamsFile || k == domain.KeyLegacyOutputParamsFile {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Kind returns the JSON kind stored under key ("string", "number", "boolean",
// "array", "object" or "null").
func (e *Envelope) Kind(key string) (string, bool) {
	v, ok := e.values[key]
	if !ok {
		return "", false
	}
	return kindOf(v), true
}

// Values returns a copy of the decoded inputs. Numbers are json.Number.
func (e *Envelope) Values() map[string]any {
	out := make(map[string]any, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// String returns the string input stored under key.
func (e *Envelope) String(key string) (string, error) {
	v, err := e.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", mismatch(key, "string", v)
	}
	return s, nil
}

// Int returns the integer input stored under key.
// Numbers with a fractional part are rejected; 42.0 is accepted as 42.
func (e *Envelope) Int(key string) (int, error) {
	v, err := e.lookup(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, mismatch(key, "int", v)
	}
	i, ok := toInt(n)
	if !ok {
		return 0, domain.NewInputError(key, domain.ErrKindMismatch,
			"Could not read input %q as int: %s is not an integer", key, n.String())
	}
	return i, nil
}

// Float returns the numeric input stored under key.
func (e *Envelope) Float(key string) (float64, error) {
	v, err := e.lookup(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, mismatch(key, "float", v)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, domain.NewInputError(key, fmt.Errorf("%w: %w", domain.ErrKindMismatch, err),
			"Could not read input %q as float", key)
	}
	return f, nil
}

// Bool returns the boolean input stored under key.
func (e *Envelope) Bool(key string) (bool, error) {
	v, err := e.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(key, "bool", v)
	}
	return b, nil
}

// Strings returns the string array stored under key.
func (e *Envelope) Strings(key string) ([]string, error) {
	items, err := e.array(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, nonUniform(key, i, "string", item)
		}
		out[i] = s
	}
	return out, nil
}

// Floats returns the numeric array stored under key. Integer elements are
// converted, so [42, 47.11] yields [42.0, 47.11].
func (e *Envelope) Floats(key string) ([]float64, error) {
	items, err := e.array(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		n, ok := item.(json.Number)
		if !ok {
			return nil, nonUniform(key, i, "float", item)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, nonUniform(key, i, "float", item)
		}
		out[i] = f
	}
	return out, nil
}

// Bools returns the boolean array stored under key.
func (e *Envelope) Bools(key string) ([]bool, error) {
	items, err := e.array(key)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(items))
	for i, item := range items {
		b, ok := item.(bool)
		if !ok {
			return nil, nonUniform(key, i, "bool", item)
		}
		out[i] = b
	}
	return out, nil
}

// Bind decodes the inputs into target, a pointer to a struct tagged with
// `mapstructure:"key"`. Fields without a matching input are left untouched.
func (e *Envelope) Bind(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
	})
	if err != nil {
		return domain.NewInputError("", err, "Could not bind inputs to %T", target)
	}
	if err := dec.Decode(e.values); err != nil {
		return domain.NewInputError("", fmt.Errorf("%w: %w", domain.ErrKindMismatch, err),
			"Could not bind inputs to %T", target)
	}
	return nil
}

func (e *Envelope) lookup(key string) (any, error) {
	v, ok := e.values[key]
	if !ok {
		return nil, domain.NewInputError(key, domain.ErrMissingKey, "Could not find key %q in inputs", key)
	}
	return v, nil
}

func (e *Envelope) array(key string) ([]any, error) {
	v, err := e.lookup(key)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, mismatch(key, "array", v)
	}
	return items, nil
}

func toInt(n json.Number) (int, bool) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	i := int64(f)
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func mismatch(key, want string, got any) error {
	return domain.NewInputError(key, domain.ErrKindMismatch,
		"Could not read input %q as %s, got %s", key, want, kindOf(got))
}

func nonUniform(key string, index int, want string, got any) error {
	return domain.NewInputError(key, domain.ErrNonUniformArray,
		"Could not read input %q as [%s]: element %d is %s", key, want, index, kindOf(got))
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Type defines the contract for input validation.
type Type interface {
	// Name returns the canonical name of the type (e.g., "string", "[float]").
	Name() string
	// Validate checks if a decoded JSON value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %s", describe(value))
	}
	return nil
}

// IntType validates integral numbers. 42.0 passes, 42.5 does not.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return nil
		}
		f, err := v.Float64()
		if err == nil && f == math.Trunc(f) {
			return nil
		}
		return fmt.Errorf("expected int, got %s (not a whole number)", v.String())
	case float64:
		if v == math.Trunc(v) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %s", describe(value))
	}
}

// FloatType validates any number.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	switch v := value.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case json.Number:
		if _, err := v.Float64(); err != nil {
			return fmt.Errorf("expected float, got %q", v.String())
		}
		return nil
	default:
		return fmt.Errorf("expected float, got %s", describe(value))
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %s", describe(value))
	}
	return nil
}

// SliceType validates flat arrays of a primitive element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	items, ok := asItems(value)
	if !ok {
		return fmt.Errorf("expected array, got %s", describe(value))
	}
	for i, item := range items {
		if err := t.elemType.Validate(item); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Slice creates an array type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// ParseType converts a type name to a Type.
// Supports "string", "int", "float", "bool", their long
// spellings ("integer", "number", "double", "boolean") and one level of
// array brackets ("[string]", "[float]").
func ParseType(typeStr string) (Type, error) {
	name := strings.TrimSpace(typeStr)
	if len(name) > 2 && name[0] == '[' && name[len(name)-1] == ']' {
		elem, err := parseScalar(name[1 : len(name)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	}
	return parseScalar(name)
}

func parseScalar(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string":
		return String(), nil
	case "int", "integer":
		return Int(), nil
	case "float", "double", "number":
		return Float(), nil
	case "bool", "boolean":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", name)
	}
}

// ParseTypeMap converts a map of field names to type strings into a Schema.
// Example: {"input_image": "string", "threshold": "int"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema, len(typeMap))
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}

func asItems(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		return toItems(v), true
	case []bool:
		return toItems(v), true
	case []int:
		return toItems(v), true
	case []int64:
		return toItems(v), true
	case []float64:
		return toItems(v), true
	case []json.Number:
		return toItems(v), true
	default:
		return nil, false
	}
}

func toItems[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case json.Number:
		return "number"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

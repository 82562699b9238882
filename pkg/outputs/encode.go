package outputs

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/apeer-micro/adk/pkg/domain"
)

// Encode renders v as a JSON value. Accepted are strings, booleans, integers,
// finite floats, json.Number and flat slices of one of these.
func Encode(v any) (json.RawMessage, error) {
	switch x := v.(type) {
	case []string:
		return encodeSlice(x)
	case []bool:
		return encodeSlice(x)
	case []int:
		return encodeSlice(x)
	case []int32:
		return encodeSlice(x)
	case []int64:
		return encodeSlice(x)
	case []uint:
		return encodeSlice(x)
	case []float32:
		return encodeSlice(x)
	case []float64:
		return encodeSlice(x)
	case []json.Number:
		return encodeSlice(x)
	case []any:
		return encodeUniform(x)
	default:
		s, _, err := encodeScalar(v)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(s), nil
	}
}

func encodeSlice[T any](items []T) (json.RawMessage, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		s, _, err := encodeScalar(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		parts[i] = s
	}
	return json.RawMessage("[" + strings.Join(parts, ",") + "]"), nil
}

func encodeUniform(items []any) (json.RawMessage, error) {
	parts := make([]string, len(items))
	first := ""
	for i, item := range items {
		s, kind, err := encodeScalar(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if i == 0 {
			first = kind
		} else if kind != first {
			return nil, fmt.Errorf("%w: element %d is %s, expected %s", domain.ErrUnencodable, i, kind, first)
		}
		parts[i] = s
	}
	return json.RawMessage("[" + strings.Join(parts, ",") + "]"), nil
}

// encodeScalar returns the JSON text of a primitive and its JSON kind.
func encodeScalar(v any) (string, string, error) {
	switch x := v.(type) {
	case string:
		b, err := json.Marshal(x)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrUnencodable, err)
		}
		return string(b), "string", nil
	case bool:
		return strconv.FormatBool(x), "boolean", nil
	case int:
		return strconv.FormatInt(int64(x), 10), "number", nil
	case int8:
		return strconv.FormatInt(int64(x), 10), "number", nil
	case int16:
		return strconv.FormatInt(int64(x), 10), "number", nil
	case int32:
		return strconv.FormatInt(int64(x), 10), "number", nil
	case int64:
		return strconv.FormatInt(x, 10), "number", nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), "number", nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), "number", nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), "number", nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), "number", nil
	case uint64:
		return strconv.FormatUint(x, 10), "number", nil
	case float32:
		s, err := formatFloat(float64(x), 32)
		return s, "number", err
	case float64:
		s, err := formatFloat(x, 64)
		return s, "number", err
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return "", "", fmt.Errorf("%w: %q is not a number", domain.ErrUnencodable, x.String())
		}
		if i, err := x.Int64(); err == nil {
			return strconv.FormatInt(i, 10), "number", nil
		}
		s, err := formatFloat(f, 64)
		return s, "number", err
	case nil:
		return "", "", fmt.Errorf("%w: null", domain.ErrUnencodable)
	default:
		return "", "", fmt.Errorf("%w: unsupported type %T", domain.ErrUnencodable, v)
	}
}

// formatFloat uses the shortest representation, switching to exponent form
// for magnitudes below 1e-4 or at or above 1e21.
func formatFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", domain.ErrUnencodable, f)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, bits), nil
}

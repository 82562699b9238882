// Package outputs collects module outputs and writes them as the output params file.
package outputs

import (
	"encoding/json"

	"github.com/apeer-micro/adk/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Accumulator holds encoded outputs in the order they were first set.
// Not safe for concurrent use.
type Accumulator struct {
	values *orderedmap.OrderedMap[string, json.RawMessage]
}

// New creates an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{values: orderedmap.New[string, json.RawMessage]()}
}

// Set encodes value and stores it under key, replacing any previous value.
// A replaced key keeps its original position.
func (a *Accumulator) Set(key string, value any) error {
	raw, err := Encode(value)
	if err != nil {
		return domain.NewOutputError(key, err, "Could not set output %q", key)
	}
	a.values.Set(key, raw)
	return nil
}

// Get returns the encoded value stored under key.
func (a *Accumulator) Get(key string) (json.RawMessage, bool) {
	return a.values.Get(key)
}

// Len returns the number of outputs set.
func (a *Accumulator) Len() int { return a.values.Len() }

// Keys returns the output keys in insertion order.
func (a *Accumulator) Keys() []string {
	keys := make([]string, 0, a.values.Len())
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON renders the outputs as a compact JSON object.
func (a *Accumulator) MarshalJSON() ([]byte, error) {
	return a.values.MarshalJSON()
}

// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
)

// Entry is one key/value pair of a mapping decoded in document order.
// Nested mappings are decoded as []Entry.
type Entry struct {
	Key   string
	Value any
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalOrdered decodes a top-level mapping keeping key order at every
// nesting level. Keys that are not strings are formatted with %v.
func UnmarshalOrdered(data []byte) ([]Entry, error) {
	var ms yaml.MapSlice
	if err := validateInput(data, &ms); err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if ms == nil {
		return nil, ErrNotMapping
	}
	return fromMapSlice(ms), nil
}

func fromMapSlice(ms yaml.MapSlice) []Entry {
	entries := make([]Entry, 0, len(ms))
	for _, item := range ms {
		entries = append(entries, Entry{
			Key:   fmt.Sprint(item.Key),
			Value: fromValue(item.Value),
		})
	}
	return entries
}

func fromValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return fromMapSlice(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = fromValue(elem)
		}
		return out
	default:
		return v
	}
}

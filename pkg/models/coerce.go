package models

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// weakDecode decodes loosely typed input (JSON numbers, numeric strings,
// nested maps) into out.
func weakDecode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	return dec.Decode(in)
}

func toInt(v any) (int, error) {
	var n int
	if err := weakDecode(v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func toFloat(v any) (float64, error) {
	var f float64
	if err := weakDecode(v, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// toMapSlice converts a decoded JSON/YAML list into its map elements,
// skipping anything that is not an object.
func toMapSlice(v any) []map[string]any {
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

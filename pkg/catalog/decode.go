package catalog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a normalized value into its typed view, e.g.
// Decode[Graph](v) for a value returned by the Graph type.
func Decode[T any](v any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &out,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(v); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}

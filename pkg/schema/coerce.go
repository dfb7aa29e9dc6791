package schema

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Bounds of int64 expressed as float64. The upper bound itself does not fit.
const (
	minIntFloat = -9223372036854775808.0
	maxIntFloat = 9223372036854775808.0
)

// CoerceBool accepts only real booleans.
func CoerceBool(raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, Failf(raw, "expected bool")
	}
	return b, nil
}

// CoerceInt converts raw to an int. Floats truncate toward zero (3.05 -> 3,
// -2.7 -> -2). Strings must hold a base-10 integer once trimmed, so "3.05"
// is rejected while the number 3.05 is not.
func CoerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case bool, nil:
		return 0, Failf(raw, "expected int")
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(v).Uint()
		if u > math.MaxInt64 {
			return 0, Failf(raw, "integer %d out of range", u)
		}
		return int(u), nil
	case float32:
		return truncate(float64(v), raw)
	case float64:
		return truncate(v, raw)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, Failf(raw, "invalid number %q", v.String())
		}
		return truncate(f, raw)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, Failf(raw, "cannot convert %q to int", v)
		}
		return int(i), nil
	default:
		return 0, Failf(raw, "expected int")
	}
}

func truncate(f float64, raw any) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Failf(raw, "non-finite number")
	}
	t := math.Trunc(f)
	if t < minIntFloat || t >= maxIntFloat {
		return 0, Failf(raw, "number %g out of int range", f)
	}
	return int(t), nil
}

// CoerceFloat converts raw to a finite float64. Numeric strings are parsed
// once trimmed.
func CoerceFloat(raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case bool, nil:
		return 0, Failf(raw, "expected float")
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint, uint8, uint16, uint32, uint64:
		f = float64(reflect.ValueOf(v).Uint())
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, Failf(raw, "invalid number %q", v.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, Failf(raw, "cannot convert %q to float", v)
		}
		f = parsed
	default:
		return 0, Failf(raw, "expected float")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Failf(raw, "non-finite number")
	}
	return f, nil
}

// CoerceUnicode accepts valid UTF-8 strings and returns them unchanged.
func CoerceUnicode(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", Failf(raw, "expected string")
	}
	if !utf8.ValidString(s) {
		return "", Failf(raw, "string contains invalid UTF-8")
	}
	return s, nil
}

// asList returns raw as []any. Other slice types are converted element by
// element; strings and byte slices are not lists.
func asList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asDict returns raw as map[string]any. Other maps keyed by strings are
// converted.
// CoerceDict converts raw to a map[string]any. Any map with string keys is
// accepted; the result is a fresh map when raw has another map type.
func CoerceDict(raw any) (map[string]any, error) {
	m, ok := asDict(raw)
	if !ok {
		return nil, Failf(raw, "expected dict")
	}
	return m, nil
}

func asDict(raw any) (map[string]any, bool) {
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}
	if raw == nil {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

package schema

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		value   any
		want    int
		wantErr bool
	}{
		{20, 20, false},
		{"20", 20, false},
		{"02", 2, false},
		{"0", 0, false},
		{"-1", -1, false},
		{-1, -1, false},
		{3.00, 3, false},
		{3.05, 3, false},
		{-2.7, -2, false},
		{int8(42), 42, false},
		{uint16(7), 7, false},
		{json.Number("12"), 12, false},
		{json.Number("12.9"), 12, false},
		{" 5 ", 5, false},
		{"a", 0, true},
		{"", 0, true},
		{"3.05", 0, true},
		{map[string]any{"a": 3}, 0, true},
		{[]any{3}, 0, true},
		{nil, 0, true},
		{true, 0, true},
		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
		{1e30, 0, true},
		{uint64(math.MaxUint64), 0, true},
	}

	for _, tt := range tests {
		got, err := CoerceInt(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("CoerceInt(%#v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("CoerceInt(%#v) = %d, want %d", tt.value, got, tt.want)
		}
		if err != nil && !errors.Is(err, ErrNormalization) {
			t.Errorf("CoerceInt(%#v) error should wrap ErrNormalization", tt.value)
		}
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		value   any
		want    float64
		wantErr bool
	}{
		{20, 20, false},
		{"20", 20, false},
		{"02", 2, false},
		{"0", 0, false},
		{-1, -1, false},
		{"-1", -1, false},
		{3.00, 3, false},
		{3.05, 3.05, false},
		{"3.05", 3.05, false},
		{float32(0.5), 0.5, false},
		{json.Number("1.25"), 1.25, false},
		{"a", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{map[string]any{"a": 3}, 0, true},
		{[]any{3}, 0, true},
		{nil, 0, true},
		{false, 0, true},
	}

	for _, tt := range tests {
		got, err := CoerceFloat(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("CoerceFloat(%#v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("CoerceFloat(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCoerceBool(t *testing.T) {
	for _, v := range []any{true, false} {
		got, err := CoerceBool(v)
		if err != nil || got != v {
			t.Errorf("CoerceBool(%v) = %v, %v", v, got, err)
		}
	}
	for _, v := range []any{"", "true", 1, 0, nil, []any{}, map[string]any{}} {
		if _, err := CoerceBool(v); err == nil {
			t.Errorf("CoerceBool(%#v) should fail", v)
		}
	}
}

func TestCoerceUnicode(t *testing.T) {
	for _, v := range []string{"", "Abc   def", "¡Hola!"} {
		got, err := CoerceUnicode(v)
		if err != nil || got != v {
			t.Errorf("CoerceUnicode(%q) = %q, %v", v, got, err)
		}
	}
	for _, v := range []any{3.0, map[string]any{"a": 1}, []any{1, 2, 1}, nil, string([]byte{0xff})} {
		if _, err := CoerceUnicode(v); err == nil {
			t.Errorf("CoerceUnicode(%#v) should fail", v)
		}
	}
}

func TestAsList(t *testing.T) {
	if _, ok := asList("abc"); ok {
		t.Error("strings are not lists")
	}
	if _, ok := asList(nil); ok {
		t.Error("nil is not a list")
	}
	got, ok := asList([]string{"a", "b"})
	if !ok || len(got) != 2 || got[1] != "b" {
		t.Errorf("asList([]string) = %v, %v", got, ok)
	}
}

func TestAsDict(t *testing.T) {
	got, ok := asDict(map[string]int{"a": 1})
	if !ok || got["a"] != 1 {
		t.Errorf("asDict(map[string]int) = %v, %v", got, ok)
	}
	if _, ok := asDict(map[int]any{1: "a"}); ok {
		t.Error("maps with non-string keys are not dicts")
	}
	if _, ok := asDict([]any{}); ok {
		t.Error("lists are not dicts")
	}
}

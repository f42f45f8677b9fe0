package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes "field absent" from "field present but null" in
// PATCH-style update payloads. An absent field leaves the column untouched,
// an explicit null clears it, a value replaces it.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value as a pointer, or nil when the field was null.
// Callers must check Present first.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Some builds a present, non-null Optional. Used in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null builds a present, explicitly-null Optional. Used in tests.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

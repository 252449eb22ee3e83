// Package optional provides a presence-tagged value container.
//
// A Value distinguishes "not set" from "set to the zero value": an explicitly
// set empty string is present. The zero Value is absent, so struct fields of
// type Value[T] start out unset without any initialization.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value holds either a value of type T or nothing.
type Value[T any] struct {
	v   T
	set bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an absent Value for nil and a present copy of *p otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// IsPresent reports whether the value is set.
func (o Value[T]) IsPresent() bool {
	return o.set
}

// Get returns the held value and whether it is present.
// The zero value of T is returned when absent.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.set
}

// OrElse returns the held value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.v
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.v
	return &v
}

// String renders the held value, or "<absent>".
func (o Value[T]) String() string {
	if !o.set {
		return "<absent>"
	}
	return fmt.Sprint(o.v)
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as absent and anything else as present.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (o Value[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.v, nil
}

package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a JSON field that remembers whether it was present in the payload
// and whether it was an explicit null.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the payload, including as null.
func (v Value[T]) IsSet() bool {
	return v.set
}

func (v Value[T]) IsNull() bool {
	return v.set && v.null
}

// Get returns the value when it was present and not null.
func (v Value[T]) Get() (T, bool) {
	if !v.set || v.null {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Ptr returns a pointer to the value, or nil when absent or null.
func (v Value[T]) Ptr() *T {
	if !v.set || v.null {
		return nil
	}
	value := v.value
	return &value
}

// Apply replaces a present value with fn(value).
func (v *Value[T]) Apply(fn func(T) T) {
	if v.set && !v.null {
		v.value = fn(v.value)
	}
}

// ValidationValue exposes the value to the validator: a pointer when present,
// nil otherwise so that omitempty skips absent and null fields.
func (v Value[T]) ValidationValue() any {
	if p := v.Ptr(); p != nil {
		return p
	}
	return nil
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

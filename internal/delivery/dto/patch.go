package dto

import (
	"hospital-management-api/pkg/optional"
)

// Patch is implemented by every Update request. Fields returns only the
// columns the caller actually sent, keyed by column name.
type Patch interface {
	Fields() map[string]interface{}
}

// Normalizer is implemented by requests that clean up their input before
// validation.
type Normalizer interface {
	Normalize()
}

type fieldSet map[string]interface{}

// set records a present, non-null value. Explicit nulls on non-nullable
// columns are dropped, so an all-null payload has no fields.
func set[T any](f fieldSet, column string, v optional.Value[T]) {
	if value, ok := v.Get(); ok {
		f[column] = value
	}
}

// setNullable also records an explicit null, clearing the column.
func setNullable[T any](f fieldSet, column string, v optional.Value[T]) {
	if v.IsNull() {
		f[column] = nil
		return
	}
	set(f, column, v)
}

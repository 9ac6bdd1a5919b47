package patch

import (
	"bytes"
	"encoding/json"
)

// Field is a request field with three states: absent, explicitly null, or a value.
// The zero Field is absent.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a present, non-null field
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Null returns a present field holding null
func Null[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

// UnmarshalJSON is only invoked when the key appears in the document,
// which is what marks the field present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes null for absent and null fields
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Apply assigns the value to dst for a non-nullable column.
// Absent and null fields are ignored. It reports whether dst changed.
func Apply[T comparable](f Field[T], dst *T) bool {
	if !f.Present || f.Null || *dst == f.Value {
		return false
	}
	*dst = f.Value
	return true
}

// ApplyEqual is Apply for values that need their own equality, such as time.Time
func ApplyEqual[T any](f Field[T], dst *T, equal func(a, b T) bool) bool {
	if !f.Present || f.Null || equal(*dst, f.Value) {
		return false
	}
	*dst = f.Value
	return true
}

// ApplyNullable assigns the value to dst for a nullable column.
// A present null clears dst. It reports whether dst changed.
func ApplyNullable[T comparable](f Field[T], dst **T) bool {
	if !f.Present {
		return false
	}
	if f.Null {
		if *dst == nil {
			return false
		}
		*dst = nil
		return true
	}
	if *dst != nil && **dst == f.Value {
		return false
	}
	v := f.Value
	*dst = &v
	return true
}

// Ptr returns the field as a pointer, nil when absent or null
func (f Field[T]) Ptr() *T {
	if !f.Present || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// Interface returns Ptr boxed. Absent and null box a nil *T, so `omitnil`
// skips them while a present zero value is still validated.
func (f Field[T]) Interface() interface{} {
	return f.Ptr()
}

// Package request holds the inbound payloads of the HTTP API and their mapping
// to use case inputs.
package request

import (
	"encoding/json"

	"hobbyexplorer/internal/usecase"
)

// Field is a JSON body field that remembers whether it was sent and whether it
// was sent as null. The zero value is an absent field.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON is only called for keys present in the document, null included.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	var value T
	f.Set = true
	f.Null = string(data) == "null"
	if !f.Null {
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
	}
	f.Value = value

	return nil
}

// Present reports whether the field was sent with a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Ptr returns the value, or nil when the field was absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	value := f.Value

	return &value
}

// Optional converts the field into a use case partial-update value.
func (f Field[T]) Optional() usecase.Optional[T] {
	if !f.Set {
		return usecase.Optional[T]{}
	}

	return usecase.Optional[T]{Set: true, Value: f.Ptr()}
}

// NullChecker is implemented by payloads with fields that may be omitted but
// never sent as null. NullFields returns the JSON names of offending fields.
type NullChecker interface {
	NullFields() []string
}

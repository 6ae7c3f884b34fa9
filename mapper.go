package fluentmapper

import (
	"reflect"

	"github.com/waratah/fluent-mapper/internal/compose"
)

// Mapper is the compiled artifact: a constructor for fresh target instances
// and the composed transformation. A Mapper is immutable, holds no reference
// back to its specification, and is safe for unlimited concurrent use;
// nothing is cached between calls.
type Mapper[T, S any] struct {
	construct func() T
	transform compose.Stage
}

// Map constructs a fresh target instance and applies the composed
// transformation to it, returning the populated target.
func (m *Mapper[T, S]) Map(source S) T {
	return m.MapInto(m.construct(), source)
}

// MapInto applies the composed transformation to an existing target instance,
// skipping construction. For pointer targets the instance is populated in
// place; for value targets the populated copy is returned.
func (m *Mapper[T, S]) MapInto(target T, source S) T {
	out := m.transform(reflect.ValueOf(target), reflect.ValueOf(source))
	if !out.IsValid() {
		return target
	}
	return out.Interface().(T)
}

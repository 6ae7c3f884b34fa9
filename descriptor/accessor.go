package descriptor

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/waratah/fluent-mapper/utils"
)

var (
	ErrNotAFunction  = errors.New("provided accessor is not a function")
	ErrNotAnAccessor = errors.New("provided function is not a recognizable accessor")
)

// Accessor describes a single-argument, single-result function used to read a
// derived value off a source instance.
type Accessor struct {
	Source, Value reflect.Type
	PackageAlias  string
	Name          string

	fn reflect.Value
}

// ParseAccessor inspects the provided function and returns an Accessor if it
// has the shape:
//   - func(src Type) (value Type)
//
// The function name is recovered through the runtime, so descriptors built
// from named functions keep a meaningful Description.
func ParseAccessor(fn any) (Accessor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Accessor{}, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() != 1 || fnType.IsVariadic() {
		return Accessor{}, ErrNotAnAccessor
	}

	// Get the function object from the pointer. The full name is
	// "<import/path>.<name>"; the import path may itself contain dots, so
	// split off the directory part before splitting at the first dot.
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	qualified := utils.Second(path.Split(fnPC.Name()))
	alias, name := utils.Unpack2(strings.SplitN(qualified, ".", 2))

	return Accessor{
		Source:       fnType.In(0),
		Value:        fnType.Out(0),
		PackageAlias: alias,
		Name:         name,
		fn:           fnVal,
	}, nil
}

// Call applies the accessor to a source value.
func (a Accessor) Call(source reflect.Value) reflect.Value {
	return a.fn.Call([]reflect.Value{source})[0]
}

// SourceOfFunc builds a SourceValue from a function of shape func(Source) Value.
// When name is empty, the property name defaults to the function's own name.
func SourceOfFunc(name string, fn any) (SourceValue, error) {
	accessor, err := ParseAccessor(fn)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = accessor.Name
	}

	return SourceOf(accessor.Source, name, accessor.Value, accessor.Call), nil
}

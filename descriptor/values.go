package descriptor

import (
	"fmt"
	"reflect"
)

// SourceValue is a named, typed handle for reading one property off a source
// instance. Implementations are immutable once constructed.
type SourceValue interface {
	Name() string
	Type() reflect.Type
	// Description is a human-readable identifier of the form
	// "<ValueType> <OwnerType>.<PropertyName>", used in error messages.
	Description() string
	Read(source reflect.Value) reflect.Value
}

// TargetValue is a named, typed handle for writing one property on a target
// instance. Write returns the resulting target so that per-property steps
// compose uniformly; for pointer targets this is the same pointer, for value
// targets it is an updated copy.
type TargetValue interface {
	Name() string
	Type() reflect.Type
	Description() string
	Write(target, value reflect.Value) reflect.Value
}

func describe(valueType, owner reflect.Type, name string) string {
	return fmt.Sprintf("%s %s.%s", valueType, owner, name)
}

type fieldSource struct {
	owner reflect.Type
	field reflect.StructField
}

// SourceField returns a SourceValue reading the given exported struct field.
func SourceField(owner reflect.Type, field reflect.StructField) SourceValue {
	return &fieldSource{owner: owner, field: field}
}

func (s *fieldSource) Name() string       { return s.field.Name }
func (s *fieldSource) Type() reflect.Type { return s.field.Type }

func (s *fieldSource) Description() string {
	return describe(s.field.Type, s.owner, s.field.Name)
}

func (s *fieldSource) Read(source reflect.Value) reflect.Value {
	for source.Kind() == reflect.Ptr || source.Kind() == reflect.Interface {
		source = source.Elem()
	}
	return source.FieldByIndex(s.field.Index)
}

type getterSource struct {
	owner      reflect.Type
	methodName string
	valueType  reflect.Type
}

// SourceGetter returns a SourceValue reading through a zero-argument,
// single-result method. Used for interface sources, where properties are
// exposed as getters rather than fields.
func SourceGetter(owner reflect.Type, method reflect.Method) SourceValue {
	return &getterSource{
		owner:      owner,
		methodName: method.Name,
		valueType:  method.Type.Out(0),
	}
}

func (s *getterSource) Name() string       { return s.methodName }
func (s *getterSource) Type() reflect.Type { return s.valueType }

func (s *getterSource) Description() string {
	return describe(s.valueType, s.owner, s.methodName)
}

func (s *getterSource) Read(source reflect.Value) reflect.Value {
	// Lookup by name: the method index on the concrete value may differ from
	// the index on the interface type the descriptor was discovered from.
	return source.MethodByName(s.methodName).Call(nil)[0]
}

type fieldTarget struct {
	owner reflect.Type
	field reflect.StructField
}

// TargetField returns a TargetValue writing the given exported struct field.
func TargetField(owner reflect.Type, field reflect.StructField) TargetValue {
	return &fieldTarget{owner: owner, field: field}
}

func (t *fieldTarget) Name() string       { return t.field.Name }
func (t *fieldTarget) Type() reflect.Type { return t.field.Type }

func (t *fieldTarget) Description() string {
	return describe(t.field.Type, t.owner, t.field.Name)
}

func (t *fieldTarget) Write(target, value reflect.Value) reflect.Value {
	elem := target
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	if elem.CanSet() {
		elem.FieldByIndex(t.field.Index).Set(value)
		return target
	}

	// Value target: copy into an addressable struct and return the copy.
	fresh := reflect.New(elem.Type())
	fresh.Elem().Set(elem)
	fresh.Elem().FieldByIndex(t.field.Index).Set(value)
	return fresh.Elem()
}

type funcSource struct {
	owner     reflect.Type
	name      string
	valueType reflect.Type
	read      func(source reflect.Value) reflect.Value
}

// SourceOf returns a SourceValue backed by an arbitrary read function.
func SourceOf(owner reflect.Type, name string, valueType reflect.Type, read func(source reflect.Value) reflect.Value) SourceValue {
	return &funcSource{owner: owner, name: name, valueType: valueType, read: read}
}

func (s *funcSource) Name() string        { return s.name }
func (s *funcSource) Type() reflect.Type  { return s.valueType }
func (s *funcSource) Description() string { return describe(s.valueType, s.owner, s.name) }

func (s *funcSource) Read(source reflect.Value) reflect.Value { return s.read(source) }

type funcTarget struct {
	owner     reflect.Type
	name      string
	valueType reflect.Type
	write     func(target, value reflect.Value) reflect.Value
}

// TargetOf returns a TargetValue backed by an arbitrary write function.
// Writers that perform their effect and return an invalid value are
// normalized to yield the incoming target, so every descriptor keeps the
// uniform "(target, value) -> target" shape composition relies on.
func TargetOf(owner reflect.Type, name string, valueType reflect.Type, write func(target, value reflect.Value) reflect.Value) TargetValue {
	return &funcTarget{owner: owner, name: name, valueType: valueType, write: write}
}

func (t *funcTarget) Name() string        { return t.name }
func (t *funcTarget) Type() reflect.Type  { return t.valueType }
func (t *funcTarget) Description() string { return describe(t.valueType, t.owner, t.name) }

func (t *funcTarget) Write(target, value reflect.Value) reflect.Value {
	if out := t.write(target, value); out.IsValid() {
		return out
	}
	return target
}

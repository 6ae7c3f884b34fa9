package descriptor

import "reflect"

// OfTarget enumerates the publicly settable properties of t and returns one
// TargetValue per property. t may be a struct type or a pointer to one; any
// other type yields no descriptors. Embedded fields are skipped, since nested
// object graphs are not mapped.
//
// Discovery itself never fails: an empty result surfaces later as an
// unmatched-property error during validation.
func OfTarget(t reflect.Type) []TargetValue {
	t = baseType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var values []TargetValue

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}

		values = append(values, TargetField(t, field))
	}

	return values
}

// OfSource enumerates the publicly readable properties of t and returns one
// SourceValue per property. Struct sources expose their exported fields.
// Interface sources expose every zero-argument, single-result method as a
// getter; reflect flattens methods promoted from embedded interfaces, so the
// inherited members of an extended interface are included.
func OfSource(t reflect.Type) []SourceValue {
	t = baseType(t)
	if t == nil {
		return nil
	}

	var values []SourceValue

	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}

			values = append(values, SourceField(t, field))
		}

	case reflect.Interface:
		for i := 0; i < t.NumMethod(); i++ {
			method := t.Method(i)
			if method.Type.NumIn() != 0 || method.Type.NumOut() != 1 {
				continue
			}

			values = append(values, SourceGetter(t, method))
		}
	}

	return values
}

func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

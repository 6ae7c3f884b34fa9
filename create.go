package fluentmapper

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/waratah/fluent-mapper/descriptor"
	fmerrors "github.com/waratah/fluent-mapper/errors"
	"github.com/waratah/fluent-mapper/internal/compose"
	"github.com/waratah/fluent-mapper/internal/match"
)

// Create compiles the specification into an immutable Mapper: properties are
// matched by name and validated for type identity, one setter stage is
// synthesized per matched pair (ascending name order), custom mappings are
// appended in the order attached, and the stages are folded into a single
// composed transformation. Compilation runs once per specification; every
// error is fatal and no partial mapper is ever produced.
func (sp *Spec[T, S]) Create() (*Mapper[T, S], error) {
	pairs, err := match.Pairs(sp.log, sp.targets, sp.sources)
	if err != nil {
		return nil, err
	}

	stages := make([]compose.Stage, 0, len(pairs)+len(sp.customs))
	for _, p := range pairs {
		stages = append(stages, compose.Setter(p))
	}

	for _, c := range sp.customs {
		stage, err := c.stage(sp.targets)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	construct := sp.construct
	if construct == nil {
		if construct, err = zeroConstructor[T](); err != nil {
			return nil, err
		}
	}

	sp.log.Debug("specification compiled", "matched", len(pairs), "custom", len(sp.customs))

	return &Mapper[T, S]{construct: construct, transform: compose.Fold(stages)}, nil
}

// stage lowers one custom entry to a composable stage.
func (c custom[T, S]) stage(targets []descriptor.TargetValue) (compose.Stage, error) {
	switch {
	case c.fn != nil:
		return func(target, source reflect.Value) reflect.Value {
			return reflect.ValueOf(c.fn(target.Interface().(T), source.Interface().(S)))
		}, nil

	case c.effect != nil:
		return compose.Normalize(func(target, source reflect.Value) {
			c.effect(target.Interface().(T), source.Interface().(S))
		}), nil

	default:
		value := findTarget(targets, c.name)
		if value == nil {
			return nil, errorc.With(
				fmerrors.ErrUnmatchedTargetProperty,
				errorc.String(fmerrors.ErrorFieldProperty, c.name),
			)
		}

		return func(target, source reflect.Value) reflect.Value {
			return value.Write(target, reflect.ValueOf(c.read(source.Interface().(S))))
		}, nil
	}
}

func findTarget(values []descriptor.TargetValue, name string) descriptor.TargetValue {
	for _, v := range values {
		if v.Name() == name {
			return v
		}
	}
	return nil
}

// zeroConstructor resolves the parameterless constructor for T: the zero
// value for struct targets, a freshly allocated struct for pointer targets.
// Resolution happens once at compile time, not per mapped instance.
func zeroConstructor[T any]() (func() T, error) {
	t := reflect.TypeFor[T]()

	switch {
	case t.Kind() == reflect.Struct:
		return func() T {
			var target T
			return target
		}, nil

	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		elem := t.Elem()
		return func() T {
			return reflect.New(elem).Interface().(T)
		}, nil

	default:
		return nil, errorc.With(
			fmerrors.ErrNoParameterlessConstructor,
			errorc.String(fmerrors.ErrorFieldTargetType, t.String()),
		)
	}
}

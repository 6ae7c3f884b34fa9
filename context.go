package fluentmapper

import (
	"log/slog"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/waratah/fluent-mapper/descriptor"
	fmerrors "github.com/waratah/fluent-mapper/errors"
	"github.com/waratah/fluent-mapper/internal/compose"
	"github.com/waratah/fluent-mapper/internal/match"
)

// ContextSpec is the parallel specification variant that threads an ambient
// context value of type C alongside target and source through custom
// mappings. Matching, validation and composition of matched properties are
// identical to Spec; only custom stages see the context.
type ContextSpec[T, S, C any] struct {
	targets   []descriptor.TargetValue
	sources   []descriptor.SourceValue
	customs   []contextCustom[T, S, C]
	construct func() T
	log       *slog.Logger
}

type contextCustom[T, S, C any] struct {
	fn     func(C, T, S) T
	effect func(C, T, S)

	name string
	read func(C, S) any
}

// Contextual derives a context-threading specification from sp. Descriptor
// lists, constructor and custom mappings already attached to sp carry over;
// the carried-over custom mappings ignore the context value.
func Contextual[C, T, S any](sp *Spec[T, S]) *ContextSpec[T, S, C] {
	cs := &ContextSpec[T, S, C]{
		targets:   sp.targets,
		sources:   sp.sources,
		construct: sp.construct,
		log:       sp.log,
	}
	for _, c := range sp.customs {
		cs.customs = append(cs.customs, liftCustom[T, S, C](c))
	}

	return cs
}

// NewContextSpec is shorthand for Contextual[C](NewSpec[T, S](opts...)).
func NewContextSpec[T, S, C any](opts ...Option[T, S]) *ContextSpec[T, S, C] {
	return Contextual[C](NewSpec[T, S](opts...))
}

func liftCustom[T, S, C any](c custom[T, S]) contextCustom[T, S, C] {
	switch {
	case c.fn != nil:
		return contextCustom[T, S, C]{fn: func(_ C, target T, source S) T { return c.fn(target, source) }}
	case c.effect != nil:
		return contextCustom[T, S, C]{effect: func(_ C, target T, source S) { c.effect(target, source) }}
	default:
		return contextCustom[T, S, C]{name: c.name, read: func(_ C, source S) any { return c.read(source) }}
	}
}

// Bind attaches a context-aware custom mapping, composed after all matched
// setters in the order attached.
func (sp *ContextSpec[T, S, C]) Bind(fn func(ctx C, target T, source S) T) *ContextSpec[T, S, C] {
	sp.customs = append(sp.customs, contextCustom[T, S, C]{fn: fn})
	return sp
}

// BindEffect attaches a context-aware side-effecting step; the target passes
// through it unchanged.
func (sp *ContextSpec[T, S, C]) BindEffect(fn func(ctx C, target T, source S)) *ContextSpec[T, S, C] {
	sp.customs = append(sp.customs, contextCustom[T, S, C]{effect: fn})
	return sp
}

// For derives a specification overriding the named target property with a
// context-aware read expression. The receiver is left unchanged.
func (sp *ContextSpec[T, S, C]) For(name string, read func(ctx C, source S) any) *ContextSpec[T, S, C] {
	derived := *sp
	derived.customs = append(append([]contextCustom[T, S, C](nil), sp.customs...), contextCustom[T, S, C]{name: name, read: read})
	return &derived
}

// Create compiles the specification into an immutable ContextMapper. The
// pipeline is the same as Spec.Create; context-aware custom stages are
// compiled to run after the matched-setter fold.
func (sp *ContextSpec[T, S, C]) Create() (*ContextMapper[T, S, C], error) {
	pairs, err := match.Pairs(sp.log, sp.targets, sp.sources)
	if err != nil {
		return nil, err
	}

	matched := make([]compose.Stage, 0, len(pairs))
	for _, p := range pairs {
		matched = append(matched, compose.Setter(p))
	}

	customs := make([]func(C, T, S) T, 0, len(sp.customs))
	for _, c := range sp.customs {
		fn, err := c.compile(sp.targets)
		if err != nil {
			return nil, err
		}
		customs = append(customs, fn)
	}

	construct := sp.construct
	if construct == nil {
		if construct, err = zeroConstructor[T](); err != nil {
			return nil, err
		}
	}

	sp.log.Debug("specification compiled", "matched", len(pairs), "custom", len(customs))

	return &ContextMapper[T, S, C]{
		construct: construct,
		matched:   compose.Fold(matched),
		customs:   customs,
	}, nil
}

func (c contextCustom[T, S, C]) compile(targets []descriptor.TargetValue) (func(C, T, S) T, error) {
	switch {
	case c.fn != nil:
		return c.fn, nil

	case c.effect != nil:
		return func(ctx C, target T, source S) T {
			c.effect(ctx, target, source)
			return target
		}, nil

	default:
		value := findTarget(targets, c.name)
		if value == nil {
			return nil, errorc.With(
				fmerrors.ErrUnmatchedTargetProperty,
				errorc.String(fmerrors.ErrorFieldProperty, c.name),
			)
		}

		return func(ctx C, target T, source S) T {
			out := value.Write(reflect.ValueOf(target), reflect.ValueOf(c.read(ctx, source)))
			return out.Interface().(T)
		}, nil
	}
}

// ContextMapper is the compiled artifact of a ContextSpec. Like Mapper it is
// immutable, stateless and safe for unlimited concurrent use.
type ContextMapper[T, S, C any] struct {
	construct func() T
	matched   compose.Stage
	customs   []func(C, T, S) T
}

// Map constructs a fresh target instance and applies the composed
// transformation to it, threading ctx through the custom stages.
func (m *ContextMapper[T, S, C]) Map(ctx C, source S) T {
	return m.MapInto(ctx, m.construct(), source)
}

// MapInto applies the composed transformation to an existing target instance,
// skipping construction.
func (m *ContextMapper[T, S, C]) MapInto(ctx C, target T, source S) T {
	out := m.matched(reflect.ValueOf(target), reflect.ValueOf(source))
	if out.IsValid() {
		target = out.Interface().(T)
	}
	for _, c := range m.customs {
		target = c(ctx, target, source)
	}

	return target
}

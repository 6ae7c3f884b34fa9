package fluentmapper

import (
	"log/slog"
	"reflect"

	"github.com/waratah/fluent-mapper/descriptor"
)

// Spec is the declarative description of how source type S maps onto target
// type T: target and source value descriptors, custom mappings, and an
// optional constructor. A Spec is assembled once and consumed by Create;
// treat it as write-once-then-read-only after Create is invoked.
type Spec[T, S any] struct {
	targets         []descriptor.TargetValue
	sources         []descriptor.SourceValue
	explicitTargets bool
	explicitSources bool
	customs         []custom[T, S]
	construct       func() T
	log             *slog.Logger
}

// custom is one user-attached stage: a full transformation, an effect-only
// step, or a single-property override expression. Exactly one field group is
// set.
type custom[T, S any] struct {
	fn     func(T, S) T
	effect func(T, S)

	name string
	read func(S) any
}

// NewSpec assembles a specification for mapping S onto T. Unless explicit
// descriptor lists are supplied, the target's publicly settable and the
// source's publicly readable members are discovered and used.
func NewSpec[T, S any](opts ...Option[T, S]) *Spec[T, S] {
	sp := &Spec[T, S]{log: NullLogger()}
	for _, opt := range opts {
		opt(sp)
	}

	if !sp.explicitTargets {
		sp.targets = descriptor.OfTarget(reflect.TypeFor[T]())
	}
	if !sp.explicitSources {
		sp.sources = descriptor.OfSource(reflect.TypeFor[S]())
	}

	return sp
}

// For derives a specification that overrides the named target property with a
// caller-supplied read expression. The receiver is left unchanged. The
// override is composed after all matched setters, so it wins over an
// auto-matched value for the same property. The property must exist on the
// target side; Create reports ErrUnmatchedTargetProperty otherwise.
func (sp *Spec[T, S]) For(name string, read func(source S) any) *Spec[T, S] {
	derived := *sp
	derived.customs = append(append([]custom[T, S](nil), sp.customs...), custom[T, S]{name: name, read: read})
	return &derived
}

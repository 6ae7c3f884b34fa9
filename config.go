package fluentmapper

import (
	"log/slog"

	"github.com/waratah/fluent-mapper/descriptor"
)

// Option is a function that configures a Spec at construction time.
type Option[T, S any] func(*Spec[T, S])

// WithTargetValues supplies an explicit target descriptor list, replacing
// default discovery. An empty call pins an empty target list.
func WithTargetValues[T, S any](values ...descriptor.TargetValue) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.targets = values
		sp.explicitTargets = true
	}
}

// WithSourceValues supplies an explicit source descriptor list, replacing
// default discovery. An empty call pins an empty source list.
func WithSourceValues[T, S any](values ...descriptor.SourceValue) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.sources = values
		sp.explicitSources = true
	}
}

// WithMapping attaches a custom transformation stage. Custom mappings are not
// subject to name or type matching and are composed strictly after all
// matched-property setters, in the order attached, so they can override
// values already set by matched setters.
func WithMapping[T, S any](fn func(target T, source S) T) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.customs = append(sp.customs, custom[T, S]{fn: fn})
	}
}

// WithEffect attaches a side-effecting custom stage with no useful return
// value; the target passes through it unchanged.
func WithEffect[T, S any](fn func(target T, source S)) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.customs = append(sp.customs, custom[T, S]{effect: fn})
	}
}

// WithConstructor supplies the factory used to create a fresh target instance
// before transformations are applied. When omitted, the target type's zero
// value (or a new pointed-to struct) serves as the parameterless constructor.
func WithConstructor[T, S any](fn func() T) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.construct = fn
	}
}

// WithLog sets the logger used during compilation.
func WithLog[T, S any](log *slog.Logger) Option[T, S] {
	return func(sp *Spec[T, S]) {
		sp.log = log
	}
}

// NullWriter is a writer that discards all data
type NullWriter struct{}

func (NullWriter) Write([]byte) (int, error) { return 0, nil }

// NullLogger creates a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(NullWriter{}, nil))
}

// Package compose synthesizes per-property transformation stages and folds
// them into a single (target, source) -> target function.
package compose

import (
	"reflect"

	"github.com/waratah/fluent-mapper/internal/match"
)

// Stage is one (target, source) -> target transformation step. Every stage
// returns the resulting target so stages can be threaded sequentially.
type Stage func(target, source reflect.Value) reflect.Value

// Setter synthesizes the stage for one matched pair: read the named value off
// the source, write it to the target's same-named property, yield the
// resulting target.
func Setter(p match.Pair) Stage {
	return func(target, source reflect.Value) reflect.Value {
		return p.Target.Write(target, p.Source.Read(source))
	}
}

// Normalize wraps a step whose natural form has no useful return value, so it
// still yields the incoming target after performing its effect. Composition
// only works if every stage uniformly returns the target.
func Normalize(effect func(target, source reflect.Value)) Stage {
	return func(target, source reflect.Value) reflect.Value {
		effect(target, source)
		return target
	}
}

// Fold combines the ordered stages into one stage by threading the target
// through each in turn; each stage receives the previous stage's result.
// Zero stages fold to the identity stage.
func Fold(stages []Stage) Stage {
	return func(target, source reflect.Value) reflect.Value {
		for _, stage := range stages {
			target = stage(target, source)
		}
		return target
	}
}

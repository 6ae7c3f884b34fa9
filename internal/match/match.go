package match

import (
	"log/slog"
	"sort"

	"github.com/ygrebnov/errorc"
	"go.uber.org/multierr"

	"github.com/waratah/fluent-mapper/descriptor"
	fmerrors "github.com/waratah/fluent-mapper/errors"
)

// Pair is a target descriptor matched with its same-named source descriptor.
type Pair struct {
	Target descriptor.TargetValue
	Source descriptor.SourceValue
}

type finding struct {
	kind MismatchEnum
	err  error
}

// Pairs matches target descriptors with source descriptors by property name
// and validates type identity per pair. The returned pairs are in ascending
// name order. The input lists are never mutated.
//
// Duplicate names on one side fail fast. All other findings are collected
// and combined, unmatched properties before incompatible types, each group in
// name order, so the leading finding is deterministic.
func Pairs(log *slog.Logger, targets []descriptor.TargetValue, sources []descriptor.SourceValue) ([]Pair, error) {
	ts := sortedByName(targets)
	ss := sortedByName(sources)

	if dups := duplicates(ts, ss); len(dups) > 0 {
		return nil, report(log, dups)
	}

	var pairs []Pair
	var unmatched, incompatible []finding

	i, j := 0, 0
	for i < len(ts) && j < len(ss) {
		switch t, s := ts[i], ss[j]; {
		case t.Name() < s.Name():
			unmatched = append(unmatched, unmatchedTarget(t))
			i++

		case t.Name() > s.Name():
			unmatched = append(unmatched, unmatchedSource(s))
			j++

		default:
			if t.Type() != s.Type() {
				incompatible = append(incompatible, incompatibleTypes(t, s))
			} else {
				pairs = append(pairs, Pair{Target: t, Source: s})
				log.Debug("property matched", "target", t.Description(), "source", s.Description())
			}
			i++
			j++
		}
	}

	for ; i < len(ts); i++ {
		unmatched = append(unmatched, unmatchedTarget(ts[i]))
	}
	for ; j < len(ss); j++ {
		unmatched = append(unmatched, unmatchedSource(ss[j]))
	}

	if err := report(log, append(unmatched, incompatible...)); err != nil {
		return nil, err
	}

	return pairs, nil
}

// sortedByName returns a name-ordered copy, leaving the input untouched.
func sortedByName[T interface{ Name() string }](values []T) []T {
	out := append([]T(nil), values...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// duplicates reports every repeated property name on either side. The lists
// must already be sorted.
func duplicates(targets []descriptor.TargetValue, sources []descriptor.SourceValue) []finding {
	var out []finding

	for i := 1; i < len(targets); i++ {
		if targets[i].Name() == targets[i-1].Name() {
			out = append(out, duplicateProperty(targets[i].Description(), "target"))
		}
	}
	for i := 1; i < len(sources); i++ {
		if sources[i].Name() == sources[i-1].Name() {
			out = append(out, duplicateProperty(sources[i].Description(), "source"))
		}
	}

	return out
}

// report logs every finding and combines them into a single error.
func report(log *slog.Logger, findings []finding) error {
	var errs []error

	for _, f := range findings {
		log.Debug("specification rejected", "kind", f.kind.String(), "error", f.err)
		errs = append(errs, f.err)
	}

	return multierr.Combine(errs...)
}

func duplicateProperty(description, side string) finding {
	return finding{
		kind: MismatchDuplicateProperty,
		err: errorc.With(
			fmerrors.ErrDuplicateProperty,
			errorc.String(fmerrors.ErrorFieldProperty, description),
			errorc.String(fmerrors.ErrorFieldSide, side),
		),
	}
}

func unmatchedTarget(value descriptor.TargetValue) finding {
	return finding{
		kind: MismatchUnmatchedTarget,
		err: errorc.With(
			fmerrors.ErrUnmatchedTargetProperty,
			errorc.String(fmerrors.ErrorFieldTargetValue, value.Description()),
		),
	}
}

func unmatchedSource(value descriptor.SourceValue) finding {
	return finding{
		kind: MismatchUnmatchedSource,
		err: errorc.With(
			fmerrors.ErrUnmatchedSourceProperty,
			errorc.String(fmerrors.ErrorFieldSourceValue, value.Description()),
		),
	}
}

func incompatibleTypes(target descriptor.TargetValue, source descriptor.SourceValue) finding {
	return finding{
		kind: MismatchIncompatibleTypes,
		err: errorc.With(
			fmerrors.ErrIncompatibleTypes,
			errorc.String(fmerrors.ErrorFieldTargetValue, target.Description()),
			errorc.String(fmerrors.ErrorFieldSourceValue, source.Description()),
		),
	}
}

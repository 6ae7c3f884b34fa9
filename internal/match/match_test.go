package match_test

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/waratah/fluent-mapper/descriptor"
	fmerrors "github.com/waratah/fluent-mapper/errors"
	"github.com/waratah/fluent-mapper/internal/match"
)

type matched struct {
	Beta  int
	Alpha string
}

type extraTarget struct {
	Beta  int
	Alpha string
	Extra bool
}

type extraSource struct {
	Beta  int
	Alpha string
	Spare bool
}

type agedString struct {
	Age string
}

type agedInt struct {
	Age int
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, nil))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func targetsOf(t reflect.Type) []descriptor.TargetValue { return descriptor.OfTarget(t) }
func sourcesOf(t reflect.Type) []descriptor.SourceValue { return descriptor.OfSource(t) }

func TestPairsMatchesByNameInCanonicalOrder(t *testing.T) {
	t.Parallel()

	pairs, err := match.Pairs(discard(),
		targetsOf(reflect.TypeFor[matched]()),
		sourcesOf(reflect.TypeFor[matched]()))
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	spew.Dump(pairs)

	assert.Equal(t, "Alpha", pairs[0].Target.Name())
	assert.Equal(t, "Alpha", pairs[0].Source.Name())
	assert.Equal(t, "Beta", pairs[1].Target.Name())
	assert.Equal(t, "Beta", pairs[1].Source.Name())
}

func TestPairsEmptyOnBothSides(t *testing.T) {
	t.Parallel()

	pairs, err := match.Pairs(discard(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestPairsUnmatchedTarget(t *testing.T) {
	t.Parallel()

	_, err := match.Pairs(discard(),
		targetsOf(reflect.TypeFor[extraTarget]()),
		sourcesOf(reflect.TypeFor[matched]()))
	require.Error(t, err)

	assert.ErrorIs(t, err, fmerrors.ErrUnmatchedTargetProperty)
	assert.Contains(t, err.Error(), "bool match_test.extraTarget.Extra")
}

func TestPairsUnmatchedSource(t *testing.T) {
	t.Parallel()

	_, err := match.Pairs(discard(),
		targetsOf(reflect.TypeFor[matched]()),
		sourcesOf(reflect.TypeFor[extraSource]()))
	require.Error(t, err)

	assert.ErrorIs(t, err, fmerrors.ErrUnmatchedSourceProperty)
	assert.Contains(t, err.Error(), "bool match_test.extraSource.Spare")
}

func TestPairsIncompatibleTypes(t *testing.T) {
	t.Parallel()

	_, err := match.Pairs(discard(),
		targetsOf(reflect.TypeFor[agedString]()),
		sourcesOf(reflect.TypeFor[agedInt]()))
	require.Error(t, err)

	assert.ErrorIs(t, err, fmerrors.ErrIncompatibleTypes)
	assert.Contains(t, err.Error(), "string match_test.agedString.Age")
	assert.Contains(t, err.Error(), "int match_test.agedInt.Age")
}

func TestPairsReportsEveryFindingDeterministically(t *testing.T) {
	t.Parallel()

	// Extra on the target, Spare on the source: both reported, unmatched
	// targets before unmatched sources, each group in name order.
	_, err := match.Pairs(discard(),
		targetsOf(reflect.TypeFor[extraTarget]()),
		sourcesOf(reflect.TypeFor[extraSource]()))
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], fmerrors.ErrUnmatchedTargetProperty)
	assert.ErrorIs(t, errs[1], fmerrors.ErrUnmatchedSourceProperty)

	first := strings.Index(err.Error(), "Extra")
	second := strings.Index(err.Error(), "Spare")
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second)
}

func TestPairsRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	sources := sourcesOf(reflect.TypeFor[matched]())
	sources = append(sources, sources[0])

	_, err := match.Pairs(discard(), targetsOf(reflect.TypeFor[matched]()), sources)
	require.Error(t, err)
	assert.ErrorIs(t, err, fmerrors.ErrDuplicateProperty)
}

func TestPairsDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	targets := targetsOf(reflect.TypeFor[matched]())
	sources := sourcesOf(reflect.TypeFor[matched]())
	wantTargets := append([]descriptor.TargetValue(nil), targets...)
	wantSources := append([]descriptor.SourceValue(nil), sources...)

	_, err := match.Pairs(discard(), targets, sources)
	require.NoError(t, err)

	assert.Equal(t, wantTargets, targets)
	assert.Equal(t, wantSources, sources)
}

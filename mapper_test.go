package fluentmapper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	fluentmapper "github.com/waratah/fluent-mapper"
)

func TestMapCopiesEveryMatchedProperty(t *testing.T) {
	t.Parallel()

	mapper, err := fluentmapper.NewSpec[personTarget, personSource]().Create()
	require.NoError(t, err)

	got := mapper.Map(personSource{Name: "Ann", Age: 30})
	assert.Equal(t, personTarget{Name: "Ann", Age: 30}, got)
}

func TestMapDoesNotLeakStateBetweenCalls(t *testing.T) {
	t.Parallel()

	mapper, err := fluentmapper.NewSpec[*personTarget, personSource]().Create()
	require.NoError(t, err)

	first := mapper.Map(personSource{Name: "Ann", Age: 30})
	second := mapper.Map(personSource{Name: "Bob", Age: 40})

	assert.NotSame(t, first, second)

	first.Name = "mutated"
	assert.Equal(t, personTarget{Name: "Bob", Age: 40}, *second)
}

func TestMapConstructsViaExplicitFactory(t *testing.T) {
	t.Parallel()

	calls := 0
	mapper, err := fluentmapper.NewSpec[*personTarget, personSource](
		fluentmapper.WithConstructor[*personTarget, personSource](func() *personTarget {
			calls++
			return &personTarget{}
		}),
	).Create()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		mapper.Map(personSource{Name: "Ann", Age: i})
	}

	assert.Equal(t, 3, calls)
}

func TestMapIntoExistingTarget(t *testing.T) {
	t.Parallel()

	mapper, err := fluentmapper.NewSpec[*personTarget, personSource]().Create()
	require.NoError(t, err)

	target := &personTarget{}
	out := mapper.MapInto(target, personSource{Name: "Ann", Age: 30})

	assert.Same(t, target, out)
	assert.Equal(t, personTarget{Name: "Ann", Age: 30}, *target)
}

func TestMapIntoValueTargetReturnsUpdatedCopy(t *testing.T) {
	t.Parallel()

	mapper, err := fluentmapper.NewSpec[personTarget, personSource]().Create()
	require.NoError(t, err)

	out := mapper.MapInto(personTarget{Name: "old", Age: 1}, personSource{Name: "Ann", Age: 30})
	assert.Equal(t, personTarget{Name: "Ann", Age: 30}, out)
}

func TestMapIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	mapper, err := fluentmapper.NewSpec[personTarget, personSource]().Create()
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				src := personSource{Name: fmt.Sprintf("w%d-%d", w, i), Age: i}
				if got := mapper.Map(src); got.Name != src.Name || got.Age != src.Age {
					return fmt.Errorf("map %v: got %v", src, got)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

package ptask

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsRecordAndAccessors(t *testing.T) {
	t.Parallel()

	r := newResults[string]()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())

	idA, idB := uuid.New(), uuid.New()
	r.record(idA, "a", Satisfied("va"))
	r.record(idB, "b", Unsatisfied[string]())

	assert.False(t, r.IsEmpty())
	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())

	byName := r.ByName()
	require.Contains(t, byName, "a")
	require.Contains(t, byName, "b")
	assert.True(t, byName["a"].IsSatisfied())
	assert.False(t, byName["b"].IsSatisfied())

	got, ok := r.Get(idA)
	require.True(t, ok)
	assert.Equal(t, "va", got.Value())

	_, ok = r.Get(uuid.New())
	assert.False(t, ok)
}

func TestResultsRecordIsWriteOnce(t *testing.T) {
	t.Parallel()

	r := newResults[int]()
	id := uuid.New()
	r.record(id, "x", Satisfied(1))
	r.record(id, "x", Satisfied(2))

	assert.Equal(t, 1, r.Len())
	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, 1, got.Value())
}

func TestResultsSingle(t *testing.T) {
	t.Parallel()

	r := newResults[string]()

	_, err := r.Single()
	assert.ErrorIs(t, err, ErrNoResult)

	r.record(uuid.New(), "miss", Unsatisfied[string]())
	_, err = r.Single()
	assert.ErrorIs(t, err, ErrNoResult)

	r.record(uuid.New(), "hit", Satisfied("v"))
	got, err := r.Single()
	require.NoError(t, err)
	assert.Equal(t, "v", got.Value())
	assert.False(t, r.HasMultipleSatisfied())

	r.record(uuid.New(), "hit2", Satisfied("w"))
	_, err = r.Single()
	assert.ErrorIs(t, err, ErrAmbiguousResult)
	assert.True(t, r.HasMultipleSatisfied())
}

func TestResultsConcurrentWritersAndReaders(t *testing.T) {
	t.Parallel()

	r := newResults[int]()
	const writers = 32

	var wg sync.WaitGroup
	for i := range writers {
		wg.Go(func() {
			r.record(uuid.New(), fmt.Sprintf("task-%d", i), Satisfied(i))
		})
		wg.Go(func() {
			_ = r.Len()
			_ = r.ByName()
			_ = r.HasMultipleSatisfied()
		})
	}
	wg.Wait()

	assert.Equal(t, writers, r.Len())
	assert.Len(t, r.Names(), writers)
}

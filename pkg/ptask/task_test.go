package ptask

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskIdentity(t *testing.T) {
	t.Parallel()

	g := New[int, int](context.Background())
	work := func(ctx context.Context) (int, error) { return 1, nil }

	// Names may repeat; generated ids never do.
	a, err := g.AddTask("lookup", work)
	require.NoError(t, err)
	b, err := g.AddTask("lookup", work)
	require.NoError(t, err)

	assert.Equal(t, "lookup", a.Name())
	assert.Equal(t, "lookup", b.Name())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, StatePending, a.State())
}

func TestCallbackRunsAfterTerminalWorkState(t *testing.T) {
	t.Parallel()

	g := New[string, string](context.Background(), WithMaxWorkers(4))

	observed := make(chan TaskState, 1)
	task, err := g.AddTask("ordered", func(ctx context.Context) (string, error) {
		return "v", nil
	})
	require.NoError(t, err)
	_, err = task.Handle(func(value string, err error) {
		observed <- task.State()
	})
	require.NoError(t, err)

	require.NoError(t, g.WaitTasks())

	state := <-observed
	assert.Equal(t, StateCallbackScheduled, state)
	assert.Equal(t, StateCallbackDone, task.State())
}

func TestHandleChainsBackToGroup(t *testing.T) {
	t.Parallel()

	g := New[string, string](context.Background(), WithMaxWorkers(4))

	task, err := g.AddTask("first", func(ctx context.Context) (string, error) { return "a", nil })
	require.NoError(t, err)
	chained, err := task.Handle(func(value string, err error) {})
	require.NoError(t, err)
	require.Same(t, g, chained)

	_, err = chained.AddTask("second", func(ctx context.Context) (string, error) { return "b", nil })
	require.NoError(t, err)

	require.NoError(t, g.WaitTasks())
	assert.True(t, g.IsDone())
}

func TestCancelRequestOnFinishedTaskIsIgnored(t *testing.T) {
	t.Parallel()

	g := New[int, int](context.Background())
	task, err := g.AddTask("done", func(ctx context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	require.NoError(t, g.WaitTasks())
	state := task.State()

	task.requestCancel()
	task.requestCancel()
	assert.Equal(t, state, task.State())
}

func TestTransitionRejectsInvalidMove(t *testing.T) {
	t.Parallel()

	g := New[int, int](context.Background())
	task, err := g.AddTask("fresh", func(ctx context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	err = task.transition(StateCallbackDone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transition")
	assert.Equal(t, StatePending, task.State())

	require.NoError(t, task.transition(StateRunning))
	assert.Equal(t, StateRunning, task.State())
}

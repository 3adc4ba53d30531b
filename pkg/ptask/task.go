package ptask

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Work is the computation a task performs. The context is the task's
// cancellation token; implementations poll it voluntarily. Cancellation
// is cooperative: work already past its last poll runs to completion.
type Work[T any] func(ctx context.Context) (T, error)

// Callback is a per-task completion handler. It runs exactly once,
// strictly after the work's terminal result is known, on the shared
// pool. On failure the value is the zero value and err is set.
type Callback[T any] func(value T, err error)

// Task is one unit of work plus its completion pipeline. Tasks are
// created through Group.AddTask and owned by that group. Identity is a
// generated id; names are labels and may repeat.
type Task[T, R any] struct {
	id    uuid.UUID
	name  string
	group *Group[T, R]

	work     Work[T]
	callback Callback[T]

	ctx    context.Context
	cancel context.CancelCauseFunc

	mu    sync.Mutex
	state TaskState

	cancelRequested atomic.Bool

	value T
	err   error

	done chan struct{}
}

// Handle attaches the completion callback and returns the owning group
// so registrations chain. Fails with ErrAlreadyStarted once the group
// is sealed.
func (t *Task[T, R]) Handle(cb Callback[T]) (*Group[T, R], error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	t.group.mu.Lock()
	defer t.group.mu.Unlock()

	if t.group.started {
		return nil, ErrAlreadyStarted
	}
	t.callback = cb
	return t.group, nil
}

// Name returns the task's label. Not guaranteed unique.
func (t *Task[T, R]) Name() string {
	return t.name
}

// ID returns the generated task identity.
func (t *Task[T, R]) ID() uuid.UUID {
	return t.id
}

// State returns the task's current pipeline state.
func (t *Task[T, R]) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Task[T, R]) transition(to TaskState) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !isAllowedTransition(t.state, to) {
		return fmt.Errorf("ptask: invalid transition for %q: %s -> %s", t.name, t.state, to)
	}
	t.state = to
	return nil
}

// requestCancel asks the pipeline to stop. Finished tasks ignore the
// request silently; duplicate requests are harmless.
func (t *Task[T, R]) requestCancel() {
	if t.finished() {
		return
	}
	t.cancelRequested.Store(true)
	t.cancel(ErrCancelled)
}

func (t *Task[T, R]) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// run drives the pipeline. It is the task's sequencing goroutine, not a
// pool worker: each stage body is submitted to the shared executor as
// its own unit, so no stage may assume it shares a worker with another.
func (t *Task[T, R]) run() {
	defer close(t.done)

	if t.cancelRequested.Load() {
		t.toCancelled()
		return
	}
	if err := t.transition(StateRunning); err != nil {
		t.group.logger.Error("pipeline state error", "task", t.name, "error", err)
		return
	}

	t.awaitStage(t.runWork)

	switch {
	case t.cancelRequested.Load() && IsCancellationError(t.err):
		// Work observed the sweep and bailed out at a poll.
		t.toCancelled()
		return
	case t.err != nil:
		_ = t.transition(StateFailed)
	default:
		_ = t.transition(StateSucceeded)
	}

	if t.cancelRequested.Load() {
		t.toCancelled()
		return
	}

	if t.callback != nil {
		_ = t.transition(StateCallbackScheduled)
		t.awaitStage(t.runCallback)
		_ = t.transition(StateCallbackDone)
	} else if t.err != nil {
		// No handler to deliver the failure to; report it through the
		// group so it is not lost.
		t.group.reportWorkError(t)
	}

	if t.group.definitionOfDone == nil {
		return
	}
	if t.cancelRequested.Load() {
		t.toCancelled()
		return
	}

	t.awaitStage(t.runEvaluation)
	_ = t.transition(StateEvaluationDone)
}

// awaitStage runs one stage body on the shared pool and blocks the
// sequencing goroutine until it returns.
func (t *Task[T, R]) awaitStage(stage func()) {
	done := make(chan struct{})
	t.group.exec.Go(func() {
		defer close(done)
		stage()
	})
	<-done
}

func (t *Task[T, R]) runWork() {
	t.group.withLoggingContext(func() {
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("ptask: work panicked in task %q: %v", t.name, r)
			}
		}()
		t.value, t.err = t.work(t.ctx)
	})
}

func (t *Task[T, R]) runCallback() {
	t.group.withLoggingContext(func() {
		defer func() {
			if r := recover(); r != nil {
				t.group.logger.Error("callback panicked", "task", t.name, "panic", r)
			}
		}()
		t.callback(t.value, t.err)
	})
}

func (t *Task[T, R]) runEvaluation() {
	t.group.withLoggingContext(func() {
		outcome := t.group.applyDefinitionOfDone(t)
		t.group.results.record(t.id, t.name, outcome)
		if outcome.IsSatisfied() {
			t.group.cancelRemaining(t)
		}
	})
}

func (t *Task[T, R]) toCancelled() {
	if err := t.transition(StateCancelled); err != nil {
		t.group.logger.Error("pipeline state error", "task", t.name, "error", err)
	}
}

package ptask

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyStarted is returned when a started group is mutated.
	ErrAlreadyStarted = errors.New("ptask: group already started")

	// ErrNoTasks is returned by Start when no tasks are registered.
	ErrNoTasks = errors.New("ptask: no tasks registered")

	// ErrNilWork is returned by AddTask when the work function is nil.
	ErrNilWork = errors.New("ptask: nil work")

	// ErrNilCallback is returned by Handle when the callback is nil.
	ErrNilCallback = errors.New("ptask: nil callback")

	// ErrNilDefinitionOfDone is returned by SetDefinitionOfDone when the
	// function is nil.
	ErrNilDefinitionOfDone = errors.New("ptask: nil definition of done")

	// ErrNoResult is returned by WaitSingleResult when no satisfied
	// outcome was recorded.
	ErrNoResult = errors.New("ptask: no satisfied result")

	// ErrAmbiguousResult is returned by WaitSingleResult when more than
	// one satisfied outcome was recorded.
	ErrAmbiguousResult = errors.New("ptask: more than one satisfied result")

	// ErrCancelled is the cause installed on a task context by the
	// cancellation sweep.
	ErrCancelled = errors.New("ptask: task cancelled")
)

// IsCancellationError reports whether err comes from a cancelled or
// expired context, including the sweep cause.
func IsCancellationError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrCancelled)
}

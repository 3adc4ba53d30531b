package ptask

import (
	"sync"

	"github.com/google/uuid"
)

// Results is the registry of definition-of-done outcomes, keyed by the
// generated task id. Task names are labels and not guaranteed unique;
// the name accessors are built on top of the id-keyed store. Safe for
// concurrent writers and readers.
type Results[R any] struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]resultEntry[R]
}

type resultEntry[R any] struct {
	name    string
	outcome Outcome[R]
}

func newResults[R any]() *Results[R] {
	return &Results[R]{entries: make(map[uuid.UUID]resultEntry[R])}
}

// record writes the outcome for one task. Called at most once per task,
// by the pipeline that owns it.
func (r *Results[R]) record(id uuid.UUID, name string, outcome Outcome[R]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; ok {
		return
	}
	r.entries[id] = resultEntry[R]{name: name, outcome: outcome}
}

// Get returns the outcome recorded for the given task id.
func (r *Results[R]) Get(id uuid.UUID) (Outcome[R], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e.outcome, ok
}

// ByName returns a snapshot of outcomes keyed by task name. When names
// collide, one entry per name survives.
func (r *Results[R]) ByName() map[string]Outcome[R] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Outcome[R], len(r.entries))
	for _, e := range r.entries {
		out[e.name] = e.outcome
	}
	return out
}

// Names returns the names of all tasks with a recorded outcome.
func (r *Results[R]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

func (r *Results[R]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Results[R]) IsEmpty() bool {
	return r.Len() == 0
}

// HasMultipleSatisfied reports whether nearly simultaneous successes
// were both recorded before either cancellation sweep took effect.
func (r *Results[R]) HasMultipleSatisfied() bool {
	return r.countSatisfied() > 1
}

// Single returns the one satisfied outcome. It fails with ErrNoResult
// when nothing satisfied the definition of done and ErrAmbiguousResult
// when the race recorded more than one success.
func (r *Results[R]) Single() (Outcome[R], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		found Outcome[R]
		count int
	)
	for _, e := range r.entries {
		if e.outcome.IsSatisfied() {
			found = e.outcome
			count++
		}
	}

	switch {
	case count == 0:
		return Outcome[R]{}, ErrNoResult
	case count > 1:
		return Outcome[R]{}, ErrAmbiguousResult
	default:
		return found, nil
	}
}

func (r *Results[R]) countSatisfied() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.entries {
		if e.outcome.IsSatisfied() {
			count++
		}
	}
	return count
}

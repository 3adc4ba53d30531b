package ptask

import "time"

// Outcome is the verdict of a definition of done on one task's terminal
// result: did the task satisfy the stopping rule, and with what value.
type Outcome[R any] struct {
	value     R
	createdAt time.Time
	succeeded bool
	hasValue  bool
}

// Satisfied builds an outcome that satisfies the stopping rule.
func Satisfied[R any](v R) Outcome[R] {
	return Outcome[R]{
		value:     v,
		succeeded: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
	}
}

// SatisfiedEmpty builds a satisfied outcome that carries no value.
func SatisfiedEmpty[R any]() Outcome[R] {
	return Outcome[R]{
		succeeded: true,
		createdAt: time.Now().UTC(),
	}
}

// Unsatisfied builds an outcome that does not satisfy the stopping rule.
func Unsatisfied[R any]() Outcome[R] {
	return Outcome[R]{createdAt: time.Now().UTC()}
}

func (o Outcome[R]) Value() R {
	return o.value
}

func (o Outcome[R]) IsSatisfied() bool {
	return o.succeeded
}

func (o Outcome[R]) HasValue() bool {
	return o.hasValue
}

// CreatedAt is the outcome creation time (UTC).
func (o Outcome[R]) CreatedAt() time.Time {
	return o.createdAt
}

package ptask

// TaskContext pairs a task name with its recorded outcome. It is a
// convenience carrier for callers that fan group results back out to
// per-task consumers.
type TaskContext[R any] struct {
	name    string
	outcome Outcome[R]
}

func NewTaskContext[R any](name string) *TaskContext[R] {
	return &TaskContext[R]{name: name}
}

func (c *TaskContext[R]) SetOutcome(o Outcome[R]) *TaskContext[R] {
	c.outcome = o
	return c
}

func (c *TaskContext[R]) Name() string {
	return c.name
}

func (c *TaskContext[R]) IsSatisfied() bool {
	return c.outcome.IsSatisfied()
}

func (c *TaskContext[R]) Value() R {
	return c.outcome.Value()
}

func (c *TaskContext[R]) HasValue() bool {
	return c.outcome.HasValue()
}

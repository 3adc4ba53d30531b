package ptask

// DefinitionOfDone is the shared stopping rule. It is applied at most
// once per task, to that task's terminal work result, regardless of
// whether a per-task callback is attached. Returning a satisfied
// outcome triggers the cancellation sweep over the unfinished siblings.
//
// A panic inside the rule is recovered and logged; the affected task is
// recorded as unsatisfied and the siblings keep running.
type DefinitionOfDone[T, R any] func(value T, err error, name string) Outcome[R]

// applyDefinitionOfDone runs the rule for one task with panic recovery.
func (g *Group[T, R]) applyDefinitionOfDone(t *Task[T, R]) (outcome Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("definition of done panicked", "task", t.name, "panic", r)
			outcome = Unsatisfied[R]()
		}
	}()

	return g.definitionOfDone(t.value, t.err, t.name)
}

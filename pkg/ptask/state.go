package ptask

// TaskState is the pipeline state of a single task.
type TaskState string

const (
	StatePending           TaskState = "PENDING"
	StateRunning           TaskState = "RUNNING"
	StateSucceeded         TaskState = "SUCCEEDED"
	StateFailed            TaskState = "FAILED"
	StateCallbackScheduled TaskState = "CALLBACK_SCHEDULED"
	StateCallbackDone      TaskState = "CALLBACK_DONE"
	StateEvaluationDone    TaskState = "EVALUATION_DONE"
	StateCancelled         TaskState = "CANCELLED"
)

func (s TaskState) String() string {
	return string(s)
}

// IsCancelled reports whether the task was halted by a cancellation
// sweep before its pipeline finished.
func (s TaskState) IsCancelled() bool {
	return s == StateCancelled
}

// isAllowedTransition encodes the pipeline state machine. Cancellation
// is allowed from any state where the next stage has not been scheduled
// yet; a scheduled callback always runs.
func isAllowedTransition(from, to TaskState) bool {
	switch from {
	case StatePending:
		return to == StateRunning || to == StateCancelled
	case StateRunning:
		return to == StateSucceeded || to == StateFailed || to == StateCancelled
	case StateSucceeded, StateFailed:
		return to == StateCallbackScheduled || to == StateEvaluationDone || to == StateCancelled
	case StateCallbackScheduled:
		return to == StateCallbackDone
	case StateCallbackDone:
		return to == StateEvaluationDone || to == StateCancelled
	default:
		return false
	}
}

package ptask

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Group owns an ordered set of tasks, the shared executor, the optional
// definition of done and the outcome registry. Insertion order is
// preserved for reporting only; scheduling order is up to the executor.
//
// A Group is single-use: register tasks, start, wait. Once started it
// is sealed and every mutating call fails with ErrAlreadyStarted.
type Group[T, R any] struct {
	ctx    context.Context
	exec   Executor
	logger *slog.Logger
	logCtx LoggingContext

	mu               sync.Mutex
	tasks            []*Task[T, R]
	started          bool
	onComplete       func()
	definitionOfDone DefinitionOfDone[T, R]

	results *Results[R]
	done    chan struct{}

	errMu    sync.Mutex
	workErrs []error
}

// New creates a group. Task contexts derive from ctx; cancelling it
// cancels every task cooperatively.
func New[T, R any](ctx context.Context, opts ...Option) *Group[T, R] {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	exec := cfg.executor
	if exec == nil {
		exec = newDefaultExecutor(cfg.maxWorkers)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Group[T, R]{
		ctx:     ctx,
		exec:    exec,
		logger:  logger,
		logCtx:  cfg.logCtx,
		results: newResults[R](),
		done:    make(chan struct{}),
	}
}

// AddTask registers a named unit of work. The work does not run until
// Start; registration on a started group fails with ErrAlreadyStarted.
func (g *Group[T, R]) AddTask(name string, work Work[T]) (*Task[T, R], error) {
	if work == nil {
		return nil, ErrNilWork
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return nil, ErrAlreadyStarted
	}

	taskCtx, cancel := context.WithCancelCause(g.ctx)
	t := &Task[T, R]{
		id:     uuid.New(),
		name:   name,
		group:  g,
		work:   work,
		ctx:    taskCtx,
		cancel: cancel,
		state:  StatePending,
		done:   make(chan struct{}),
	}
	g.tasks = append(g.tasks, t)
	return t, nil
}

// SetDefinitionOfDone installs the shared stopping rule. It applies to
// every registered task, including ones added afterwards (before Start).
func (g *Group[T, R]) SetDefinitionOfDone(fn DefinitionOfDone[T, R]) error {
	if fn == nil {
		return ErrNilDefinitionOfDone
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrAlreadyStarted
	}
	g.definitionOfDone = fn
	return nil
}

// OnComplete installs a callback that runs exactly once, on the shared
// pool, after every pipeline has resolved. A panic inside it is
// recovered and logged.
func (g *Group[T, R]) OnComplete(fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrAlreadyStarted
	}
	g.onComplete = fn
	return nil
}

// Start seals the group and launches every task pipeline. It does not
// block and is idempotent; only the first call does anything. Starting
// with no tasks fails with ErrNoTasks.
func (g *Group[T, R]) Start() error {
	g.mu.Lock()
	if g.started {
		g.mu.Unlock()
		return nil
	}
	if len(g.tasks) == 0 {
		g.mu.Unlock()
		return ErrNoTasks
	}
	g.started = true
	tasks := g.tasks
	g.mu.Unlock()

	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Go(t.run)
	}

	go func() {
		wg.Wait()
		close(g.done)
		g.runCompletionCallback()
	}()

	return nil
}

// WaitTasks starts the group if needed and blocks until the aggregate
// signal resolves. There is no built-in timeout; bound the wait by
// cancelling the context passed to New.
func (g *Group[T, R]) WaitTasks() error {
	if err := g.Start(); err != nil {
		return err
	}
	<-g.done
	return nil
}

// WaitResults waits for the group and returns the outcome registry.
func (g *Group[T, R]) WaitResults() (*Results[R], error) {
	if err := g.WaitTasks(); err != nil {
		return nil, err
	}
	return g.results, nil
}

// WaitSingleResult waits for the group and returns the value of the one
// satisfied outcome. It fails with ErrNoResult or ErrAmbiguousResult
// when the registry holds zero or several successes.
func (g *Group[T, R]) WaitSingleResult() (R, error) {
	var zero R

	results, err := g.WaitResults()
	if err != nil {
		return zero, err
	}
	outcome, err := results.Single()
	if err != nil {
		return zero, err
	}
	return outcome.Value(), nil
}

// IsDone reports whether the aggregate signal has resolved. A group
// that was never started is not done.
func (g *Group[T, R]) IsDone() bool {
	g.mu.Lock()
	started := g.started
	g.mu.Unlock()

	if !started {
		return false
	}
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// WorkErrors returns the failures of tasks that had no callback
// attached. Failures delivered to a callback are not duplicated here.
func (g *Group[T, R]) WorkErrors() []error {
	g.errMu.Lock()
	defer g.errMu.Unlock()

	out := make([]error, len(g.workErrs))
	copy(out, g.workErrs)
	return out
}

// cancelRemaining is the cancellation sweep: a best-effort cooperative
// stop request to every other task whose pipeline has not resolved.
// Duplicate sweeps from near-simultaneous successes are harmless; no
// lock serializes the race outcome.
func (g *Group[T, R]) cancelRemaining(except *Task[T, R]) {
	g.mu.Lock()
	tasks := g.tasks
	g.mu.Unlock()

	for _, t := range tasks {
		if t == except {
			continue
		}
		t.requestCancel()
	}
}

func (g *Group[T, R]) reportWorkError(t *Task[T, R]) {
	g.errMu.Lock()
	g.workErrs = append(g.workErrs, fmt.Errorf("ptask: task %q: %w", t.name, t.err))
	g.errMu.Unlock()

	g.logger.Error("work failed with no handler attached", "task", t.name, "error", t.err)
}

func (g *Group[T, R]) runCompletionCallback() {
	g.mu.Lock()
	cb := g.onComplete
	g.mu.Unlock()

	if cb == nil {
		return
	}
	g.exec.Go(func() {
		g.withLoggingContext(func() {
			defer func() {
				if r := recover(); r != nil {
					g.logger.Error("completion callback panicked", "panic", r)
				}
			}()
			cb()
		})
	})
}

package ptask

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor runs pipeline stages on a shared worker pool. Implementations
// must be safe for concurrent use; Go may block until a worker is free.
type Executor interface {
	Go(fn func())
}

type errgroupExecutor struct {
	eg errgroup.Group
}

// newDefaultExecutor builds the default pool. A non-positive limit is
// normalized to the hardware parallelism.
func newDefaultExecutor(limit int) *errgroupExecutor {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	e := &errgroupExecutor{}
	e.eg.SetLimit(limit)
	return e
}

func (e *errgroupExecutor) Go(fn func()) {
	e.eg.Go(func() error {
		fn()
		return nil
	})
}

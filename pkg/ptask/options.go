package ptask

import "log/slog"

// Option configures a Group.
type Option func(*config)

type config struct {
	executor   Executor
	maxWorkers int
	logCtx     LoggingContext
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{}
}

// WithExecutor makes the group run every pipeline stage on the given
// pool instead of the default one.
func WithExecutor(e Executor) Option {
	return func(c *config) {
		c.executor = e
	}
}

// WithMaxWorkers sizes the default pool. Ignored when WithExecutor is
// also set. 0 means hardware parallelism.
func WithMaxWorkers(limit int) Option {
	if limit < 0 {
		panic("ptask: max workers cannot be negative")
	}

	return func(c *config) {
		c.maxWorkers = limit
	}
}

// WithLoggingContext installs a scoped correlation-context provider that
// is acquired before and released after every stage the group runs.
func WithLoggingContext(lc LoggingContext) Option {
	return func(c *config) {
		c.logCtx = lc
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

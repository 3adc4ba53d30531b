package ptask

// LoggingContext carries scoped correlation state (trace ids, MDC-style
// values) onto the pool workers a group borrows. The group acquires the
// context before each stage body and releases it on every exit path; it
// never inspects the contents.
type LoggingContext interface {
	Acquire()
	Release() error
}

// withLoggingContext wraps one stage body. Release runs even when fn
// panics; a Release error is logged, never propagated.
func (g *Group[T, R]) withLoggingContext(fn func()) {
	if g.logCtx == nil {
		fn()
		return
	}

	g.logCtx.Acquire()
	defer func() {
		if err := g.logCtx.Release(); err != nil {
			g.logger.Error("releasing logging context", "error", err)
		}
	}()

	fn()
}

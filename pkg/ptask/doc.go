// Package ptask runs independent units of work concurrently on a shared
// worker pool and lets the group race them against an optional shared
// stopping rule (the "definition of done").
//
// Common usage:
//   - New: create a Group with an executor, logger and logging context
//   - AddTask: register a named unit of work (runs only after Start)
//   - Task.Handle: attach a per-task completion callback
//   - SetDefinitionOfDone: define when the group is allowed to stop early
//   - OnComplete: run a callback once every pipeline has resolved
//   - WaitTasks / WaitResults / WaitSingleResult: block until done
//
// Each task moves through an explicit pipeline: work, then the optional
// callback, then the optional definition-of-done evaluation, then the
// registry write. Every stage is submitted to the shared executor as its
// own unit of work. The first satisfied outcome triggers a best-effort
// cooperative cancellation sweep over the unfinished siblings; work that
// is already past its last context poll runs to completion.
//
// Start is lazy: no work runs until Start (or one of the Wait methods) is
// called. The group is sealed once started; mutating it afterwards fails
// with a structural error.
package ptask

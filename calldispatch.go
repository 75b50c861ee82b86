// Package calldispatch models a small call-center dispatcher. Waiting
// callers are served in arrival order from a [Queue], missed callers
// are called back in reverse arrival order from a [Stack], and a
// [Scheduler] interleaves the two until both are drained.
package calldispatch

// Package animate drives epicycle chains frame by frame.
//
// A Clock steps time through one period and reports when it starts over.
// An Animator evaluates the chains of a drawing at each tick, records the
// traced path in a caller-owned Trace and clears it when the period wraps.
package animate

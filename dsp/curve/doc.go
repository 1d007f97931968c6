// Package curve holds 2-D points and hand-drawn curves.
//
// A [Curve] is an ordered point sequence covering one traversal of a closed
// or open stroke; its order is its time axis. [Capture] turns a stream of
// pointer events into a curve at a bounded sampling rate, and the CSV
// helpers persist curves as x,y rows.
package curve

// Package interp turns ordered sample vectors into callables over the
// normalized domain [0, 1).
//
// Available readers, from cheapest to smoothest:
//
//   - [VectorToFunc]: nearest-index lookup (the analysis default)
//   - [Linear]:       2-point linear interpolation between neighbours
//
// Samples are assumed evenly spaced, sample k sitting at x = k/n. Positions
// outside the sampled range clamp to the first or last sample; wrap a reader
// with [Periodic] to extend it with period 1 instead.
package interp

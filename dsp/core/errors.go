package core

import "errors"

var (
	// ErrDomain reports an argument outside the domain of a computation,
	// such as a zero period or a non-positive step.
	ErrDomain = errors.New("domain error")

	// ErrInvariant reports a malformed value that should never have been
	// constructed, such as a coefficient set with torn sequences.
	ErrInvariant = errors.New("invariant violation")
)

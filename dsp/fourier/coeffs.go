package fourier

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// Coeffs is a coefficient set: Cosine[n] and Sine[n] weight harmonic n.
//
// Cosine[0] is the DC term. Sine[0] is unused. A set returned by
// Decompose is never modified afterwards; callers must not mutate it either
// and should Clone before editing.
type Coeffs struct {
	Cosine []float64
	Sine   []float64
}

// Len returns the number of harmonics, including the DC term.
func (c Coeffs) Len() int {
	return len(c.Cosine)
}

// Validate reports ErrInvariant when the two sequences differ in length.
func (c Coeffs) Validate() error {
	if len(c.Cosine) != len(c.Sine) {
		return fmt.Errorf("coefficient set is torn: %d cosine vs %d sine terms: %w",
			len(c.Cosine), len(c.Sine), core.ErrInvariant)
	}
	return nil
}

// Clone returns a deep copy.
func (c Coeffs) Clone() Coeffs {
	out := Coeffs{
		Cosine: make([]float64, len(c.Cosine)),
		Sine:   make([]float64, len(c.Sine)),
	}
	copy(out.Cosine, c.Cosine)
	copy(out.Sine, c.Sine)
	return out
}

// Truncate returns a copy holding at most the first n harmonics.
func (c Coeffs) Truncate(n int) Coeffs {
	if n < 0 {
		n = 0
	}
	if n > len(c.Cosine) {
		n = len(c.Cosine)
	}
	if n > len(c.Sine) {
		n = len(c.Sine)
	}
	return Coeffs{Cosine: c.Cosine[:n:n], Sine: c.Sine[:n:n]}.Clone()
}

// DC returns the average value carried by the set.
func (c Coeffs) DC() float64 {
	if len(c.Cosine) == 0 {
		return 0
	}
	return c.Cosine[0] / 2
}

func validatePeriod(period float64) error {
	if period == 0 {
		return fmt.Errorf("period must be != 0: %w", core.ErrDomain)
	}
	if !core.IsFinite(period) || period < 0 {
		return fmt.Errorf("period must be finite and > 0: %v: %w", period, core.ErrDomain)
	}
	return nil
}

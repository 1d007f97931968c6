package animate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// Clock hands out frame times k*Step for k = 0 .. Frames()-1 and then starts over.
type Clock struct {
	period, step float64
	frames       int
	frame        int
	started      bool
}

// NewClock returns a clock for the given period and step.
func NewClock(period, step float64) (*Clock, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("clock period must be finite and > 0: %v: %w", period, core.ErrDomain)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("clock step must be finite and > 0: %v: %w", step, core.ErrDomain)
	}

	frames := int(math.Ceil(period/step - 1e-9))
	if frames < 1 {
		frames = 1
	}
	return &Clock{period: period, step: step, frames: frames}, nil
}

// Period returns the cycle length.
func (c *Clock) Period() float64 {
	return c.period
}

// Step returns the time between frames.
func (c *Clock) Step() float64 {
	return c.step
}

// Frames returns the number of frames per cycle.
func (c *Clock) Frames() int {
	return c.frames
}

// Advance returns the time of the next frame. wrapped is true when the
// frame starts a new cycle after the first one.
func (c *Clock) Advance() (t float64, wrapped bool) {
	t = float64(c.frame) * c.step
	wrapped = c.frame == 0 && c.started

	c.started = true
	c.frame++
	if c.frame >= c.frames {
		c.frame = 0
	}
	return t, wrapped
}

// Reset rewinds the clock to its first frame.
func (c *Clock) Reset() {
	c.frame = 0
	c.started = false
}

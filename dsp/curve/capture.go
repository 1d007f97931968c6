package curve

import "time"

// DefaultCaptureInterval is the minimum spacing between captured samples.
const DefaultCaptureInterval = 25 * time.Millisecond

// Capture records pointer positions while the pointer is pressed, keeping
// at most one sample per Interval.
//
// A Capture is driven by a single event loop and is not safe for concurrent use.
type Capture struct {
	interval time.Duration
	pressed  bool
	last     time.Time
	sampled  bool
	points   Curve
}

// NewCapture creates a capture with the given sampling interval.
// Non-positive intervals select DefaultCaptureInterval.
func NewCapture(interval time.Duration) *Capture {
	if interval <= 0 {
		interval = DefaultCaptureInterval
	}
	return &Capture{interval: interval}
}

// Interval returns the minimum spacing between samples.
func (c *Capture) Interval() time.Duration {
	return c.interval
}

// Press starts a new stroke, discarding the previous one.
func (c *Capture) Press() {
	c.pressed = true
	c.sampled = false
	c.points = c.points[:0]
}

// Release ends the current stroke.
func (c *Capture) Release() {
	c.pressed = false
}

// Pressed reports whether a stroke is in progress.
func (c *Capture) Pressed() bool {
	return c.pressed
}

// Move offers a pointer position observed at the given time and reports
// whether it was recorded.
func (c *Capture) Move(at time.Time, p Point) bool {
	if !c.pressed {
		return false
	}
	if c.sampled && at.Sub(c.last) < c.interval {
		return false
	}

	c.last = at
	c.sampled = true
	c.points = append(c.points, p)
	return true
}

// Len returns the number of recorded points.
func (c *Capture) Len() int {
	return len(c.points)
}

// Curve returns a copy of the recorded stroke.
func (c *Capture) Curve() Curve {
	out := make(Curve, len(c.points))
	copy(out, c.points)
	return out
}

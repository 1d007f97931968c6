package animate

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/epicycle"
)

// Frame is the state of every chain at one instant. The joint slices are
// reused by the next call to Next.
type Frame struct {
	T float64
	// Joints holds the pivot then every joint of the x chain, or of the
	// only chain of a 1-D animation.
	Joints []curve.Point
	// YJoints holds the joints of the y chain and is nil in 1-D animations.
	YJoints []curve.Point
	// Tip is the traced point.
	Tip     curve.Point
	Wrapped bool
}

// Option configures an Animator.
type Option func(*Animator)

// WithPivots anchors the x and y chains at the given canvas points.
func WithPivots(x, y curve.Point) Option {
	return func(a *Animator) {
		a.xPivot, a.yPivot = x, y
	}
}

// WithTrace records the tip path into tr.
func WithTrace(tr *Trace) Option {
	return func(a *Animator) {
		a.trace = tr
	}
}

// Animator steps chains through time.
type Animator struct {
	x, y           epicycle.Chain
	planar         bool
	clock          *Clock
	trace          *Trace
	xPivot, yPivot curve.Point

	xJoints, yJoints []curve.Point
}

// New animates a 2-D drawing with the given frame step. The tip takes its
// X from the x chain and its Y from the y chain.
func New(d epicycle.Drawing, step float64, opts ...Option) (*Animator, error) {
	clock, err := NewClock(d.Period, step)
	if err != nil {
		return nil, fmt.Errorf("animate drawing: %w", err)
	}
	a := &Animator{x: d.X, y: d.Y, planar: true, clock: clock}
	a.apply(opts)
	return a, nil
}

// NewChain animates a single chain whose tip is the traced point.
func NewChain(c epicycle.Chain, period, step float64, opts ...Option) (*Animator, error) {
	clock, err := NewClock(period, step)
	if err != nil {
		return nil, fmt.Errorf("animate chain: %w", err)
	}
	a := &Animator{x: c, clock: clock}
	a.apply(opts)
	return a, nil
}

func (a *Animator) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.xJoints = make([]curve.Point, 0, len(a.x)+1)
	if a.planar {
		a.yJoints = make([]curve.Point, 0, len(a.y)+1)
	}
}

// Clock returns the animator's clock.
func (a *Animator) Clock() *Clock {
	return a.clock
}

// Trace returns the attached trace, or nil.
func (a *Animator) Trace() *Trace {
	return a.trace
}

// Next evaluates the chains at the next clock tick. The trace is cleared
// before the first frame of every new cycle.
func (a *Animator) Next() Frame {
	t, wrapped := a.clock.Advance()
	if wrapped && a.trace != nil {
		a.trace.Reset()
	}

	a.xJoints = a.x.Joints(a.xJoints, a.xPivot, t)
	frame := Frame{T: t, Joints: a.xJoints, Wrapped: wrapped}

	xTip := a.xJoints[len(a.xJoints)-1]
	if a.planar {
		a.yJoints = a.y.Joints(a.yJoints, a.yPivot, t)
		yTip := a.yJoints[len(a.yJoints)-1]
		frame.YJoints = a.yJoints
		frame.Tip = curve.Point{X: xTip.X, Y: yTip.Y}
	} else {
		frame.Tip = xTip
	}

	if a.trace != nil {
		a.trace.Append(frame.Tip)
	}
	return frame
}

// Reset rewinds the clock and clears the trace.
func (a *Animator) Reset() {
	a.clock.Reset()
	if a.trace != nil {
		a.trace.Reset()
	}
}

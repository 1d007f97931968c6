package animate

import "github.com/cwbudde/algo-epicycle/dsp/curve"

// Trace collects the path drawn by a chain tip.
type Trace struct {
	points curve.Curve
	limit  int
}

// NewTrace returns a trace that keeps at most limit points, dropping the
// oldest first. A limit of zero or less keeps everything.
func NewTrace(limit int) *Trace {
	if limit < 0 {
		limit = 0
	}
	return &Trace{limit: limit}
}

// Append records p.
func (tr *Trace) Append(p curve.Point) {
	if tr.limit > 0 && len(tr.points) == tr.limit {
		copy(tr.points, tr.points[1:])
		tr.points = tr.points[:len(tr.points)-1]
	}
	tr.points = append(tr.points, p)
}

// Reset empties the trace and keeps its storage.
func (tr *Trace) Reset() {
	tr.points = tr.points[:0]
}

// Len returns the number of recorded points.
func (tr *Trace) Len() int {
	return len(tr.points)
}

// Points returns the recorded path. It is only valid until the next Append or Reset.
func (tr *Trace) Points() curve.Curve {
	return tr.points
}

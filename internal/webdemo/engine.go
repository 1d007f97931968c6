// Package webdemo is the browser-side engine behind the wasm bridge. It owns
// the sketch capture, the current drawing and its animation, and the 1-D
// approximation widget.
package webdemo

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-epicycle/dsp/animate"
	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/epicycle"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/dsp/plot"
	"github.com/cwbudde/algo-epicycle/dsp/signal"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

const (
	// DefaultHarmonics is the number of terms used to retrace a sketch.
	DefaultHarmonics = 50
	// MaxHarmonics bounds SetHarmonics and SetWidgetTerms.
	MaxHarmonics = 200

	defaultWidgetTerms = 6
	frameStep          = 0.01
	overlayStep        = 0.01
)

// ErrNoDrawing is returned when an operation needs a traced curve first.
var ErrNoDrawing = errors.New("no drawing traced yet")

// Engine runs the demo state machine in Go. It is not safe for concurrent use.
type Engine struct {
	width, height float64
	harmonics     int
	log           logging.Logger

	capture  *curve.Capture
	source   curve.Curve
	full     epicycle.Drawing
	drawing  epicycle.Drawing
	animator *animate.Animator
	trace    *animate.Trace

	signals      *signal.Registry
	widget       *plot.Graph
	widgetSignal signal.Entry
	widgetCoeffs fourier.Coeffs
	widgetTerms  int
}

// NewEngine creates an engine for canvases of the given size.
func NewEngine(width, height float64) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be > 0: %vx%v: %w", width, height, core.ErrDomain)
	}
	e := &Engine{
		width:       width,
		height:      height,
		harmonics:   DefaultHarmonics,
		log:         logging.GetGlobalLogger().WithFields(logging.Fields{"component": "webdemo"}),
		capture:     curve.NewCapture(curve.DefaultCaptureInterval),
		trace:       animate.NewTrace(0),
		signals:     signal.NewRegistry(),
		widgetTerms: defaultWidgetTerms,
	}
	if err := e.SetSignal(defaultSignal); err != nil {
		return nil, err
	}
	return e, nil
}

// Harmonics returns the term count used for sketches.
func (e *Engine) Harmonics() int {
	return e.harmonics
}

// PointerDown starts a new sketch and clears the previous one.
func (e *Engine) PointerDown() {
	e.capture.Press()
}

// PointerUp ends the current stroke.
func (e *Engine) PointerUp() {
	e.capture.Release()
}

// PointerMove offers a pointer position at the given time in milliseconds
// and reports whether it was recorded.
func (e *Engine) PointerMove(ms, x, y float64) bool {
	at := time.UnixMilli(int64(ms))
	return e.capture.Move(at, curve.Point{X: x, Y: y})
}

// SketchLen returns the number of captured points.
func (e *Engine) SketchLen() int {
	return e.capture.Len()
}

// StartTrace decomposes the captured sketch and restarts the animation.
func (e *Engine) StartTrace() error {
	return e.SetCurve(e.capture.Curve())
}

// SetCurve replaces the traced curve. It is decomposed once up to
// MaxHarmonics; SetHarmonics only truncates.
func (e *Engine) SetCurve(c curve.Curve) error {
	c = c.Clone()
	full, err := epicycle.FromCurve(c, MaxHarmonics)
	if err == nil {
		err = e.rebuild(c, full, e.harmonics)
	}
	if err != nil {
		e.log.Error(err, "trace failed", logging.Fields{"points": len(c)})
		return err
	}
	return nil
}

// SetHarmonics changes the term count and retraces the current curve, if any.
func (e *Engine) SetHarmonics(n int) error {
	if n < 1 || n > MaxHarmonics {
		return fmt.Errorf("harmonics must be in [1,%d]: %d: %w", MaxHarmonics, n, core.ErrDomain)
	}
	if e.source == nil {
		e.harmonics = n
		return nil
	}
	return e.rebuild(e.source, e.full, n)
}

func (e *Engine) rebuild(c curve.Curve, full epicycle.Drawing, harmonics int) error {
	d, err := full.Truncate(harmonics)
	if err != nil {
		return err
	}
	a, err := animate.New(d, frameStep,
		animate.WithTrace(e.trace),
		animate.WithPivots(curve.Point{Y: e.height / 10}, curve.Point{X: e.width / 10}),
	)
	if err != nil {
		return err
	}

	// The drawing and its animation are replaced together.
	e.source = c
	e.full = full
	e.harmonics = harmonics
	e.drawing = d
	e.animator = a
	e.trace.Reset()

	e.log.Debug("drawing rebuilt", logging.Fields{
		"points":    len(c),
		"harmonics": harmonics,
		"reach":     d.X.Reach(),
	})
	return nil
}

// Drawing returns the current drawing.
func (e *Engine) Drawing() (epicycle.Drawing, bool) {
	return e.drawing, e.animator != nil
}

// Frame advances the animation by one step.
func (e *Engine) Frame() (animate.Frame, error) {
	if e.animator == nil {
		return animate.Frame{}, ErrNoDrawing
	}
	return e.animator.Next(), nil
}

// Traced returns the tip path of the current cycle.
func (e *Engine) Traced() curve.Curve {
	return e.trace.Points()
}

// Overlay returns the whole reconstructed curve for static display.
func (e *Engine) Overlay() (curve.Curve, error) {
	if e.animator == nil {
		return nil, ErrNoDrawing
	}
	return e.drawing.Overlay(overlayStep)
}

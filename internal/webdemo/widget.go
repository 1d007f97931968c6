package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/dsp/plot"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

// Series is one polyline of the approximation widget in canvas coordinates.
type Series struct {
	Color  string
	Points curve.Curve
}

// SetSignal shows the named signal in the approximation widget.
func (e *Engine) SetSignal(name string) error {
	s, ok := e.signals.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown signal %q: %w", name, core.ErrDomain)
	}
	c, err := fourier.Decompose(s.Func, MaxHarmonics, s.Period)
	if err != nil {
		return err
	}
	e.widgetSignal = s
	e.widgetCoeffs = c
	return e.rebuildWidget()
}

// SetWidgetTerms changes the number of terms in the widget approximation.
func (e *Engine) SetWidgetTerms(n int) error {
	if n < 1 || n > MaxHarmonics {
		return fmt.Errorf("terms must be in [1,%d]: %d: %w", MaxHarmonics, n, core.ErrDomain)
	}
	e.widgetTerms = n
	return e.rebuildWidget()
}

// WidgetTerms returns the widget term count.
func (e *Engine) WidgetTerms() int {
	return e.widgetTerms
}

// SetWidgetScale rescales the widget axes.
func (e *Engine) SetWidgetScale(x, y float64) error {
	return e.widget.SetScale(x, y)
}

// rebuildWidget plots the signal and its sampled approximation over two
// periods centred on the origin. The terms are a prefix of the signal's
// full decomposition.
func (e *Engine) rebuildWidget() error {
	s := e.widgetSignal
	c := e.widgetCoeffs.Truncate(e.widgetTerms)
	approx, err := fourier.ApproximateFunc(c, s.Period, core.WithSampleStep(s.Period/100))
	if err != nil {
		return err
	}

	g, err := plot.New(e.width, e.height,
		plot.WithDomain(-s.Period, s.Period),
		plot.WithRange(-2, 2),
	)
	if err != nil {
		return err
	}
	if _, err := g.Add(plot.Styled(s.Func, colorOriginal)); err != nil {
		return err
	}
	if _, err := g.Add(plot.Styled(approx, colorApprox)); err != nil {
		return err
	}
	e.widget = g

	e.log.Debug("widget rebuilt", logging.Fields{"signal": s.Name, "terms": e.widgetTerms})
	return nil
}

// Widget returns the polylines of the approximation widget, computing them
// on first use after a change.
func (e *Engine) Widget() ([]Series, error) {
	out := make([]Series, e.widget.Len())
	for i := range out {
		pts, err := e.widget.Points(i)
		if err != nil {
			return nil, err
		}
		color, err := e.widget.Stroke(i)
		if err != nil {
			return nil, err
		}
		out[i] = Series{Color: color, Points: pts}
	}
	return out, nil
}

// WidgetAxes returns the widget's coordinate axes.
func (e *Engine) WidgetAxes() (vertical, horizontal [2]curve.Point) {
	return e.widget.Axes()
}

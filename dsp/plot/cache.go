package plot

import "github.com/cwbudde/algo-epicycle/dsp/curve"

// layout is everything a cached point set depends on besides the function.
type layout struct {
	domain         [2]float64
	dx             float64
	xScale, yScale float64
	center         curve.Point
}

// Cache holds the canvas points computed for one layout.
type Cache struct {
	inputs layout
	output curve.Curve
	valid  bool
}

// Valid reports whether the cache holds points.
func (c *Cache) Valid() bool {
	return c.valid
}

// Invalidate drops the cached points.
func (c *Cache) Invalidate() {
	c.output = nil
	c.valid = false
}

func (c *Cache) lookup(in layout) (curve.Curve, bool) {
	if !c.valid || c.inputs != in {
		return nil, false
	}
	return c.output, true
}

func (c *Cache) store(in layout, out curve.Curve) {
	c.inputs = in
	c.output = out
	c.valid = true
}

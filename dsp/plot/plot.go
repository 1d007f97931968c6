package plot

import "github.com/cwbudde/algo-epicycle/dsp/core"

// DefaultColor is the stroke used for plain plots.
const DefaultColor = "#fd79a8"

// Kind tells plain plots from styled ones.
type Kind int

const (
	// KindPlain plots use DefaultColor.
	KindPlain Kind = iota
	// KindStyled plots carry their own color.
	KindStyled
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindStyled:
		return "styled"
	default:
		return "unknown"
	}
}

// Plot describes one function to draw.
type Plot struct {
	Kind  Kind
	Func  core.Func
	Color string
}

// Plain returns a plot of f in the default color.
func Plain(f core.Func) Plot {
	return Plot{Kind: KindPlain, Func: f}
}

// Styled returns a plot of f stroked with color.
func Styled(f core.Func, color string) Plot {
	return Plot{Kind: KindStyled, Func: f, Color: color}
}

// Stroke returns the color the plot is drawn with.
func (p Plot) Stroke() string {
	if p.Kind == KindStyled && p.Color != "" {
		return p.Color
	}
	return DefaultColor
}

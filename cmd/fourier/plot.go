package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/guptarohit/asciigraph"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/dsp/plot"
	"github.com/cwbudde/algo-epicycle/dsp/signal"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

const (
	originalColor = "#e84118"
	approxColor   = "#40739e"
)

// overlay holds a signal and its approximation sampled over one period.
type overlay struct {
	title    string
	xs       []float64
	original []float64
	approx   []float64
	colors   [2]string
	coeffs   fourier.Coeffs
}

func runPlot(e *env, args []string) error {
	fs, verbose := e.newFlagSet("plot")
	name := fs.String("signal", "square", "built-in signal to approximate")
	n := fs.Int("n", 6, "number of harmonics including the constant term")
	width := fs.Int("width", 72, "plot width in columns")
	height := fs.Int("height", 16, "plot height in rows")
	html := fs.String("html", "", "also write an interactive chart to this HTML file")
	if err := e.parse(fs, verbose, args); err != nil {
		return err
	}

	s, err := e.lookupSignal(*name)
	if err != nil {
		return err
	}
	ov, err := buildOverlay(s, *n, *width, *height)
	if err != nil {
		return err
	}
	e.log.Debug("overlay sampled", logging.Fields{"signal": s.Name, "harmonics": *n, "samples": len(ov.xs)})

	graph := asciigraph.PlotMany([][]float64{ov.original, ov.approx},
		asciigraph.Height(*height),
		asciigraph.Width(*width),
		asciigraph.Caption(ov.title),
	)
	fmt.Fprintln(e.stdout, graph)

	if err := printResidual(e, s, ov.coeffs); err != nil {
		return err
	}

	if *html != "" {
		if err := writeHTML(*html, ov); err != nil {
			return fmt.Errorf("write %s: %w", *html, err)
		}
		e.log.Info("chart written", logging.Fields{"path": *html})
	}
	return nil
}

// buildOverlay lays the signal and its approximation out on one graph so
// both are sampled at identical positions.
func buildOverlay(s signal.Entry, harmonics, width, height int) (overlay, error) {
	c, err := fourier.Decompose(s.Func, harmonics, s.Period)
	if err != nil {
		return overlay{}, err
	}
	approx, err := fourier.Series(c, s.Period)
	if err != nil {
		return overlay{}, err
	}

	g, err := plot.New(float64(width), float64(height),
		plot.WithDomain(0, s.Period),
		plot.WithDX(s.Period/float64(width)),
	)
	if err != nil {
		return overlay{}, err
	}
	orig, err := g.Add(plot.Styled(s.Func, originalColor))
	if err != nil {
		return overlay{}, err
	}
	fit, err := g.Add(plot.Styled(approx, approxColor))
	if err != nil {
		return overlay{}, err
	}

	xs, original, err := g.Sample(orig)
	if err != nil {
		return overlay{}, err
	}
	_, fitted, err := g.Sample(fit)
	if err != nil {
		return overlay{}, err
	}
	origStroke, _ := g.Stroke(orig)
	fitStroke, _ := g.Stroke(fit)

	return overlay{
		title:    fmt.Sprintf("%s and %d-term approximation", s.Name, harmonics),
		xs:       xs,
		original: original,
		approx:   fitted,
		colors:   [2]string{origStroke, fitStroke},
		coeffs:   c,
	}, nil
}

func printResidual(e *env, s signal.Entry, c fourier.Coeffs) error {
	approx, err := fourier.ApproximateCurve(c, s.Period)
	if err != nil {
		return err
	}
	ref, err := fourier.Reference(s.Func, s.Period)
	if err != nil {
		return err
	}
	res, err := fourier.Compare(approx, ref)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(e.stdout, "samples=%d dt=%g L1=%.4f mean=%.4f max=%.4f rms=%.4f\n",
		len(ref), core.DefaultConfig().SampleStep, res.L1, res.Mean, res.Max, res.RMS)
	return err
}

func writeHTML(path string, ov overlay) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: ov.title}),
		charts.WithColorsOpts(opts.Colors{ov.colors[0], ov.colors[1]}),
	)

	labels := make([]string, len(ov.xs))
	for i, x := range ov.xs {
		labels[i] = strconv.FormatFloat(x, 'f', 3, 64)
	}
	line.SetXAxis(labels).
		AddSeries("signal", lineData(ov.original)).
		AddSeries("approximation", lineData(ov.approx))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := line.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func lineData(ys []float64) []opts.LineData {
	out := make([]opts.LineData, len(ys))
	for i, y := range ys {
		out[i] = opts.LineData{Value: y}
	}
	return out
}

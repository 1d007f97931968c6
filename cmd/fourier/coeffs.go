package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/epicycle"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

func runCoeffs(e *env, args []string) error {
	fs, verbose := e.newFlagSet("coeffs")
	name := fs.String("signal", "square", "built-in signal to decompose")
	path := fs.String("curve", "", "x,y CSV curve to decompose instead of a signal")
	n := fs.Int("n", 10, "number of harmonics including the constant term")
	step := fs.Float64("step", core.DefaultConfig().Step, "quadrature step")
	polar := fs.Bool("polar", false, "print epicycle radius and phase instead of cosine/sine weights")
	if err := e.parse(fs, verbose, args); err != nil {
		return err
	}

	heading := lipgloss.NewRenderer(e.stdout).NewStyle().Bold(true)

	if *path != "" {
		c, err := e.loadCurve(*path)
		if err != nil {
			return err
		}
		d, err := epicycle.FromCurve(c, *n, core.WithStep(*step))
		if err != nil {
			return err
		}
		e.log.Info("curve decomposed", logging.Fields{"points": len(c), "harmonics": *n})

		fmt.Fprintln(e.stdout, heading.Render("x(t)"))
		if err := printCoeffs(e.stdout, d.XCoeffs, d.Period, *polar); err != nil {
			return err
		}
		fmt.Fprintln(e.stdout)
		fmt.Fprintln(e.stdout, heading.Render("y(t)"))
		return printCoeffs(e.stdout, d.YCoeffs, d.Period, *polar)
	}

	s, err := e.lookupSignal(*name)
	if err != nil {
		return err
	}
	c, err := fourier.Decompose(s.Func, *n, s.Period, core.WithStep(*step))
	if err != nil {
		return err
	}
	e.log.Info("signal decomposed", logging.Fields{"signal": s.Name, "period": s.Period, "harmonics": *n})

	fmt.Fprintln(e.stdout, heading.Render(fmt.Sprintf("%s, period %.6g", s.Name, s.Period)))
	return printCoeffs(e.stdout, c, s.Period, *polar)
}

func printCoeffs(w io.Writer, c fourier.Coeffs, period float64, polar bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if polar {
		vs, err := epicycle.ToPolar(c, period)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "n\tRadius\tPhase [rad]\tFreq [rad/unit]\n")
		fmt.Fprintf(tw, "-\t------\t-----------\t---------------\n")
		for _, v := range vs {
			fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\n", v.Harmonic, v.Radius, v.Phase, v.Freq)
		}
		return tw.Flush()
	}

	if err := c.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(tw, "n\tCosine\tSine\n")
	fmt.Fprintf(tw, "-\t------\t----\n")
	for i := range c.Cosine {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\n", i, c.Cosine[i], c.Sine[i])
	}
	return tw.Flush()
}

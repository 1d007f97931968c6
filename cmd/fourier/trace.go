package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-epicycle/dsp/animate"
	"github.com/cwbudde/algo-epicycle/dsp/epicycle"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

func runTrace(e *env, args []string) error {
	fs, verbose := e.newFlagSet("trace")
	name := fs.String("signal", "", "built-in signal to trace with a single chain")
	path := fs.String("curve", "", "x,y CSV curve to trace with an x and a y chain")
	n := fs.Int("n", 50, "number of harmonics including the constant term")
	step := fs.Float64("step", 0.01, "time between frames")
	frames := fs.Int("frames", 0, "number of frames to export, 0 for one period")
	out := fs.String("o", "-", "output CSV file, - for stdout, .zst to compress")
	if err := e.parse(fs, verbose, args); err != nil {
		return err
	}
	if (*name == "") == (*path == "") {
		return errors.New("trace: exactly one of -signal or -curve is required")
	}

	a, err := e.newAnimator(*name, *path, *n, *step)
	if err != nil {
		return err
	}
	count := *frames
	if count <= 0 {
		count = a.Clock().Frames()
	}

	w, closeOut, err := e.createOutput(*out)
	if err != nil {
		return err
	}
	if err := writeFrames(csv.NewWriter(w), a, count); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}

	e.log.Info("trace written", logging.Fields{
		"output": *out,
		"frames": count,
		"traced": a.Trace().Len(),
	})
	return nil
}

func (e *env) newAnimator(name, path string, harmonics int, step float64) (*animate.Animator, error) {
	trace := animate.NewTrace(0)

	if path != "" {
		c, err := e.loadCurve(path)
		if err != nil {
			return nil, err
		}
		d, err := epicycle.FromCurve(c, harmonics)
		if err != nil {
			return nil, err
		}
		e.log.Debug("drawing built", logging.Fields{"x_terms": len(d.X), "y_terms": len(d.Y)})
		return animate.New(d, step, animate.WithTrace(trace))
	}

	s, err := e.lookupSignal(name)
	if err != nil {
		return nil, err
	}
	c, err := fourier.Decompose(s.Func, harmonics, s.Period)
	if err != nil {
		return nil, err
	}
	chain, err := epicycle.ToChain(c, s.Period)
	if err != nil {
		return nil, err
	}
	e.log.Debug("chain built", logging.Fields{"signal": s.Name, "terms": len(chain), "reach": chain.Reach()})
	return animate.NewChain(chain, s.Period, step, animate.WithTrace(trace))
}

func writeFrames(w *csv.Writer, a *animate.Animator, count int) error {
	if err := w.Write([]string{"frame", "t", "x", "y", "wrapped"}); err != nil {
		return fmt.Errorf("write trace header: %w", err)
	}

	record := make([]string, 5)
	for i := range count {
		f := a.Next()
		record[0] = strconv.Itoa(i)
		record[1] = formatFloat(f.T)
		record[2] = formatFloat(f.Tip.X)
		record[3] = formatFloat(f.Tip.Y)
		record[4] = strconv.FormatBool(f.Wrapped)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write trace frame %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

package fourier

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/internal/testutil"
)

func TestSampleTimes(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		dt     float64
		want   int
	}{
		{name: "unit period", period: 1, dt: 0.1, want: 10},
		{name: "two pi", period: 2 * math.Pi, dt: 0.1, want: 63},
		{name: "fine", period: 1, dt: 0.01, want: 100},
		{name: "step longer than period", period: 0.5, dt: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times, err := SampleTimes(tt.period, tt.dt)
			if err != nil {
				t.Fatalf("SampleTimes() error = %v", err)
			}
			if len(times) != tt.want {
				t.Fatalf("len = %d, want %d", len(times), tt.want)
			}
			if times[0] != 0 {
				t.Fatalf("times[0] = %v, want 0", times[0])
			}
			if last := times[len(times)-1]; last >= tt.period {
				t.Fatalf("last time %v not below period %v", last, tt.period)
			}
		})
	}
}

func TestSampleTimesInvalid(t *testing.T) {
	if _, err := SampleTimes(0, 0.1); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("zero period: err = %v, want ErrDomain", err)
	}
	if _, err := SampleTimes(1, 0); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("zero step: err = %v, want ErrDomain", err)
	}
}

func TestApproximateCurveTorn(t *testing.T) {
	c := Coeffs{Cosine: []float64{1, 2, 3}, Sine: []float64{0, 1}}
	if _, err := ApproximateCurve(c, 1); !errors.Is(err, core.ErrInvariant) {
		t.Fatalf("err = %v, want ErrInvariant", err)
	}
}

func TestApproximateCurveEmptySet(t *testing.T) {
	approx, err := ApproximateCurve(Coeffs{}, 1)
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, approx, make([]float64, 10), 0)
}

func TestApproximateCurveKnownSeries(t *testing.T) {
	// 0.5 + cos(wt) + 2 sin(2wt)
	c := Coeffs{Cosine: []float64{1, 1, 0}, Sine: []float64{0, 0, 2}}
	approx, err := ApproximateCurve(c, 1, core.WithSampleStep(0.25))
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}

	want := []float64{1.5, 0.5, -0.5, 0.5}
	testutil.RequireSliceNearlyEqual(t, approx, want, 1e-12)
}

func TestApproximateCurveIntoReuse(t *testing.T) {
	c := Coeffs{Cosine: []float64{2}, Sine: []float64{0}}
	buf := make([]float64, 0, 16)

	out, err := ApproximateCurveInto(buf, c, 1)
	if err != nil {
		t.Fatalf("ApproximateCurveInto() error = %v", err)
	}
	if cap(out) != 16 {
		t.Fatalf("cap = %d, want 16", cap(out))
	}
	if out[3] != 1 {
		t.Fatalf("out[3] = %v, want 1", out[3])
	}
}

func TestSeriesMatchesCurve(t *testing.T) {
	c, err := Decompose(sawtooth, 25, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	series, err := Series(c, 1)
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	approx, err := ApproximateCurve(c, 1)
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}
	times, err := SampleTimes(1, core.DefaultConfig().SampleStep)
	if err != nil {
		t.Fatalf("SampleTimes() error = %v", err)
	}

	for k, tk := range times {
		if got := series(tk); math.Abs(got-approx[k]) > 1e-12 {
			t.Fatalf("series(%v) = %v, curve %v", tk, got, approx[k])
		}
	}
}

func TestSeriesRejectsBadInput(t *testing.T) {
	if _, err := Series(Coeffs{Cosine: []float64{1}}, 1); !errors.Is(err, core.ErrInvariant) {
		t.Fatalf("err = %v, want ErrInvariant", err)
	}
	if _, err := Series(Coeffs{}, 0); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestApproximateFuncSawtooth(t *testing.T) {
	c, err := Decompose(sawtooth, 25, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	f, err := ApproximateFunc(c, 1)
	if err != nil {
		t.Fatalf("ApproximateFunc() error = %v", err)
	}

	for _, x := range []float64{0.3, 0.5, 0.7} {
		if got := f(x); math.Abs(got-x) > 0.05 {
			t.Fatalf("f(%v) = %v, want about %v", x, got, x)
		}
	}
	if f(1.3) != f(0.3) || f(-0.7) != f(0.3) {
		t.Fatalf("f not periodic: f(1.3)=%v f(-0.7)=%v f(0.3)=%v", f(1.3), f(-0.7), f(0.3))
	}
}

func TestApproximateFuncScalesPeriod(t *testing.T) {
	c, err := Decompose(math.Sin, 3, 2*math.Pi)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	f, err := ApproximateFunc(c, 2*math.Pi, core.WithSampleStep(0.01))
	if err != nil {
		t.Fatalf("ApproximateFunc() error = %v", err)
	}

	if got := f(math.Pi / 2); math.Abs(got-1) > 0.01 {
		t.Fatalf("f(pi/2) = %v, want 1", got)
	}
}

func TestCompare(t *testing.T) {
	r, err := Compare([]float64{1, 2, 3, 4}, []float64{1, 1, 3, 6})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if r.L1 != 3 || r.Max != 2 || r.Mean != 0.75 {
		t.Fatalf("Compare() = %+v, want L1=3 Max=2 Mean=0.75", r)
	}
	if math.Abs(r.RMS-math.Sqrt(5.0/4)) > 1e-15 {
		t.Fatalf("RMS = %v, want %v", r.RMS, math.Sqrt(5.0/4))
	}

	if _, err := Compare([]float64{1}, nil); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
	if r, err := Compare(nil, nil); err != nil || r != (Residual{}) {
		t.Fatalf("Compare(nil, nil) = %+v, %v", r, err)
	}
}

package fourier

import (
	"errors"
	"math"
	"reflect"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/internal/testutil"
)

func squareWave(x float64) float64 {
	s := math.Sin(x)
	if s == 0 {
		return 0
	}
	return 4 * math.Copysign(1, s)
}

func sawtooth(x float64) float64 {
	return x - math.Floor(x)
}

func TestDecomposeSineRoundTrip(t *testing.T) {
	f := func(x float64) float64 { return 4 * math.Sin(x) }
	period := 2 * math.Pi

	c, err := Decompose(f, 5, period)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	approx, err := ApproximateCurve(c, period)
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}
	want, err := Reference(f, period)
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}

	total, err := testutil.TotalAbsDiff(approx, want)
	if err != nil {
		t.Fatalf("TotalAbsDiff() error = %v", err)
	}
	if total >= 0.01 {
		t.Fatalf("total abs error = %v, want < 0.01", total)
	}
}

func TestDecomposeSquareWaveGibbs(t *testing.T) {
	period := 2 * math.Pi

	c, err := Decompose(squareWave, 164, period)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	approx, err := ApproximateCurve(c, period)
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}
	want, err := Reference(squareWave, period)
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}

	r, err := Compare(approx, want)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if r.L1 >= 4 {
		t.Fatalf("total abs error = %v, want < 4", r.L1)
	}
	// Ringing next to the jumps never vanishes.
	if r.Max < 0.05 {
		t.Fatalf("max abs error = %v, expected visible overshoot near discontinuities", r.Max)
	}
}

func TestDecomposeSineCoefficients(t *testing.T) {
	c, err := Decompose(math.Sin, 2, 2*math.Pi)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if math.Abs(c.Sine[1]-1) > 1e-3 {
		t.Fatalf("Sine[1] = %v, want 1", c.Sine[1])
	}
	if math.Abs(c.Cosine[1]) > 1e-3 {
		t.Fatalf("Cosine[1] = %v, want 0", c.Cosine[1])
	}
	if math.Abs(c.Cosine[0]) > 1e-3 {
		t.Fatalf("Cosine[0] = %v, want 0", c.Cosine[0])
	}
}

func TestDecomposeSawtooth(t *testing.T) {
	c, err := Decompose(sawtooth, 6, core.DefaultPeriod)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	if math.Abs(c.DC()-0.5) > 0.01 {
		t.Fatalf("DC() = %v, want 0.5", c.DC())
	}
	for n := 1; n < c.Len(); n++ {
		want := -1 / (math.Pi * float64(n))
		if math.Abs(c.Sine[n]-want) > 0.01 {
			t.Fatalf("Sine[%d] = %v, want %v", n, c.Sine[n], want)
		}
	}
}

func TestDecomposeConstantHalvesDC(t *testing.T) {
	c, err := Decompose(func(float64) float64 { return 3 }, 3, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if math.Abs(c.Cosine[0]-6) > 1e-9 {
		t.Fatalf("Cosine[0] = %v, want 6", c.Cosine[0])
	}

	approx, err := ApproximateCurve(c, 1)
	if err != nil {
		t.Fatalf("ApproximateCurve() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, approx, testutil.DC(3, len(approx)), 1e-9)
}

func TestDecomposeInvalidPeriod(t *testing.T) {
	for _, period := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Decompose(math.Sin, 4, period)
		if !errors.Is(err, core.ErrDomain) {
			t.Fatalf("period %v: err = %v, want ErrDomain", period, err)
		}
	}
}

func TestDecomposeZeroPeriodWithNoHarmonics(t *testing.T) {
	if _, err := Decompose(math.Sin, 0, 0); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestDecomposeNonPositiveHarmonics(t *testing.T) {
	for _, n := range []int{0, -3} {
		c, err := Decompose(math.Sin, n, 1)
		if err != nil {
			t.Fatalf("Decompose(%d) error = %v", n, err)
		}
		if len(c.Cosine) != 0 || len(c.Sine) != 0 {
			t.Fatalf("Decompose(%d) = %v, want empty", n, c)
		}
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	}
}

func TestDecomposeIdempotent(t *testing.T) {
	a, err := Decompose(squareWave, 12, 2*math.Pi)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	b, err := Decompose(squareWave, 12, 2*math.Pi)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated Decompose differs:\n%v\n%v", a, b)
	}
}

func TestDecomposePropagatesNonFinite(t *testing.T) {
	f := func(x float64) float64 {
		if x > 0.5 && x < 0.6 {
			return math.NaN()
		}
		return x
	}

	c, err := Decompose(f, 3, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	for n := range c.Len() {
		if !math.IsNaN(c.Cosine[n]) || !math.IsNaN(c.Sine[n]) {
			t.Fatalf("harmonic %d = (%v, %v), want NaN", n, c.Cosine[n], c.Sine[n])
		}
	}
}

func TestDecomposeFinerStep(t *testing.T) {
	coarse, err := Decompose(sawtooth, 4, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	fine, err := Decompose(sawtooth, 4, 1, core.WithStep(0.0005))
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	if math.Abs(fine.DC()-0.5) >= math.Abs(coarse.DC()-0.5) {
		t.Fatalf("finer step DC error %v not below coarse %v",
			math.Abs(fine.DC()-0.5), math.Abs(coarse.DC()-0.5))
	}
}

// TestDecomposeMatchesFFT checks the quadrature projection against the
// spectrum of the same period sampled uniformly.
func TestDecomposeMatchesFFT(t *testing.T) {
	const (
		size      = 256
		harmonics = 6
	)

	f := func(x float64) float64 {
		w := 2 * math.Pi * x
		return 1 + 2*math.Cos(w) + 0.5*math.Sin(3*w) - 0.75*math.Cos(5*w)
	}

	c, err := Decompose(f, harmonics, 1)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	samples := testutil.UniformSamples(f, 1, size)
	in := make([]complex128, size)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		t.Fatalf("NewPlan64() error = %v", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	for n := range harmonics {
		wantCos := 2 * real(out[n]) / size
		if math.Abs(c.Cosine[n]-wantCos) > 1e-3 {
			t.Fatalf("Cosine[%d] = %v, fft %v", n, c.Cosine[n], wantCos)
		}
		if n == 0 {
			continue
		}
		wantSin := -2 * imag(out[n]) / size
		if math.Abs(c.Sine[n]-wantSin) > 1e-3 {
			t.Fatalf("Sine[%d] = %v, fft %v", n, c.Sine[n], wantSin)
		}
	}
}

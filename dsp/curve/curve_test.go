package curve

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestSlope(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{name: "from origin", a: Point{0, 0}, b: Point{1, 3}, want: 3},
		{name: "degenerate", a: Point{1, 2}, b: Point{1, 2}, want: math.Inf(1)},
		{name: "horizontal", a: Point{1, 2}, b: Point{2, 2}, want: 0},
		{name: "negative", a: Point{0, 1}, b: Point{2, -3}, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slope(tt.a, tt.b); got != tt.want {
				t.Fatalf("Slope(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{1, 2}.Add(Point{3, 4}).Sub(Point{1, 1})
	if p != (Point{3, 5}) {
		t.Fatalf("p = %v, want {3 5}", p)
	}
	if d := (Point{0, 0}).Dist(Point{3, 4}); d != 5 {
		t.Fatalf("Dist = %v, want 5", d)
	}
}

func TestSplitJoin(t *testing.T) {
	c := Curve{{1, 2}, {3, 4}, {5, 6}}
	xs, ys := c.Split()
	if xs[2] != 5 || ys[0] != 2 {
		t.Fatalf("Split() = %v, %v", xs, ys)
	}

	back := Join(xs, ys[:2])
	if len(back) != 2 || back[1] != (Point{3, 4}) {
		t.Fatalf("Join() = %v", back)
	}
}

func TestBoundsAndLength(t *testing.T) {
	c := Curve{{0, 0}, {3, 4}, {3, -1}}
	lo, hi := c.Bounds()
	if lo != (Point{0, -1}) || hi != (Point{3, 4}) {
		t.Fatalf("Bounds() = %v, %v", lo, hi)
	}
	if l := c.Length(); l != 10 {
		t.Fatalf("Length() = %v, want 10", l)
	}

	lo, hi = Curve{}.Bounds()
	if lo != (Point{}) || hi != (Point{}) {
		t.Fatalf("empty Bounds() = %v, %v", lo, hi)
	}
}

func TestCloneIndependent(t *testing.T) {
	c := Curve{{1, 1}}
	d := c.Clone()
	d[0].X = 7
	if c[0].X != 1 {
		t.Fatal("Clone shares storage")
	}
	if Curve(nil).Clone() != nil {
		t.Fatal("Clone(nil) should stay nil")
	}
}

func TestCaptureInterval(t *testing.T) {
	c := NewCapture(0)
	if c.Interval() != DefaultCaptureInterval {
		t.Fatalf("Interval() = %v, want %v", c.Interval(), DefaultCaptureInterval)
	}

	start := time.Unix(100, 0)
	if c.Move(start, Point{1, 1}) {
		t.Fatal("Move recorded while released")
	}

	c.Press()
	steps := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{10 * time.Millisecond, false},
		{25 * time.Millisecond, true},
		{40 * time.Millisecond, false},
		{50 * time.Millisecond, true},
	}
	for i, s := range steps {
		if got := c.Move(start.Add(s.offset), Point{float64(i), 0}); got != s.want {
			t.Fatalf("Move at %v = %v, want %v", s.offset, got, s.want)
		}
	}
	c.Release()

	if c.Move(start.Add(time.Second), Point{9, 9}) {
		t.Fatal("Move recorded after release")
	}
	got := c.Curve()
	want := Curve{{0, 0}, {2, 0}, {4, 0}}
	if len(got) != len(want) {
		t.Fatalf("Curve() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Curve()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCapturePressClears(t *testing.T) {
	c := NewCapture(time.Millisecond)
	c.Press()
	c.Move(time.Unix(0, 0), Point{1, 1})
	c.Release()

	snapshot := c.Curve()
	c.Press()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after Press, want 0", c.Len())
	}
	if !c.Pressed() {
		t.Fatal("Pressed() = false after Press")
	}
	if len(snapshot) != 1 {
		t.Fatalf("earlier snapshot mutated: %v", snapshot)
	}
	// First sample of a new stroke is never throttled.
	if !c.Move(time.Unix(0, 0), Point{2, 2}) {
		t.Fatal("first Move of new stroke not recorded")
	}
}

func TestReadCSV(t *testing.T) {
	in := "x,y\n1,2\n 3.5, -4\n# comment\n5,6,extra\n"
	c, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	want := Curve{{1, 2}, {3.5, -4}, {5, 6}}
	if len(c) != len(want) {
		t.Fatalf("ReadCSV() = %v, want %v", c, want)
	}
	for i := range want {
		if c[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, in := range []string{"1,2\nfoo,3\n", "1,2\n3,bar\n", "1,2\n3\n"} {
		if _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Fatalf("ReadCSV(%q) expected error", in)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	c := Curve{{0.1, 0.2}, {-3, 1e-9}, {math.Pi, 2}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, c); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "x,y\n") {
		t.Fatalf("missing header: %q", buf.String())
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	for i := range c {
		if back[i] != c[i] {
			t.Fatalf("point %d = %v, want %v", i, back[i], c[i])
		}
	}
}

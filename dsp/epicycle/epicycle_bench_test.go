package epicycle

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-epicycle/dsp/curve"
)

func BenchmarkFromCurve(b *testing.B) {
	c := circleCurve(256)
	for _, harmonics := range []int{10, 50} {
		b.Run(fmt.Sprintf("harmonics=%d", harmonics), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = FromCurve(c, harmonics)
			}
		})
	}
}

func BenchmarkChainJoints(b *testing.B) {
	d, err := FromCurve(circleCurve(256), 50)
	if err != nil {
		b.Fatalf("FromCurve() error = %v", err)
	}
	joints := make([]curve.Point, 0, len(d.X)+1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		joints = d.X.Joints(joints, curve.Point{}, float64(i%100)/100)
	}
}

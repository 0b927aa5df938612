package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mathext"
)

func TestApproxLogGamma(t *testing.T) {
	assert.Equal(t, 0.0, ApproxLogGamma(1.0))
	assert.Equal(t, float32(0), ApproxLogGamma(float32(1)))

	for _, x := range []float64{5, 10, 50, 200} {
		want, _ := math.Lgamma(x)
		assert.InDelta(t, want, ApproxLogGamma(x), 1e-4, "x=%v", x)
	}
}

func TestLogBetaExactSeries(t *testing.T) {
	assert.InDelta(t, -0.6931472, LogBeta(1.0, 2.0), 1e-7)
	assert.Equal(t, LogBeta(1.0, 2.0), LogBeta(2.0, 1.0))

	// The series is exact for an integer smaller argument.
	for _, tc := range [][2]float64{{1, 2}, {2, 3}, {3, 4}, {4, 4.5}, {1, 4.9}, {2, 2}} {
		assert.InDelta(t, mathext.Lbeta(tc[0], tc[1]), LogBeta(tc[0], tc[1]), 1e-12, "%v", tc)
	}

	// A fractional smaller argument is truncated: min 2.7 runs one term.
	assert.InDelta(t, -math.Log(3)-math.Log(4), LogBeta(2.7, 3.0), 1e-12)
}

func TestLogBetaAsymptotic(t *testing.T) {
	got := LogBeta(10.0, 10.0)
	assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
	assert.Equal(t, 2*LogSingleBeta(10.0)-LogSingleBeta(20.0), got)
	assert.InDelta(t, 0.47954316726759316, got, 1e-12)

	// Only the larger argument decides the branch.
	assert.Equal(t, LogSingleBeta(3.0)+LogSingleBeta(7.0)-LogSingleBeta(10.0), LogBeta(3.0, 7.0))
	assert.Equal(t, LogBeta(3.0, 7.0), LogBeta(7.0, 3.0))
}

func TestLogSingleBeta(t *testing.T) {
	x := 2.5
	want := math.Ln2*(-2*x+0.5) + 0.5*math.Log(2*math.Pi/x) + 0.125/x
	assert.InDelta(t, want, LogSingleBeta(x), 1e-15)
}

func TestLLDirichlet(t *testing.T) {
	tests := []struct {
		name         string
		data1, data2 []float64
		expected     float64
	}{
		{"DisjointSupport", []float64{1, 0, 2}, []float64{1, 3, 0}, 1.2100203308531243},
		{"Identical", []float64{10, 20, 30}, []float64{10, 20, 30}, 0.1531408771063052},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LLDirichlet(tt.data1, tt.data2), 1e-9)
			assert.Equal(t, LLDirichlet(tt.data1, tt.data2), LLDirichlet(tt.data2, tt.data1))
		})
	}
}

func TestLLDirichletThreshold(t *testing.T) {
	// A product of 0.8 stays below the 0.9 threshold, so the middle
	// coordinate only feeds data2's self-denominator. The last coordinate
	// only feeds data1's.
	got := LLDirichlet([]float64{2, 0.4, 1}, []float64{1, 2, 0})

	n1, n2 := 3.4, 3.0
	logB := LogBeta(2.0, 1.0)
	self1 := LogSingleBeta(2.0) + LogSingleBeta(1.0)
	self2 := LogSingleBeta(1.0) + LogSingleBeta(2.0)
	want := math.Sqrt(1/n2*(logB-LogBeta(n1, n2)-(self2-LogSingleBeta(n2))) +
		1/n1*(logB-LogBeta(n2, n1)-(self1-LogSingleBeta(n1))))
	assert.InDelta(t, math.Sqrt(0.6900978545362425), want, 1e-9)
	assert.InDelta(t, want, got, 1e-12)
}

func TestLLDirichletFloat32(t *testing.T) {
	got := LLDirichlet([]float32{1, 0, 2}, []float32{1, 3, 0})
	assert.InDelta(t, 1.2100203308531243, float64(got), 1e-5)
}

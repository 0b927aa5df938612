package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-3.5))
	assert.Equal(t, 1.0, Sign(0.0))
	assert.Equal(t, 1.0, Sign(4.5))
	assert.Equal(t, float32(-1), Sign(float32(-2.7)))
	assert.Equal(t, float32(1), Sign(float32(0)))
	assert.Equal(t, 1.0, Sign(math.Inf(1)))
	assert.Equal(t, -1.0, Sign(math.Inf(-1)))
}

func TestConst(t *testing.T) {
	assert.Equal(t, float32(0.5), Const[float32](0.5))
	assert.Equal(t, 1e-6, Const[float64](1e-6))
	assert.Equal(t, float32(math.Pi), Pi[float32]())
	assert.Equal(t, math.Pi, Pi[float64]())
}

func TestNaNInf(t *testing.T) {
	assert.True(t, IsNaN(NaN[float32]()))
	assert.True(t, IsNaN(NaN[float64]()))
	assert.False(t, IsNaN(1.0))
	assert.True(t, IsInf(Inf[float32]()))
	assert.False(t, IsInf(float32(3)))
}

func TestElementary(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt(float32(9)))
	assert.Equal(t, 8.0, Pow(2.0, 3.0))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, 0.0, Log(1.0))
	assert.InDelta(t, 1e-10, Log1p(1e-10), 1e-20)
	assert.InDelta(t, math.E, Exp(1.0), 1e-15)
	assert.InDelta(t, 1.0, float64(Sin(float32(math.Pi/2))), 1e-7)
	assert.InDelta(t, -1.0, Cos(math.Pi), 1e-15)
	assert.InDelta(t, math.Pi/2, Asin(1.0), 1e-15)
	assert.Equal(t, 0.0, Acosh(1.0))
	assert.Equal(t, 2.0, Max(1.0, 2.0))
	assert.Equal(t, float32(1), Min(float32(1), 2))
}

func TestOnes(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, Ones[float64](3))
	assert.Equal(t, []float32{}, Ones[float32](0))
}

func TestIdentity(t *testing.T) {
	id := Identity(3)
	r, c := id.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.Equal(id, mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})))
	assert.Nil(t, Identity(0))
}

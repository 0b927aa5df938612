// Package math provides the scalar abstraction shared by every distance
// function: a Float constraint over single and double precision plus the
// elementary functions the metrics need, written once for both widths.
package math

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Float is the set of scalar types a metric can be instantiated with.
type Float interface {
	~float32 | ~float64
}

// Const converts a small literal (0.5, 2, 1e-6, ...) into T.
func Const[T Float](v float64) T {
	return T(v)
}

// Pi returns π rounded to T.
func Pi[T Float]() T {
	return T(math.Pi)
}

// Inf returns positive infinity as T.
func Inf[T Float]() T {
	return T(math.Inf(1))
}

// NaN returns a quiet NaN as T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// Sqrt computes the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Pow computes x^y.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Exp computes e^x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log computes the natural logarithm of x.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

// Log1p computes ln(1+x), accurate for small x.
func Log1p[T Float](x T) T {
	return T(math.Log1p(float64(x)))
}

// Sin computes the sine of x.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos computes the cosine of x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Asin computes the arcsine of x.
func Asin[T Float](x T) T {
	return T(math.Asin(float64(x)))
}

// Acosh computes the inverse hyperbolic cosine of x.
func Acosh[T Float](x T) T {
	return T(math.Acosh(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 for negative x and +1 otherwise, including at zero.
func Sign[T Float](x T) T {
	if x < 0 {
		return -1
	}
	return 1
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Ones returns a length-n vector filled with 1.
func Ones[T Float](n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Identity returns the n×n identity matrix.
func Identity(n int) mat.Matrix {
	if n == 0 {
		// gonum rejects zero-sized matrices.
		return nil
	}
	return mat.NewDiagDense(n, Ones[float64](n))
}

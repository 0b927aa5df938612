package distance

import fmath "github.com/nozzle/distances/internal/math"

// hyperboloidEps is added to 1 when rounding pushes the hyperboloid bilinear
// form below the domain of acosh.
const hyperboloidEps = 1e-8

// Poincare computes the geodesic distance between two points of the open
// unit ball in the Poincaré model. Two zero vectors are at distance 0.
// D(u, v) = acosh(1 + 2*||u-v||^2 / ((1-||u||^2) * (1-||v||^2)))
func Poincare[T Float](u, v []T) T {
	mustMatch(u, v)
	if allZero(u) && allZero(v) {
		return 0
	}
	z, _, _, _ := poincareArg(u, v)
	return fmath.Acosh(z)
}

// PoincareGrad computes Poincaré distance and its gradient with respect to u.
func PoincareGrad[T Float](u, v []T) (T, []T) {
	mustMatch(u, v)
	grad := make([]T, len(u))
	if allZero(u) && allZero(v) {
		return 0, grad
	}

	z, sqDist, alpha, beta := poincareArg(u, v)
	dist := fmath.Acosh(z)
	if z <= 1 {
		return dist, grad
	}

	// dz/du_i = 4/(alpha*beta) * ((u_i - v_i) + ||u-v||^2 * u_i / alpha)
	scale := 4 / (alpha * beta * fmath.Sqrt((z-1)*(z+1)))
	for i := range u {
		grad[i] = scale * ((u[i] - v[i]) + sqDist*u[i]/alpha)
	}
	return dist, grad
}

func poincareArg[T Float](u, v []T) (z, sqDist, alpha, beta T) {
	var sqUNorm, sqVNorm T
	for i := range u {
		sqUNorm += u[i] * u[i]
		sqVNorm += v[i] * v[i]
		d := u[i] - v[i]
		sqDist += d * d
	}
	alpha = 1 - sqUNorm
	beta = 1 - sqVNorm
	z = 1 + 2*sqDist/(alpha*beta)
	return z, sqDist, alpha, beta
}

func allZero[T Float](v []T) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Hyperboloid computes the geodesic distance between two points of the
// hyperboloid model, given by their spatial coordinates.
// D(x, y) = acosh(s*t - x.y), s = sqrt(1+||x||^2), t = sqrt(1+||y||^2)
//
// When rounding drives the bilinear form to 1 or below it is clamped to
// 1+1e-8.
func Hyperboloid[T Float](x, y []T) T {
	mustMatch(x, y)
	b, _, _, _ := hyperboloidForm(x, y)
	return fmath.Acosh(b)
}

// HyperboloidGrad computes hyperboloid distance and its gradient. The
// gradient is zero when the bilinear form had to be clamped.
func HyperboloidGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	b, s, t, clamped := hyperboloidForm(x, y)
	grad := make([]T, len(x))
	if clamped {
		return fmath.Acosh(b), grad
	}

	coeff := 1 / (fmath.Sqrt(b-1) * fmath.Sqrt(b+1))
	for i := range x {
		grad[i] = coeff * (x[i]*t/s - y[i])
	}
	return fmath.Acosh(b), grad
}

func hyperboloidForm[T Float](x, y []T) (b, s, t T, clamped bool) {
	var normX, normY, dot T
	for i := range x {
		normX += x[i] * x[i]
		normY += y[i] * y[i]
		dot += x[i] * y[i]
	}
	s = fmath.Sqrt(1 + normX)
	t = fmath.Sqrt(1 + normY)
	b = s*t - dot
	if b <= 1 {
		return 1 + fmath.Const[T](hyperboloidEps), s, t, true
	}
	return b, s, t, false
}

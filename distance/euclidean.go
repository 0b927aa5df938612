package distance

import fmath "github.com/nozzle/distances/internal/math"

// Euclidean computes the standard Euclidean (L2) distance.
// D(x, y) = sqrt(sum((x_i - y_i)^2))
func Euclidean[T Float](x, y []T) T {
	mustMatch(x, y)
	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return fmath.Sqrt(sum)
}

// EuclideanGrad computes Euclidean distance and its gradient.
func EuclideanGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	dist := fmath.Sqrt(sum)
	grad := make([]T, len(x))
	if dist > 0 {
		for i := range x {
			grad[i] = (x[i] - y[i]) / dist
		}
	}
	return dist, grad
}

// SquaredEuclidean computes the squared Euclidean distance (faster, no sqrt).
// D(x, y) = sum((x_i - y_i)^2)
func SquaredEuclidean[T Float](x, y []T) T {
	mustMatch(x, y)
	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

// Manhattan computes the Manhattan (L1/taxicab) distance.
// D(x, y) = sum(|x_i - y_i|)
func Manhattan[T Float](x, y []T) T {
	mustMatch(x, y)
	var sum T
	for i := range x {
		sum += fmath.Abs(x[i] - y[i])
	}
	return sum
}

// ManhattanGrad computes Manhattan distance and its gradient.
// At x_i == y_i the sub-gradient +1 is used.
func ManhattanGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var sum T
	grad := make([]T, len(x))
	for i := range x {
		d := x[i] - y[i]
		sum += fmath.Abs(d)
		grad[i] = fmath.Sign(d)
	}
	return sum, grad
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
// D(x, y) = max(|x_i - y_i|)
func Chebyshev[T Float](x, y []T) T {
	mustMatch(x, y)
	var maxVal T
	for i := range x {
		d := fmath.Abs(x[i] - y[i])
		if d > maxVal {
			maxVal = d
		}
	}
	return maxVal
}

// ChebyshevGrad computes Chebyshev distance and its gradient. The gradient
// is non-zero only at the first coordinate reaching the maximum.
func ChebyshevGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var maxVal T
	maxIdx := 0
	for i := range x {
		d := fmath.Abs(x[i] - y[i])
		if d > maxVal {
			maxVal = d
			maxIdx = i
		}
	}
	grad := make([]T, len(x))
	if maxVal != 0 {
		grad[maxIdx] = fmath.Sign(x[maxIdx] - y[maxIdx])
	}
	return maxVal, grad
}

// Minkowski computes the Minkowski distance with given p.
// D(x, y) = (sum(|x_i - y_i|^p))^(1/p)
func Minkowski[T Float](x, y []T, p T) T {
	mustMatch(x, y)
	var sum T
	for i := range x {
		sum += fmath.Pow(fmath.Abs(x[i]-y[i]), p)
	}
	return fmath.Pow(sum, 1/p)
}

// MinkowskiGrad computes Minkowski distance and its gradient.
// d/dx_i = sign(x_i - y_i) * |x_i - y_i|^(p-1) / D^(p-1)
func MinkowskiGrad[T Float](x, y []T, p T) (T, []T) {
	return WeightedMinkowskiGrad(x, y, fmath.Ones[T](len(x)), p)
}

// WeightedMinkowski computes weighted Minkowski distance. A nil w means
// unit weights, which reduces to Minkowski.
// D(x, y) = (sum(w_i * |x_i - y_i|^p))^(1/p)
func WeightedMinkowski[T Float](x, y, w []T, p T) T {
	mustMatch(x, y)
	if w == nil {
		w = fmath.Ones[T](len(x))
	}
	mustLen(w, len(x))

	var sum T
	for i := range x {
		sum += w[i] * fmath.Pow(fmath.Abs(x[i]-y[i]), p)
	}
	return fmath.Pow(sum, 1/p)
}

// WeightedMinkowskiGrad computes weighted Minkowski distance and its gradient.
func WeightedMinkowskiGrad[T Float](x, y, w []T, p T) (T, []T) {
	mustMatch(x, y)
	if w == nil {
		w = fmath.Ones[T](len(x))
	}
	mustLen(w, len(x))

	var sum T
	for i := range x {
		sum += w[i] * fmath.Pow(fmath.Abs(x[i]-y[i]), p)
	}
	dist := fmath.Pow(sum, 1/p)
	grad := make([]T, len(x))
	if dist == 0 {
		return dist, grad
	}

	scale := fmath.Pow(dist, p-1)
	for i := range x {
		d := x[i] - y[i]
		grad[i] = w[i] * fmath.Pow(fmath.Abs(d), p-1) * fmath.Sign(d) / scale
	}
	return dist, grad
}

// StandardisedEuclidean computes Euclidean distance standardised by a
// per-coordinate variance. A nil sigma means unit variance, which reduces to
// Euclidean. A zero sigma_i makes the distance +Inf whenever x_i != y_i.
// D(x, y) = sqrt(sum((x_i - y_i)^2 / sigma_i))
func StandardisedEuclidean[T Float](x, y, sigma []T) T {
	mustMatch(x, y)
	if sigma == nil {
		sigma = fmath.Ones[T](len(x))
	}
	mustLen(sigma, len(x))

	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += (d * d) / sigma[i]
	}
	return fmath.Sqrt(sum)
}

// StandardisedEuclideanGrad computes standardised Euclidean and gradient.
func StandardisedEuclideanGrad[T Float](x, y, sigma []T) (T, []T) {
	mustMatch(x, y)
	if sigma == nil {
		sigma = fmath.Ones[T](len(x))
	}
	mustLen(sigma, len(x))

	var sum T
	for i := range x {
		d := x[i] - y[i]
		sum += (d * d) / sigma[i]
	}
	dist := fmath.Sqrt(sum)
	grad := make([]T, len(x))
	if dist > 0 {
		for i := range x {
			grad[i] = (x[i] - y[i]) / (dist * sigma[i])
		}
	}
	return dist, grad
}

package distance

import fmath "github.com/nozzle/distances/internal/math"

// Cosine computes the cosine distance.
// D(x, y) = 1 - (x . y) / (||x|| * ||y||)
//
// Two zero vectors are at distance 0; a zero vector and a non-zero vector are
// at distance 1.
func Cosine[T Float](x, y []T) T {
	mustMatch(x, y)
	var dotProduct, normX, normY T
	for i := range x {
		dotProduct += x[i] * y[i]
		normX += x[i] * x[i]
		normY += y[i] * y[i]
	}
	switch {
	case normX == 0 && normY == 0:
		return 0
	case normX == 0 || normY == 0:
		return 1
	}
	return 1 - dotProduct/(fmath.Sqrt(normX)*fmath.Sqrt(normY))
}

// CosineGrad computes cosine distance and its gradient.
func CosineGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var dotProduct, normX, normY T
	for i := range x {
		dotProduct += x[i] * y[i]
		normX += x[i] * x[i]
		normY += y[i] * y[i]
	}

	grad := make([]T, len(x))
	switch {
	case normX == 0 && normY == 0:
		return 0, grad
	case normX == 0 || normY == 0:
		return 1, grad
	}

	magX := fmath.Sqrt(normX)
	magY := fmath.Sqrt(normY)

	// d/dx_i (1 - cos) = (x_i*(x.y) - y_i*|x|^2) / (|x|^3 * |y|)
	denom := normX * magX * magY
	for i := range x {
		grad[i] = (x[i]*dotProduct - y[i]*normX) / denom
	}
	return 1 - dotProduct/(magX*magY), grad
}

// Correlation computes the correlation distance.
// D(x, y) = 1 - correlation(x, y)
// correlation = (x-mean(x)).(y-mean(y)) / (||x-mean(x)|| * ||y-mean(y)||)
//
// Two constant vectors are at distance 0. Uncorrelated vectors, including a
// constant vector paired with a non-constant one, are at distance 1.
func Correlation[T Float](x, y []T) T {
	mustMatch(x, y)
	meanX, meanY := means(x, y)

	var dotProduct, normX, normY T
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		dotProduct += dx * dy
		normX += dx * dx
		normY += dy * dy
	}

	switch {
	case normX == 0 && normY == 0:
		return 0
	case dotProduct == 0:
		return 1
	}
	return 1 - dotProduct/(fmath.Sqrt(normX)*fmath.Sqrt(normY))
}

// CorrelationGrad computes correlation distance and its gradient.
// The centred vectors sum to zero, so the cosine gradient of the centred
// vectors is already the gradient with respect to x.
func CorrelationGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	meanX, meanY := means(x, y)

	var dotProduct, normX, normY T
	dx := make([]T, len(x))
	dy := make([]T, len(x))
	for i := range x {
		dx[i] = x[i] - meanX
		dy[i] = y[i] - meanY
		dotProduct += dx[i] * dy[i]
		normX += dx[i] * dx[i]
		normY += dy[i] * dy[i]
	}

	grad := make([]T, len(x))
	switch {
	case normX == 0 && normY == 0:
		return 0, grad
	case dotProduct == 0:
		return 1, grad
	}

	magX := fmath.Sqrt(normX)
	magY := fmath.Sqrt(normY)
	denom := normX * magX * magY
	for i := range x {
		grad[i] = (dx[i]*dotProduct - dy[i]*normX) / denom
	}
	return 1 - dotProduct/(magX*magY), grad
}

func means[T Float](x, y []T) (meanX, meanY T) {
	if len(x) == 0 {
		return 0, 0
	}
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	n := T(len(x))
	return meanX / n, meanY / n
}

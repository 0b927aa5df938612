package distance

import (
	fmath "github.com/nozzle/distances/internal/math"
	"gonum.org/v1/gonum/mat"
)

// Canberra computes the Canberra distance. Coordinates where both values are
// zero contribute nothing.
// D(x, y) = sum(|x_i - y_i| / (|x_i| + |y_i|))
func Canberra[T Float](x, y []T) T {
	mustMatch(x, y)
	var sum T
	for i := range x {
		denom := fmath.Abs(x[i]) + fmath.Abs(y[i])
		if denom > 0 {
			sum += fmath.Abs(x[i]-y[i]) / denom
		}
	}
	return sum
}

// CanberraGrad computes Canberra distance and its gradient.
func CanberraGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var sum T
	grad := make([]T, len(x))
	for i := range x {
		num := fmath.Abs(x[i] - y[i])
		denom := fmath.Abs(x[i]) + fmath.Abs(y[i])
		if denom > 0 {
			sum += num / denom
			// d/dx_i = sign(x_i - y_i)/denom - |x_i - y_i| * sign(x_i) / denom^2
			grad[i] = fmath.Sign(x[i]-y[i])/denom - num*fmath.Sign(x[i])/(denom*denom)
		}
	}
	return sum, grad
}

// BrayCurtis computes the Bray-Curtis distance. A zero denominator yields 0.
// D(x, y) = sum(|x_i - y_i|) / sum(|x_i + y_i|)
func BrayCurtis[T Float](x, y []T) T {
	mustMatch(x, y)
	var numerator, denominator T
	for i := range x {
		numerator += fmath.Abs(x[i] - y[i])
		denominator += fmath.Abs(x[i] + y[i])
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// BrayCurtisGrad computes Bray-Curtis distance and its gradient.
func BrayCurtisGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var numerator, denominator T
	for i := range x {
		numerator += fmath.Abs(x[i] - y[i])
		denominator += fmath.Abs(x[i] + y[i])
	}
	grad := make([]T, len(x))
	if denominator == 0 {
		return 0, grad
	}
	dist := numerator / denominator
	// d/dx_i = (sign(x_i - y_i) - dist * sign(x_i + y_i)) / denom
	for i := range x {
		grad[i] = (fmath.Sign(x[i]-y[i]) - dist*fmath.Sign(x[i]+y[i])) / denominator
	}
	return dist, grad
}

// Haversine computes the great-circle distance on the unit sphere between two
// [lat, lon] points given in radians. Any other dimensionality panics.
// D(x, y) = 2 * arcsin(sqrt(sin^2((lat1-lat2)/2) + cos(lat1)*cos(lat2)*sin^2((lon1-lon2)/2)))
func Haversine[T Float](x, y []T) T {
	mustHaversine(x, y)
	sinLat := fmath.Sin((x[0] - y[0]) / 2)
	sinLon := fmath.Sin((x[1] - y[1]) / 2)
	a := clampUnit(sinLat*sinLat + fmath.Cos(x[0])*fmath.Cos(y[0])*sinLon*sinLon)
	return 2 * fmath.Asin(fmath.Sqrt(a))
}

// HaversineGrad computes Haversine distance and its gradient. The gradient is
// zero at coincident and antipodal points, where it is undefined.
func HaversineGrad[T Float](x, y []T) (T, []T) {
	mustHaversine(x, y)

	sinLatHalf := fmath.Sin((x[0] - y[0]) / 2)
	cosLatHalf := fmath.Cos((x[0] - y[0]) / 2)
	sinLonHalf := fmath.Sin((x[1] - y[1]) / 2)
	cosLonHalf := fmath.Cos((x[1] - y[1]) / 2)

	cosLat1 := fmath.Cos(x[0])
	cosLat2 := fmath.Cos(y[0])
	sinLat1 := fmath.Sin(x[0])

	a := clampUnit(sinLatHalf*sinLatHalf + cosLat1*cosLat2*sinLonHalf*sinLonHalf)
	dist := 2 * fmath.Asin(fmath.Sqrt(a))

	grad := make([]T, 2)
	if a > 0 && a < 1 {
		// d(dist)/da = 1 / sqrt(a * (1 - a))
		factor := 1 / fmath.Sqrt(a*(1-a))
		grad[0] = factor * (sinLatHalf*cosLatHalf - sinLat1*cosLat2*sinLonHalf*sinLonHalf)
		grad[1] = factor * cosLat1 * cosLat2 * sinLonHalf * cosLonHalf
	}
	return dist, grad
}

func clampUnit[T Float](a T) T {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Hellinger computes the Hellinger distance between two non-negative vectors
// interpreted as unnormalised distributions. Two all-zero vectors are at
// distance 0; exactly one all-zero vector gives 1.
// D(x, y) = 1 - sum(sqrt(x_i * y_i)) / sqrt(sum(x) * sum(y))
func Hellinger[T Float](x, y []T) T {
	mustMatch(x, y)
	var result, l1NormX, l1NormY T
	for i := range x {
		result += fmath.Sqrt(x[i] * y[i])
		l1NormX += x[i]
		l1NormY += y[i]
	}
	switch {
	case l1NormX == 0 && l1NormY == 0:
		return 0
	case l1NormX == 0 || l1NormY == 0:
		return 1
	}
	return 1 - result/fmath.Sqrt(l1NormX*l1NormY)
}

// HellingerGrad computes Hellinger distance and its gradient. Coordinates
// with x_i*y_i == 0 take no contribution from the sqrt(x_i*y_i) term.
func HellingerGrad[T Float](x, y []T) (T, []T) {
	mustMatch(x, y)
	var result, l1NormX, l1NormY T
	for i := range x {
		result += fmath.Sqrt(x[i] * y[i])
		l1NormX += x[i]
		l1NormY += y[i]
	}

	grad := make([]T, len(x))
	switch {
	case l1NormX == 0 && l1NormY == 0:
		return 0, grad
	case l1NormX == 0 || l1NormY == 0:
		return 1, grad
	}

	denom := fmath.Sqrt(l1NormX * l1NormY)
	normTerm := result * l1NormY / (2 * denom * denom * denom)
	for i := range x {
		grad[i] = normTerm
		if x[i]*y[i] > 0 {
			grad[i] -= fmath.Sqrt(y[i]/x[i]) / (2 * denom)
		}
	}
	return 1 - result/denom, grad
}

// Mahalanobis computes the Mahalanobis distance.
// D(x, y) = sqrt((x-y)^T * V^{-1} * (x-y))
// A nil vinv means the identity matrix, which reduces to Euclidean. vinv
// must be len(x)×len(x). A negative quadratic form (vinv not positive
// semi-definite) is clamped to 0.
func Mahalanobis[T Float](x, y []T, vinv mat.Matrix) T {
	dist, _ := mahalanobis(x, y, vinv, false)
	return dist
}

// MahalanobisGrad computes Mahalanobis distance and its gradient.
// d/dx_i = ((V + V^T)(x - y))_i / (2 * D)
func MahalanobisGrad[T Float](x, y []T, vinv mat.Matrix) (T, []T) {
	return mahalanobis(x, y, vinv, true)
}

func mahalanobis[T Float](x, y []T, vinv mat.Matrix, withGrad bool) (T, []T) {
	mustMatch(x, y)
	n := len(x)
	var grad []T
	if withGrad {
		grad = make([]T, n)
	}
	if n == 0 {
		return 0, grad
	}
	if vinv == nil {
		vinv = fmath.Identity(n)
	}
	if r, c := vinv.Dims(); r != n || c != n {
		actual := r
		if r == n {
			actual = c
		}
		panic(&ErrDimensionMismatch{Expected: n, Actual: actual})
	}

	diff := make([]T, n)
	for i := range x {
		diff[i] = x[i] - y[i]
	}

	var sum T
	for i := 0; i < n; i++ {
		var inner T
		for j := 0; j < n; j++ {
			inner += T(vinv.At(i, j)) * diff[j]
		}
		sum += diff[i] * inner
	}
	if sum < 0 {
		sum = 0
	}
	dist := fmath.Sqrt(sum)
	if !withGrad || dist == 0 {
		return dist, grad
	}

	for i := 0; i < n; i++ {
		var row T
		for j := 0; j < n; j++ {
			row += (T(vinv.At(i, j)) + T(vinv.At(j, i))) * diff[j]
		}
		grad[i] = row / (2 * dist)
	}
	return dist, grad
}

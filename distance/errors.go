package distance

import (
	"errors"
	"fmt"
)

// ErrHaversineDimension is wrapped by the panic raised when Haversine or
// HaversineGrad receives anything other than [lat, lon] pairs.
var ErrHaversineDimension = errors.New("distance: haversine is only defined for 2-dimensional data")

// ErrDimensionMismatch reports two operands whose lengths disagree.
//
// The metrics treat it as a programmer error: they panic with a
// *ErrDimensionMismatch rather than returning it. Recover and use errors.As
// to inspect it.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: expected %d, got %d", e.cause, e.Expected, e.Actual)
	}
	return fmt.Sprintf("distance: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// mustMatch panics when a and b have different lengths.
func mustMatch[T Float](a, b []T) {
	if len(a) != len(b) {
		panic(&ErrDimensionMismatch{Expected: len(a), Actual: len(b)})
	}
}

// mustLen panics unless v has exactly n elements.
func mustLen[T Float](v []T, n int) {
	if len(v) != n {
		panic(&ErrDimensionMismatch{Expected: n, Actual: len(v)})
	}
}

func mustHaversine[T Float](x, y []T) {
	if len(x) != 2 {
		panic(&ErrDimensionMismatch{Expected: 2, Actual: len(x), cause: ErrHaversineDimension})
	}
	if len(y) != 2 {
		panic(&ErrDimensionMismatch{Expected: 2, Actual: len(y), cause: ErrHaversineDimension})
	}
}

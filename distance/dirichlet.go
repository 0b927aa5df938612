package distance

import fmath "github.com/nozzle/distances/internal/math"

const (
	// logBetaExactLimit is the largest argument below which LogBeta sums the
	// exact series instead of using the asymptotic form.
	logBetaExactLimit = 5

	// countThreshold separates present counts from absent ones in
	// LLDirichlet; integer counts pass it exactly when they are >= 1.
	countThreshold = 0.9
)

// ApproxLogGamma approximates ln Γ(x) for x > 0 with Stirling's series.
// It returns exactly 0 at x == 1.
func ApproxLogGamma[T Float](x T) T {
	if x == 1 {
		return 0
	}
	return x*fmath.Log(x) - x +
		0.5*fmath.Log(2*fmath.Pi[T]()/x) +
		1/(x*12)
}

// LogSingleBeta is the large-x approximation of ln B(x, x).
func LogSingleBeta[T Float](x T) T {
	return fmath.Log(T(2))*(-2*x+0.5) +
		0.5*fmath.Log(2*fmath.Pi[T]()/x) +
		0.125/x
}

// LogBeta approximates ln B(x, y).
//
// With b = max(x, y) below 5 it evaluates the finite series
// -ln b + sum_{i=1}^{⌊a⌋-1} (ln i - ln(b+i)) with a = min(x, y), which is
// exact for integer a. Otherwise it falls back to LogSingleBeta terms.
func LogBeta[T Float](x, y T) T {
	a := fmath.Min(x, y)
	b := fmath.Max(x, y)

	if b < logBetaExactLimit {
		value := -fmath.Log(b)
		for i := 1; i < int(a); i++ {
			ii := T(i)
			value += fmath.Log(ii) - fmath.Log(b+ii)
		}
		return value
	}
	return LogSingleBeta(x) + LogSingleBeta(y) - LogSingleBeta(x+y)
}

// LLDirichlet scores how unlikely it is that two count vectors were drawn
// from the same Dirichlet-multinomial distribution.
//
// Coordinates where both counts are present add ln B(d1_i, d2_i) to the
// pairwise total; every present count adds its LogSingleBeta to that
// vector's self-normalisation term.
func LLDirichlet[T Float](data1, data2 []T) T {
	mustMatch(data1, data2)

	var n1, n2 T
	for i := range data1 {
		n1 += data1[i]
		n2 += data2[i]
	}

	var logB, selfDenom1, selfDenom2 T
	for i := range data1 {
		if data1[i]*data2[i] > countThreshold {
			logB += LogBeta(data1[i], data2[i])
			selfDenom1 += LogSingleBeta(data1[i])
			selfDenom2 += LogSingleBeta(data2[i])
			continue
		}
		if data1[i] > countThreshold {
			selfDenom1 += LogSingleBeta(data1[i])
		}
		if data2[i] > countThreshold {
			selfDenom2 += LogSingleBeta(data2[i])
		}
	}

	return fmath.Sqrt(
		1/n2*(logB-LogBeta(n1, n2)-(selfDenom2-LogSingleBeta(n2))) +
			1/n1*(logB-LogBeta(n2, n1)-(selfDenom1-LogSingleBeta(n1))),
	)
}

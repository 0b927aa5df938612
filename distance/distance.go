// Package distance provides pairwise distance metrics and their gradients.
//
// Every metric is generic over Float and works identically for float32 and
// float64 inputs. Gradient variants return the distance together with its
// partial derivatives with respect to the first vector.
//
// Mismatched vector lengths are programmer errors and panic with
// *ErrDimensionMismatch. Mathematically degenerate inputs (zero norms, zero
// denominators) are not errors: each metric documents the value it returns.
package distance

import (
	"sort"
	"strings"

	fmath "github.com/nozzle/distances/internal/math"
)

// Float is the scalar constraint every metric is generic over.
type Float = fmath.Float

// Func is a distance function between two vectors.
type Func[T Float] func(x, y []T) T

// GradFunc computes distance and gradient with respect to x.
type GradFunc[T Float] func(x, y []T) (dist T, grad []T)

// Metric represents a named distance metric.
type Metric[T Float] struct {
	Name    string
	Func    Func[T]
	Grad    GradFunc[T] // nil for non-differentiable metrics
	Angular bool        // True for angular/cosine-based metrics
}

// aliases maps alternative spellings to canonical metric names.
var aliases = map[string]string{
	"l2":                     "euclidean",
	"l1":                     "manhattan",
	"taxicab":                "manhattan",
	"linfinity":              "chebyshev",
	"linf":                   "chebyshev",
	"seuclidean":             "standardised_euclidean",
	"standardized_euclidean": "standardised_euclidean",
	"wminkowski":             "weighted_minkowski",
	"russell_rao":            "russellrao",
	"rogers_tanimoto":        "rogerstanimoto",
	"sokal_michener":         "sokalmichener",
	"sokal_sneath":           "sokalsneath",
	"bray_curtis":            "braycurtis",
}

// AngularMetrics are metrics where angular RP-trees work better.
var AngularMetrics = map[string]bool{
	"cosine":      true,
	"correlation": true,
}

var metricNames = []string{
	// Minkowski family
	"euclidean", "sqeuclidean", "manhattan", "chebyshev", "minkowski",
	"standardised_euclidean", "weighted_minkowski", "mahalanobis",

	// Angular metrics
	"cosine", "correlation",

	// Other metrics
	"canberra", "braycurtis", "haversine", "hellinger",
	"poincare", "hyperboloid", "ll_dirichlet",

	// Binary metrics
	"hamming", "jaccard", "dice", "matching", "kulsinski", "rogerstanimoto",
	"russellrao", "sokalmichener", "sokalsneath", "yule",
}

// Names returns the canonical names of all registered metrics, sorted.
func Names() []string {
	names := append([]string(nil), metricNames...)
	sort.Strings(names)
	return names
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Lookup resolves a metric by name or alias. Parameterised metrics are
// returned with their defaults: p=2 for the Minkowski family, unit sigma
// and weights, and the identity inverse covariance.
func Lookup[T Float](name string) (Metric[T], bool) {
	name = canonical(name)
	m := Metric[T]{Name: name, Angular: AngularMetrics[name]}

	switch name {
	case "euclidean":
		m.Func, m.Grad = Euclidean[T], EuclideanGrad[T]
	case "sqeuclidean":
		m.Func = SquaredEuclidean[T]
	case "manhattan":
		m.Func, m.Grad = Manhattan[T], ManhattanGrad[T]
	case "chebyshev":
		m.Func, m.Grad = Chebyshev[T], ChebyshevGrad[T]
	case "minkowski":
		m.Func = func(x, y []T) T { return Minkowski(x, y, 2) }
		m.Grad = func(x, y []T) (T, []T) { return MinkowskiGrad(x, y, 2) }
	case "standardised_euclidean":
		m.Func = func(x, y []T) T { return StandardisedEuclidean(x, y, nil) }
		m.Grad = func(x, y []T) (T, []T) { return StandardisedEuclideanGrad(x, y, nil) }
	case "weighted_minkowski":
		m.Func = func(x, y []T) T { return WeightedMinkowski(x, y, nil, 2) }
		m.Grad = func(x, y []T) (T, []T) { return WeightedMinkowskiGrad(x, y, nil, 2) }
	case "mahalanobis":
		m.Func = func(x, y []T) T { return Mahalanobis(x, y, nil) }
		m.Grad = func(x, y []T) (T, []T) { return MahalanobisGrad(x, y, nil) }
	case "cosine":
		m.Func, m.Grad = Cosine[T], CosineGrad[T]
	case "correlation":
		m.Func, m.Grad = Correlation[T], CorrelationGrad[T]
	case "canberra":
		m.Func, m.Grad = Canberra[T], CanberraGrad[T]
	case "braycurtis":
		m.Func, m.Grad = BrayCurtis[T], BrayCurtisGrad[T]
	case "haversine":
		m.Func, m.Grad = Haversine[T], HaversineGrad[T]
	case "hellinger":
		m.Func, m.Grad = Hellinger[T], HellingerGrad[T]
	case "poincare":
		m.Func, m.Grad = Poincare[T], PoincareGrad[T]
	case "hyperboloid":
		m.Func, m.Grad = Hyperboloid[T], HyperboloidGrad[T]
	case "ll_dirichlet":
		m.Func = LLDirichlet[T]
	case "hamming":
		m.Func = Hamming[T]
	case "jaccard":
		m.Func = Jaccard[T]
	case "dice":
		m.Func = Dice[T]
	case "matching":
		m.Func = Matching[T]
	case "kulsinski":
		m.Func = Kulsinski[T]
	case "rogerstanimoto":
		m.Func = RogersTanimoto[T]
	case "russellrao":
		m.Func = RussellRao[T]
	case "sokalmichener":
		m.Func = SokalMichener[T]
	case "sokalsneath":
		m.Func = SokalSneath[T]
	case "yule":
		m.Func = Yule[T]
	default:
		return Metric[T]{}, false
	}
	return m, true
}

// Get returns the distance function for the given metric name.
func Get[T Float](name string) (Func[T], bool) {
	m, ok := Lookup[T](name)
	if !ok {
		return nil, false
	}
	return m.Func, true
}

// GetGrad returns the gradient function for the given metric name.
func GetGrad[T Float](name string) (GradFunc[T], bool) {
	m, ok := Lookup[T](name)
	if !ok || m.Grad == nil {
		return nil, false
	}
	return m.Grad, true
}

// IsAngular returns true if the metric is angular/cosine-based.
func IsAngular(name string) bool {
	return AngularMetrics[canonical(name)]
}

// Package metrics provides pointwise distance functions for elastic
// sequence alignment.
package metrics

// Func is a distance function between two numeric vectors.
//
// Both vectors are expected to share one dimension; a nil/empty operand is
// read as the zero vector of the other's dimension, which is how the DTW
// boundary element is encoded. Ragged non-empty operands are a caller
// contract violation.
type Func func(x, y []float64) float64

// Registry maps metric names to their implementations.
var Registry = map[string]Func{
	// Minkowski family
	"manhattan": Manhattan,
	"l1":        Manhattan,
	"taxicab":   Manhattan,

	"euclidean":   Euclidean,
	"l2":          Euclidean,
	"sqeuclidean": SquaredEuclidean,

	"chebyshev": Chebyshev,
	"linfinity": Chebyshev,
	"linf":      Chebyshev,
}

// Get returns the distance function for the given metric name.
func Get(name string) (Func, bool) {
	f, ok := Registry[name]
	return f, ok
}

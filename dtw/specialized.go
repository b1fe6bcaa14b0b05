package dtw

import "github.com/HammerLabML/edist/metrics"

// Built-in specializations of the generic engine, one per element domain.
// Each is exactly DTW with the corresponding metrics delta; the equivalence
// is a tested property.

// Numeric computes the DTW distance between two scalar sequences under the
// absolute-difference delta |x - y|.
func Numeric(a, b []float64, opts *Options) (float64, Path, error) {
	return DTW(a, b, metrics.AbsDiff, opts)
}

// Manhattan computes the DTW distance between two vector sequences under
// the Manhattan (L1) delta. All vectors of both sequences must share one
// dimension; otherwise ErrDimensionMismatch is returned.
func Manhattan(a, b [][]float64, opts *Options) (float64, Path, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, nil, err
	}
	return DTW(a, b, metrics.Manhattan, opts)
}

// Euclidean computes the DTW distance between two vector sequences under
// the Euclidean (L2) delta. All vectors of both sequences must share one
// dimension; otherwise ErrDimensionMismatch is returned.
func Euclidean(a, b [][]float64, opts *Options) (float64, Path, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, nil, err
	}
	return DTW(a, b, metrics.Euclidean, opts)
}

// String computes the DTW distance between two strings, compared rune by
// rune under the Kronecker delta (0 if equal, 1 otherwise).
func String(a, b string, opts *Options) (float64, Path, error) {
	return DTW([]rune(a), []rune(b), metrics.Kronecker[rune], opts)
}

// checkDimensions verifies that every vector of both sequences has the same
// dimension, taken from the first element seen.
func checkDimensions(a, b [][]float64) error {
	dim := -1
	for _, seq := range [2][][]float64{a, b} {
		for _, v := range seq {
			if dim == -1 {
				dim = len(v)
				continue
			}
			if len(v) != dim {
				return ErrDimensionMismatch
			}
		}
	}
	return nil
}

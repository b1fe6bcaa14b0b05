package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Manhattan computes the Manhattan (L1/taxicab) distance.
// D(x, y) = sum(|x_i - y_i|)
func Manhattan(x, y []float64) float64 {
	return lpDistance(x, y, 1)
}

// Euclidean computes the standard Euclidean (L2) distance.
// D(x, y) = sqrt(sum((x_i - y_i)^2))
func Euclidean(x, y []float64) float64 {
	return lpDistance(x, y, 2)
}

// SquaredEuclidean computes the squared Euclidean distance (no sqrt).
// D(x, y) = sum((x_i - y_i)^2)
func SquaredEuclidean(x, y []float64) float64 {
	d := lpDistance(x, y, 2)
	return d * d
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
// D(x, y) = max(|x_i - y_i|)
func Chebyshev(x, y []float64) float64 {
	return lpDistance(x, y, math.Inf(1))
}

// Minkowski returns the Minkowski distance function with the given order p.
// D(x, y) = (sum(|x_i - y_i|^p))^(1/p)
func Minkowski(p float64) Func {
	return func(x, y []float64) float64 {
		return lpDistance(x, y, p)
	}
}

// lpDistance evaluates the L-norm of x-y, reading a missing operand as the
// zero vector so that δ(v, boundary) degrades to the plain norm of v.
func lpDistance(x, y []float64, l float64) float64 {
	switch {
	case len(y) == 0:
		return floats.Norm(x, l)
	case len(x) == 0:
		return floats.Norm(y, l)
	}
	return floats.Distance(x, y, l)
}

package metrics

import "math"

// AbsDiff computes the absolute difference between two scalars.
// D(x, y) = |x - y|
func AbsDiff(x, y float64) float64 {
	return math.Abs(x - y)
}

// Kronecker computes the Kronecker delta distance between two symbols:
// 0 when they are equal, 1 otherwise.
func Kronecker[T comparable](x, y T) float64 {
	if x == y {
		return 0
	}
	return 1
}

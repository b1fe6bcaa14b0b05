package dtw

import "math"

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//	This is the generic engine: it accepts any element type T together
//	with a pointwise distance delta, and every built-in specialization
//	(Numeric, Manhattan, Euclidean, String) is a thin call into it.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize, with boundary = the zero value of T:
//     D[0][0] = 0
//     D[i][0] = D[i-1][0] + delta(a[i-1], boundary)   for i=1..n
//     D[0][j] = D[0][j-1] + delta(boundary, b[j-1])   for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost  = delta(a[i-1], b[j-1])
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (0,0), at each step taking
//     the minimal predecessor with ties broken diagonal ≻ vertical ≻
//     horizontal, then reverse.
//
// The cumulative boundary row/column makes empty inputs well-defined:
// dtw of two empty sequences is 0, and an empty side costs the sum of
// delta against the boundary element across the other side.
//
// Memory Modes:
//   - FullMatrix — store full D, support ReturnPath. Memory: O(n·m).
//   - TwoRows    — store only two rows (current & previous). Memory: O(m).
//     ReturnPath is not supported.
//
// Complexity:
//
//	Time   = O(n·m) evaluations of delta
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)
//
// Errors:
//   - ErrNilDelta        — if delta is nil.
//   - ErrBadInput        — if Window < -1 or SlopePenalty < 0.
//   - ErrPathNeedsMatrix — if ReturnPath=true with TwoRows mode.

// DTW computes the Dynamic Time Warping distance between a and b under the
// pointwise distance delta. Returns (distance, path, error); path is nil
// unless opts.ReturnPath is set. A nil opts means DefaultOptions().
//
// Example:
//
//	opts := DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := DTW(seqA, seqB, metrics.AbsDiff, &opts)
func DTW[T any](a, b []T, delta Delta[T], opts *Options) (float64, Path, error) {
	if delta == nil {
		return 0, nil, ErrNilDelta
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, nil, err
	}

	if o.MemoryMode == TwoRows {
		return rollingDistance(a, b, delta, o), nil, nil
	}

	dp := fullMatrix(a, b, delta, o)
	distance := dp[len(a)][len(b)]

	var path Path
	if o.ReturnPath {
		path = backtrace(dp, o.SlopePenalty)
	}
	return distance, path, nil
}

// fullMatrix fills the complete (n+1)x(m+1) cost matrix.
func fullMatrix[T any](a, b []T, delta Delta[T], o Options) [][]float64 {
	n, m := len(a), len(b)
	var boundary T

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}

	// Boundary row/column: cumulative cost against the boundary element.
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + delta(a[i-1], boundary)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + delta(boundary, b[j-1])
	}

	inf := math.Inf(1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && absInt(i-j) > o.Window {
				dp[i][j] = inf
				continue
			}
			cost := delta(a[i-1], b[j-1])
			ins := dp[i-1][j] + o.SlopePenalty
			del := dp[i][j-1] + o.SlopePenalty
			match := dp[i-1][j-1]
			dp[i][j] = cost + min3(ins, del, match)
		}
	}
	return dp
}

// rollingDistance computes the distance with two alternating rows.
// Numerically identical to fullMatrix; no path support.
func rollingDistance[T any](a, b []T, delta Delta[T], o Options) float64 {
	n, m := len(a), len(b)
	var boundary T

	dp := [2][]float64{
		make([]float64, m+1),
		make([]float64, m+1),
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + delta(boundary, b[j-1])
	}

	inf := math.Inf(1)
	for i := 1; i <= n; i++ {
		curr, prev := i%2, (i-1)%2
		dp[curr][0] = dp[prev][0] + delta(a[i-1], boundary)
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && absInt(i-j) > o.Window {
				dp[curr][j] = inf
				continue
			}
			cost := delta(a[i-1], b[j-1])
			ins := dp[prev][j] + o.SlopePenalty
			del := dp[curr][j-1] + o.SlopePenalty
			match := dp[prev][j-1]
			dp[curr][j] = cost + min3(ins, del, match)
		}
	}
	return dp[n%2][m]
}

// backtrace walks the filled matrix from (n,m) back to (0,0) and returns
// the reversed path. Ties are broken diagonal ≻ vertical ≻ horizontal so
// that equal-cost alignments reproduce deterministically.
func backtrace(dp [][]float64, penalty float64) Path {
	n, m := len(dp)-1, len(dp[0])-1
	path := make(Path, 0, n+m+1)

	i, j := n, m
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			match := dp[i-1][j-1]
			ins := dp[i-1][j] + penalty
			del := dp[i][j-1] + penalty
			switch {
			case match <= ins && match <= del:
				i, j = i-1, j-1
			case ins <= del:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

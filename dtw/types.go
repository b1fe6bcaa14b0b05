// Package dtw defines options, modes and result types for Dynamic Time Warping.
package dtw

import "errors"

// Sentinel errors returned by the DTW implementation.
var (
	// ErrNilDelta indicates that no distance function was supplied.
	ErrNilDelta = errors.New("dtw: delta function must not be nil")

	// ErrBadInput indicates an invalid option value, such as Window < -1
	// or a negative SlopePenalty.
	ErrBadInput = errors.New("dtw: invalid option value")

	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrDimensionMismatch indicates that the vector elements of the two
	// input sequences do not share a single dimension.
	ErrDimensionMismatch = errors.New("dtw: sequence elements must share one vector dimension")
)

// Delta is a pointwise distance function between two sequence elements.
//
// It must be deterministic, total over the element domain, and return a
// finite non-negative value; symmetry is conventional but not required.
// Negative or non-finite return values void the minimality guarantee of the
// computed cost (the engine does not defend against them).
type Delta[T any] func(a, b T) float64

// Coord is one node of an alignment path, expressed as prefix lengths:
// after a diagonal step into (I, J) the elements x[I-1] and y[J-1] are
// aligned; a vertical step aligns x[I-1] against the boundary element and a
// horizontal step aligns y[J-1] against it.
type Coord struct {
	I int // prefix length of the first sequence, 0..n
	J int // prefix length of the second sequence, 0..m
}

// Path is a monotone alignment path from {0,0} to {n,m} through the cost
// matrix; every step advances I, J, or both by exactly 1.
type Path []Coord

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// UnlimitedWindow disables the Sakoe–Chiba band constraint.
const UnlimitedWindow = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     UnlimitedWindow (-1) disables the constraint; values < -1 are invalid.
//     The band applies to interior cells only; the boundary row and column
//     are always the exact cumulative base case of the recurrence.
//   - SlopePenalty — extra cost for insertion/deletion steps (locality bias).
//     Must be ≥ 0; zero keeps the standard symmetric step set.
//   - ReturnPath   — if true, DTW backtracks and returns the optimal warping
//     path. Requires MemoryMode=FullMatrix.
//   - MemoryMode   — choose FullMatrix or TwoRows storage.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Window = 10        // only compare elements within ±10 steps
//	opts.ReturnPath = true  // we need the path, not just the distance
//
//	dist, path, err := Numeric(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an Options value with sensible defaults:
// no window constraint, no slope penalty, no path, FullMatrix storage.
func DefaultOptions() Options {
	return Options{
		Window:       UnlimitedWindow,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// validate checks clamped option values and the mode/path combination.
func (o *Options) validate() error {
	if o.Window < UnlimitedWindow {
		return ErrBadInput
	}
	if o.SlopePenalty < 0 {
		return ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	return nil
}

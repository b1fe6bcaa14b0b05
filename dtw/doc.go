// Package dtw computes Dynamic Time Warping (DTW) distances between ordered
// sequences of any element type, with optional alignment path and memory
// optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative pointwise distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - generic core: DTW[T] takes any δ: Fn(T, T) → float64
//   - built-in specializations: Numeric, Manhattan, Euclidean, String
//   - full-matrix mode: exact O(N·M) time & memory, path-capable
//   - rolling mode: O(M) memory (choose via MemoryMode)
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand alignment path (ReturnPath=true), deterministic tie-break
//
// Recurrence:
//
//	D[0][0] = 0
//	D[i][0] = D[i-1][0] + δ(x_i, boundary)
//	D[0][j] = D[0][j-1] + δ(boundary, y_j)
//	D[i][j] = δ(x_i, y_j) + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// where boundary is the zero value of the element type and p is the
// optional slope penalty (0 by default).  Empty inputs are well-defined:
// two empty sequences cost 0, and a single empty side costs the cumulative
// δ of the other side against the boundary.
//
// ⚙️ Usage:
//
//	import "github.com/HammerLabML/edist/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.Numeric(a, b, &opts)
//
// Or with a custom element type and δ:
//
//	dist, _, err := dtw.DTW(xs, ys, myDelta, nil)
//
// Performance:
//
//   - Time:   O(N·M) evaluations of δ
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// See example_test.go for runnable scenarios.
package dtw

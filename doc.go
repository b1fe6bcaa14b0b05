// Package edist is a small toolbox for elastic distances between ordered
// sequences — currently Dynamic Time Warping — together with the pointwise
// metrics and signal fixtures that surround it.
//
// 🚀 What is edist?
//
//	A pure-Go library for measuring similarity between sequences of unequal
//	length and unequal local speed:
//		• dtw/     — the DTW engine: generic over element type, optional
//		             alignment path, full-matrix or rolling memory
//		• metrics/ — pointwise distance functions δ (abs-diff, Manhattan,
//		             Euclidean, Chebyshev, Minkowski, Kronecker delta)
//		• signal/  — deterministic pulse & chirp generators for demos,
//		             benchmarks and golden tests
//
// ✨ Why choose edist?
//
//   - Minimal API, clear naming — one call computes a distance
//   - Generic core — bring any element type and any δ: Fn(T, T) → float64
//   - Deterministic — reproducible alignment paths, seeded fixtures
//   - Pure Go — no cgo; gonum powers the vector norms
//
// Quick example:
//
//	dist, _, err := dtw.Numeric([]float64{0, 0, 1, 2}, []float64{0, 1, 1, 3}, nil)
//	// dist == 1.0
//
// Dive into dtw/doc.go for the recurrence, memory modes and error contract.
//
//	go get github.com/HammerLabML/edist/dtw
package edist

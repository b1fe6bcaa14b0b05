// SPDX-License-Identifier: MIT
// Package: edist/signal
//
// chirp.go — deterministic linear chirp generator.
//
// Purpose:
//   - Produce a 1-D linear chirp (frequency sweep from f0 to f1) for tests/demos.
//   - Optional linear trend and Gaussian noise.
//   - Strict determinism with the same policy as Pulse.
//
// Contract:
//   - Chirp(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.

package signal

import "math"

// tau = 2π, precomputed for the phase accumulator.
const tau = 2.0 * math.Pi

// Chirp returns a length-n linear chirp: frequency sweeps from f0 to f1.
// Model:
//   - fi   = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator)
//   - yᵢ   = A * sin(θᵢ) + trend*i + noise
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	if cfg.amp <= 0 || cfg.f0 <= 0 || cfg.f1 <= 0 || cfg.sigma < 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	theta := 0.0
	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64 // sample value before store
	)
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = 0
		}
		fi = cfg.f0 + (cfg.f1-cfg.f0)*t

		// Discrete-time phase integration with dt=1.
		theta += tau * fi

		val = cfg.amp * math.Sin(theta)
		val += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}
		out[i] = val
	}
	return out
}

// SPDX-License-Identifier: MIT
// Package: edist/signal
//
// pulse.go — deterministic rectangular/triangular pulse generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible 1-D pulse sequence for tests, demos and fixtures.
//   • Shape controls: rectangular (duty ∈ [0,1]) or triangular (0..A envelope).
//   • Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   • Pulse(n, seed, opts...) returns a slice of length n (or nil on invalid input).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory; tiny constant factors.

package signal

import "math"

// Pulse returns a length-n pulse sequence with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Additions:
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//   - If parameters are invalid (A≤0, f≤0, duty∉[0,1], sigma<0) ⇒ return nil.
//
// Complexity:
//   - O(n) time, O(n) memory.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	if cfg.amp <= 0 || cfg.freq <= 0 || cfg.sigma < 0 || cfg.duty < 0 || cfg.duty > 1 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before trend/noise
	)
	for i := 0; i < n; i++ {
		// frac = (i*f) mod 1; Mod keeps rectangular/triangular unified
		// without trig overhead.
		frac = math.Mod(float64(i)*cfg.freq, 1)

		if cfg.triangular {
			// Triangle in [0,1]: 1 − |2*frac − 1|, scaled to [0..A].
			base = cfg.amp * (1 - math.Abs(2*frac-1))
		} else {
			// Rectangular in {0, A}: on when frac < duty.
			if frac < cfg.duty {
				base = cfg.amp
			} else {
				base = 0
			}
		}

		base += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			base += cfg.sigma * rng.NormFloat64()
		}
		out[i] = base
	}
	return out
}

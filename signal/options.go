// SPDX-License-Identifier: MIT
// Package: edist/signal
//
// options.go — shared defaults and deterministic configuration for the
// sequence generators.
//
// Purpose:
//   - Hold cross-generator defaults (amplitude/noise/trend).
//   - Expose functional options for every generator knob.
//   - Provide deterministic RNG selection with cfg.rng priority.
//
// Contract:
//   - Pure helpers (no global state). Safe to import from pulse.go / chirp.go.

// Package signal generates small deterministic 1-D test signals (pulse
// trains, chirps) used as fixtures for elastic-distance demos, benchmarks
// and golden tests.
package signal

import "math/rand"

// -----------------------------
// Shared defaults.
// -----------------------------
const (
	defAmp        = 1.0   // default amplitude (>0)
	defSigma      = 0.0   // default Gaussian noise sigma (≥0); 0 disables noise
	defTrendSlope = 0.0   // default linear trend increment per sample
	defPulseFreq  = 0.125 // default pulse frequency in cycles/sample; period ≈ 8
	defDuty       = 0.5   // default rectangular duty cycle in [0,1]
	defChirpF0    = 0.02  // default chirp start frequency (cycles/sample)
	defChirpF1    = 0.25  // default chirp end frequency (cycles/sample)
)

// config carries every generator knob; zero-valued fields are filled from
// the defaults above by newConfig.
type config struct {
	amp        float64    // amplitude > 0
	freq       float64    // pulse base frequency > 0 (cycles/sample)
	duty       float64    // rectangular duty in [0,1]
	triangular bool       // rectangular(false) or triangular(true) pulse
	f0, f1     float64    // chirp sweep endpoints > 0
	sigma      float64    // Gaussian noise sigma ≥ 0
	trend      float64    // linear trend increment per sample
	rng        *rand.Rand // optional shared RNG stream
}

// Option mutates the generator configuration.
type Option func(*config)

// WithAmplitude sets the waveform amplitude A (> 0).
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amp = a }
}

// WithFrequency sets the pulse base frequency in cycles/sample (> 0).
func WithFrequency(f float64) Option {
	return func(c *config) { c.freq = f }
}

// WithDuty sets the rectangular duty cycle in [0,1].
func WithDuty(d float64) Option {
	return func(c *config) { c.duty = d }
}

// WithTriangular switches the pulse shape to a triangular 0..A envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithSweep sets the chirp sweep endpoints f0 → f1 (both > 0, cycles/sample).
func WithSweep(f0, f1 float64) Option {
	return func(c *config) {
		c.f0 = f0
		c.f1 = f1
	}
}

// WithNoise adds Gaussian noise with the given sigma (≥ 0).
func WithNoise(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds a linear trend increment per sample.
func WithTrend(slope float64) Option {
	return func(c *config) { c.trend = slope }
}

// WithRand shares an RNG stream across composed generator calls, taking
// priority over the per-call seed.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		amp:   defAmp,
		freq:  defPulseFreq,
		duty:  defDuty,
		f0:    defChirpF0,
		f1:    defChirpF1,
		sigma: defSigma,
		trend: defTrendSlope,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}

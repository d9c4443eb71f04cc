// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"math/rand"
	"time"
)

// Sampling ranges used when no range option is given (half-open [lo, hi)).
const (
	DefaultFeatureMin     = -10.0
	DefaultFeatureMax     = 10.0
	DefaultCoefficientMin = -1.0
	DefaultCoefficientMax = 1.0
)

// Option customizes a Generator. Options passed to NewGenerator become the
// generator's defaults; options passed to a Generate* call override them for
// that call only. Later options win.
//
// Range constructors panic on meaningless bounds (programmer error);
// generation itself never panics.
type Option func(*generatorConfig)

// generatorConfig is copied by value into every call, so per-call options
// never leak back into the Generator.
type generatorConfig struct {
	rng    *rand.Rand // caller-owned source; wins over seed when set
	seed   int64
	seeded bool

	featureMin, featureMax float64
	coefMin, coefMax       float64
}

func defaultConfig() generatorConfig {
	return generatorConfig{
		featureMin: DefaultFeatureMin,
		featureMax: DefaultFeatureMax,
		coefMin:    DefaultCoefficientMin,
		coefMax:    DefaultCoefficientMax,
	}
}

// WithSeed makes generation reproducible: every call builds a fresh source
// from seed, so equal seeds and equal (n, dim) give identical datasets.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = nil
		c.seed = seed
		c.seeded = true
	}
}

// WithRand injects a caller-owned source. Successive calls keep consuming
// it, and it must not be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
		c.seeded = false
	}
}

// WithFeatureRange sets the half-open range every feature is drawn from.
// Panics unless lo and hi are finite and lo < hi.
func WithFeatureRange(lo, hi float64) Option {
	mustRange("WithFeatureRange", lo, hi)
	return func(c *generatorConfig) {
		c.featureMin, c.featureMax = lo, hi
	}
}

// WithCoefficientRange sets the half-open range random hyperplane
// coefficients and bias are drawn from. Ignored by GenerateFixed.
// Panics unless lo and hi are finite and lo < hi.
func WithCoefficientRange(lo, hi float64) Option {
	mustRange("WithCoefficientRange", lo, hi)
	return func(c *generatorConfig) {
		c.coefMin, c.coefMax = lo, hi
	}
}

func mustRange(name string, lo, hi float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic("dataset: " + name + ": bounds must be finite with lo < hi")
	}
}

// source resolves the random source for one call.
func (c generatorConfig) source() *rand.Rand {
	switch {
	case c.rng != nil:
		return c.rng
	case c.seeded:
		return rand.New(rand.NewSource(c.seed))
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// randSource is the slice of *rand.Rand the sampler needs.
type randSource interface {
	Float64() float64
}

func uniform(rng randSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

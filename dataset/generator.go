// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/linsep/vecmath"
)

// Method tags used in wrapped errors.
const (
	methodNewGenerator  = "NewGenerator"
	methodGenerateFixed = "GenerateFixed"
)

// Generator produces n labelled points of dimension dim per call.
// It holds no mutable state; see Option for how randomness is supplied.
type Generator struct {
	n   int
	dim int
	cfg generatorConfig
}

// NewGenerator returns a generator for n points in dim dimensions.
//
// Errors:
//   - ErrBadSize if n < 0 or dim < 1.
//
// Complexity: O(len(opts)) time, O(1) space.
func NewGenerator(n, dim int, opts ...Option) (*Generator, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodNewGenerator, n, ErrBadSize)
	}
	if dim < 1 {
		return nil, fmt.Errorf("%s: dim=%d < 1: %w", methodNewGenerator, dim, ErrBadSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{n: n, dim: dim, cfg: cfg}, nil
}

// N returns the number of points per dataset.
// Complexity: O(1).
func (g *Generator) N() int { return g.n }

// Dim returns the feature dimension.
// Complexity: O(1).
func (g *Generator) Dim() int { return g.dim }

// GenerateRandom draws a random hyperplane and labels n random points by it.
// Complexity: O(n·dim) time, O(n·dim) space.
func (g *Generator) GenerateRandom(opts ...Option) []LabelledDataPoint {
	data, _ := g.GenerateRandomWithHyperplane(opts...)

	return data
}

// GenerateRandomWithHyperplane is GenerateRandom that also returns the
// hyperplane used for labeling. Coefficients are drawn first, then the
// bias, then the points, all from one source.
//
// Complexity: O(n·dim) time, O(n·dim) space.
func (g *Generator) GenerateRandomWithHyperplane(opts ...Option) ([]LabelledDataPoint, Hyperplane) {
	cfg := g.resolve(opts)
	rng := cfg.source()

	h := Hyperplane{Coefficients: make([]float64, g.dim)}
	for i := range h.Coefficients {
		h.Coefficients[i] = uniform(rng, cfg.coefMin, cfg.coefMax)
	}
	h.Bias = uniform(rng, cfg.coefMin, cfg.coefMax)

	// len(h.Coefficients) == g.dim, so labeling cannot fail.
	data, _ := g.sample(cfg, rng, h)

	return data, h
}

// GenerateFixed labels n random points by the caller's hyperplane.
// Without WithSeed or WithRand the point coordinates are time-seeded and
// not reproducible, even though the hyperplane is fixed.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if len(coefficients) != Dim().
//
// Complexity: O(n·dim) time, O(n·dim) space.
func (g *Generator) GenerateFixed(coefficients []float64, bias float64, opts ...Option) ([]LabelledDataPoint, error) {
	if err := vecmath.CheckLen(methodGenerateFixed, coefficients, g.dim); err != nil {
		return nil, err
	}
	cfg := g.resolve(opts)
	h := Hyperplane{Coefficients: coefficients, Bias: bias}.clone()

	return g.sample(cfg, cfg.source(), h)
}

func (g *Generator) resolve(opts []Option) generatorConfig {
	cfg := g.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sample draws g.n points feature by feature and labels each with h.
func (g *Generator) sample(cfg generatorConfig, rng randSource, h Hyperplane) ([]LabelledDataPoint, error) {
	data := make([]LabelledDataPoint, 0, g.n)
	for i := 0; i < g.n; i++ {
		features := make([]float64, g.dim)
		for j := range features {
			features[j] = uniform(rng, cfg.featureMin, cfg.featureMax)
		}
		p := DataPoint{features: features}

		label, err := h.Classify(p)
		if err != nil {
			return nil, err
		}
		data = append(data, LabelledDataPoint{point: p, label: label})
	}

	return data, nil
}

// SPDX-License-Identifier: MIT

package dataset

import (
	"github.com/katalvlaran/linsep/vecmath"
)

// Hyperplane is the linear boundary {x : Coefficients·x + Bias = 0}.
type Hyperplane struct {
	Coefficients []float64 `json:"coefficients"`
	Bias         float64   `json:"bias"`
}

// Dim returns len(Coefficients).
func (h Hyperplane) Dim() int { return len(h.Coefficients) }

// Eval returns Coefficients·p + Bias.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if p.Dim() != h.Dim().
func (h Hyperplane) Eval(p DataPoint) (float64, error) {
	v, err := p.Dot(h.Coefficients)
	if err != nil {
		return 0, err
	}

	return v + h.Bias, nil
}

// Classify labels p by the side of h it falls on.
// Eval(p) >= 0 is Positive, so points exactly on the plane are Positive.
func (h Hyperplane) Classify(p DataPoint) (Label, error) {
	v, err := h.Eval(p)
	if err != nil {
		return 0, err
	}

	return labelFor(v), nil
}

// Separates reports whether every point in data carries the label h assigns.
// An empty dataset is trivially separated.
func (h Hyperplane) Separates(data []LabelledDataPoint) (bool, error) {
	for _, lp := range data {
		got, err := h.Classify(lp.point)
		if err != nil {
			return false, err
		}
		if got != lp.label {
			return false, nil
		}
	}

	return true, nil
}

func labelFor(v float64) Label {
	if v >= 0 {
		return Positive
	}

	return Negative
}

func (h Hyperplane) clone() Hyperplane {
	return Hyperplane{Coefficients: vecmath.Clone(h.Coefficients), Bias: h.Bias}
}

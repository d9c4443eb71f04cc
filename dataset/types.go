// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/linsep/vecmath"
)

// Label is the class of a point: Positive (+1) or Negative (-1).
type Label int

const (
	// Positive marks points on the non-negative side of the hyperplane.
	Positive Label = 1
	// Negative marks points strictly on the negative side.
	Negative Label = -1
)

// Valid reports whether l is Positive or Negative.
func (l Label) Valid() bool { return l == Positive || l == Negative }

// Float returns the label as ±1.0 for arithmetic.
func (l Label) Float() float64 { return float64(l) }

// String implements fmt.Stringer.
func (l Label) String() string {
	switch l {
	case Positive:
		return "+1"
	case Negative:
		return "-1"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// DataPoint is an immutable ordered vector of features.
// The zero value is a 0-dimensional point.
type DataPoint struct {
	features []float64
}

// NewDataPoint copies features into a new DataPoint.
func NewDataPoint(features []float64) DataPoint {
	return DataPoint{features: vecmath.Clone(features)}
}

// Dim returns the number of features.
func (p DataPoint) Dim() int { return len(p.features) }

// At returns feature i. It panics if i is out of range, like a slice index.
func (p DataPoint) At(i int) float64 { return p.features[i] }

// Features returns a copy of the feature vector.
func (p DataPoint) Features() []float64 { return vecmath.Clone(p.features) }

// Dot returns p·w.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if len(w) != p.Dim().
func (p DataPoint) Dot(w []float64) (float64, error) {
	return vecmath.Dot(w, p.features)
}

// AddScaledTo returns w + s·p as a new vector; w is not modified.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if len(w) != p.Dim().
func (p DataPoint) AddScaledTo(w []float64, s float64) ([]float64, error) {
	return vecmath.Add(w, vecmath.Scale(s, p.features))
}

// LabelledDataPoint pairs a DataPoint with its Label. Values built by the
// Generator or NewLabelledDataPoint always carry a valid label.
type LabelledDataPoint struct {
	point DataPoint
	label Label
}

// NewLabelledDataPoint copies features and attaches label.
//
// Errors:
//   - ErrInvalidLabel if label is not Positive or Negative.
func NewLabelledDataPoint(features []float64, label Label) (LabelledDataPoint, error) {
	if !label.Valid() {
		return LabelledDataPoint{}, fmt.Errorf("NewLabelledDataPoint: label=%d: %w", int(label), ErrInvalidLabel)
	}

	return LabelledDataPoint{point: NewDataPoint(features), label: label}, nil
}

// Point returns the unlabelled point.
func (lp LabelledDataPoint) Point() DataPoint { return lp.point }

// Label returns the class label.
func (lp LabelledDataPoint) Label() Label { return lp.label }

// Features returns a copy of the point's features.
func (lp LabelledDataPoint) Features() []float64 { return lp.point.Features() }

// Dim returns the number of features.
func (lp LabelledDataPoint) Dim() int { return lp.point.Dim() }

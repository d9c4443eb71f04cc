// SPDX-License-Identifier: MIT

package vecmath

import (
	"gonum.org/v1/gonum/floats"
)

// Method tags used in wrapped errors.
const (
	methodDot = "Dot"
	methodAdd = "Add"
)

// Dot returns the sum of elementwise products of a and b.
// Two empty vectors have a dot product of 0.
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n) time, O(1) space.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, MismatchError(methodDot, len(a), len(b))
	}

	return floats.Dot(a, b), nil
}

// Scale returns a new vector holding s·v[i]. It never fails and never
// aliases v; a nil v yields an empty, non-nil result.
//
// Complexity: O(n) time, O(n) space.
func Scale(s float64, v []float64) []float64 {
	out := make([]float64, len(v))
	floats.ScaleTo(out, s, v)

	return out
}

// Add returns a new vector holding a[i] + b[i].
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n) time, O(n) space.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, MismatchError(methodAdd, len(a), len(b))
	}
	out := make([]float64, len(a))
	floats.AddTo(out, a, b)

	return out, nil
}

// Clone returns an independent copy of v. Clone(nil) is nil.
// Complexity: O(n) time, O(n) space.
func Clone(v []float64) []float64 {
	if v == nil {
		return nil
	}

	return append(make([]float64, 0, len(v)), v...)
}

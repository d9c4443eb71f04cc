// SPDX-License-Identifier: MIT

package vecmath

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates that two vectors combined by Dot or Add
// (or a vector checked against a configured dimension) have different lengths.
// Callers MUST branch on it with errors.Is; messages carry the lengths.
var ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

// MismatchError wraps ErrDimensionMismatch with a method tag and both
// observed lengths, e.g. "Dot: len(a)=2, len(b)=3: vecmath: dimension mismatch".
// Other packages use it so that every mismatch reads the same way.
func MismatchError(method string, got, want int) error {
	return fmt.Errorf("%s: len(a)=%d, len(b)=%d: %w", method, got, want, ErrDimensionMismatch)
}

// CheckLen returns a wrapped ErrDimensionMismatch when len(v) != want.
func CheckLen(method string, v []float64, want int) error {
	if len(v) != want {
		return MismatchError(method, len(v), want)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package vecmath provides the dense float64 vector kernels shared by the
// dataset generator and the perceptron trainer.
//
// What lives here:
//
//	Dot(a, b)    — Σ a[i]·b[i]
//	Scale(s, v)  — s·v, elementwise
//	Add(a, b)    — a + b, elementwise
//	Clone(v)     — independent copy
//
// Contract:
//   - Every binary operation requires len(a) == len(b). A mismatch is a
//     caller defect and is reported as ErrDimensionMismatch (wrapped with the
//     operation name and both lengths); nothing is padded or truncated.
//   - All results are freshly allocated; inputs are never written.
//   - Numerics follow IEEE-754 float64. Summation order may round, so tests
//     compare with a tolerance rather than exact equality.
//
// Kernels delegate to gonum.org/v1/gonum/floats once lengths are checked
// (gonum panics on mismatched lengths; this package reports them instead).
//
// Complexity: O(n) time for every operation; O(n) space for Scale/Add/Clone.
package vecmath

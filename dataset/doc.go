// SPDX-License-Identifier: MIT

// Package dataset holds the immutable data model (DataPoint,
// LabelledDataPoint, Hyperplane) and the Generator that synthesizes
// linearly separable datasets in any dimension.
//
// How a dataset is built:
//
//  1. Pick a hyperplane {x : c·x + b = 0}, either drawn at random
//     (GenerateRandom: every c[i] and b uniform in [-1, 1)) or supplied by
//     the caller (GenerateFixed).
//  2. Draw n points, every feature uniform in [-10, 10), from the same
//     random source.
//  3. Label each point with Hyperplane.Classify: +1 when c·x + b >= 0,
//     otherwise -1. A point exactly on the plane is labelled +1; this
//     boundary policy is kept for compatibility.
//
// The result is separable by the labeling hyperplane by construction;
// Hyperplane.Separates verifies it.
//
// Randomness is an injected capability, never global state:
//
//	gen, _ := dataset.NewGenerator(100, 2)
//	a := gen.GenerateRandom(dataset.WithSeed(42))      // reproducible
//	b := gen.GenerateRandom(dataset.WithSeed(42))      // a and b are identical
//	c := gen.GenerateRandom()                          // time-seeded
//	d := gen.GenerateRandom(dataset.WithRand(myRand))  // caller-owned source
//
// Errors:
//   - ErrBadSize          — NewGenerator with n < 0 or dim < 1.
//   - ErrInvalidLabel     — a label outside {+1, -1}.
//   - vecmath.ErrDimensionMismatch — coefficients or points whose length
//     differs from the configured dimension.
//
// Concurrency: a Generator is read-only after construction; calls that do
// not share a WithRand source may run concurrently.
package dataset

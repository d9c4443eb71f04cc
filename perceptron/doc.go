// SPDX-License-Identifier: MIT

// Package perceptron trains a margin perceptron and records every
// weight/bias update so the learning trajectory can be replayed.
//
// Algorithm (per Train call):
//
//  1. Record the initial (w, b) as step 0.
//  2. For epoch = 1..maxEpochs, visit the dataset in its given order:
//     score = w·x + b
//     if y·score <= margin:           // mistake or inside the margin band
//     w += y·x; b += y; record (w, b)
//  3. An epoch without updates means convergence: stop, Converged = true.
//  4. Otherwise the epoch budget runs out and Converged = false.
//
// Margin 0 with the non-strict "<=" is the classical mistake rule: a point
// scoring exactly 0 still triggers an update.
//
// Guarantees:
//   - Determinism: no randomness; the trajectory depends only on the
//     initial state and the dataset order, which is never shuffled.
//   - Termination: at most maxEpochs·len(data) evaluations.
//   - Atomicity: Train works on a private copy of the state and commits it
//     only when the run completes. A vecmath.ErrDimensionMismatch aborts
//     with a zero Result and the Perceptron unchanged.
//   - Non-convergence is a normal outcome, never an error.
//
// Hooks (WithOnUpdate, WithOnEpoch) let a host log or render progress;
// the package itself performs no I/O.
//
// Concurrency: a Perceptron must not run Train concurrently with any other
// call on the same instance. Use Clone to start several runs from one
// initial condition.
package perceptron

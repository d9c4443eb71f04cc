// SPDX-License-Identifier: MIT

package perceptron

import (
	"github.com/katalvlaran/linsep/vecmath"
)

// Step is one snapshot of the trajectory: the state right after an update,
// or the initial state when Epoch == 0. Weights never alias trainer state.
type Step struct {
	Epoch   int       `json:"epoch"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Result is the outcome of Train.
//
//   - Steps: initial state followed by one entry per update, in time order.
//   - Converged: an epoch finished without updates.
//   - Epochs: number of epochs actually run (≤ maxEpochs).
type Result struct {
	Steps     []Step `json:"steps"`
	Converged bool   `json:"converged"`
	Epochs    int    `json:"epochs"`
}

// Updates returns the number of weight updates, len(Steps)-1.
func (r Result) Updates() int {
	if len(r.Steps) == 0 {
		return 0
	}

	return len(r.Steps) - 1
}

// Final returns the last recorded step, or the zero Step for an empty Result.
func (r Result) Final() Step {
	if len(r.Steps) == 0 {
		return Step{}
	}

	return r.Steps[len(r.Steps)-1]
}

// Evaluation summarizes how a Perceptron scores a labelled dataset.
//
//   - Correct counts points with label·score > 0.
//   - MinMargin is the smallest label·score seen (0 for an empty set).
type Evaluation struct {
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Mistakes  int     `json:"mistakes"`
	Accuracy  float64 `json:"accuracy"`
	MinMargin float64 `json:"min_margin"`
}

// state is the mutable (w, b) pair threaded through one training run.
type state struct {
	weights []float64
	bias    float64
}

func (s state) clone() state {
	return state{weights: vecmath.Clone(s.weights), bias: s.bias}
}

func (s state) snapshot(epoch int) Step {
	return Step{Epoch: epoch, Weights: vecmath.Clone(s.weights), Bias: s.bias}
}

// SPDX-License-Identifier: MIT

package perceptron

import (
	"fmt"

	"github.com/katalvlaran/linsep/dataset"
	"github.com/katalvlaran/linsep/vecmath"
)

// Method tags used in wrapped errors.
const (
	methodNew     = "New"
	methodTrain   = "Train"
	methodPredict = "Predict"
)

// Perceptron is a linear classifier score(x) = w·x + b trained with the
// margin update rule. Its (w, b) change only through Train.
type Perceptron struct {
	margin    float64
	maxEpochs int
	st        state
	opts      options
}

// New returns a Perceptron starting from (weights, bias). weights is copied.
//
// Any margin is accepted. A NaN margin (or a NaN score) never satisfies
// y·score <= margin, so it never triggers an update.
//
// Errors:
//   - ErrNegativeEpochs if maxEpochs < 0.
//
// Complexity: O(d) time, O(d) space for d = len(weights).
func New(margin float64, weights []float64, bias float64, maxEpochs int, opts ...Option) (*Perceptron, error) {
	if maxEpochs < 0 {
		return nil, fmt.Errorf("%s: maxEpochs=%d: %w", methodNew, maxEpochs, ErrNegativeEpochs)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := vecmath.Clone(weights)
	if w == nil {
		w = []float64{}
	}

	return &Perceptron{
		margin:    margin,
		maxEpochs: maxEpochs,
		st:        state{weights: w, bias: bias},
		opts:      o,
	}, nil
}

// Margin returns the update threshold.
// Complexity: O(1).
func (p *Perceptron) Margin() float64 { return p.margin }

// MaxEpochs returns the epoch budget per Train call.
// Complexity: O(1).
func (p *Perceptron) MaxEpochs() int { return p.maxEpochs }

// Weights returns a copy of the current weight vector.
// Complexity: O(d) time, O(d) space.
func (p *Perceptron) Weights() []float64 { return vecmath.Clone(p.st.weights) }

// Bias returns the current bias.
// Complexity: O(1).
func (p *Perceptron) Bias() float64 { return p.st.bias }

// Clone returns an independent Perceptron with the same state and hooks.
// Complexity: O(d) time, O(d) space.
func (p *Perceptron) Clone() *Perceptron {
	return &Perceptron{
		margin:    p.margin,
		maxEpochs: p.maxEpochs,
		st:        p.st.clone(),
		opts:      p.opts,
	}
}

// Train runs the margin perceptron over data for up to MaxEpochs epochs
// and returns the full step history. Training continues from the current
// state, so a second call resumes where the first left off.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if a point's dimension differs from
//     len(Weights()). The Result is zero and the Perceptron is unchanged,
//     though hooks may already have seen steps from the aborted run.
//
// Complexity: O(E·n·d) time for E epochs over n points of dimension d;
// O(U·d) space for U recorded updates.
func (p *Perceptron) Train(data []dataset.LabelledDataPoint) (Result, error) {
	st := p.st.clone()
	steps := []Step{st.snapshot(0)}

	for epoch := 1; epoch <= p.maxEpochs; epoch++ {
		updates := 0
		for i, lp := range data {
			x := lp.Point()
			y := lp.Label().Float()

			score, err := x.Dot(st.weights)
			if err != nil {
				return Result{}, fmt.Errorf("%s: epoch %d, point %d: %w", methodTrain, epoch, i, err)
			}
			score += st.bias

			if y*score <= p.margin {
				w, err := x.AddScaledTo(st.weights, y)
				if err != nil {
					return Result{}, fmt.Errorf("%s: epoch %d, point %d: %w", methodTrain, epoch, i, err)
				}
				st.weights = w
				st.bias += y
				updates++

				steps = append(steps, st.snapshot(epoch))
				p.opts.onUpdate(st.snapshot(epoch))
			}
		}
		p.opts.onEpoch(epoch, updates)

		if updates == 0 {
			p.st = st
			return Result{Steps: steps, Converged: true, Epochs: epoch}, nil
		}
	}

	p.st = st
	return Result{Steps: steps, Converged: false, Epochs: p.maxEpochs}, nil
}

// Predict returns the raw score w·x + b. Its sign is the class; Predict
// itself never thresholds.
//
// Errors:
//   - vecmath.ErrDimensionMismatch if x.Dim() != len(Weights()).
//
// Complexity: O(d) time, O(1) space.
func (p *Perceptron) Predict(x dataset.DataPoint) (float64, error) {
	score, err := x.Dot(p.st.weights)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodPredict, err)
	}

	return score + p.st.bias, nil
}

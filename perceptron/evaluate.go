// SPDX-License-Identifier: MIT

package perceptron

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsep/dataset"
)

const methodEvaluate = "Evaluate"

// Evaluate scores every point in data with the current state.
//
// Errors:
//   - vecmath.ErrDimensionMismatch on the first point of the wrong dimension.
//
// Complexity: O(n·d) time, O(1) space.
func (p *Perceptron) Evaluate(data []dataset.LabelledDataPoint) (Evaluation, error) {
	ev := Evaluation{Total: len(data)}
	if len(data) == 0 {
		return ev, nil
	}

	ev.MinMargin = math.Inf(1)
	for i, lp := range data {
		score, err := lp.Point().Dot(p.st.weights)
		if err != nil {
			return Evaluation{}, fmt.Errorf("%s: point %d: %w", methodEvaluate, i, err)
		}
		m := lp.Label().Float() * (score + p.st.bias)
		if m > 0 {
			ev.Correct++
		}
		ev.MinMargin = math.Min(ev.MinMargin, m)
	}
	ev.Mistakes = ev.Total - ev.Correct
	ev.Accuracy = float64(ev.Correct) / float64(ev.Total)

	return ev, nil
}

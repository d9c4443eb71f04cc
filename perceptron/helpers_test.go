package perceptron_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsep/dataset"
	"github.com/katalvlaran/linsep/perceptron"
)

const tol = 1e-9

// lpt builds a labelled point or fails the test.
func lpt(t testing.TB, label dataset.Label, features ...float64) dataset.LabelledDataPoint {
	t.Helper()
	lp, err := dataset.NewLabelledDataPoint(features, label)
	require.NoError(t, err)
	return lp
}

func mustNew(t testing.TB, margin float64, w []float64, b float64, epochs int, opts ...perceptron.Option) *perceptron.Perceptron {
	t.Helper()
	p, err := perceptron.New(margin, w, b, epochs, opts...)
	require.NoError(t, err)
	return p
}

// wideMarginData returns seeded 2-D points labelled by x0 + x1 = 0, keeping
// only those at least 2 units (in score) from the line.
func wideMarginData(t testing.TB, seed int64) []dataset.LabelledDataPoint {
	t.Helper()
	gen, err := dataset.NewGenerator(200, 2)
	require.NoError(t, err)
	raw, err := gen.GenerateFixed([]float64{1, 1}, 0, dataset.WithSeed(seed))
	require.NoError(t, err)

	out := make([]dataset.LabelledDataPoint, 0, len(raw))
	for _, lp := range raw {
		if s := lp.Point().At(0) + lp.Point().At(1); s >= 2 || s <= -2 {
			out = append(out, lp)
		}
	}
	require.NotEmpty(t, out)
	return out
}

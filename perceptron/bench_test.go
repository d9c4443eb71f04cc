package perceptron_test

import "testing"

// BenchmarkTrain_WideMargin measures a full converging run on ~160 2-D points.
func BenchmarkTrain_WideMargin(b *testing.B) {
	data := wideMarginData(b, 1)
	base := mustNew(b, 0, []float64{0, 0}, 0, 1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = base.Clone().Train(data)
	}
}

// BenchmarkPredict measures a single score evaluation.
func BenchmarkPredict(b *testing.B) {
	data := wideMarginData(b, 2)
	p := mustNew(b, 0, []float64{1, 1}, 0, 1)
	x := data[0].Point()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Predict(x)
	}
}


package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/linsep/dataset"
)

// ExampleGenerator_GenerateRandom builds a reproducible 2-D dataset and
// verifies it against the hyperplane that labelled it.
func ExampleGenerator_GenerateRandom() {
	gen, err := dataset.NewGenerator(100, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	data, plane := gen.GenerateRandomWithHyperplane(dataset.WithSeed(42))
	again := gen.GenerateRandom(dataset.WithSeed(42))
	ok, _ := plane.Separates(data)
	same, _ := plane.Separates(again)

	fmt.Println("points:", len(data), "dim:", data[0].Dim())
	fmt.Println("separable:", ok, same)
	// Output:
	// points: 100 dim: 2
	// separable: true true
}

// ExampleGenerator_GenerateFixed labels points by a caller-chosen line y = x.
func ExampleGenerator_GenerateFixed() {
	gen, _ := dataset.NewGenerator(10, 2)

	if _, err := gen.GenerateFixed([]float64{1}, 0); err != nil {
		fmt.Println(err)
	}

	data, _ := gen.GenerateFixed([]float64{-1, 1}, 0, dataset.WithSeed(1))
	ok, _ := dataset.Hyperplane{Coefficients: []float64{-1, 1}}.Separates(data)
	fmt.Println(len(data), ok)
	// Output:
	// GenerateFixed: len(a)=1, len(b)=2: vecmath: dimension mismatch
	// 10 true
}

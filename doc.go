// Package linsep generates linearly separable datasets and trains a
// margin perceptron on them, keeping every update so the learning
// trajectory can be replayed step by step.
//
// Packages:
//
//	vecmath/    — Dot, Scale, Add over float64 vectors; ErrDimensionMismatch
//	dataset/    — DataPoint, LabelledDataPoint, Hyperplane and the Generator
//	perceptron/ — Perceptron: Train (step history + convergence), Predict, Evaluate
//
// Quick start:
//
//	gen, _ := dataset.NewGenerator(100, 2)
//	data := gen.GenerateRandom(dataset.WithSeed(42))
//
//	p, _ := perceptron.New(0, []float64{0, 0}, 0, 50)
//	res, err := p.Train(data)
//	// res.Steps[0] is the initial state, res.Steps[i] the state after update i.
//	// res.Converged reports whether an epoch finished without updates.
//
// Everything is pure, synchronous and allocation-explicit: no goroutines,
// no I/O, no global random state. Non-convergence is a result, not an error.
//
//	go get github.com/katalvlaran/linsep
package linsep

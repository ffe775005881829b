// Package modelingongenerateddata is a playground for modeling on generated
// data: reproducible synthetic regression problems with a known ground
// truth, ready for estimator experiments.
//
// 🚀 What is it?
//
//	A small, pure-Go library that fixes a parametrized coefficient vector
//	once, then hands out as many independent labeled sample batches from
//	that distribution as you ask for:
//		• Constructed ground truth — seeded, sparse (exactly NInformative
//		  non-zero rows), repeatable per seed
//		• Reconstructed ground truth — bring your own coefficients
//		• Design matrices — i.i.d. normal, or low-rank with heavy tails
//		• Labels — linear projection + bias + optional Gaussian noise
//
// ✨ Why use it?
//
//   - Known answers – the true coefficients are yours to compare against
//   - Deterministic – one seed fixes the problem, one seed fixes a batch
//   - gonum-native – batches expose mat.Matrix views for direct consumption
//
// Everything lives in one subpackage:
//
//	regression/ — coefficient providers, sample generation, Dataset tables
//
// Quick start:
//
//	p, err := regression.NewConstructed(regression.DefaultConfig())
//	ds, err := regression.GenerateSamples(p, 100, regression.NewSource(42))
//
// See regression/example_test.go for runnable examples.
//
//	go get github.com/pcountryman/modelingongenerateddata/regression
package modelingongenerateddata

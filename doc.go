// Package boosting implements functional-gradient boosting with feature
// selecting weak learners, in the style popularized for vision tasks by
// discrete AdaBoost and its lookup-table extensions.
//
// Each training round derives the loss gradient of the current ensemble,
// fits a weak machine to it, solves a per-output step width, and appends
// the weighted machine to the ensemble. Weak machines select a single
// feature per output: decision stumps threshold a continuous feature,
// lookup tables map a pre-quantized feature code to ±1.
//
// # Quick Start
//
// Train a ten-round stump classifier with the exponential loss:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/tiagofrepereira2012/boosting/loss"
//	    "github.com/tiagofrepereira2012/boosting/trainer"
//	)
//
//	func main() {
//	    features := mat.NewDense(6, 1, []float64{1, 2, 3, 10, 11, 12})
//	    targets := mat.NewDense(6, 1, []float64{-1, -1, -1, 1, 1, 1})
//
//	    booster, err := trainer.NewBooster(trainer.NewStumpTrainer(), loss.NewExponential(), 10)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    model, err := booster.Train(features, targets)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    _, labels, err := model.ClassifyBatch(features)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(labels))
//	}
//
// # Packages
//
//   - loss: pluggable loss functions (exponential, logit, Jesorsky)
//   - machine: frozen weak machines and the boosted ensemble
//   - trainer: stump and lookup-table trainers plus the boosting driver
//   - preprocessing: uniform feature discretization for table learners
//   - metrics: label accuracy and margin diagnostics
package boosting

// Package loss defines the pluggable loss functions driving the boosting
// loop.
//
// A loss function maps a target matrix and a score matrix of identical
// shape (N samples by K outputs) to a per-sample, per-output loss matrix
// and a gradient matrix of the same shape. The gradient is consumed
// directly by the weak trainers as the fitting target for the next round.
package loss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// Function is the contract every loss implementation satisfies. Both
// methods must accept any score shape the ensemble can produce and return
// matrices of exactly that shape.
type Function interface {
	// Loss computes the per-sample, per-output loss.
	Loss(targets, scores *mat.Dense) (*mat.Dense, error)

	// Gradient computes the loss gradient with respect to the scores.
	Gradient(targets, scores *mat.Dense) (*mat.Dense, error)

	// Name identifies the loss in logs.
	Name() string
}

// AnalyticStepper is implemented by losses that admit a closed-form optimal
// step size along a single weak-score direction. The weight solver prefers
// it over the numeric line search.
type AnalyticStepper interface {
	// Step returns the scalar weight minimizing the total loss of
	// scores + weight*direction for one output column. direction entries
	// are in {-1, 0, +1}.
	Step(targets, scores, direction []float64) float64
}

// checkShapes validates that targets and scores agree in both dimensions.
func checkShapes(op string, targets, scores *mat.Dense) error {
	tr, tc := targets.Dims()
	sr, sc := scores.Dims()
	if tr != sr {
		return errors.NewDimensionError(op, tr, sr, 0)
	}
	if tc != sc {
		return errors.NewDimensionError(op, tc, sc, 1)
	}
	if tr == 0 || tc == 0 {
		return errors.Wrap(errors.ErrEmptyData, "boosting: "+op)
	}
	return nil
}

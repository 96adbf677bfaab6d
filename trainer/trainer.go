// Package trainer implements the boosting control loop and the weak
// learners it drives: the threshold-based stump trainer and the
// lookup-table trainer.
//
// Trainer objects are mutable and reused across rounds; every call to
// Train returns a fresh, immutable machine snapshot, so the growing
// ensemble never holds a reference to live trainer state.
package trainer

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/machine"
)

// WeakTrainer fits one weak machine to the current loss gradient. The
// gradient matrix has one column per output and is consumed as the fitting
// target (the pseudo-residual).
type WeakTrainer interface {
	Train(features mat.Matrix, gradient *mat.Dense) (machine.Weak, error)
}

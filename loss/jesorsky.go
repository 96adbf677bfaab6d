package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// Jesorsky is a localization loss for continuous regression targets laid
// out as landmark coordinate pairs: column 2j holds the vertical and
// column 2j+1 the horizontal coordinate of landmark j. Residuals are
// normalized by the inter-ocular distance, the Euclidean distance between
// the first two target landmarks, so the loss is scale-invariant across
// samples.
//
// It follows the same two-method contract as the classification losses and
// is intended for regression-style weak learners only.
type Jesorsky struct{}

// NewJesorsky creates a Jesorsky localization loss.
func NewJesorsky() *Jesorsky {
	return &Jesorsky{}
}

// Loss implements Function. The normalized Euclidean residual of each
// landmark is split evenly across its two coordinate cells, so the
// per-sample row sum equals the total normalized localization error.
func (l *Jesorsky) Loss(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := l.check("Jesorsky.Loss", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		scale, err := interOcular(targets, i)
		if err != nil {
			return nil, err
		}
		for j := 0; j < cols/2; j++ {
			dy := scores.At(i, 2*j) - targets.At(i, 2*j)
			dx := scores.At(i, 2*j+1) - targets.At(i, 2*j+1)
			dist := math.Hypot(dy, dx) / scale
			out.Set(i, 2*j, 0.5*dist)
			out.Set(i, 2*j+1, 0.5*dist)
		}
	}
	return out, nil
}

// Gradient implements Function.
func (l *Jesorsky) Gradient(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := l.check("Jesorsky.Gradient", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		scale, err := interOcular(targets, i)
		if err != nil {
			return nil, err
		}
		for j := 0; j < cols/2; j++ {
			dy := scores.At(i, 2*j) - targets.At(i, 2*j)
			dx := scores.At(i, 2*j+1) - targets.At(i, 2*j+1)
			dist := math.Hypot(dy, dx)
			if dist == 0 {
				continue
			}
			out.Set(i, 2*j, dy/(dist*scale))
			out.Set(i, 2*j+1, dx/(dist*scale))
		}
	}
	return out, nil
}

// Name implements Function.
func (l *Jesorsky) Name() string {
	return "jesorsky"
}

func (l *Jesorsky) check(op string, targets, scores *mat.Dense) error {
	if err := checkShapes(op, targets, scores); err != nil {
		return err
	}
	_, cols := targets.Dims()
	if cols < 4 || cols%2 != 0 {
		return errors.NewValidationError("targets",
			"localization targets need an even number of columns with at least two landmarks", cols)
	}
	return nil
}

// interOcular computes the distance between the first two target landmarks
// of one sample.
func interOcular(targets *mat.Dense, i int) (float64, error) {
	dy := targets.At(i, 0) - targets.At(i, 2)
	dx := targets.At(i, 1) - targets.At(i, 3)
	d := math.Hypot(dy, dx)
	if d == 0 {
		return 0, errors.NewValidationError("targets",
			"zero inter-ocular distance; the first two landmarks must differ", i)
	}
	return d, nil
}

package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Logit is the logistic loss log(1+exp(-y*f)) over {-1, +1} targets. Its
// gradient magnitude is bounded by 1, which keeps lookup-table training
// stable when individual buckets accumulate many samples.
type Logit struct{}

// NewLogit creates a logistic loss.
func NewLogit() *Logit {
	return &Logit{}
}

// Loss implements Function.
func (l *Logit) Loss(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := checkShapes("Logit.Loss", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			out.Set(i, k, logOnePlusExp(-targets.At(i, k)*scores.At(i, k)))
		}
	}
	return out, nil
}

// Gradient implements Function.
func (l *Logit) Gradient(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := checkShapes("Logit.Gradient", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			y := targets.At(i, k)
			margin := y * scores.At(i, k)
			out.Set(i, k, -y*sigmoid(-margin))
		}
	}
	return out, nil
}

// Name implements Function.
func (l *Logit) Name() string {
	return "logit"
}

// logOnePlusExp computes log(1+exp(x)) without overflowing for large x.
func logOnePlusExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// sigmoid computes 1/(1+exp(-x)) without overflowing for large |x|.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

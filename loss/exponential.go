package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Exponential is the exponential loss exp(-y*f) over {-1, +1} targets.
// Combined with the stump trainer it reproduces classical discrete
// AdaBoost: the negated gradient equals the usual AdaBoost sample weights.
type Exponential struct{}

// NewExponential creates an exponential loss.
func NewExponential() *Exponential {
	return &Exponential{}
}

// Loss implements Function.
func (l *Exponential) Loss(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := checkShapes("Exponential.Loss", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			out.Set(i, k, math.Exp(-targets.At(i, k)*scores.At(i, k)))
		}
	}
	return out, nil
}

// Gradient implements Function.
func (l *Exponential) Gradient(targets, scores *mat.Dense) (*mat.Dense, error) {
	if err := checkShapes("Exponential.Gradient", targets, scores); err != nil {
		return nil, err
	}
	rows, cols := targets.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			y := targets.At(i, k)
			out.Set(i, k, -y*math.Exp(-y*scores.At(i, k)))
		}
	}
	return out, nil
}

// Name implements Function.
func (l *Exponential) Name() string {
	return "exponential"
}

// stepClamp bounds the exponential step when one side of the margin split
// is empty, keeping a perfectly classifying direction at a large but
// finite weight.
const stepClamp = 1e-12

// Step implements AnalyticStepper. For exponential loss the minimizer of
// sum exp(-y*(f + a*d)) is a = 0.5*ln(S+/S-), where S+ and S- sum the
// current exponential weights exp(-y*f) over samples with positive and
// negative margin sign y*d. Samples with d == 0 do not move and are
// excluded. A direction that moves nothing yields a zero step.
func (l *Exponential) Step(targets, scores, direction []float64) float64 {
	var sumAgree, sumDisagree float64
	for i := range targets {
		margin := targets[i] * direction[i]
		if margin == 0 {
			continue
		}
		w := math.Exp(-targets[i] * scores[i])
		if margin > 0 {
			sumAgree += w
		} else {
			sumDisagree += w
		}
	}
	if sumAgree == 0 && sumDisagree == 0 {
		return 0
	}
	return 0.5 * math.Log((sumAgree+stepClamp)/(sumDisagree+stepClamp))
}

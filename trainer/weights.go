package trainer

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/tiagofrepereira2012/boosting/loss"
	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// solveWeights finds the per-output weight vector minimizing the total
// loss of scores + weight⊙weakScores. Losses that provide an analytic
// step (exponential) are solved output by output in closed form; all
// others go through a joint L-BFGS search over the K weights starting
// from zero, mirroring the numeric solver boosting traditionally uses for
// logistic and localization losses.
func solveWeights(lossFn loss.Function, targets, scores, weakScores *mat.Dense, round int) ([]float64, error) {
	_, outputs := targets.Dims()

	var weights []float64
	if stepper, ok := lossFn.(loss.AnalyticStepper); ok {
		weights = make([]float64, outputs)
		for k := 0; k < outputs; k++ {
			weights[k] = stepper.Step(
				mat.Col(nil, k, targets),
				mat.Col(nil, k, scores),
				mat.Col(nil, k, weakScores),
			)
		}
	} else {
		var err error
		weights, err = searchWeights(lossFn, targets, scores, weakScores)
		if err != nil {
			if allZero(weakScores) {
				// Degenerate round: nothing to move along, a zero-weight
				// machine is the well-defined result.
				return make([]float64, outputs), nil
			}
			return nil, errors.Wrapf(err, "boosting: weight search failed at round %d", round)
		}
	}

	if err := errors.CheckNumericalStability("solveWeights", weights, round); err != nil {
		return nil, err
	}
	return weights, nil
}

// searchWeights minimizes the summed loss over the K-dimensional weight
// vector with L-BFGS. The gradient threshold matches the loose tolerance
// numeric boosting solvers conventionally use; on separable data the loss
// has no finite minimizer and the threshold is what stops the descent.
func searchWeights(lossFn loss.Function, targets, scores, weakScores *mat.Dense) ([]float64, error) {
	rows, outputs := targets.Dims()
	trial := mat.NewDense(rows, outputs, nil)

	apply := func(x []float64) {
		for i := 0; i < rows; i++ {
			for k := 0; k < outputs; k++ {
				trial.Set(i, k, scores.At(i, k)+x[k]*weakScores.At(i, k))
			}
		}
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			apply(x)
			lossVals, err := lossFn.Loss(targets, trial)
			if err != nil {
				return math.Inf(1)
			}
			return mat.Sum(lossVals)
		},
		Grad: func(grad, x []float64) {
			apply(x)
			gradVals, err := lossFn.Gradient(targets, trial)
			if err != nil {
				for k := range grad {
					grad[k] = 0
				}
				return
			}
			for k := 0; k < outputs; k++ {
				var sum float64
				for i := 0; i < rows; i++ {
					sum += gradVals.At(i, k) * weakScores.At(i, k)
				}
				grad[k] = sum
			}
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: 1e-6,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 50,
		},
	}
	result, err := optimize.Minimize(problem, make([]float64, outputs), settings, &optimize.LBFGS{})
	if err != nil {
		return nil, err
	}
	return result.X, nil
}

func allZero(m *mat.Dense) bool {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			if m.At(i, k) != 0 {
				return false
			}
		}
	}
	return true
}

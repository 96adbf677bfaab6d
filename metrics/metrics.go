// Package metrics provides evaluation helpers for boosted classifiers
// operating on ±1 label matrices.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

func checkPair(op string, a, b *mat.Dense) (int, int, error) {
	rowsA, colsA := a.Dims()
	rowsB, colsB := b.Dims()
	if rowsA == 0 || colsA == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, "boosting: "+op)
	}
	if rowsA != rowsB {
		return 0, 0, errors.NewDimensionError(op, rowsA, rowsB, 0)
	}
	if colsA != colsB {
		return 0, 0, errors.NewDimensionError(op, colsA, colsB, 1)
	}
	return rowsA, colsA, nil
}

// CorrectLabels counts the entries where the predicted labels agree with
// the true ones, over all N×K cells.
func CorrectLabels(yTrue, yPred *mat.Dense) (int, error) {
	rows, cols, err := checkPair("CorrectLabels", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			if yTrue.At(i, k) == yPred.At(i, k) {
				correct++
			}
		}
	}
	return correct, nil
}

// Accuracy is the fraction of agreeing label cells.
func Accuracy(yTrue, yPred *mat.Dense) (float64, error) {
	correct, err := CorrectLabels(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	rows, cols := yTrue.Dims()
	return float64(correct) / float64(rows*cols), nil
}

// MeanMargin is the mean of the per-cell margins y·f. Positive margins
// mean the scores point toward the true labels.
func MeanMargin(targets, scores *mat.Dense) (float64, error) {
	rows, cols, err := checkPair("MeanMargin", targets, scores)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			sum += targets.At(i, k) * scores.At(i, k)
		}
	}
	return sum / float64(rows*cols), nil
}

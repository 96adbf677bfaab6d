package machine

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// LUT is a lookup-table classifier over integer-coded features. For each
// output k it reads the feature column selected[k], interprets the value as
// a code in [0, numEntries), and answers table[code, k]. With shared
// feature selection all entries of selected are equal; with independent
// selection each output may read a different column.
type LUT struct {
	table      *mat.Dense
	selected   []int
	numEntries int
}

// NewLUT creates an immutable lookup-table machine from a numEntries-by-K
// table of {-1, +1} values and a length-K vector of selected feature
// indices. Both inputs are copied.
func NewLUT(table *mat.Dense, selected []int) (*LUT, error) {
	numEntries, outputs := table.Dims()
	if numEntries < 1 {
		return nil, errors.NewValidationError("table", "must have at least one entry", numEntries)
	}
	if len(selected) != outputs {
		return nil, errors.NewDimensionError("NewLUT", outputs, len(selected), 1)
	}
	tableCopy := mat.NewDense(numEntries, outputs, nil)
	tableCopy.Copy(table)
	selectedCopy := make([]int, len(selected))
	copy(selectedCopy, selected)
	return &LUT{table: tableCopy, selected: selectedCopy, numEntries: numEntries}, nil
}

// NumEntries returns the number of quantization levels the table covers.
func (l *LUT) NumEntries() int {
	return l.numEntries
}

// Table returns a copy of the lookup table for introspection or
// serialization by an external persistence layer.
func (l *LUT) Table() *mat.Dense {
	out := mat.NewDense(l.numEntries, len(l.selected), nil)
	out.Copy(l.table)
	return out
}

// NumOutputs implements Weak.
func (l *LUT) NumOutputs() int {
	return len(l.selected)
}

// Indices implements Weak.
func (l *LUT) Indices() []int {
	out := make([]int, len(l.selected))
	copy(out, l.selected)
	return out
}

// Score implements Weak.
func (l *LUT) Score(row []float64) ([]float64, error) {
	out := make([]float64, len(l.selected))
	for k, feature := range l.selected {
		if feature >= len(row) {
			return nil, errors.NewDimensionError("LUT.Score", feature+1, len(row), 1)
		}
		code, err := checkCode("LUT.Score", row[feature], l.numEntries, 0, feature)
		if err != nil {
			return nil, err
		}
		out[k] = l.table.At(code, k)
	}
	return out, nil
}

// ScoreBatch implements Weak.
func (l *LUT) ScoreBatch(features mat.Matrix) (*mat.Dense, error) {
	rows, cols := features.Dims()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: LUT.ScoreBatch")
	}
	out := mat.NewDense(rows, len(l.selected), nil)
	for k, feature := range l.selected {
		if feature >= cols {
			return nil, errors.NewDimensionError("LUT.ScoreBatch", feature+1, cols, 1)
		}
		for i := 0; i < rows; i++ {
			code, err := checkCode("LUT.ScoreBatch", features.At(i, feature), l.numEntries, i, feature)
			if err != nil {
				return nil, err
			}
			out.Set(i, k, l.table.At(code, k))
		}
	}
	return out, nil
}

// checkCode validates that a feature value is an integral code in
// [0, numEntries) and returns it as an index.
func checkCode(op string, value float64, numEntries, sample, feature int) (int, error) {
	code := int(value)
	if value != math.Trunc(value) || code < 0 || code >= numEntries {
		return 0, errors.NewQuantizationError(op, value, numEntries, sample, feature)
	}
	return code, nil
}

// ValidateCodes checks every entry of an integer-coded feature matrix
// against the quantization range. Trainers call it once per round before
// touching the data.
func ValidateCodes(op string, features mat.Matrix, numEntries int) error {
	rows, cols := features.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if _, err := checkCode(op, features.At(i, j), numEntries, i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

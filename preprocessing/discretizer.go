// Package preprocessing provides feature transforms that prepare raw data
// for the weak trainers.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// Discretizer maps continuous features onto the integer codes
// 0..NumEntries-1 that a lookup-table trainer consumes. Fit learns the
// per-feature value range; Transform buckets uniformly over that range and
// clamps values outside it to the edge codes.
type Discretizer struct {
	numEntries int
	min        []float64
	max        []float64
	fitted     bool
}

// NewDiscretizer creates a discretizer emitting numEntries codes per
// feature.
func NewDiscretizer(numEntries int) (*Discretizer, error) {
	if numEntries < 2 {
		return nil, errors.NewValidationError("numEntries", "must be at least 2", numEntries)
	}
	return &Discretizer{numEntries: numEntries}, nil
}

// NumEntries returns the size of the code alphabet.
func (d *Discretizer) NumEntries() int { return d.numEntries }

// Fit learns the per-feature minimum and maximum.
func (d *Discretizer) Fit(features mat.Matrix) error {
	rows, cols := features.Dims()
	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, "boosting: Discretizer.Fit")
	}

	d.min = make([]float64, cols)
	d.max = make([]float64, cols)
	for j := 0; j < cols; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < rows; i++ {
			v := features.At(i, j)
			if err := errors.CheckScalar("Discretizer.Fit", v, 0); err != nil {
				return err
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		d.min[j] = lo
		d.max[j] = hi
	}
	d.fitted = true
	return nil
}

// Transform maps each value onto its bucket code. Constant features map to
// code 0.
func (d *Discretizer) Transform(features mat.Matrix) (*mat.Dense, error) {
	if !d.fitted {
		return nil, errors.NewNotFittedError("Discretizer", "Transform")
	}
	rows, cols := features.Dims()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: Discretizer.Transform")
	}
	if cols != len(d.min) {
		return nil, errors.NewDimensionError("Discretizer.Transform", len(d.min), cols, 1)
	}

	codes := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		span := d.max[j] - d.min[j]
		for i := 0; i < rows; i++ {
			if span == 0 {
				continue
			}
			scaled := (features.At(i, j) - d.min[j]) / span * float64(d.numEntries)
			code := math.Floor(scaled)
			if code < 0 {
				code = 0
			}
			if code > float64(d.numEntries-1) {
				code = float64(d.numEntries - 1)
			}
			codes.Set(i, j, code)
		}
	}
	return codes, nil
}

// FitTransform fits on the data and transforms it in one call.
func (d *Discretizer) FitTransform(features mat.Matrix) (*mat.Dense, error) {
	if err := d.Fit(features); err != nil {
		return nil, err
	}
	return d.Transform(features)
}

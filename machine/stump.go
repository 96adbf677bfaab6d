package machine

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// Stump is a single-feature threshold classifier with a polarity sign. It
// operates on real-valued features and always produces one output.
type Stump struct {
	featureIndex int
	threshold    float64
	polarity     float64
}

// NewStump creates an immutable stump machine. An invalid feature index
// fails here, not at first use.
func NewStump(featureIndex int, threshold, polarity float64) (*Stump, error) {
	if featureIndex < 0 {
		return nil, errors.NewValidationError("featureIndex", "must not be negative", featureIndex)
	}
	return &Stump{featureIndex: featureIndex, threshold: threshold, polarity: polarity}, nil
}

// FeatureIndex returns the feature column the stump thresholds.
func (s *Stump) FeatureIndex() int {
	return s.featureIndex
}

// Threshold returns the decision threshold.
func (s *Stump) Threshold() float64 {
	return s.threshold
}

// Polarity returns the direction sign, -1 or +1.
func (s *Stump) Polarity() float64 {
	return s.polarity
}

// NumOutputs implements Weak.
func (s *Stump) NumOutputs() int {
	return 1
}

// Indices implements Weak.
func (s *Stump) Indices() []int {
	return []int{s.featureIndex}
}

// Score implements Weak: polarity for feature values at or above the
// threshold, negated polarity below it.
func (s *Stump) Score(row []float64) ([]float64, error) {
	if s.featureIndex >= len(row) {
		return nil, errors.NewDimensionError("Stump.Score", s.featureIndex+1, len(row), 1)
	}
	if row[s.featureIndex] >= s.threshold {
		return []float64{s.polarity}, nil
	}
	return []float64{-s.polarity}, nil
}

// ScoreBatch implements Weak.
func (s *Stump) ScoreBatch(features mat.Matrix) (*mat.Dense, error) {
	rows, cols := features.Dims()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: Stump.ScoreBatch")
	}
	if s.featureIndex >= cols {
		return nil, errors.NewDimensionError("Stump.ScoreBatch", s.featureIndex+1, cols, 1)
	}
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		if features.At(i, s.featureIndex) >= s.threshold {
			out.Set(i, 0, s.polarity)
		} else {
			out.Set(i, 0, -s.polarity)
		}
	}
	return out, nil
}

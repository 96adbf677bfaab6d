package trainer

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/core/parallel"
	"github.com/tiagofrepereira2012/boosting/machine"
	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// SelectionType controls how a multivariate lookup-table trainer picks
// feature indices across outputs.
type SelectionType int

const (
	// SelectionIndependent lets every output pick its own best feature.
	SelectionIndependent SelectionType = iota

	// SelectionShared forces all outputs onto the single feature that
	// minimizes the summed selection score.
	SelectionShared
)

// String returns the selection type name.
func (s SelectionType) String() string {
	switch s {
	case SelectionIndependent:
		return "independent"
	case SelectionShared:
		return "shared"
	default:
		return "unknown"
	}
}

// LUTTrainer fits lookup-table classifiers over integer-coded features.
// The trainer instance is reused across rounds; its scratch state is
// snapshotted into a fresh machine.LUT on every Train call.
type LUTTrainer struct {
	numEntries int
	numOutputs int
	selection  SelectionType

	// Scratch reused across rounds.
	selected []int
	hist     []float64
}

// NewLUTTrainer creates a lookup-table trainer for features coded in
// [0, numEntries). Invalid parameters fail here, not at first use.
func NewLUTTrainer(numEntries, numOutputs int, selection SelectionType) (*LUTTrainer, error) {
	if numEntries < 2 {
		return nil, errors.NewValidationError("numEntries", "must be at least 2", numEntries)
	}
	if numOutputs < 1 {
		return nil, errors.NewValidationError("numOutputs", "must be at least 1", numOutputs)
	}
	if selection != SelectionIndependent && selection != SelectionShared {
		return nil, errors.NewValidationError("selection",
			"must be SelectionIndependent or SelectionShared", int(selection))
	}
	return &LUTTrainer{
		numEntries: numEntries,
		numOutputs: numOutputs,
		selection:  selection,
		selected:   make([]int, numOutputs),
		hist:       make([]float64, numEntries),
	}, nil
}

// NumEntries returns the number of quantization levels.
func (t *LUTTrainer) NumEntries() int {
	return t.numEntries
}

// Selection returns the configured selection type.
func (t *LUTTrainer) Selection() SelectionType {
	return t.selection
}

// Train implements WeakTrainer.
//
// For every (feature, output) pair it accumulates the histogram gradient:
// the sum of that output's gradient over all samples sharing a feature
// code, one accumulation pass per feature. The separability score of the
// pair is the negated sum of absolute bucket values; lower means better
// separation. Independent selection argmins the score per output, shared
// selection argmins the score summed over outputs; ties resolve to the
// first feature in index order. The winning histograms are recomputed and
// thresholded into the lookup table: buckets with non-positive gradient
// sums, including empty ones, map to -1, the rest to +1.
func (t *LUTTrainer) Train(features mat.Matrix, gradient *mat.Dense) (machine.Weak, error) {
	rows, cols := features.Dims()
	gr, gc := gradient.Dims()
	if gr != rows {
		return nil, errors.NewDimensionError("LUTTrainer.Train", rows, gr, 0)
	}
	if gc != t.numOutputs {
		return nil, errors.NewDimensionError("LUTTrainer.Train", t.numOutputs, gc, 1)
	}
	if rows == 0 || cols == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: LUTTrainer.Train")
	}
	if err := machine.ValidateCodes("LUTTrainer.Train", features, t.numEntries); err != nil {
		return nil, err
	}

	scores := t.selectionScores(features, gradient, rows, cols)

	switch t.selection {
	case SelectionIndependent:
		for k := 0; k < t.numOutputs; k++ {
			best := 0
			for d := 1; d < cols; d++ {
				if scores[d*t.numOutputs+k] < scores[best*t.numOutputs+k] {
					best = d
				}
			}
			t.selected[k] = best
		}
	case SelectionShared:
		best := 0
		bestSum := math.Inf(1)
		for d := 0; d < cols; d++ {
			var sum float64
			for k := 0; k < t.numOutputs; k++ {
				sum += scores[d*t.numOutputs+k]
			}
			if sum < bestSum {
				bestSum = sum
				best = d
			}
		}
		for k := 0; k < t.numOutputs; k++ {
			t.selected[k] = best
		}
	}

	table := mat.NewDense(t.numEntries, t.numOutputs, nil)
	for k := 0; k < t.numOutputs; k++ {
		t.histogramGradient(features, gradient, t.selected[k], k, rows, t.hist)
		for j := 0; j < t.numEntries; j++ {
			if t.hist[j] <= 0 {
				table.Set(j, k, -1)
			} else {
				table.Set(j, k, 1)
			}
		}
	}
	return machine.NewLUT(table, t.selected)
}

// selectionScores computes the separability score for every
// (feature, output) pair, laid out feature-major. Features are scanned in
// parallel; each worker owns a private histogram buffer and writes disjoint
// slots, so the later argmin scans see a deterministic result.
func (t *LUTTrainer) selectionScores(features mat.Matrix, gradient *mat.Dense, rows, cols int) []float64 {
	scores := make([]float64, cols*t.numOutputs)
	parallel.ParallelizeWithThreshold(cols, parallelFeatureThreshold, func(start, end int) {
		hist := make([]float64, t.numEntries*t.numOutputs)
		for d := start; d < end; d++ {
			for j := range hist {
				hist[j] = 0
			}
			// One bucketed accumulation pass over the samples covers all
			// outputs for this feature.
			for i := 0; i < rows; i++ {
				code := int(features.At(i, d))
				for k := 0; k < t.numOutputs; k++ {
					hist[code*t.numOutputs+k] += gradient.At(i, k)
				}
			}
			for k := 0; k < t.numOutputs; k++ {
				var sum float64
				for j := 0; j < t.numEntries; j++ {
					sum += math.Abs(hist[j*t.numOutputs+k])
				}
				scores[d*t.numOutputs+k] = -sum
			}
		}
	})
	return scores
}

// histogramGradient accumulates gradient column k into buckets keyed by
// the codes of feature d.
func (t *LUTTrainer) histogramGradient(features mat.Matrix, gradient *mat.Dense, d, k, rows int, hist []float64) {
	for j := range hist {
		hist[j] = 0
	}
	for i := 0; i < rows; i++ {
		hist[int(features.At(i, d))] += gradient.At(i, k)
	}
}

package trainer

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/core/parallel"
	"github.com/tiagofrepereira2012/boosting/machine"
	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// parallelFeatureThreshold is the feature count below which the per-feature
// searches run sequentially.
const parallelFeatureThreshold = 16

// StumpTrainer fits single-feature threshold classifiers to a univariate
// gradient. It operates on real-valued features and rejects multivariate
// gradients at call time.
type StumpTrainer struct{}

// NewStumpTrainer creates a stump trainer.
func NewStumpTrainer() *StumpTrainer {
	return &StumpTrainer{}
}

// stumpCandidate is the best split found for one feature dimension.
type stumpCandidate struct {
	threshold float64
	polarity  float64
	gain      float64
}

// Train implements WeakTrainer. For every feature it negates the gradient
// into per-sample weights, sorts the samples by feature value, and sweeps
// the cumulative weight sum: the gain of a split after sorted position i is
// the total weight minus the cumulative weight up to i. The feature with
// the largest absolute gain wins, ties broken by the first feature in
// index order.
func (t *StumpTrainer) Train(features mat.Matrix, gradient *mat.Dense) (machine.Weak, error) {
	rows, cols := features.Dims()
	gr, gc := gradient.Dims()
	if gr != rows {
		return nil, errors.NewDimensionError("StumpTrainer.Train", rows, gr, 0)
	}
	if gc != 1 {
		return nil, errors.NewDimensionError("StumpTrainer.Train", 1, gc, 1)
	}
	if rows == 0 || cols == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: StumpTrainer.Train")
	}

	weights := make([]float64, rows)
	for i := 0; i < rows; i++ {
		weights[i] = -gradient.At(i, 0)
	}

	// The per-feature searches are independent; each writes its own slot
	// and the winner is reduced serially afterwards so the tie-break stays
	// deterministic.
	candidates := make([]stumpCandidate, cols)
	parallel.ParallelizeWithThreshold(cols, parallelFeatureThreshold, func(start, end int) {
		search := newThresholdSearch(rows)
		for d := start; d < end; d++ {
			for i := 0; i < rows; i++ {
				search.values[i] = features.At(i, d)
			}
			candidates[d] = search.run(weights)
		}
	})

	best := 0
	for d := 1; d < cols; d++ {
		if candidates[d].gain > candidates[best].gain {
			best = d
		}
	}
	return machine.NewStump(best, candidates[best].threshold, candidates[best].polarity)
}

// thresholdSearch carries the scratch buffers for the sorted cumulative-sum
// sweep over one feature. One instance serves all features of a worker's
// range.
type thresholdSearch struct {
	values []float64
	order  []int
	sorted []float64
	cumsum []float64
	gains  []float64
}

func newThresholdSearch(n int) *thresholdSearch {
	return &thresholdSearch{
		values: make([]float64, n),
		order:  make([]int, n),
		sorted: make([]float64, n),
		cumsum: make([]float64, n),
		gains:  make([]float64, n),
	}
}

func (s *thresholdSearch) run(weights []float64) stumpCandidate {
	n := len(s.values)
	for i := range s.order {
		s.order[i] = i
	}
	// Stable sort keeps equal feature values in sample order, so repeated
	// runs produce identical cumulative sums.
	sort.SliceStable(s.order, func(a, b int) bool {
		return s.values[s.order[a]] < s.values[s.order[b]]
	})

	for i, idx := range s.order {
		s.sorted[i] = weights[idx]
	}
	floats.CumSum(s.cumsum, s.sorted)
	total := s.cumsum[n-1]
	for i := 0; i < n; i++ {
		s.gains[i] = total - s.cumsum[i]
	}

	opt := 0
	gainMax := abs(s.gains[0])
	for i := 1; i < n; i++ {
		if g := abs(s.gains[i]); g > gainMax {
			gainMax = g
			opt = i
		}
	}

	var threshold float64
	if opt == n-1 {
		// Split after the last sample: everything lands on one side.
		threshold = s.values[s.order[opt]]
	} else {
		threshold = 0.5 * (s.values[s.order[opt]] + s.values[s.order[opt+1]])
	}

	// A non-negative gain at the optimum flips the polarity. The bitwise
	// equality is intentional: a gain of exactly zero counts as positive.
	polarity := 1.0
	if gainMax == s.gains[opt] {
		polarity = -1.0
	}
	return stumpCandidate{threshold: threshold, polarity: polarity, gain: gainMax}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

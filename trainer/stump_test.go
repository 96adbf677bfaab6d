package trainer

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/machine"
	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// separableGradient returns the round-zero exponential-loss gradient -y for
// the given ±1 targets.
func separableGradient(targets []float64) *mat.Dense {
	grad := mat.NewDense(len(targets), 1, nil)
	for i, y := range targets {
		grad.Set(i, 0, -y)
	}
	return grad
}

func TestStumpTrainerSeparableData(t *testing.T) {
	// Low values belong to class -1, high values to class +1; the best
	// split sits between 3 and 10.
	features := mat.NewDense(6, 1, []float64{1, 2, 3, 10, 11, 12})
	gradient := separableGradient([]float64{-1, -1, -1, 1, 1, 1})

	weak, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	stump, ok := weak.(*machine.Stump)
	if !ok {
		t.Fatalf("expected *machine.Stump, got %T", weak)
	}

	if stump.FeatureIndex() != 0 {
		t.Errorf("feature index = %d, want 0", stump.FeatureIndex())
	}
	if stump.Threshold() != 6.5 {
		t.Errorf("threshold = %g, want the midpoint 6.5", stump.Threshold())
	}
	// The cumulative gain at the optimum is positive, which flips the
	// polarity under the reference convention.
	if stump.Polarity() != -1 {
		t.Errorf("polarity = %g, want -1", stump.Polarity())
	}

	// The stump separates the classes perfectly, up to a global sign that
	// the round weight absorbs.
	scores, err := stump.ScoreBatch(features)
	if err != nil {
		t.Fatalf("ScoreBatch: %v", err)
	}
	for i := 0; i < 6; i++ {
		margin := -gradient.At(i, 0) * scores.At(i, 0)
		if margin != -1 {
			t.Errorf("sample %d: margin = %g, want uniformly -1", i, margin)
		}
	}
}

func TestStumpTrainerTieBreakFirstFeature(t *testing.T) {
	// Two identical feature columns produce identical gains; the first
	// must win.
	data := []float64{1, 1, 2, 2, 3, 3, 4, 4}
	features := mat.NewDense(4, 2, data)
	gradient := separableGradient([]float64{-1, -1, 1, 1})

	weak, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if got := weak.Indices()[0]; got != 0 {
		t.Errorf("tie should resolve to feature 0, got %d", got)
	}
}

func TestStumpTrainerPicksBestFeature(t *testing.T) {
	// Feature 0 is noise, feature 1 separates perfectly.
	features := mat.NewDense(4, 2, []float64{
		5, 1,
		1, 2,
		5, 8,
		1, 9,
	})
	gradient := separableGradient([]float64{-1, -1, 1, 1})

	weak, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if got := weak.Indices()[0]; got != 1 {
		t.Errorf("selected feature = %d, want 1", got)
	}
	stump := weak.(*machine.Stump)
	if stump.Threshold() != 5 {
		t.Errorf("threshold = %g, want the midpoint 5", stump.Threshold())
	}
}

func TestStumpTrainerSingleSampleBoundary(t *testing.T) {
	// With one sample the optimal position is the last one, so the
	// threshold is the feature value itself.
	features := mat.NewDense(1, 1, []float64{7})
	gradient := mat.NewDense(1, 1, []float64{-1})

	weak, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if got := weak.(*machine.Stump).Threshold(); got != 7 {
		t.Errorf("threshold = %g, want the boundary value 7", got)
	}
}

func TestStumpTrainerZeroGradient(t *testing.T) {
	// A degenerate round must still produce a well-defined machine.
	features := mat.NewDense(3, 2, []float64{1, 4, 2, 5, 3, 6})
	gradient := mat.NewDense(3, 1, nil)

	weak, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train on zero gradient: %v", err)
	}
	if weak.NumOutputs() != 1 {
		t.Errorf("NumOutputs = %d, want 1", weak.NumOutputs())
	}
	if _, err := weak.ScoreBatch(features); err != nil {
		t.Errorf("degenerate machine must still score: %v", err)
	}
}

func TestStumpTrainerRejectsMultivariateGradient(t *testing.T) {
	features := mat.NewDense(3, 1, []float64{1, 2, 3})
	gradient := mat.NewDense(3, 2, nil)

	_, err := NewStumpTrainer().Train(features, gradient)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError for K=2 gradient, got %v", err)
	}
	if dimErr.Axis != 1 {
		t.Errorf("mismatch axis = %d, want 1", dimErr.Axis)
	}
}

func TestStumpTrainerRejectsSampleMismatch(t *testing.T) {
	features := mat.NewDense(3, 1, []float64{1, 2, 3})
	gradient := mat.NewDense(4, 1, nil)

	var dimErr *errors.DimensionError
	_, err := NewStumpTrainer().Train(features, gradient)
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError for sample mismatch, got %v", err)
	}
}

func TestStumpTrainerManyFeaturesParallelDeterministic(t *testing.T) {
	// Enough features to cross the parallel threshold; repeated runs must
	// agree exactly.
	const rows, cols = 50, 64
	features := mat.NewDense(rows, cols, nil)
	targets := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if i%2 == 0 {
			targets[i] = 1
		} else {
			targets[i] = -1
		}
		for j := 0; j < cols; j++ {
			features.Set(i, j, float64((i*31+j*17)%23))
		}
	}
	gradient := separableGradient(targets)

	first, err := NewStumpTrainer().Train(features, gradient)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := NewStumpTrainer().Train(features, gradient)
		if err != nil {
			t.Fatalf("Train: %v", err)
		}
		a, b := first.(*machine.Stump), again.(*machine.Stump)
		if a.FeatureIndex() != b.FeatureIndex() || a.Threshold() != b.Threshold() || a.Polarity() != b.Polarity() {
			t.Fatalf("run %d differs: (%d, %g, %g) vs (%d, %g, %g)", run,
				a.FeatureIndex(), a.Threshold(), a.Polarity(),
				b.FeatureIndex(), b.Threshold(), b.Polarity())
		}
	}
}

package machine

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/pkg/errors"
)

// BoostedMachine is the strong classifier: an ordered sequence of weak
// machines with one length-K weight vector per round. It grows by append
// during training and is read-only afterwards; the stored weak machines
// are immutable snapshots, never live trainer state.
type BoostedMachine struct {
	weaks      []Weak
	weights    [][]float64
	numOutputs int
}

// NewBoostedMachine creates an empty ensemble for the given number of
// outputs.
func NewBoostedMachine(numOutputs int) (*BoostedMachine, error) {
	if numOutputs < 1 {
		return nil, errors.NewValidationError("numOutputs", "must be at least 1", numOutputs)
	}
	return &BoostedMachine{numOutputs: numOutputs}, nil
}

// AddWeakMachine appends one round's weak machine and its per-output
// weight vector.
func (m *BoostedMachine) AddWeakMachine(weak Weak, weight []float64) error {
	if weak.NumOutputs() != m.numOutputs {
		return errors.NewDimensionError("BoostedMachine.AddWeakMachine", m.numOutputs, weak.NumOutputs(), 1)
	}
	if len(weight) != m.numOutputs {
		return errors.NewDimensionError("BoostedMachine.AddWeakMachine", m.numOutputs, len(weight), 1)
	}
	weightCopy := make([]float64, len(weight))
	copy(weightCopy, weight)
	m.weaks = append(m.weaks, weak)
	m.weights = append(m.weights, weightCopy)
	return nil
}

// NumRounds returns the number of completed rounds.
func (m *BoostedMachine) NumRounds() int {
	return len(m.weaks)
}

// NumOutputs returns the number of output columns K.
func (m *BoostedMachine) NumOutputs() int {
	return m.numOutputs
}

// WeakMachines returns the per-round weak machines in round order. The
// slice is a copy; the machines themselves are immutable.
func (m *BoostedMachine) WeakMachines() []Weak {
	out := make([]Weak, len(m.weaks))
	copy(out, m.weaks)
	return out
}

// Weights returns the rounds-by-K weight matrix, aligned with
// WeakMachines by round index. A zero-round ensemble has no weight rows
// and returns nil, since a dense matrix cannot have a zero dimension.
func (m *BoostedMachine) Weights() *mat.Dense {
	if len(m.weights) == 0 {
		return nil
	}
	out := mat.NewDense(len(m.weights), m.numOutputs, nil)
	for r, row := range m.weights {
		out.SetRow(r, row)
	}
	return out
}

// Indices returns the concatenation of each round's selected feature
// indices in round order, duplicates preserved.
func (m *BoostedMachine) Indices() []int {
	var out []int
	for _, weak := range m.weaks {
		out = append(out, weak.Indices()...)
	}
	return out
}

// Score evaluates the ensemble on a single feature row: the sum over
// rounds of the round weight times the weak machine's score.
func (m *BoostedMachine) Score(row []float64) ([]float64, error) {
	scores := make([]float64, m.numOutputs)
	for r, weak := range m.weaks {
		weakScores, err := weak.Score(row)
		if err != nil {
			return nil, err
		}
		for k := 0; k < m.numOutputs; k++ {
			scores[k] += m.weights[r][k] * weakScores[k]
		}
	}
	return scores, nil
}

// ScoreBatch evaluates the ensemble on N feature rows, returning an N-by-K
// score matrix. An empty ensemble scores everything as zero; a batch with
// no rows is an error.
func (m *BoostedMachine) ScoreBatch(features mat.Matrix) (*mat.Dense, error) {
	rows, _ := features.Dims()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: BoostedMachine.ScoreBatch")
	}
	scores := mat.NewDense(rows, m.numOutputs, nil)
	for r, weak := range m.weaks {
		weakScores, err := weak.ScoreBatch(features)
		if err != nil {
			return nil, err
		}
		for i := 0; i < rows; i++ {
			for k := 0; k < m.numOutputs; k++ {
				scores.Set(i, k, scores.At(i, k)+m.weights[r][k]*weakScores.At(i, k))
			}
		}
	}
	return scores, nil
}

// Classify evaluates a single feature row and derives hard labels.
// A score of exactly zero maps to the label +1; this convention is fixed
// and applied consistently everywhere labels are derived.
func (m *BoostedMachine) Classify(row []float64) (scores, labels []float64, err error) {
	scores, err = m.Score(row)
	if err != nil {
		return nil, nil, err
	}
	labels = make([]float64, len(scores))
	for k, s := range scores {
		labels[k] = hardLabel(s)
	}
	return scores, labels, nil
}

// ClassifyBatch evaluates N feature rows and derives hard labels with the
// same zero-maps-to-+1 convention as Classify.
func (m *BoostedMachine) ClassifyBatch(features mat.Matrix) (scores, labels *mat.Dense, err error) {
	scores, err = m.ScoreBatch(features)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := scores.Dims()
	labels = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			labels.Set(i, k, hardLabel(scores.At(i, k)))
		}
	}
	return scores, labels, nil
}

func hardLabel(score float64) float64 {
	if score >= 0 {
		return 1
	}
	return -1
}

// Package machine holds the frozen, queryable results of boosting rounds.
//
// A weak machine is the immutable snapshot of one trainer round: a decision
// stump or a lookup table. The BoostedMachine is the ordered, weighted
// sequence of weak machines accumulated over a full training run. Machines
// only score; all fitting lives in the trainer package.
package machine

import (
	"gonum.org/v1/gonum/mat"
)

// Weak is a frozen weak classifier. Implementations are immutable: once
// constructed they cannot be retrained or mutated by later rounds.
type Weak interface {
	// NumOutputs returns the number of output columns K the machine
	// scores.
	NumOutputs() int

	// Indices returns the feature indices the machine reads, one per
	// output.
	Indices() []int

	// Score classifies a single feature row, returning K values in
	// {-1, +1}.
	Score(row []float64) ([]float64, error)

	// ScoreBatch classifies N feature rows into an N-by-K matrix of
	// {-1, +1} values.
	ScoreBatch(features mat.Matrix) (*mat.Dense, error)
}

package trainer

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/tiagofrepereira2012/boosting/loss"
	"github.com/tiagofrepereira2012/boosting/machine"
	"github.com/tiagofrepereira2012/boosting/pkg/errors"
	"github.com/tiagofrepereira2012/boosting/pkg/log"
)

// Booster runs the boosting control loop: a fixed number of rounds, each
// deriving a gradient from the current ensemble scores, fitting the weak
// trainer to it, solving a per-output weight, and appending the snapshot
// to the ensemble. There is no early stopping; the loop is strictly
// count-bounded.
type Booster struct {
	weakTrainer WeakTrainer
	lossFn      loss.Function
	rounds      int
	logger      log.Logger
}

// NewBooster creates a boosting driver that trains for exactly rounds
// rounds.
func NewBooster(weakTrainer WeakTrainer, lossFn loss.Function, rounds int) (*Booster, error) {
	if weakTrainer == nil {
		return nil, errors.NewValidationError("weakTrainer", "must not be nil", nil)
	}
	if lossFn == nil {
		return nil, errors.NewValidationError("lossFn", "must not be nil", nil)
	}
	if rounds < 0 {
		return nil, errors.NewValidationError("rounds", "must not be negative", rounds)
	}
	return &Booster{
		weakTrainer: weakTrainer,
		lossFn:      lossFn,
		rounds:      rounds,
		logger:      log.GetLoggerWithName("trainer.booster"),
	}, nil
}

// WithLogger replaces the booster's logger and returns the booster.
func (b *Booster) WithLogger(logger log.Logger) *Booster {
	b.logger = logger
	return b
}

// Train runs the full boosting loop over the in-memory dataset and
// returns the trained ensemble. Zero rounds yield a valid empty machine.
func (b *Booster) Train(features mat.Matrix, targets *mat.Dense) (*machine.BoostedMachine, error) {
	return b.TrainContext(context.Background(), features, targets)
}

// TrainContext is Train with cancellation. The context is consulted only
// between rounds, so a cancellation never changes the numerics of a round
// that already started; the partial ensemble is discarded.
func (b *Booster) TrainContext(ctx context.Context, features mat.Matrix, targets *mat.Dense) (*machine.BoostedMachine, error) {
	rows, cols := features.Dims()
	targetRows, outputs := targets.Dims()
	if targetRows != rows {
		return nil, errors.NewDimensionError("Booster.Train", rows, targetRows, 0)
	}
	if rows == 0 || outputs == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "boosting: Booster.Train")
	}
	if err := errors.CheckMatrix("Booster.Train", targets, rows, outputs, 0); err != nil {
		return nil, err
	}

	ensemble, err := machine.NewBoostedMachine(outputs)
	if err != nil {
		return nil, err
	}

	b.logger.Info("training started",
		log.OperationKey, "train",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.OutputsKey, outputs,
		log.RoundsKey, b.rounds,
		"loss", b.lossFn.Name(),
	)
	start := time.Now()

	for round := 0; round < b.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "boosting: training canceled before round %d", round)
		}

		scores, err := ensemble.ScoreBatch(features)
		if err != nil {
			return nil, errors.Wrapf(err, "boosting: scoring failed at round %d", round)
		}
		gradient, err := b.lossFn.Gradient(targets, scores)
		if err != nil {
			return nil, errors.Wrapf(err, "boosting: gradient failed at round %d", round)
		}
		weak, err := b.weakTrainer.Train(features, gradient)
		if err != nil {
			return nil, errors.Wrapf(err, "boosting: weak training failed at round %d", round)
		}
		weakScores, err := weak.ScoreBatch(features)
		if err != nil {
			return nil, errors.Wrapf(err, "boosting: weak scoring failed at round %d", round)
		}
		weight, err := solveWeights(b.lossFn, targets, scores, weakScores, round)
		if err != nil {
			return nil, err
		}
		if err := ensemble.AddWeakMachine(weak, weight); err != nil {
			return nil, err
		}

		if b.logger.Enabled(ctx, log.LevelDebug) {
			b.logRound(ctx, round, ensemble, features, targets)
		}
	}

	b.logger.Info("training complete",
		log.OperationKey, "train",
		log.RoundsKey, ensemble.NumRounds(),
		log.DurationMsKey, int(time.Since(start).Milliseconds()),
	)
	return ensemble, nil
}

// logRound emits the per-round training loss and the round's selected
// feature indices.
func (b *Booster) logRound(_ context.Context, round int, ensemble *machine.BoostedMachine, features mat.Matrix, targets *mat.Dense) {
	scores, err := ensemble.ScoreBatch(features)
	if err != nil {
		return
	}
	lossVals, err := b.lossFn.Loss(targets, scores)
	if err != nil {
		return
	}
	weaks := ensemble.WeakMachines()
	b.logger.Debug("round complete",
		log.RoundKey, round,
		log.LossKey, mat.Sum(lossVals),
		"selected_indices", weaks[len(weaks)-1].Indices(),
	)
}

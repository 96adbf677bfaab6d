// Package log provides structured logging for boosting training runs.
//
// It defines a minimal, slog-compatible Logger interface with a
// zerolog-backed default implementation. Trainers log per-round progress at
// Debug level and training summaries at Info level using the standard
// attribute keys declared in this package, so downstream log pipelines can
// filter on stable field names.
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with log/slog
// conventions: a message followed by alternating key/value fields.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-round
	// training progress.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop
	// training.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If a field value is an error, the
	// implementation may attach additional diagnostics such as a stack
	// trace.
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every
	// subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level; values are compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Standard attribute keys used across the library. Keys follow a
// hierarchical naming convention to support structured log filtering.
const (
	// ComponentKey identifies the package or component emitting the record.
	ComponentKey = "component"

	// OperationKey names the operation being performed ("train", "score").
	OperationKey = "ml.operation"

	// SamplesKey is the number of samples in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// OutputsKey is the number of target outputs (1 for univariate).
	OutputsKey = "data.outputs"

	// RoundKey is the current boosting round.
	RoundKey = "training.round"

	// RoundsKey is the configured total number of rounds.
	RoundsKey = "training.rounds"

	// LossKey is the summed training loss.
	LossKey = "metrics.loss"

	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

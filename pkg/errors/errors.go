// Package errors provides structured error handling for the boosting library.
//
// Every failure the trainers and machines can produce is a local input or
// configuration error: shapes that disagree, feature codes outside the
// quantization range, invalid construction parameters. The types here carry
// that structure so callers can match on them with errors.As, and every
// constructor attaches a stack trace via cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// DimensionError reports a shape disagreement between two inputs, for
// example a feature matrix and a target matrix with different sample
// counts. Axis 0 refers to rows (samples), axis 1 to columns
// (features or outputs).
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("boosting: %s: dimension mismatch on axis %d (%s): expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// QuantizationError reports a feature code outside the valid range
// [0, NumEntries) of a lookup-table machine or trainer, or a code that is
// not an integral value. Sample and Feature locate the offending cell.
type QuantizationError struct {
	Op         string
	Value      float64
	NumEntries int
	Sample     int
	Feature    int
}

func (e *QuantizationError) Error() string {
	return fmt.Sprintf("boosting: %s: feature code %g at sample %d, feature %d is not an integer in [0, %d)",
		e.Op, e.Value, e.Sample, e.Feature, e.NumEntries)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *QuantizationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("value", e.Value).
		Int("num_entries", e.NumEntries).
		Int("sample", e.Sample).
		Int("feature", e.Feature).
		Str("type", "QuantizationError")
}

// NewQuantizationError creates a QuantizationError with a stack trace attached.
func NewQuantizationError(op string, value float64, numEntries, sample, feature int) error {
	return errors.WithStack(&QuantizationError{
		Op: op, Value: value, NumEntries: numEntries, Sample: sample, Feature: feature,
	})
}

// ValidationError reports an invalid construction-time parameter, such as an
// unknown selection type or a non-positive number of table entries.
// Validation failures surface at construction, never at first use.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("boosting: validation failed for parameter %q: %s (got: %v)",
		e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// NotFittedError reports use of a component that requires training or
// fitting before the offending method can be called.
type NotFittedError struct {
	Component string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("boosting: %s: not fitted; call Fit() before %s()", e.Component, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("component", e.Component).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(component, method string) error {
	return errors.WithStack(&NotFittedError{Component: component, Method: method})
}

// NumericalInstabilityError reports NaN or Inf values escaping a numerical
// routine, typically the per-round weight solver. Round is the boosting
// round in which the instability was detected.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Round     int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("boosting: numerical instability in %s at round %d: values [%s]",
		e.Operation, e.Round, valStr)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("round", e.Round).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, values []float64, round int) error {
	return errors.WithStack(&NumericalInstabilityError{Operation: operation, Values: values, Round: round})
}

// ErrEmptyData is returned when an empty matrix is passed where samples are
// required.
var ErrEmptyData = errors.New("empty data")

// Is reports whether err matches target, unwrapping as needed.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message, preserving the original chain.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

package errors

import (
	"math"
	"strings"
	"testing"
)

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("Booster.Train", 40, 39, 0)

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("expected DimensionError in chain")
	}
	if dimErr.Expected != 40 || dimErr.Got != 39 {
		t.Errorf("unexpected fields: expected=%d got=%d", dimErr.Expected, dimErr.Got)
	}
	if !strings.Contains(err.Error(), "rows") {
		t.Errorf("axis 0 should report rows, got %q", err.Error())
	}
}

func TestQuantizationError(t *testing.T) {
	err := NewQuantizationError("LUTTrainer.Train", 256, 256, 3, 17)

	var qErr *QuantizationError
	if !As(err, &qErr) {
		t.Fatal("expected QuantizationError in chain")
	}
	if qErr.Sample != 3 || qErr.Feature != 17 {
		t.Errorf("unexpected location: sample=%d feature=%d", qErr.Sample, qErr.Feature)
	}
	if !strings.Contains(err.Error(), "[0, 256)") {
		t.Errorf("error should name the valid range, got %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("selection", "must be SelectionIndependent or SelectionShared", 7)

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatal("expected ValidationError in chain")
	}
	if valErr.ParamName != "selection" {
		t.Errorf("unexpected param name %q", valErr.ParamName)
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Discretizer", "Transform")
	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Fatal("expected NotFittedError in chain")
	}
}

func TestNumericalInstabilityErrorTruncatesValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	err := NewNumericalInstabilityError("solveWeight", values, 2)
	if !strings.Contains(err.Error(), "...") {
		t.Errorf("long value lists should be truncated, got %q", err.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("op", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("finite values should pass: %v", err)
	}
	if err := CheckNumericalStability("op", []float64{1, math.NaN()}, 0); err == nil {
		t.Error("NaN should fail the check")
	}
	if err := CheckScalar("op", math.Inf(1), 0); err == nil {
		t.Error("Inf should fail the check")
	}
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(NewDimensionError("op", 1, 2, 1), "training aborted")
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("wrapping should preserve the concrete error type")
	}
}

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestZerologLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	logger.Info("training started",
		OperationKey, "train",
		SamplesKey, 40,
		FeaturesKey, 784,
	)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["message"] != "training started" {
		t.Errorf("unexpected message: %v", record["message"])
	}
	if record[SamplesKey] != float64(40) {
		t.Errorf("unexpected samples field: %v", record[SamplesKey])
	}
}

func TestZerologLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("per-round detail", RoundKey, 3)
	if buf.Len() != 0 {
		t.Errorf("debug record should be filtered at info level, got %q", buf.String())
	}

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Enabled should report false for debug at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("Enabled should report true for error at info level")
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug).With(ComponentKey, "trainer.booster")

	logger.Info("round complete", RoundKey, 0)

	if !strings.Contains(buf.String(), "trainer.booster") {
		t.Errorf("With fields should appear in output, got %q", buf.String())
	}
}

func TestTestLoggerCapture(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Debug("round complete", RoundKey, 1, LossKey, 12.5)
	logger.Info("training complete", RoundsKey, 10)

	entries, err := logger.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !logger.ContainsMessage("training complete") {
		t.Error("expected training completion record")
	}

	logger.Clear()
	if logger.ContainsMessage("round complete") {
		t.Error("Clear should discard captured records")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

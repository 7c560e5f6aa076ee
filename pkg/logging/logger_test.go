package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("Log line is not JSON: %q (%v)", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

// TestJSONLogger_LevelFiltering suppresses entries below the threshold
func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != "WARN" || entries[1].Level != "ERROR" {
		t.Errorf("Unexpected levels: %v / %v", entries[0].Level, entries[1].Level)
	}
}

// TestJSONLogger_Fields serializes structured fields
func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("evaluated",
		Strategy("CPEG"),
		Flow("A", "D"),
		ComputeNode("C"),
		Delay(2.52),
	)

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	f := entries[0].Fields
	if f["strategy"] != "CPEG" || f["flow"] != "A->D" || f["compute_node"] != "C" {
		t.Errorf("Unexpected fields: %v", f)
	}
	if f["delay_ms"] != 2.52 {
		t.Errorf("Expected delay_ms 2.52, got %v", f["delay_ms"])
	}
}

// TestJSONLogger_With pre-sets fields on child loggers
func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)
	child := logger.With(RunID("abc123"))

	child.Info("first")
	child.Info("second", Count(2))

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Fields["run_id"] != "abc123" {
			t.Errorf("Expected run_id on every child entry, got %v", e.Fields)
		}
	}
}

// TestParseLevel accepts the usual spellings
func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel || ParseLevel("WARNING") != WarnLevel {
		t.Error("ParseLevel mapping wrong")
	}
	if ParseLevel("nonsense") != InfoLevel {
		t.Error("Expected InfoLevel fallback")
	}
}

// TestNopLogger swallows everything
func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("nothing happens", Error(nil))
	logger.With(Strategy("CCN")).Error("still nothing")
}

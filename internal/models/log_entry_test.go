package models

import (
	"testing"
	"time"
)

func TestApplyDefaultsFillsDate(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	entry := LogEntry{
		TaskDescription: "Write spec",
		Project:         "Docs",
		Status:          "done",
		Priority:        "high",
	}
	entry.ApplyDefaults(now)

	if entry.Date != "2026-08-24T10:30:00Z" {
		t.Errorf("expected date 2026-08-24T10:30:00Z, got %q", entry.Date)
	}

	if _, err := time.Parse(time.RFC3339, entry.Date); err != nil {
		t.Errorf("defaulted date is not RFC 3339: %v", err)
	}
}

func TestApplyDefaultsKeepsCallerDate(t *testing.T) {
	entry := LogEntry{
		TaskDescription: "Review PR",
		Project:         "API",
		Status:          "in progress",
		Priority:        "low",
		Date:            "2026-01-01T00:00:00Z",
	}
	entry.ApplyDefaults(time.Now())

	if entry.Date != "2026-01-01T00:00:00Z" {
		t.Errorf("expected caller-supplied date to survive, got %q", entry.Date)
	}
}

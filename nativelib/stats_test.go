package nativelib

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/insajin/nativelib/platform"
)

// TestNewStats verifies that a new Stats instance starts at zero.
func TestNewStats(t *testing.T) {
	s := NewStats()
	if s == nil {
		t.Fatal("NewStats() returned nil")
	}

	snap := s.Snapshot()
	if snap.LoadCalls != 0 || snap.LoadAttempts != 0 || snap.ExplicitLoads != 0 {
		t.Errorf("snapshot = %+v, want zero counters", snap)
	}
	if snap.LastLoadedAt != "" {
		t.Errorf("LastLoadedAt = %q, want empty", snap.LastLoadedAt)
	}
}

// TestStats_RecordAttempt verifies success and failure bookkeeping.
func TestStats_RecordAttempt(t *testing.T) {
	s := NewStats()

	s.recordAttempt(3*time.Millisecond, errors.New("boom"))
	snap := s.Snapshot()
	if snap.LoadFailures != 1 || snap.LoadSuccesses != 0 {
		t.Errorf("after failure: %+v", snap)
	}
	if snap.LastLoadedAt != "" {
		t.Errorf("LastLoadedAt set after failure: %q", snap.LastLoadedAt)
	}

	s.recordAttempt(2*time.Millisecond, nil)
	snap = s.Snapshot()
	if snap.LoadSuccesses != 1 {
		t.Errorf("LoadSuccesses = %d, want 1", snap.LoadSuccesses)
	}
	if snap.LastDurationMs != 2 {
		t.Errorf("LastDurationMs = %v, want 2", snap.LastDurationMs)
	}
	if snap.LastLoadedAt == "" {
		t.Error("LastLoadedAt not set after success")
	}
}

// TestStats_JSON verifies the JSON encoding of a snapshot.
func TestStats_JSON(t *testing.T) {
	s := NewStats()
	s.LoadCalls.Add(3)
	s.ExplicitSkipped.Add(1)

	data, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if decoded["load_calls"] != float64(3) {
		t.Errorf("load_calls = %v, want 3", decoded["load_calls"])
	}
	if decoded["explicit_skipped"] != float64(1) {
		t.Errorf("explicit_skipped = %v, want 1", decoded["explicit_skipped"])
	}
}

// TestWithStats_Shared verifies that managers can report into one Stats.
func TestWithStats_Shared(t *testing.T) {
	shared := NewStats()

	a, _, _ := newTestManager(t, platform.Linux, platform.X64, WithStats(shared))
	b, _, _ := newTestManager(t, platform.Windows, platform.X64, WithStats(shared))

	for _, m := range []*Manager{a, b, a} {
		if err := m.Load(); err != nil {
			t.Fatalf("Load() error: %v", err)
		}
	}

	if a.Stats() != shared || b.Stats() != shared {
		t.Fatal("Stats() did not return the shared collector")
	}
	snap := shared.Snapshot()
	if snap.LoadCalls != 3 || snap.LoadAttempts != 2 || snap.FastPathHits != 1 {
		t.Errorf("snapshot = %+v, want calls=3 attempts=2 fast=1", snap)
	}
}

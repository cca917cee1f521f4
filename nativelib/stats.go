package nativelib

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Stats tracks load activity for a Manager.
// All fields are safe for concurrent access.
type Stats struct {
	// Load call metrics
	LoadCalls     atomic.Int64
	FastPathHits  atomic.Int64
	LoadAttempts  atomic.Int64
	LoadSuccesses atomic.Int64
	LoadFailures  atomic.Int64

	// Explicit load metrics
	ExplicitLoads    atomic.Int64
	ExplicitSkipped  atomic.Int64
	ExplicitFailures atomic.Int64

	lastDurationNs atomic.Int64
	lastLoadedAt   atomic.Value // time.Time
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Timestamp        time.Time `json:"timestamp"`
	LoadCalls        int64     `json:"load_calls"`
	FastPathHits     int64     `json:"fast_path_hits"`
	LoadAttempts     int64     `json:"load_attempts"`
	LoadSuccesses    int64     `json:"load_successes"`
	LoadFailures     int64     `json:"load_failures"`
	ExplicitLoads    int64     `json:"explicit_loads"`
	ExplicitSkipped  int64     `json:"explicit_skipped"`
	ExplicitFailures int64     `json:"explicit_failures"`
	LastDurationMs   float64   `json:"last_duration_ms"`
	LastLoadedAt     string    `json:"last_loaded_at,omitempty"`
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{}
}

// recordAttempt records the outcome and duration of one slow-path load sequence.
func (s *Stats) recordAttempt(d time.Duration, err error) {
	s.lastDurationNs.Store(d.Nanoseconds())
	if err != nil {
		s.LoadFailures.Add(1)
		return
	}
	s.LoadSuccesses.Add(1)
	s.lastLoadedAt.Store(time.Now())
}

// Snapshot returns a point-in-time copy of all counters.
func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Timestamp:        time.Now(),
		LoadCalls:        s.LoadCalls.Load(),
		FastPathHits:     s.FastPathHits.Load(),
		LoadAttempts:     s.LoadAttempts.Load(),
		LoadSuccesses:    s.LoadSuccesses.Load(),
		LoadFailures:     s.LoadFailures.Load(),
		ExplicitLoads:    s.ExplicitLoads.Load(),
		ExplicitSkipped:  s.ExplicitSkipped.Load(),
		ExplicitFailures: s.ExplicitFailures.Load(),
		LastDurationMs:   float64(s.lastDurationNs.Load()) / float64(time.Millisecond),
	}
	if v := s.lastLoadedAt.Load(); v != nil {
		if t, ok := v.(time.Time); ok && !t.IsZero() {
			snap.LastLoadedAt = t.Format(time.RFC3339)
		}
	}
	return snap
}

// JSON returns the snapshot as a JSON byte slice.
func (s *Stats) JSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

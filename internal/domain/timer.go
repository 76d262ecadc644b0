package domain

import "time"

// TimerPhase tracks the lifecycle of the emergency countdown timer.
type TimerPhase int

const (
	TimerIdle TimerPhase = iota
	TimerRunning
	TimerPaused
	TimerCompleted
)

// String returns a human-readable timer phase.
func (p TimerPhase) String() string {
	switch p {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TimerSnapshot is the persisted form of the countdown state. Durations and
// the save instant are stored as epoch/interval milliseconds so the snapshot
// survives process restarts and clock display changes.
type TimerSnapshot struct {
	RemainingMS int64 `json:"remaining_ms"`
	IsRunning   bool  `json:"is_running"`
	SavedAtMS   int64 `json:"saved_at_ms"`
	DurationMS  int64 `json:"duration_ms"`
}

// Remaining returns the snapshot's remaining time as a duration.
func (s TimerSnapshot) Remaining() time.Duration {
	return time.Duration(s.RemainingMS) * time.Millisecond
}

// Duration returns the snapshot's full duration.
func (s TimerSnapshot) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// SavedAt returns the wall-clock instant the snapshot was written.
func (s TimerSnapshot) SavedAt() time.Time {
	return time.UnixMilli(s.SavedAtMS)
}

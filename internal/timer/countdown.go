// Package timer implements the emergency dough countdown: a single
// wall-clock-anchored timer that survives process restarts through a
// persisted snapshot.
package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// snapshotKey is where the countdown persists its state in the KV store.
const snapshotKey = "emergency_timer"

// Option configures the countdown.
type Option func(*Countdown)

// WithTickInterval sets how often the background loop checks for expiry.
// Accuracy comes from the wall-clock deadline, not the tick rate, so a
// coarse interval only delays the completion notice, never the math.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tickInterval = d
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Countdown) {
		c.now = now
	}
}

// Countdown is the emergency timer state machine. All remaining-time math
// is anchored to wall-clock deadlines rather than tick counting, so missed
// ticks and suspend/resume cannot drift the countdown.
type Countdown struct {
	store        domain.KVStore
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration
	now          func() time.Time

	mu        sync.Mutex
	phase     domain.TimerPhase
	duration  time.Duration
	remaining time.Duration // authoritative while not running
	endAt     time.Time     // authoritative while running
	notified  bool
	cancel    context.CancelFunc
}

// New creates a countdown with the given dependencies and options. Call
// Restore afterwards to pick up a persisted session.
func New(store domain.KVStore, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		store:        store,
		notifier:     notifier,
		log:          log,
		tickInterval: 1 * time.Second,
		now:          time.Now,
		phase:        domain.TimerIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Restore loads the persisted snapshot, if any, and resumes the countdown
// from where it left off. A running snapshot whose deadline already passed
// completes immediately with a single notification. Storage errors leave
// the timer idle.
func (c *Countdown) Restore(ctx context.Context) {
	raw, err := c.store.Get(ctx, snapshotKey)
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		c.log.Error("timer: loading snapshot: %v", err)
		return
	}

	var snap domain.TimerSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warn("timer: discarding corrupt snapshot: %v", err)
		c.clearSnapshot(ctx)
		return
	}
	if snap.DurationMS <= 0 || snap.RemainingMS < 0 || snap.RemainingMS > snap.DurationMS {
		c.log.Warn("timer: discarding inconsistent snapshot (remaining=%dms duration=%dms)", snap.RemainingMS, snap.DurationMS)
		c.clearSnapshot(ctx)
		return
	}

	c.mu.Lock()
	c.duration = snap.Duration()
	c.remaining = snap.Remaining()

	if !snap.IsRunning {
		if c.remaining == c.duration {
			c.phase = domain.TimerIdle
		} else {
			c.phase = domain.TimerPaused
		}
		c.mu.Unlock()
		c.log.Info("timer restored %s with %s remaining", c.phase, c.remaining)
		return
	}

	// Credit the downtime against the deadline.
	elapsed := c.now().Sub(snap.SavedAt())
	if elapsed < 0 {
		elapsed = 0
	}
	c.remaining -= elapsed

	if c.remaining <= 0 {
		c.remaining = 0
		c.mu.Unlock()
		c.log.Info("timer expired while away, completing")
		c.complete(ctx)
		return
	}

	c.endAt = c.now().Add(c.remaining)
	c.phase = domain.TimerRunning
	c.startLoopLocked(ctx)
	c.mu.Unlock()
	c.log.Info("timer resumed running with %s remaining", c.remaining)
}

// SetDuration arms the timer with a new duration and returns it to idle.
// Any running countdown is abandoned.
func (c *Countdown) SetDuration(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidParameters)
	}

	c.mu.Lock()
	c.stopLoopLocked()
	c.phase = domain.TimerIdle
	c.duration = d
	c.remaining = d
	c.notified = false
	c.mu.Unlock()

	c.persist(ctx)
	c.log.Info("timer set to %s", d)
	return nil
}

// Start begins or resumes the countdown. No-op while already running or
// completed, or before a duration has been set.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.phase == domain.TimerRunning || c.phase == domain.TimerCompleted || c.duration == 0 {
		c.mu.Unlock()
		return
	}

	c.endAt = c.now().Add(c.remaining)
	c.phase = domain.TimerRunning
	c.startLoopLocked(ctx)
	c.mu.Unlock()

	c.persist(ctx)
	c.log.Info("timer started, %s remaining", c.remaining)
}

// Pause freezes the countdown. No-op unless running.
func (c *Countdown) Pause(ctx context.Context) {
	c.mu.Lock()
	if c.phase != domain.TimerRunning {
		c.mu.Unlock()
		return
	}

	c.remaining = c.endAt.Sub(c.now())
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.stopLoopLocked()
	c.phase = domain.TimerPaused
	c.mu.Unlock()

	c.persist(ctx)
	c.log.Info("timer paused with %s remaining", c.remaining)
}

// Toggle pauses a running timer and starts a paused or idle one.
func (c *Countdown) Toggle(ctx context.Context) {
	c.mu.Lock()
	running := c.phase == domain.TimerRunning
	c.mu.Unlock()

	if running {
		c.Pause(ctx)
	} else {
		c.Start(ctx)
	}
}

// Reset returns the timer to idle at its full duration.
func (c *Countdown) Reset(ctx context.Context) {
	c.mu.Lock()
	c.stopLoopLocked()
	c.phase = domain.TimerIdle
	c.remaining = c.duration
	c.notified = false
	armed := c.duration > 0
	c.mu.Unlock()

	if armed {
		c.persist(ctx)
	}
	c.log.Info("timer reset")
}

// AddTime extends or shortens the remaining time. The result is clamped to
// [0, duration]. Shortening a running timer past zero completes it.
func (c *Countdown) AddTime(ctx context.Context, delta time.Duration) {
	c.mu.Lock()
	if c.phase == domain.TimerCompleted || c.duration == 0 {
		c.mu.Unlock()
		return
	}

	rem := c.remaining
	if c.phase == domain.TimerRunning {
		rem = c.endAt.Sub(c.now())
	}
	rem += delta
	if rem > c.duration {
		rem = c.duration
	}
	if rem <= 0 {
		c.remaining = 0
		c.mu.Unlock()
		if c.phase == domain.TimerRunning {
			c.complete(ctx)
			return
		}
		c.persist(ctx)
		return
	}

	c.remaining = rem
	if c.phase == domain.TimerRunning {
		c.endAt = c.now().Add(rem)
	}
	c.mu.Unlock()

	c.persist(ctx)
	c.log.Info("timer adjusted by %s, %s remaining", delta, rem)
}

// Status reports the current phase and the live remaining and total
// durations.
func (c *Countdown) Status() (domain.TimerPhase, time.Duration, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rem := c.remaining
	if c.phase == domain.TimerRunning {
		rem = c.endAt.Sub(c.now())
		if rem < 0 {
			rem = 0
		}
	}
	return c.phase, rem, c.duration
}

// Stop halts the background loop without touching persisted state. The
// snapshot written at start keeps the countdown recoverable.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLoopLocked()
}

// startLoopLocked launches the expiry watcher. Caller holds mu.
func (c *Countdown) startLoopLocked(ctx context.Context) {
	childCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	go c.loop(childCtx)
}

// stopLoopLocked cancels the expiry watcher if one is running. Caller holds mu.
func (c *Countdown) stopLoopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Countdown) loop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			expired := c.phase == domain.TimerRunning && !c.now().Before(c.endAt)
			c.mu.Unlock()
			if expired {
				c.complete(ctx)
				return
			}
		}
	}
}

// complete transitions to Completed, fires the notification exactly once,
// and clears the snapshot so a restart does not re-announce.
//
// The caller may be the expiry loop, whose context dies the moment
// stopLoopLocked cancels it below, so the notify and store calls run on a
// detached context. Without that, clearing the snapshot against a
// context-aware store fails with context.Canceled and the next launch
// re-announces an already-finished timer.
func (c *Countdown) complete(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	if c.phase == domain.TimerCompleted {
		c.mu.Unlock()
		return
	}
	c.stopLoopLocked()
	c.phase = domain.TimerCompleted
	c.remaining = 0
	fire := !c.notified
	c.notified = true
	c.mu.Unlock()

	if fire {
		if err := c.notifier.NotifyUrgent(ctx, "Dough timer is up."); err != nil {
			c.log.Error("timer: completion notify: %v", err)
		}
	}
	c.clearSnapshot(ctx)
	c.log.Info("timer completed")
}

// persist writes the current state to the KV store. Failures are logged and
// swallowed; the countdown keeps working in memory.
func (c *Countdown) persist(ctx context.Context) {
	c.mu.Lock()
	rem := c.remaining
	if c.phase == domain.TimerRunning {
		rem = c.endAt.Sub(c.now())
		if rem < 0 {
			rem = 0
		}
	}
	snap := domain.TimerSnapshot{
		RemainingMS: rem.Milliseconds(),
		IsRunning:   c.phase == domain.TimerRunning,
		SavedAtMS:   c.now().UnixMilli(),
		DurationMS:  c.duration.Milliseconds(),
	}
	c.mu.Unlock()

	raw, err := json.Marshal(snap)
	if err != nil {
		c.log.Error("timer: encoding snapshot: %v", err)
		return
	}
	if err := c.store.Set(ctx, snapshotKey, raw); err != nil {
		c.log.Error("timer: saving snapshot: %v", err)
	}
}

func (c *Countdown) clearSnapshot(ctx context.Context) {
	if err := c.store.Remove(ctx, snapshotKey); err != nil {
		c.log.Error("timer: clearing snapshot: %v", err)
	}
}

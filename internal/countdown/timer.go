// Package countdown implements the run's countdown timer. The timer has no
// clock of its own; the caller feeds it elapsed seconds once per frame.
package countdown

import (
	"github.com/KirkDiggler/pantryrun/internal/models"
)

// DefaultDuration is twenty minutes, in seconds
const DefaultDuration = 20 * 60.0

// Timer counts down from a fixed duration
type Timer struct {
	duration  float64
	remaining float64
	state     models.TimerState
	onExpired func()
}

// New creates an idle timer holding duration seconds. A non-positive
// duration falls back to DefaultDuration. onExpired may be nil.
func New(duration float64, onExpired func()) *Timer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Timer{
		duration:  duration,
		remaining: duration,
		state:     models.TimerStateIdle,
		onExpired: onExpired,
	}
}

// Start runs the timer from where it is. Starting a running timer does
// nothing.
func (t *Timer) Start() {
	if t.state == models.TimerStateRunning {
		return
	}
	t.state = models.TimerStateRunning
}

// Stop pauses a running timer
func (t *Timer) Stop() {
	if t.state != models.TimerStateRunning {
		return
	}
	t.state = models.TimerStateIdle
}

// Reset idles the timer and refills it to the full duration
func (t *Timer) Reset() {
	t.state = models.TimerStateIdle
	t.remaining = t.duration
}

// Tick advances a running timer by dt seconds and reports whether this tick
// expired it. Non-running timers and non-positive dt are ignored.
func (t *Timer) Tick(dt float64) bool {
	if t.state != models.TimerStateRunning || dt < 0 {
		return false
	}

	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	t.state = models.TimerStateExpired
	if t.onExpired != nil {
		t.onExpired()
	}
	return true
}

// Remaining returns the seconds left
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Duration returns the configured duration
func (t *Timer) Duration() float64 {
	return t.duration
}

// State returns the current state
func (t *Timer) State() models.TimerState {
	return t.state
}

// Running reports whether the timer is counting down
func (t *Timer) Running() bool {
	return t.state == models.TimerStateRunning
}

// Restore puts the timer back into a saved position without firing events
func (t *Timer) Restore(remaining float64, state models.TimerState) {
	switch {
	case remaining < 0:
		remaining = 0
	case remaining > t.duration:
		remaining = t.duration
	}
	t.remaining = remaining

	switch state {
	case models.TimerStateRunning, models.TimerStateExpired:
		t.state = state
	default:
		t.state = models.TimerStateIdle
	}
}

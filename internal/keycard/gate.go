// Package keycard tracks collected keycards against the counts needed to
// run the countdown and open doors.
package keycard

// Signal is emitted by the gate when the countdown should change
type Signal int

const (
	// SignalTimerStart fires when the first keycard is collected
	SignalTimerStart Signal = iota + 1

	// SignalTimerStop fires when the required number of keycards is reached
	SignalTimerStop
)

// String returns the signal name
func (s Signal) String() string {
	switch s {
	case SignalTimerStart:
		return "timer_start"
	case SignalTimerStop:
		return "timer_stop"
	}
	return "unknown"
}

// Gate counts keycards. A negative required count is treated as zero.
type Gate struct {
	collected int
	required  int
	signal    func(Signal)
}

// New creates a gate that reports transitions to signal. signal may be nil.
func New(required int, signal func(Signal)) *Gate {
	if required < 0 {
		required = 0
	}
	return &Gate{
		required: required,
		signal:   signal,
	}
}

// AwardKeycard counts one more keycard and reports whether the gate is now
// unlocked against the required count.
func (g *Gate) AwardKeycard() bool {
	g.collected++

	if g.collected == 1 {
		g.emit(SignalTimerStart)
	}
	if g.collected == g.required {
		g.emit(SignalTimerStop)
	}

	return g.Unlocked()
}

// Unlocked reports whether the required count has been met
func (g *Gate) Unlocked() bool {
	return g.collected >= g.required
}

// IsUnlocked reports whether the collected count meets threshold. Doors pass
// their own threshold, independent of the required count.
func (g *Gate) IsUnlocked(threshold int) bool {
	return g.collected >= threshold
}

// Collected returns the number of keycards picked up
func (g *Gate) Collected() int {
	return g.collected
}

// Required returns the number of keycards that stops the countdown
func (g *Gate) Required() int {
	return g.required
}

// Reset zeroes the collected count
func (g *Gate) Reset() {
	g.collected = 0
}

// Restore sets the collected count without emitting signals
func (g *Gate) Restore(collected int) {
	if collected < 0 {
		collected = 0
	}
	g.collected = collected
}

func (g *Gate) emit(s Signal) {
	if g.signal != nil {
		g.signal(s)
	}
}

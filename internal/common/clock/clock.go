package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/pantryrun/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Frame measures the time between consecutive frames
type Frame struct {
	clock Clock
	last  time.Time
}

// NewFrame starts measuring from the clock's current time
func NewFrame(c Clock) *Frame {
	return &Frame{
		clock: c,
		last:  c.Now(),
	}
}

// Delta returns the seconds since the previous call (or since NewFrame)
func (f *Frame) Delta() float64 {
	now := f.clock.Now()
	dt := now.Sub(f.last).Seconds()
	f.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

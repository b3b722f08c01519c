package delay

// Delay fires once after a number of seconds has been fed to it through Tick
type Delay struct {
	remaining float64
	armed     bool
}

// Arm starts the delay, replacing any pending one
func (d *Delay) Arm(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	d.remaining = seconds
	d.armed = true
}

// Cancel drops a pending delay without firing
func (d *Delay) Cancel() {
	d.armed = false
	d.remaining = 0
}

// Armed reports whether the delay is pending
func (d *Delay) Armed() bool {
	return d.armed
}

// Tick advances the delay and reports whether it fired on this tick
func (d *Delay) Tick(dt float64) bool {
	if !d.armed || dt < 0 {
		return false
	}

	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}

	d.Cancel()
	return true
}

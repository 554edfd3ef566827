package crossing

// Cadence fires a periodic task on the fixed simulation tick clock.
// Wall-clock periods are converted to whole tick counts at the configured
// tick rate, so spawning and the one-second game timer run in lockstep with
// the frame loop and tests can drive them without real time passing.
type Cadence struct {
	tickRate int
	every    int
	left     int
}

// NewCadence creates a cadence firing every periodMS of simulated wall time.
func NewCadence(periodMS, tickRate int) *Cadence {
	if tickRate <= 0 {
		tickRate = 60
	}
	c := &Cadence{tickRate: tickRate}
	c.SetPeriod(periodMS)
	c.left = c.every
	return c
}

// SetPeriod changes the firing period. A shortened period takes effect on
// the current countdown immediately.
func (c *Cadence) SetPeriod(periodMS int) {
	every := c.tickRate * periodMS / 1000
	if every < 1 {
		every = 1
	}
	if every == c.every {
		return
	}
	c.every = every
	if c.left > every {
		c.left = every
	}
}

// Tick advances one simulation tick and reports whether the cadence fires.
func (c *Cadence) Tick() bool {
	c.left--
	if c.left <= 0 {
		c.left = c.every
		return true
	}
	return false
}

// Reset restarts the current countdown from a full period.
func (c *Cadence) Reset() {
	c.left = c.every
}

package core

// Clocks carries the frozen clock configuration a timer derives its input
// clock from: the post-prescale peripheral bus frequency and the bus
// prescale factor. Computing these from the clock tree is the clock
// module's job; this package consumes the result as a value.
type Clocks struct {
	// PCLK is the peripheral bus clock in Hz, after the bus prescaler.
	PCLK uint32
	// PPRE is the bus prescale factor. Any value other than 1 means the
	// bus clock was divided down, which the timer input clock compensates
	// for by running at twice the bus clock.
	PPRE uint8
}

// TimerClock returns the effective timer input clock in Hz.
func (c Clocks) TimerClock() uint32 {
	if c.PPRE == 1 {
		return c.PCLK
	}
	return 2 * c.PCLK
}

// PWM output support.
//
// A timer peripheral is brought up once and split into one channel handle
// per capture/compare unit. The channels all reference the same register
// block through a caller-selected Mutex; each is independently bound to
// pins and enabled. A channel without pins cannot be enabled at all - that
// state is carried in the channel's type, not checked at runtime.
package core

// InitPWM powers, resets, and configures a timer for PWM output, then
// derives its channels.
//
// res is the duty cycle resolution: the number of counter ticks per
// period, which is also the maximum duty value. Pick it to give enough
// steps for the target device; a servo swept between 2% and 4% duty with
// res 9000 moves in steps of one degree.
//
// freqHz is the target output frequency. The prescaler divisor is
// truncated, so the requested frequency is a best-effort target, not
// exact. A resolution/frequency pair too fast for the timer clock yields a
// zero divisor, and the divisor-minus-one register write wraps to the
// field maximum, silently producing a wildly wrong frequency. Choosing a
// representable combination is the caller's contract; nothing is detected
// at runtime.
//
// bus locks the enable/reset bus the timer hangs off. lock selects the
// locking strategy the channels will share: SharedLock when several
// channels or interrupt handlers touch the timer, ExclusiveLock when a
// single owner in normal context drives it.
func InitPWM(t *Timer, res uint32, freqHz uint32, clk Clocks, bus Mutex[BusRegs], lock func(*TimerRegs) Mutex[TimerRegs]) []Channel {
	// Gate the clock on and pulse reset so the timer starts from its
	// hardware-default state regardless of prior use.
	bus.Lock(func(b *BusRegs) {
		b.ENR.SetBits(t.EnableMask)
		b.RSTR.SetBits(t.ResetMask)
		b.RSTR.ClearBits(t.ResetMask)
	})

	regs := t.Regs

	// Auto-reload preload: period updates take effect at period
	// boundaries only, so a reconfigured period never glitches mid-cycle.
	regs.CR1.SetBits(TIM_CR1_ARPE)

	// The resolution is the counting period in ticks.
	regs.ARR.Set(res)

	// The register holds divisor minus one; hardware counts one more tick
	// than the register value.
	divisor := clk.TimerClock() / res / freqHz
	regs.PSC.Set(divisor - 1)

	// Force an update event so the period and prescaler take effect now
	// instead of at the next natural rollover. EGR is state-less.
	regs.EGR.Set(TIM_EGR_UG)

	// Advanced control timers keep their outputs dead until the main
	// output enable is asserted.
	if t.HasBreak {
		regs.BDTR.SetBits(TIM_BDTR_MOE)
	}

	regs.CR1.SetBits(TIM_CR1_CEN)

	DebugPrintln("[PWM] init tim=" + utoa(uint32(t.ID)) +
		" arr=" + utoa(res) + " psc=" + utoa(divisor-1))

	m := lock(regs)
	channels := make([]Channel, t.NumChannels)
	for i := range channels {
		channels[i] = Channel{
			tim:   m,
			regs:  regs,
			id:    ChannelID(i),
			timer: t.ID,
			hasN:  uint8(i) < t.NumNChannels,
		}
	}
	return channels
}

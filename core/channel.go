package core

// The pin state of a channel lives in Go's type system: Channel has no
// pins and therefore no output operations, PwmChannel drives the normal
// output, NPwmChannel drives the complementary output. Binding a pin moves
// a value from one type to the next; no method converts between the two
// pin-bound types, so a channel can never hold both normal and
// complementary bindings.

// Channel is a capture/compare channel that has no pins bound yet. It
// cannot be enabled and exposes no duty operations; the only way forward
// is to bind a pin.
type Channel struct {
	tim   Mutex[TimerRegs]
	regs  *TimerRegs
	id    ChannelID
	timer TimerID
	hasN  bool
}

// configureOutput selects PWM mode 1 for this channel (output high while
// the counter is below the compare value) and enables compare preload so
// duty updates only propagate at period boundaries, never mid-cycle.
func (c Channel) configureOutput() {
	c.tim.Lock(func(t *TimerRegs) {
		ccmr, shift := c.id.ccmr(t)
		ccmr.ReplaceBits(timCCMROCMPWM1, timCCMROCMMask, shift+timCCMROCMPos)
		ccmr.SetBits(uint32(timCCMROCPE) << shift)
	})
}

// OutputTo binds a normal output pin and returns the channel in its
// pin-bound state. The token is consumed and cannot be bound again.
func (c Channel) OutputTo(p Pin) (PwmChannel, error) {
	if err := p.consume(c.timer, c.id); err != nil {
		return PwmChannel{}, err
	}
	c.configureOutput()
	return PwmChannel{tim: c.tim, regs: c.regs, id: c.id, timer: c.timer}, nil
}

// OutputToN binds a complementary output pin and returns the channel in
// its complementary pin-bound state. Only channels with a complementary
// output stage accept this.
func (c Channel) OutputToN(p NPin) (NPwmChannel, error) {
	if !c.hasN {
		return NPwmChannel{}, ErrNoComplementary
	}
	if err := p.consume(c.timer, c.id); err != nil {
		return NPwmChannel{}, err
	}
	c.configureOutput()
	return NPwmChannel{tim: c.tim, regs: c.regs, id: c.id, timer: c.timer}, nil
}

// PwmChannel is a channel bound to one or more normal output pins. All of
// its pins carry the identical signal, since they are driven off the same
// compare unit.
type PwmChannel struct {
	tim   Mutex[TimerRegs]
	regs  *TimerRegs
	id    ChannelID
	timer TimerID
}

// OutputTo binds an additional normal pin. The compare unit is already
// configured, so this only consumes the token; no registers change.
func (c PwmChannel) OutputTo(p Pin) (PwmChannel, error) {
	if err := p.consume(c.timer, c.id); err != nil {
		return PwmChannel{}, err
	}
	return c, nil
}

// Enable turns on this channel's output. Must lock: CCER is shared by
// every channel of the timer.
func (c PwmChannel) Enable() {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCER.SetBits(c.id.enableBit())
	})
}

// Disable turns off this channel's output.
func (c PwmChannel) Disable() {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCER.ClearBits(c.id.enableBit())
	})
}

// MaxDuty returns the configured duty resolution. Read without the lock:
// the period is shared and read-mostly, and this is a plain value read,
// not part of a register sequence.
func (c PwmChannel) MaxDuty() uint32 {
	return c.regs.ARR.Get()
}

// Duty returns the current duty value. Read without the lock: each channel
// owns its compare register and no other handle ever writes it.
func (c PwmChannel) Duty() uint32 {
	return c.regs.CCR[c.id].Get()
}

// SetDuty sets the duty value in counter ticks. Values above MaxDuty are
// not clamped; what the output does for an out-of-range compare value is
// chip defined (commonly the output stays high for the whole period).
func (c PwmChannel) SetDuty(duty uint32) {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCR[c.id].Set(duty)
	})
}

// NPwmChannel is a channel bound to one or more complementary output pins.
// It drives the CHxN output enable; everything else matches PwmChannel.
type NPwmChannel struct {
	tim   Mutex[TimerRegs]
	regs  *TimerRegs
	id    ChannelID
	timer TimerID
}

// OutputToN binds an additional complementary pin, consuming the token
// without touching any registers.
func (c NPwmChannel) OutputToN(p NPin) (NPwmChannel, error) {
	if err := p.consume(c.timer, c.id); err != nil {
		return NPwmChannel{}, err
	}
	return c, nil
}

// Enable turns on this channel's complementary output.
func (c NPwmChannel) Enable() {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCER.SetBits(c.id.nEnableBit())
	})
}

// Disable turns off this channel's complementary output.
func (c NPwmChannel) Disable() {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCER.ClearBits(c.id.nEnableBit())
	})
}

// MaxDuty returns the configured duty resolution.
func (c NPwmChannel) MaxDuty() uint32 {
	return c.regs.ARR.Get()
}

// Duty returns the current duty value.
func (c NPwmChannel) Duty() uint32 {
	return c.regs.CCR[c.id].Get()
}

// SetDuty sets the duty value in counter ticks. See PwmChannel.SetDuty for
// the out-of-range contract.
func (c NPwmChannel) SetDuty(duty uint32) {
	c.tim.Lock(func(t *TimerRegs) {
		t.CCR[c.id].Set(duty)
	})
}

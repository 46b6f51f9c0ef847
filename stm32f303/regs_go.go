//go:build !tinygo

package stm32f303

import "stm32pwm/core"

// On regular Go builds the register blocks live in ordinary memory, one
// static block per peripheral, so the whole stack is testable on a host.
var (
	tim1Regs  = new(core.TimerRegs)
	tim2Regs  = new(core.TimerRegs)
	tim3Regs  = new(core.TimerRegs)
	tim4Regs  = new(core.TimerRegs)
	tim8Regs  = new(core.TimerRegs)
	tim15Regs = new(core.TimerRegs)
	tim16Regs = new(core.TimerRegs)
	tim17Regs = new(core.TimerRegs)

	apb1ENR  = new(core.Register32)
	apb1RSTR = new(core.Register32)
	apb2ENR  = new(core.Register32)
	apb2RSTR = new(core.Register32)
)

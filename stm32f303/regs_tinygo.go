//go:build tinygo

package stm32f303

import (
	"unsafe"

	"stm32pwm/core"
)

// On hardware the register blocks overlay the peripheral memory map
// directly.
var (
	tim1Regs  = (*core.TimerRegs)(unsafe.Pointer(tim1Base))
	tim2Regs  = (*core.TimerRegs)(unsafe.Pointer(tim2Base))
	tim3Regs  = (*core.TimerRegs)(unsafe.Pointer(tim3Base))
	tim4Regs  = (*core.TimerRegs)(unsafe.Pointer(tim4Base))
	tim8Regs  = (*core.TimerRegs)(unsafe.Pointer(tim8Base))
	tim15Regs = (*core.TimerRegs)(unsafe.Pointer(tim15Base))
	tim16Regs = (*core.TimerRegs)(unsafe.Pointer(tim16Base))
	tim17Regs = (*core.TimerRegs)(unsafe.Pointer(tim17Base))

	apb1ENR  = (*core.Register32)(unsafe.Pointer(rccAPB1ENR))
	apb1RSTR = (*core.Register32)(unsafe.Pointer(rccAPB1RSTR))
	apb2ENR  = (*core.Register32)(unsafe.Pointer(rccAPB2ENR))
	apb2RSTR = (*core.Register32)(unsafe.Pointer(rccAPB2RSTR))
)

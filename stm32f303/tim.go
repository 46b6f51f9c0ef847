// Package stm32f303 holds the per-chip data for the STM32F303 line: timer
// descriptors, the take-once peripheral broker, bus register access, and
// the alternate-function pin table. The chip-agnostic logic lives in the
// core package; everything here is data the datasheet dictates.
package stm32f303

import (
	"errors"

	"stm32pwm/core"
)

// Timer identities. Values follow the datasheet numbering.
const (
	TIM1  core.TimerID = 1
	TIM2  core.TimerID = 2
	TIM3  core.TimerID = 3
	TIM4  core.TimerID = 4
	TIM8  core.TimerID = 8
	TIM15 core.TimerID = 15
	TIM16 core.TimerID = 16
	TIM17 core.TimerID = 17
)

// Peripheral base addresses.
const (
	tim2Base  uintptr = 0x4000_0000
	tim3Base  uintptr = 0x4000_0400
	tim4Base  uintptr = 0x4000_0800
	tim1Base  uintptr = 0x4001_2C00
	tim8Base  uintptr = 0x4001_3400
	tim15Base uintptr = 0x4001_4000
	tim16Base uintptr = 0x4001_4400
	tim17Base uintptr = 0x4001_4800

	rccBase     uintptr = 0x4002_1000
	rccAPB2RSTR uintptr = rccBase + 0x0C
	rccAPB1RSTR uintptr = rccBase + 0x10
	rccAPB2ENR  uintptr = rccBase + 0x18
	rccAPB1ENR  uintptr = rccBase + 0x1C
)

// Timer enable/reset bit positions, identical in the ENR and RSTR
// registers of each bus.
const (
	apb1TIM2  = 0x1 << 0
	apb1TIM3  = 0x1 << 1
	apb1TIM4  = 0x1 << 2
	apb2TIM1  = 0x1 << 11
	apb2TIM8  = 0x1 << 13
	apb2TIM15 = 0x1 << 16
	apb2TIM16 = 0x1 << 17
	apb2TIM17 = 0x1 << 18
)

var (
	// ErrTimerTaken is returned when a timer is taken a second time.
	ErrTimerTaken = errors.New("timer already taken")

	// ErrBusTaken is returned when a bus handle is taken a second time.
	ErrBusTaken = errors.New("bus already taken")
)

var takenTimers = make(map[core.TimerID]bool)

// take hands out each physical timer at most once for the lifetime of the
// program. Every handle downstream (locks, clones, channels) re-derives
// access to the instance issued here, so this guard is what makes the
// one-resource-per-peripheral invariant a checked property.
//
// Takes happen during system bring-up from the main context; the broker is
// not interrupt safe.
func take(id core.TimerID, tim *core.Timer) (*core.Timer, error) {
	if takenTimers[id] {
		return nil, ErrTimerTaken
	}
	takenTimers[id] = true
	return tim, nil
}

// TakeTIM1 takes the advanced control timer TIM1: four channels, three of
// them with complementary outputs, break/dead-time stage, on APB2.
func TakeTIM1() (*core.Timer, error) {
	return take(TIM1, &core.Timer{
		Regs:         tim1Regs,
		ID:           TIM1,
		NumChannels:  4,
		NumNChannels: 3,
		HasBreak:     true,
		EnableMask:   apb2TIM1,
		ResetMask:    apb2TIM1,
	})
}

// TakeTIM2 takes the general purpose timer TIM2: four channels with a
// 32-bit counter, on APB1.
func TakeTIM2() (*core.Timer, error) {
	return take(TIM2, &core.Timer{
		Regs:        tim2Regs,
		ID:          TIM2,
		NumChannels: 4,
		EnableMask:  apb1TIM2,
		ResetMask:   apb1TIM2,
	})
}

// TakeTIM3 takes the general purpose timer TIM3: four channels, on APB1.
func TakeTIM3() (*core.Timer, error) {
	return take(TIM3, &core.Timer{
		Regs:        tim3Regs,
		ID:          TIM3,
		NumChannels: 4,
		EnableMask:  apb1TIM3,
		ResetMask:   apb1TIM3,
	})
}

// TakeTIM4 takes the general purpose timer TIM4: four channels, on APB1.
func TakeTIM4() (*core.Timer, error) {
	return take(TIM4, &core.Timer{
		Regs:        tim4Regs,
		ID:          TIM4,
		NumChannels: 4,
		EnableMask:  apb1TIM4,
		ResetMask:   apb1TIM4,
	})
}

// TakeTIM8 takes the advanced control timer TIM8: four channels, three of
// them with complementary outputs, break/dead-time stage, on APB2.
func TakeTIM8() (*core.Timer, error) {
	return take(TIM8, &core.Timer{
		Regs:         tim8Regs,
		ID:           TIM8,
		NumChannels:  4,
		NumNChannels: 3,
		HasBreak:     true,
		EnableMask:   apb2TIM8,
		ResetMask:    apb2TIM8,
	})
}

// TakeTIM15 takes TIM15: two channels, the first with a complementary
// output, break stage, on APB2.
func TakeTIM15() (*core.Timer, error) {
	return take(TIM15, &core.Timer{
		Regs:         tim15Regs,
		ID:           TIM15,
		NumChannels:  2,
		NumNChannels: 1,
		HasBreak:     true,
		EnableMask:   apb2TIM15,
		ResetMask:    apb2TIM15,
	})
}

// TakeTIM16 takes the single channel timer TIM16 (complementary output,
// break stage), on APB2.
func TakeTIM16() (*core.Timer, error) {
	return take(TIM16, &core.Timer{
		Regs:         tim16Regs,
		ID:           TIM16,
		NumChannels:  1,
		NumNChannels: 1,
		HasBreak:     true,
		EnableMask:   apb2TIM16,
		ResetMask:    apb2TIM16,
	})
}

// TakeTIM17 takes the single channel timer TIM17 (complementary output,
// break stage), on APB2.
func TakeTIM17() (*core.Timer, error) {
	return take(TIM17, &core.Timer{
		Regs:         tim17Regs,
		ID:           TIM17,
		NumChannels:  1,
		NumNChannels: 1,
		HasBreak:     true,
		EnableMask:   apb2TIM17,
		ResetMask:    apb2TIM17,
	})
}

var (
	apb1Taken bool
	apb2Taken bool
)

// TakeAPB1 takes the enable/reset handle for the APB1 peripheral bus.
// Wrap it in a core mutex before handing it to InitPWM.
func TakeAPB1() (*core.BusRegs, error) {
	if apb1Taken {
		return nil, ErrBusTaken
	}
	apb1Taken = true
	return &core.BusRegs{ENR: apb1ENR, RSTR: apb1RSTR}, nil
}

// TakeAPB2 takes the enable/reset handle for the APB2 peripheral bus.
func TakeAPB2() (*core.BusRegs, error) {
	if apb2Taken {
		return nil, ErrBusTaken
	}
	apb2Taken = true
	return &core.BusRegs{ENR: apb2ENR, RSTR: apb2RSTR}, nil
}

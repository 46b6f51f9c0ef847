package core

// TimerRegs is the register block of an STM32 general purpose or advanced
// control timer. The layout matches the hardware register map, so target
// packages may overlay it directly on a peripheral base address; host
// builds allocate it in ordinary memory instead.
type TimerRegs struct {
	CR1   Register32 // control register 1
	CR2   Register32 // control register 2
	SMCR  Register32 // slave mode control register
	DIER  Register32 // DMA/interrupt enable register
	SR    Register32 // status register
	EGR   Register32 // event generation register
	CCMR1 Register32 // capture/compare mode register, channels 1-2
	CCMR2 Register32 // capture/compare mode register, channels 3-4
	CCER  Register32 // capture/compare enable register
	CNT   Register32 // counter
	PSC   Register32 // prescaler
	ARR   Register32 // auto-reload register
	RCR   Register32 // repetition counter (advanced timers)
	CCR   [4]Register32
	BDTR  Register32 // break and dead-time register (advanced timers)
	DCR   Register32 // DMA control register
	DMAR  Register32 // DMA address for full transfer
}

// Control and event bits.
const (
	TIM_CR1_CEN  = 0x1 << 0  // counter enable
	TIM_CR1_ARPE = 0x1 << 7  // auto-reload preload enable
	TIM_EGR_UG   = 0x1 << 0  // update generation
	TIM_BDTR_MOE = 0x1 << 15 // main output enable
)

// Capture/compare mode fields. Each CCMR half-register holds two channels,
// eight bits apart.
const (
	timCCMROCMPWM1 = 0x6      // PWM mode 1: high while CNT < CCR
	timCCMROCMMask = 0x7      // output compare mode field
	timCCMROCMPos  = 4        // mode field position for the low channel
	timCCMROCPE    = 0x1 << 3 // compare preload enable for the low channel
)

// ChannelID selects one capture/compare unit of a timer. It is fixed at
// channel creation and never changes.
type ChannelID uint8

// Capture/compare units, zero-indexed against the CCR array.
const (
	Ch1 ChannelID = iota
	Ch2
	Ch3
	Ch4
)

// enableBit returns this channel's output enable bit in CCER.
func (id ChannelID) enableBit() uint32 {
	return 0x1 << (4 * uint32(id))
}

// nEnableBit returns this channel's complementary output enable bit in CCER.
func (id ChannelID) nEnableBit() uint32 {
	return 0x1 << (4*uint32(id) + 2)
}

// ccmr returns the mode half-register covering this channel and the bit
// offset of the channel's field group within it.
func (id ChannelID) ccmr(t *TimerRegs) (*Register32, uint8) {
	if id >= Ch3 {
		return &t.CCMR2, uint8(id&1) * 8
	}
	return &t.CCMR1, uint8(id&1) * 8
}

// TimerID names a physical timer peripheral. Values are assigned by the
// per-chip packages; the core only compares them when consuming pin tokens.
type TimerID uint8

// BusRegs is the slice of the reset and clock control block that gates one
// peripheral bus: its clock enable register and its reset register. The two
// are not adjacent in hardware, so they are held by pointer.
type BusRegs struct {
	ENR  *Register32
	RSTR *Register32
}

// Timer describes one hardware timer model: its register block plus the
// chip data the core is parameterized by. Instances come from a per-chip
// package's take-once broker; at most one per physical timer ever exists.
type Timer struct {
	Regs *TimerRegs
	ID   TimerID

	// NumChannels is the number of capture/compare units. The first
	// NumNChannels of them also drive a complementary output.
	NumChannels  uint8
	NumNChannels uint8

	// HasBreak marks advanced control timers with break/dead-time logic,
	// whose outputs are dead until BDTR.MOE is asserted.
	HasBreak bool

	// EnableMask and ResetMask are this timer's bits in the bus ENR and
	// RSTR registers.
	EnableMask uint32
	ResetMask  uint32
}

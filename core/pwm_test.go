package core

import (
	"strings"
	"testing"
)

// newTestTimer builds a timer descriptor over an in-memory register block,
// plus the bus block that gates it.
func newTestTimer(id TimerID, channels, nChannels uint8, hasBreak bool) (*Timer, *BusRegs) {
	bus := &BusRegs{ENR: new(Register32), RSTR: new(Register32)}
	tim := &Timer{
		Regs:         new(TimerRegs),
		ID:           id,
		NumChannels:  channels,
		NumNChannels: nChannels,
		HasBreak:     hasBreak,
		EnableMask:   0x1 << 1,
		ResetMask:    0x1 << 1,
	}
	return tim, bus
}

func TestPrescalerValue(t *testing.T) {
	testCases := []struct {
		name   string
		res    uint32
		freqHz uint32
		clk    Clocks
		want   uint32
	}{
		{
			// Servo setup: 36MHz bus, undivided.
			name:   "36MHz res 9000 at 50Hz",
			res:    9000,
			freqHz: 50,
			clk:    Clocks{PCLK: 36_000_000, PPRE: 1},
			want:   79,
		},
		{
			// A divided bus feeds the timer at twice the bus clock.
			name:   "36MHz divided bus doubles timer clock",
			res:    9000,
			freqHz: 50,
			clk:    Clocks{PCLK: 36_000_000, PPRE: 2},
			want:   159,
		},
		{
			name:   "8MHz res 1000 at 1kHz",
			res:    1000,
			freqHz: 1000,
			clk:    Clocks{PCLK: 8_000_000, PPRE: 1},
			want:   7,
		},
		{
			// Truncating division: 72e6/255/490 = 576.27... -> 576.
			name:   "truncated divisor",
			res:    255,
			freqHz: 490,
			clk:    Clocks{PCLK: 72_000_000, PPRE: 1},
			want:   575,
		},
	}

	for _, tc := range testCases {
		tim, bus := newTestTimer(1, 4, 0, false)
		InitPWM(tim, tc.res, tc.freqHz, tc.clk, NewExclusive(bus), SharedLock)
		if got := tim.Regs.PSC.Get(); got != tc.want {
			t.Errorf("%s: PSC = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestInitSequence(t *testing.T) {
	tim, bus := newTestTimer(1, 4, 0, false)
	InitPWM(tim, 9000, 50, Clocks{PCLK: 36_000_000, PPRE: 1}, NewExclusive(bus), SharedLock)

	regs := tim.Regs
	if got := regs.ARR.Get(); got != 9000 {
		t.Errorf("ARR = %d, want the resolution 9000", got)
	}
	if !regs.CR1.HasBits(TIM_CR1_ARPE) {
		t.Error("auto-reload preload not enabled")
	}
	if !regs.CR1.HasBits(TIM_CR1_CEN) {
		t.Error("counter not started")
	}
	if !regs.EGR.HasBits(TIM_EGR_UG) {
		t.Error("no forced update event")
	}
	if regs.BDTR.HasBits(TIM_BDTR_MOE) {
		t.Error("MOE asserted on a timer without break logic")
	}

	// The clock gate must end up enabled and the reset pulse released.
	if !bus.ENR.HasBits(tim.EnableMask) {
		t.Error("timer clock gate not enabled")
	}
	if bus.RSTR.HasBits(tim.ResetMask) {
		t.Error("timer left in reset")
	}
}

func TestInitBreakTimerAssertsMOE(t *testing.T) {
	tim, bus := newTestTimer(1, 4, 3, true)
	InitPWM(tim, 9000, 50, Clocks{PCLK: 36_000_000, PPRE: 1}, NewExclusive(bus), SharedLock)

	if !tim.Regs.BDTR.HasBits(TIM_BDTR_MOE) {
		t.Error("break timer needs main output enable asserted")
	}
}

func TestInitHoldsBusLockOnce(t *testing.T) {
	// The gate enable and the whole reset pulse must happen under a
	// single bus lock, and the pulse must end released.
	tim, bus := newTestTimer(1, 4, 0, false)
	rec := &countingBusMutex{bus: bus}
	InitPWM(tim, 9000, 50, Clocks{PCLK: 36_000_000, PPRE: 1}, rec, SharedLock)

	if rec.locks != 1 {
		t.Fatalf("bus locked %d times, want 1", rec.locks)
	}
	if !bus.ENR.HasBits(tim.EnableMask) {
		t.Error("clock gate not left enabled")
	}
	if bus.RSTR.HasBits(tim.ResetMask) {
		t.Error("reset pulse not released")
	}
}

// countingBusMutex counts Lock calls on a wrapped bus block.
type countingBusMutex struct {
	bus   *BusRegs
	locks int
}

func (m *countingBusMutex) Lock(fn func(*BusRegs)) {
	m.locks++
	fn(m.bus)
}

func TestInitDerivesAllChannels(t *testing.T) {
	tim, bus := newTestTimer(3, 4, 0, false)
	channels := InitPWM(tim, 9000, 50, Clocks{PCLK: 36_000_000, PPRE: 1}, NewExclusive(bus), SharedLock)

	if len(channels) != 4 {
		t.Fatalf("derived %d channels, want 4", len(channels))
	}
	for i, ch := range channels {
		bound, err := ch.OutputTo(NewPin(3, ChannelID(i)))
		if err != nil {
			t.Fatalf("channel %d: bind: %v", i+1, err)
		}
		if got := bound.MaxDuty(); got != 9000 {
			t.Errorf("channel %d: MaxDuty = %d, want the resolution 9000", i+1, got)
		}
	}
}

func TestInitDebugLine(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	defer func() {
		SetDebugEnabled(false)
		SetDebugWriter(func(string) {})
	}()

	tim, bus := newTestTimer(3, 4, 0, false)
	InitPWM(tim, 9000, 50, Clocks{PCLK: 36_000_000, PPRE: 1}, NewExclusive(bus), SharedLock)

	if len(lines) != 1 {
		t.Fatalf("got %d debug lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "psc=79") || !strings.Contains(lines[0], "arr=9000") {
		t.Errorf("debug line %q missing psc/arr values", lines[0])
	}
}

func TestTimerClockDoubling(t *testing.T) {
	testCases := []struct {
		clk  Clocks
		want uint32
	}{
		{Clocks{PCLK: 36_000_000, PPRE: 1}, 36_000_000},
		{Clocks{PCLK: 36_000_000, PPRE: 2}, 72_000_000},
		{Clocks{PCLK: 9_000_000, PPRE: 8}, 18_000_000},
	}
	for _, tc := range testCases {
		if got := tc.clk.TimerClock(); got != tc.want {
			t.Errorf("TimerClock(%+v) = %d, want %d", tc.clk, got, tc.want)
		}
	}
}

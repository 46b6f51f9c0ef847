package stm32f303

import "stm32pwm/core"

// Alternate-function routing table, reduced from the datasheet. Each
// function issues a single-use token attesting that the named GPIO pin is
// routed to the named timer channel output; putting the pin into that
// alternate function is the GPIO layer's job and happens before the token
// is bound. The CHxN variants route to the complementary output stage.
//
// This file is data, not logic. Pins absent here exist on larger packages
// and follow the same pattern.

// TIM1, AF6 unless noted.

func TIM1CH1PA8() core.Pin    { return core.NewPin(TIM1, core.Ch1) }
func TIM1CH1NPA7() core.NPin  { return core.NewNPin(TIM1, core.Ch1) }
func TIM1CH1NPA11() core.NPin { return core.NewNPin(TIM1, core.Ch1) }
func TIM1CH1NPB13() core.NPin { return core.NewNPin(TIM1, core.Ch1) }
func TIM1CH1NPC13() core.NPin { return core.NewNPin(TIM1, core.Ch1) } // AF4
func TIM1CH2PA9() core.Pin    { return core.NewPin(TIM1, core.Ch2) }
func TIM1CH2NPA12() core.NPin { return core.NewNPin(TIM1, core.Ch2) }
func TIM1CH2NPB0() core.NPin  { return core.NewNPin(TIM1, core.Ch2) }
func TIM1CH2NPB14() core.NPin { return core.NewNPin(TIM1, core.Ch2) }
func TIM1CH3PA10() core.Pin   { return core.NewPin(TIM1, core.Ch3) }
func TIM1CH3NPB1() core.NPin  { return core.NewNPin(TIM1, core.Ch3) }
func TIM1CH3NPB15() core.NPin { return core.NewNPin(TIM1, core.Ch3) } // AF4
func TIM1CH3NPF0() core.NPin  { return core.NewNPin(TIM1, core.Ch3) }
func TIM1CH4PA11() core.Pin   { return core.NewPin(TIM1, core.Ch4) } // AF11

// TIM2, AF1.

func TIM2CH1PA0() core.Pin  { return core.NewPin(TIM2, core.Ch1) }
func TIM2CH1PA5() core.Pin  { return core.NewPin(TIM2, core.Ch1) }
func TIM2CH1PA15() core.Pin { return core.NewPin(TIM2, core.Ch1) }
func TIM2CH2PA1() core.Pin  { return core.NewPin(TIM2, core.Ch2) }
func TIM2CH2PB3() core.Pin  { return core.NewPin(TIM2, core.Ch2) }
func TIM2CH3PA2() core.Pin  { return core.NewPin(TIM2, core.Ch3) }
func TIM2CH3PB10() core.Pin { return core.NewPin(TIM2, core.Ch3) }
func TIM2CH4PA3() core.Pin  { return core.NewPin(TIM2, core.Ch4) }
func TIM2CH4PB11() core.Pin { return core.NewPin(TIM2, core.Ch4) }

// TIM3, AF2.

func TIM3CH1PA6() core.Pin { return core.NewPin(TIM3, core.Ch1) }
func TIM3CH1PB4() core.Pin { return core.NewPin(TIM3, core.Ch1) }
func TIM3CH1PC6() core.Pin { return core.NewPin(TIM3, core.Ch1) }
func TIM3CH2PA7() core.Pin { return core.NewPin(TIM3, core.Ch2) }
func TIM3CH2PB5() core.Pin { return core.NewPin(TIM3, core.Ch2) }
func TIM3CH2PC7() core.Pin { return core.NewPin(TIM3, core.Ch2) }
func TIM3CH3PB0() core.Pin { return core.NewPin(TIM3, core.Ch3) }
func TIM3CH3PC8() core.Pin { return core.NewPin(TIM3, core.Ch3) }
func TIM3CH4PB1() core.Pin { return core.NewPin(TIM3, core.Ch4) }
func TIM3CH4PC9() core.Pin { return core.NewPin(TIM3, core.Ch4) }

// TIM4, AF2.

func TIM4CH1PB6() core.Pin  { return core.NewPin(TIM4, core.Ch1) }
func TIM4CH1PD12() core.Pin { return core.NewPin(TIM4, core.Ch1) }
func TIM4CH2PB7() core.Pin  { return core.NewPin(TIM4, core.Ch2) }
func TIM4CH2PD13() core.Pin { return core.NewPin(TIM4, core.Ch2) }
func TIM4CH3PB8() core.Pin  { return core.NewPin(TIM4, core.Ch3) }
func TIM4CH3PD14() core.Pin { return core.NewPin(TIM4, core.Ch3) }
func TIM4CH4PB9() core.Pin  { return core.NewPin(TIM4, core.Ch4) }
func TIM4CH4PD15() core.Pin { return core.NewPin(TIM4, core.Ch4) }

// TIM8, AF4/AF10 per pin.

func TIM8CH1PA15() core.Pin  { return core.NewPin(TIM8, core.Ch1) }  // AF2
func TIM8CH1PC6() core.Pin   { return core.NewPin(TIM8, core.Ch1) }  // AF4
func TIM8CH1NPA7() core.NPin { return core.NewNPin(TIM8, core.Ch1) } // AF4
func TIM8CH2PC7() core.Pin   { return core.NewPin(TIM8, core.Ch2) }  // AF4
func TIM8CH2NPB0() core.NPin { return core.NewNPin(TIM8, core.Ch2) } // AF4
func TIM8CH3PC8() core.Pin   { return core.NewPin(TIM8, core.Ch3) }  // AF4
func TIM8CH3NPB1() core.NPin { return core.NewNPin(TIM8, core.Ch3) } // AF4
func TIM8CH4PC9() core.Pin   { return core.NewPin(TIM8, core.Ch4) }  // AF4

// TIM15, AF9 on port A, AF1/AF2 on port B.

func TIM15CH1PA2() core.Pin    { return core.NewPin(TIM15, core.Ch1) }
func TIM15CH1PB14() core.Pin   { return core.NewPin(TIM15, core.Ch1) } // AF1
func TIM15CH1NPA1() core.NPin  { return core.NewNPin(TIM15, core.Ch1) }
func TIM15CH1NPB15() core.NPin { return core.NewNPin(TIM15, core.Ch1) } // AF2
func TIM15CH2PA3() core.Pin    { return core.NewPin(TIM15, core.Ch2) }
func TIM15CH2PB15() core.Pin   { return core.NewPin(TIM15, core.Ch2) } // AF1

// TIM16, AF1.

func TIM16CH1PA6() core.Pin   { return core.NewPin(TIM16, core.Ch1) }
func TIM16CH1PB8() core.Pin   { return core.NewPin(TIM16, core.Ch1) }
func TIM16CH1NPB6() core.NPin { return core.NewNPin(TIM16, core.Ch1) }

// TIM17, AF1.

func TIM17CH1PA7() core.Pin   { return core.NewPin(TIM17, core.Ch1) }
func TIM17CH1PB9() core.Pin   { return core.NewPin(TIM17, core.Ch1) }
func TIM17CH1NPB7() core.NPin { return core.NewNPin(TIM17, core.Ch1) }

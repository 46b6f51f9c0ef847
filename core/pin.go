package core

import "errors"

var (
	// ErrPinMismatch is returned when a pin token was issued for a
	// different timer or channel than the one it is being bound to.
	ErrPinMismatch = errors.New("pin is not routed to this timer channel")

	// ErrPinReused is returned when a pin token is bound a second time.
	ErrPinReused = errors.New("pin token already consumed")

	// ErrNoComplementary is returned when a complementary pin is bound to
	// a channel that has no complementary output stage.
	ErrNoComplementary = errors.New("channel has no complementary output")
)

// Pin proves that a GPIO pin has been configured with the alternate
// function routing it to a specific timer channel's output. Tokens are
// issued by the per-chip pin tables and are single use: binding consumes
// the token.
type Pin struct {
	timer TimerID
	ch    ChannelID
	used  *bool
}

// NewPin issues a token for the given timer channel. Intended for per-chip
// pin table packages; the GPIO alternate-function setup it attests to is
// outside this module.
func NewPin(timer TimerID, ch ChannelID) Pin {
	return Pin{timer: timer, ch: ch, used: new(bool)}
}

func (p Pin) consume(timer TimerID, ch ChannelID) error {
	if p.timer != timer || p.ch != ch {
		return ErrPinMismatch
	}
	if p.used == nil || *p.used {
		return ErrPinReused
	}
	*p.used = true
	return nil
}

// NPin is the complementary-output counterpart of Pin: it proves a GPIO
// pin is routed to a timer channel's complementary output (CHxN).
type NPin struct {
	timer TimerID
	ch    ChannelID
	used  *bool
}

// NewNPin issues a token for the given timer channel's complementary
// output.
func NewNPin(timer TimerID, ch ChannelID) NPin {
	return NPin{timer: timer, ch: ch, used: new(bool)}
}

func (p NPin) consume(timer TimerID, ch ChannelID) error {
	if p.timer != timer || p.ch != ch {
		return ErrPinMismatch
	}
	if p.used == nil || *p.used {
		return ErrPinReused
	}
	*p.used = true
	return nil
}

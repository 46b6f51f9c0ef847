//go:build !tinygo

package core

// Register32 is a 32-bit hardware register. On regular Go builds the
// accessors are plain memory operations, so register blocks can live in
// ordinary memory for tests and host-side simulation. The TinyGo build
// swaps this for runtime/volatile.Register32 (see register_tinygo.go);
// both expose the same accessor set.
type Register32 struct {
	Reg uint32
}

// Get returns the register value.
func (r *Register32) Get() uint32 {
	return r.Reg
}

// Set writes the register value.
func (r *Register32) Set(value uint32) {
	r.Reg = value
}

// SetBits sets every bit in mask, leaving other bits untouched.
func (r *Register32) SetBits(mask uint32) {
	r.Reg |= mask
}

// ClearBits clears every bit in mask, leaving other bits untouched.
func (r *Register32) ClearBits(mask uint32) {
	r.Reg &^= mask
}

// HasBits reports whether any bit in mask is set.
func (r *Register32) HasBits(mask uint32) bool {
	return r.Reg&mask != 0
}

// ReplaceBits writes value into the field of width mask at bit position pos.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Reg = r.Reg&^(mask<<pos) | value<<pos
}

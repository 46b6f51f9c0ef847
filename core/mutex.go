package core

// Mutex grants exclusive mutable access to a wrapped resource for the
// duration of a caller-supplied operation. Access is released on every path
// out of Lock; no lock state persists between calls.
//
// Two implementations exist. Exclusive is for resources that are already
// statically unique (the caller owns the only handle), so Lock is a direct
// call-through with zero runtime cost. GlobalInterrupt serializes against
// interrupt-context access by masking interrupts around the operation; it
// is the right choice whenever more than one handle to the resource exists,
// or an interrupt handler touches the same registers.
type Mutex[T any] interface {
	Lock(fn func(*T))
}

// Exclusive wraps a resource whose uniqueness is already guaranteed by
// ownership. It performs no serialization of its own.
type Exclusive[T any] struct {
	data *T
}

// NewExclusive wraps data in a pass-through mutex.
func NewExclusive[T any](data *T) *Exclusive[T] {
	return &Exclusive[T]{data: data}
}

// Lock runs fn with access to the wrapped resource.
func (m *Exclusive[T]) Lock(fn func(*T)) {
	fn(m.data)
}

// GlobalInterrupt wraps a resource shared between normal and interrupt
// context. Lock runs the operation inside an interrupt-masked critical
// section, which is the only serialization mechanism on a single-core
// bare-metal part. It is correct only if every mutating access to the
// resource, from any context, goes through a Lock call; callers must never
// hold a raw register pointer across a point where an interrupt can fire.
type GlobalInterrupt[T any] struct {
	data *T
}

// NewGlobalInterrupt wraps data in an interrupt-masking mutex.
//
// The wrapped block must be the single live instance of the underlying
// peripheral, obtained from a take-once broker (see the stm32f303 package).
// Every handle produced by Clone refers to that same instance; none of
// them allocate new resource state.
func NewGlobalInterrupt[T any](data *T) *GlobalInterrupt[T] {
	return &GlobalInterrupt[T]{data: data}
}

// Lock runs fn with interrupts masked. The previous interrupt state is
// restored even if fn panics.
func (m *GlobalInterrupt[T]) Lock(fn func(*T)) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn(m.data)
}

// Clone returns another handle to the same underlying resource. The copy
// shares the original's pointer; duplicating a handle never duplicates the
// resource, so the one-instance-per-peripheral invariant established at
// take time survives any number of clones.
func (m *GlobalInterrupt[T]) Clone() *GlobalInterrupt[T] {
	return &GlobalInterrupt[T]{data: m.data}
}

// SharedLock wraps a timer register block for use by multiple channels or
// from interrupt context. It has the shape InitPWM expects.
func SharedLock(t *TimerRegs) Mutex[TimerRegs] {
	return NewGlobalInterrupt(t)
}

// ExclusiveLock wraps a timer register block whose channels are all driven
// from a single owner in normal context. Locking is free.
func ExclusiveLock(t *TimerRegs) Mutex[TimerRegs] {
	return NewExclusive(t)
}

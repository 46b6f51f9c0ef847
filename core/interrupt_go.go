//go:build !tinygo

package core

// State is a placeholder for the saved interrupt state on regular Go.
type State uintptr

// disableInterrupts is a no-op on regular Go (for tests and host builds).
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on regular Go (for tests and host builds).
func restoreInterrupts(state State) {
	// No-op
}

//go:build tinygo

package core

import "runtime/volatile"

// Register32 is a 32-bit hardware register. Under TinyGo all accesses are
// volatile so the compiler cannot reorder or elide them.
type Register32 = volatile.Register32

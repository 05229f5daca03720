// Package identity allocates element ids.
package identity

import (
	"strconv"
	"sync/atomic"
)

// Prefix of generated ids.
const Prefix = "a11y-"

// Allocator generates ids of the form "a11y-N" with N starting at 0. The
// counter belongs to the allocator, engines sharing an allocator never
// produce the same generated id.
type Allocator struct {
	next atomic.Uint64
}

// New creates an allocator starting at 0.
func New() *Allocator {
	return &Allocator{}
}

// Allocate returns supplied when it is not empty. Otherwise it returns the
// next generated id, the counter only moves in this case.
func (a *Allocator) Allocate(supplied string) string {
	if supplied != "" {
		return supplied
	}

	n := a.next.Add(1) - 1
	return Prefix + strconv.FormatUint(n, 10)
}

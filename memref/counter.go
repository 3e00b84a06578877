package memref

import "sync/atomic"

// -----------------------------------------------------------------------------

// FetchAdd adds v to *counter with wraparound and returns the prior value.
func FetchAdd(counter *int32, v int32) int32 {
	old := *counter
	*counter = old + v
	return old
}

// Load returns *counter.
func Load(counter *int32) int32 {
	return *counter
}

// Store sets *counter to v.
func Store(counter *int32, v int32) {
	*counter = v
}

// -----------------------------------------------------------------------------

// Counter is a 32-bit cell with the same operations as FetchAdd, Load and
// Store, safe for concurrent use. The zero value holds 0.
type Counter struct {
	v atomic.Int32
}

// Load returns the current value.
func (p *Counter) Load() int32 {
	return p.v.Load()
}

// Store sets the value to v.
func (p *Counter) Store(v int32) {
	p.v.Store(v)
}

// FetchAdd adds v with wraparound and returns the prior value.
func (p *Counter) FetchAdd(v int32) int32 {
	return p.v.Add(v) - v
}

// -----------------------------------------------------------------------------

package sticky

import "sync/atomic"

// The two most significant bits of the word control the stickiness. The
// remaining 62 bits hold the live count.
const (
	deadBit   uint64 = 1 << 63
	assistBit uint64 = 1 << 62
	countMask uint64 = assistBit - 1
)

// Counter is a lock-free counter that permanently sticks at zero. Many
// goroutines may Increment, Decrement and Read it concurrently and none
// of them ever blocks. Exactly one Decrement over the lifetime of the
// counter returns true, and once any Read returns 0 every later Read
// returns 0 as well.
//
// The zero value is not usable; construct with New.
type Counter struct {
	state atomic.Uint64
}

// New returns a Counter already holding one ownership, as if Increment
// had been called once.
func New() *Counter {
	c := new(Counter)
	c.state.Store(1)
	return c
}

// Increment adds one ownership to the counter. It returns false if the
// counter was already dead, in which case the ownership was not granted
// and the counter stays dead.
func (c *Counter) Increment() bool {
	v := c.state.Add(1)
	checkIncrement(v)
	return v&deadBit == 0
}

// Decrement removes one ownership from the counter and reports whether
// this call is the one that took it to zero. It must be matched with a
// prior successful Increment or the initial ownership from New.
func (c *Counter) Decrement() bool {
	v := c.state.Add(^uint64(0))
	checkDecrement(v)
	return v == 0 && c.finalize()
}

// finalize runs after a Decrement's subtract made the count zero but
// before the dead bit is set. Two things can slip in ahead of the first
// swap: an Increment lands and the word is no longer zero, so the swap
// fails and we did not reach zero after all; or a Read sees the zero
// and files an assist request by setting both high bits. In the second
// case whoever clears the assist bit owns the zero crossing, and only
// one swap can clear it. The re-read word may carry stale count bits
// from Increments refused after the dead bit went up, so the swap
// compares against the whole word rather than dead+assist alone; the
// assist bit is never set on a live counter, so this cannot clobber a
// revived one.
func (c *Counter) finalize() bool {
	if c.state.CompareAndSwap(0, deadBit) {
		return true
	}
	v := c.state.Load()
	return v&assistBit != 0 && c.state.CompareAndSwap(v, deadBit)
}

// Read returns the current live count, or 0 once the counter is dead.
// Reads are sticky: after any call returns 0, every later call on any
// goroutine also returns 0.
func (c *Counter) Read() uint64 {
	v := c.state.Load()

	// A raw zero is ambiguous: some Decrement is between its subtract
	// and its finalizing swap, and an Increment could still revive the
	// count before that swap lands. Returning the raw 0 would allow a
	// later Read to return nonzero. Instead, latch the word dead and
	// set the assist bit so the in-flight Decrement can still claim the
	// zero crossing.
	if v == 0 {
		if c.state.CompareAndSwap(0, deadBit|assistBit) {
			return 0
		}
		v = c.state.Load()
	}

	if v&deadBit != 0 {
		return 0
	}
	return v
}

// Package sticky provides a lock-free counter that permanently sticks
// at zero, for deciding which of many concurrent owners of a shared
// resource performs its final cleanup.
//
// Consider a connection shared by many goroutines, reference counted
// with a plain atomic:
//
//	func (c *conn) release() {
//		if atomic.AddInt64(&c.refs, -1) == 0 {
//			c.close()
//		}
//	}
//
//	func (c *conn) tryAcquire() bool {
//		return atomic.AddInt64(&c.refs, 1) > 1
//	}
//
// This solution has two races. The count can bounce back above zero
// after the last release has already decided to close: one goroutine
// bumps the count from 0 to 1 and is refused, and a second one bumps it
// from 1 to 2 and is handed a connection that is being torn down. And a
// goroutine that polls the count can read 0 now and 1 later, so "I saw
// it reach zero" is not a fact it can act on. Using the Counter in this
// package, both problems go away without introducing a lock:
//
//	func (c *conn) release() {
//		if c.refs.Decrement() {
//			c.close()
//		}
//	}
//
//	func (c *conn) tryAcquire() bool {
//		return c.refs.Increment()
//	}
//
// Exactly one release call is told to run the cleanup, an acquire that
// races with the final release is refused rather than handed a dying
// resource, and once any goroutine reads the count as 0 it stays 0
// forever. All three operations are single atomic steps; none of them
// waits for any other goroutine.
package sticky

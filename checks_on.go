//go:build stickychecks

package sticky

// checkIncrement panics if the live count wrapped out of its 62-bit
// field. v is the word after the add.
func checkIncrement(v uint64) {
	if v&deadBit == 0 && v&countMask == 0 {
		panic("sticky: counter overflowed 62 bits")
	}
}

// checkDecrement panics if the count went below zero, meaning the
// Decrement had no matching Increment. v is the word after the
// subtract.
func checkDecrement(v uint64) {
	if v&countMask == countMask {
		panic("sticky: Decrement without matching Increment")
	}
}

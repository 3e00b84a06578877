// Package arith holds the fixed-width integer examples. Every operation wraps
// modulo 2^width; none of them traps on overflow.
package arith

// -----------------------------------------------------------------------------

// Add returns a+b reduced modulo 2^32.
//
// Signed overflow is undefined in C, so a C compiler may mark this addition
// nsw. Go defines it as two's complement wraparound.
func Add(a, b int32) int32 {
	return a + b
}

// AddU32 returns a+b reduced modulo 2^32. Unsigned wraparound is well defined
// on both sides of the comparison.
func AddU32(a, b uint32) uint32 {
	return a + b
}

// -----------------------------------------------------------------------------

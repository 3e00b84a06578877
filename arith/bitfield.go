package arith

// ExtractBits returns the length-bit field of value that starts at bit start,
// right aligned.
//
// Callers keep start+length <= 32. Out of range shifts yield 0 in Go, so
// length == 32 produces a full mask and start >= 32 produces 0.
func ExtractBits(value, start, length uint32) uint32 {
	return (value >> start) & ((uint32(1) << length) - 1)
}

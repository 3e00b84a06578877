package arith

// Factorial returns n! with wrapping multiplication, and 1 for n <= 1.
//
// Recursion depth equals n and there is no depth guard.
func Factorial(n int32) int32 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// FactorialIter computes the same value as Factorial with an accumulator.
func FactorialIter(n int32) int32 {
	ret := int32(1)
	for ; n > 1; n-- {
		ret *= n
	}
	return ret
}

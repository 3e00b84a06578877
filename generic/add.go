// Package generic holds the generic addition example and its two fixed
// instantiations.
package generic

import "golang.org/x/exp/constraints"

// Number is satisfied by every integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// AddGeneric returns a+b: wrapping for integers, IEEE-754 for floats.
func AddGeneric[T Number](a, b T) T {
	return a + b
}

func AddGenericInt(a, b int32) int32 {
	return AddGeneric(a, b)
}

func AddGenericFloat(a, b float32) float32 {
	return AddGeneric(a, b)
}

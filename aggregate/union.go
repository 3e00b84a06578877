package aggregate

import "math"

// IntFloat is one 32-bit word read either as an int32 or as a float32.
// Writing one view and reading the other reinterprets the bits.
type IntFloat struct {
	bits uint32
}

func (p *IntFloat) SetInt(v int32) {
	p.bits = uint32(v)
}

func (p *IntFloat) SetFloat(v float32) {
	p.bits = math.Float32bits(v)
}

func (p IntFloat) Int() int32 {
	return int32(p.bits)
}

func (p IntFloat) Float() float32 {
	return math.Float32frombits(p.bits)
}

// IntBitsToFloat returns the IEEE-754 single precision value whose bit pattern
// is bits.
func IntBitsToFloat(bits int32) float32 {
	var u IntFloat
	u.SetInt(bits)
	return u.Float()
}

// Package aggregate holds the struct, enum and union examples. All of them
// are plain value types.
package aggregate

// Point has the layout of struct { int32_t x; int32_t y; }.
type Point struct {
	X int32
	Y int32
}

// CreatePoint returns Point{x, y}.
func CreatePoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Clone returns a field-wise copy of p. The copy shares no storage with p.
func (p Point) Clone() Point {
	return Point{X: p.X, Y: p.Y}
}

// ClonePointAndReadX builds Point{x, y}, clones it and returns the clone's X.
func ClonePointAndReadX(x, y int32) int32 {
	p := Point{X: x, Y: y}
	clone := p.Clone()
	return clone.X
}

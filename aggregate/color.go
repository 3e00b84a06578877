package aggregate

import (
	"errors"
	"fmt"
	"strconv"
)

// Color is a three-valued enumeration backed by int32.
type Color int32

const (
	Red Color = iota
	Green
	Blue
)

// ErrColorOutOfRange is returned by CreateColor for values outside {0, 1, 2}.
var ErrColorOutOfRange = errors.New("color out of range")

// Valid reports whether c is one of Red, Green or Blue.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// CreateColor converts x to a Color, failing for values outside {0, 1, 2}.
func CreateColor(x int32) (Color, error) {
	c := Color(x)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrColorOutOfRange, x)
	}
	return c, nil
}

// CreateColorUnchecked reinterprets x as a Color without a range check.
// For x outside {0, 1, 2} the result matches no declared variant; callers
// that switch on it must handle that case themselves.
func CreateColorUnchecked(x int32) Color {
	return Color(x)
}

package aggregate

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestCreatePoint(t *testing.T) {
	p := CreatePoint(3, -4)
	assert.Equal(t, Point{X: 3, Y: -4}, p)
}

func TestPointLayout(t *testing.T) {
	var p Point
	assert.Equal(t, uintptr(8), unsafe.Sizeof(p))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.X))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(p.Y))
}

func TestClone(t *testing.T) {
	p := CreatePoint(1, 2)
	clone := p.Clone()
	require.Equal(t, p, clone)

	clone.X = 100
	assert.Equal(t, int32(1), p.X)
	assert.Equal(t, int32(100), clone.X)
}

func TestClonePointAndReadX(t *testing.T) {
	assert.Equal(t, int32(5), ClonePointAndReadX(5, 6))
	assert.Equal(t, int32(math.MinInt32), ClonePointAndReadX(math.MinInt32, 0))
}

// -----------------------------------------------------------------------------

func TestCreateColor(t *testing.T) {
	for i, want := range []Color{Red, Green, Blue} {
		c, err := CreateColor(int32(i))
		require.NoError(t, err)
		assert.Equal(t, want, c)
		assert.True(t, c.Valid())
	}
	for _, x := range []int32{-1, 3, math.MaxInt32} {
		_, err := CreateColor(x)
		assert.True(t, errors.Is(err, ErrColorOutOfRange), "x = %d", x)
	}
}

func TestCreateColorUnchecked(t *testing.T) {
	assert.Equal(t, Green, CreateColorUnchecked(1))

	c := CreateColorUnchecked(7)
	assert.False(t, c.Valid())
	assert.Equal(t, int32(7), int32(c))
	assert.Equal(t, "Color(7)", c.String())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Green", Green.String())
	assert.Equal(t, "Blue", Blue.String())
}

// -----------------------------------------------------------------------------

func TestIntBitsToFloat(t *testing.T) {
	assert.Equal(t, float32(1.0), IntBitsToFloat(0x3F800000))
	assert.Equal(t, float32(-2.0), IntBitsToFloat(-0x40000000))
	assert.Equal(t, float32(0), IntBitsToFloat(0))
	assert.True(t, math.IsInf(float64(IntBitsToFloat(0x7F800000)), 1))
	assert.True(t, math.IsNaN(float64(IntBitsToFloat(0x7FC00000))))
}

func TestIntFloat(t *testing.T) {
	var u IntFloat
	u.SetFloat(0.5)
	assert.Equal(t, int32(0x3F000000), u.Int())
	u.SetInt(0x40490FDB)
	assert.InDelta(t, math.Pi, float64(u.Float()), 1e-6)
}

// -----------------------------------------------------------------------------

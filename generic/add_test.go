package generic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddGenericInt(t *testing.T) {
	vals := []int32{0, 1, -1, 1000, math.MaxInt32, math.MinInt32}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, a+b, AddGenericInt(a, b), "%d + %d", a, b)
		}
	}
	assert.Equal(t, int32(math.MinInt32), AddGenericInt(math.MaxInt32, 1))
}

func TestAddGenericFloat(t *testing.T) {
	assert.Equal(t, float32(3.5), AddGenericFloat(1.25, 2.25))
	assert.True(t, math.IsInf(float64(AddGenericFloat(math.MaxFloat32, math.MaxFloat32)), 1))
	assert.True(t, math.IsNaN(float64(AddGenericFloat(float32(math.Inf(1)), float32(math.Inf(-1))))))

	a, b := float32(0.1), float32(0.2)
	assert.Equal(t, a+b, AddGenericFloat(a, b))
}

func TestAddGenericOther(t *testing.T) {
	assert.Equal(t, uint8(4), AddGeneric[uint8](250, 10))
	assert.Equal(t, int64(math.MinInt64), AddGeneric[int64](math.MaxInt64, 1))
	assert.Equal(t, 0.75, AddGeneric(0.5, 0.25))
}

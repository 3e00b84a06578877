package indirect

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func double(x int32) int32 {
	return x * 2
}

func TestProcess(t *testing.T) {
	assert.Equal(t, int32(42), Process(double, 21))
	assert.Equal(t, int32(-2), Process(double, math.MaxInt32))

	n := int32(0)
	counting := func(x int32) int32 {
		n++
		return x + n
	}
	assert.Equal(t, int32(11), Process(counting, 10))
	assert.Equal(t, int32(12), Process(counting, 10))
}

func TestProcessPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Process(func(int32) int32 { panic("boom") }, 0)
	})
}

func ExampleProcess() {
	square := func(x int32) int32 { return x * x }
	fmt.Println(Process(square, 7))
	// Output: 49
}

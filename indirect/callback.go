// Package indirect holds the function value example.
package indirect

// Callback is a plain function taking and returning one 32-bit integer.
type Callback func(int32) int32

// Process calls cb with x and returns its result unchanged. A panic raised by
// cb propagates to the caller.
func Process(cb Callback, x int32) int32 {
	return cb(x)
}

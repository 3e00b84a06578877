// Package memref holds the examples that read or write through a reference:
// bounded array access, dereference, swap, a counter cell and a bounded
// string length.
package memref

// ArrayLen is the fixed length of the arrays used by AccessArray and Access.
const ArrayLen = 10

// -----------------------------------------------------------------------------

// InitializeArray returns the array {0, 1, ..., 9}.
func InitializeArray() [ArrayLen]int32 {
	return [ArrayLen]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
}

// AccessArray returns element index of {0, 1, ..., 9}, or -1 if index is
// outside [0, 10).
func AccessArray(index int32) int32 {
	arr := InitializeArray()
	return Access(index, &arr)
}

// Access returns arr[index], or -1 if index is outside [0, 10).
func Access(index int32, arr *[ArrayLen]int32) int32 {
	if index < 0 || index >= ArrayLen {
		return -1
	}
	return arr[index]
}

// -----------------------------------------------------------------------------

// Deref returns the value p points to. p must not be nil.
func Deref(p *int32) int32 {
	return *p
}

// Swap exchanges *a and *b. When a and b alias, the value is unchanged.
func Swap(a, b *int32) {
	temp := *a
	*a = *b
	*b = temp
}

// -----------------------------------------------------------------------------

// StrLen counts the bytes of s before the first NUL, reading at most n bytes.
// Bytes past len(s) are never read.
func StrLen(s []byte, n uint) uint {
	if uint(len(s)) < n {
		n = uint(len(s))
	}
	count := uint(0)
	for count < n && s[count] != 0 {
		count++
	}
	return count
}

// -----------------------------------------------------------------------------

// Package control holds the loop and multi-way branch examples.
package control

import "golang.org/x/exp/constraints"

// -----------------------------------------------------------------------------

// BinarySearch returns the index of target in the ascending slice arr, or -1
// if it is absent. With duplicates, the first match found by bisection wins.
// arr is assumed sorted and is not checked.
func BinarySearch[T constraints.Ordered](arr []T, target *T) int64 {
	left := int64(0)
	right := int64(len(arr)) - 1

	for left <= right {
		mid := left + (right-left)/2
		switch v := arr[mid]; {
		case v == *target:
			return mid
		case v < *target:
			left = mid + 1
		default:
			if mid == 0 {
				return -1
			}
			right = mid - 1
		}
	}
	return -1
}

// BinarySearchInt32 is the concrete variant with 32-bit indices. size is the
// number of elements to search; it is clamped to len(arr) so that no element
// past the slice is read.
func BinarySearchInt32(arr []int32, size int64, target *int32) int32 {
	if n := int64(len(arr)); size > n {
		size = n
	}
	left := int32(0)
	right := int32(size) - 1

	for left <= right {
		mid := left + (right-left)/2
		if arr[mid] == *target {
			return mid
		}
		if arr[mid] < *target {
			left = mid + 1
		} else {
			if mid == 0 {
				break
			}
			right = mid - 1
		}
	}
	return -1
}

// -----------------------------------------------------------------------------

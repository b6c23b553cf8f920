// Package sort provides generic sorting and shuffling utilities for
// slices. All functions return a fresh slice and never mutate their input.
package sort

import (
	"cmp"
	"math/rand/v2"
)

// QuickSort returns a sorted copy of the slice in ascending order.
func QuickSort[T cmp.Ordered](slice []T) []T {
	return QuickSortBy(slice, func(v T) T { return v })
}

// QuickSortBy returns a copy of the slice sorted in ascending order of the
// key extracted from each element. Elements with equal keys keep no
// particular relative order.
func QuickSortBy[T any, K cmp.Ordered](slice []T, keyFn func(T) K) []T {
	result := make([]T, len(slice))
	copy(result, slice)
	quickSort(result, keyFn, 0, len(result)-1)
	return result
}

func quickSort[T any, K cmp.Ordered](slice []T, keyFn func(T) K, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(slice, keyFn, lo, hi)
	quickSort(slice, keyFn, lo, p-1)
	quickSort(slice, keyFn, p+1, hi)
}

// partition is a Lomuto scheme pivoting on the middle element, moved to
// the end before the scan.
func partition[T any, K cmp.Ordered](slice []T, keyFn func(T) K, lo, hi int) int {
	mid := lo + (hi-lo)/2
	slice[mid], slice[hi] = slice[hi], slice[mid]
	pivot := keyFn(slice[hi])
	i := lo
	for j := lo; j < hi; j++ {
		if keyFn(slice[j]) < pivot {
			slice[i], slice[j] = slice[j], slice[i]
			i++
		}
	}
	slice[i], slice[hi] = slice[hi], slice[i]
	return i
}

// Shuffle returns a Fisher-Yates shuffled copy of the slice. The random
// source is not cryptographically secure.
func Shuffle[T any](slice []T) []T {
	result := make([]T, len(slice))
	copy(result, slice)
	for i := len(result) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// IsSorted reports whether the slice is in ascending order.
func IsSorted[T cmp.Ordered](slice []T) bool {
	return IsSortedBy(slice, func(v T) T { return v })
}

// IsSortedBy reports whether the slice is in ascending order of the
// extracted key.
func IsSortedBy[T any, K cmp.Ordered](slice []T, keyFn func(T) K) bool {
	for i := 1; i < len(slice); i++ {
		if keyFn(slice[i]) < keyFn(slice[i-1]) {
			return false
		}
	}
	return true
}

// Reversed returns a reversed copy of the slice.
func Reversed[T any](slice []T) []T {
	result := make([]T, len(slice))
	for i, v := range slice {
		result[len(slice)-1-i] = v
	}
	return result
}

// Package slices provides generic slice utility functions: constructors,
// Option-returning getters, and set-like operations over comparable
// elements.
package slices

import "github.com/authcorp/funk/functional"

// Range returns the integers in [start, end), empty when end <= start.
func Range(start, end int) []int {
	if end <= start {
		return []int{}
	}
	result := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, i)
	}
	return result
}

// Tabulate builds a slice of n elements produced by fn(index).
func Tabulate[T any](n int, fn func(int) T) []T {
	if n <= 0 {
		return []T{}
	}
	result := make([]T, n)
	for i := range result {
		result[i] = fn(i)
	}
	return result
}

// Repeat builds a slice of n copies of value.
func Repeat[T any](value T, n int) []T {
	return Tabulate(n, func(int) T { return value })
}

// First returns the first element of the slice.
func First[T any](slice []T) functional.Option[T] {
	return At(slice, 0)
}

// Last returns the last element of the slice.
func Last[T any](slice []T) functional.Option[T] {
	return At(slice, len(slice)-1)
}

// At returns the element at index, None when the index is out of range.
func At[T any](slice []T, index int) functional.Option[T] {
	if index < 0 || index >= len(slice) {
		return functional.None[T]()
	}
	return functional.Some(slice[index])
}

// Find returns the first element that satisfies the predicate.
func Find[T any](slice []T, predicate func(T) bool) functional.Option[T] {
	for _, v := range slice {
		if predicate(v) {
			return functional.Some(v)
		}
	}
	return functional.None[T]()
}

// Take returns the first n elements of the slice.
func Take[T any](slice []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n >= len(slice) {
		return slice
	}
	return slice[:n]
}

// Drop returns the slice without the first n elements.
func Drop[T any](slice []T, n int) []T {
	if n <= 0 {
		return slice
	}
	if n >= len(slice) {
		return []T{}
	}
	return slice[n:]
}

// Map applies fn to each element of the slice, returning a new slice.
func Map[T, U any](slice []T, fn func(T) U) []U {
	result := make([]U, len(slice))
	for i, v := range slice {
		result[i] = fn(v)
	}
	return result
}

// Filter returns a new slice containing only elements that satisfy the
// predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range slice {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds the slice into a single value using the accumulator function.
func Reduce[T, U any](slice []T, initial U, fn func(U, T) U) U {
	acc := initial
	for _, v := range slice {
		acc = fn(acc, v)
	}
	return acc
}

// Contains returns true if the slice contains the element.
func Contains[T comparable](slice []T, elem T) bool {
	for _, v := range slice {
		if v == elem {
			return true
		}
	}
	return false
}

// Unique returns a new slice with duplicate elements removed, keeping the
// first occurrence of each.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Difference returns the distinct elements of a that do not appear in b,
// in first-occurrence order. Membership uses == on the element type.
func Difference[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	result := make([]T, 0)
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, hit := exclude[v]; !hit {
			result = append(result, v)
		}
	}
	return result
}

// Intersection returns the distinct elements present in both slices, in
// a's first-occurrence order. Membership uses == on the element type.
func Intersection[T comparable](a, b []T) []T {
	include := make(map[T]struct{}, len(b))
	for _, v := range b {
		include[v] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	result := make([]T, 0)
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, hit := include[v]; hit {
			result = append(result, v)
		}
	}
	return result
}

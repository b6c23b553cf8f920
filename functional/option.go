// Package functional provides algebraic data types for Go: Option, Result,
// their deferred async counterparts, Do-notation over accumulated bindings,
// and a small set of function combinators. The types are immutable values;
// every operation returns a fresh instance.
package functional

import (
	"fmt"
	"iter"
	"reflect"
)

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers. The zero value
// is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer, None when nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromNillable creates an Option from a value whose type can hold nil
// (pointer, map, slice, channel, function, interface). A nil value becomes
// None; values of non-nillable types are always Some.
func FromNillable[T any](value T) Option[T] {
	if isNil(value) {
		return None[T]()
	}
	return Some(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// FromNonZero creates an Option that is None when the value equals the
// zero value of its type.
func FromNonZero[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}
	return Some(value)
}

// TryOption invokes fn and wraps its result. An error, a panic, or a nil
// result all collapse to None; the panic is swallowed, not rethrown.
func TryOption[T any](fn func() (T, error)) (o Option[T]) {
	defer func() {
		if recover() != nil {
			o = None[T]()
		}
	}()
	value, err := fn()
	if err != nil {
		return None[T]()
	}
	return FromNillable(value)
}

// Guard lifts a predicate into an Option constructor: the returned function
// wraps its input in Some exactly when the predicate holds.
func Guard[T any](predicate func(T) bool) func(T) Option[T] {
	return func(value T) Option[T] {
		if predicate(value) {
			return Some(value)
		}
		return None[T]()
	}
}

// FirstSome returns the first present Option, or None when every candidate
// is empty.
func FirstSome[T any](options ...Option[T]) Option[T] {
	for _, o := range options {
		if o.present {
			return o
		}
	}
	return None[T]()
}

// FirstSomeSeq scans a sequence and stops pulling from it once a present
// Option is found.
func FirstSomeSeq[T any](seq iter.Seq[Option[T]]) Option[T] {
	for o := range seq {
		if o.present {
			return o
		}
	}
	return None[T]()
}

// OptionValues unwraps every present Option in order, dropping the empty ones.
func OptionValues[T any](options []Option[T]) []T {
	values := make([]T, 0, len(options))
	for _, o := range options {
		if o.present {
			values = append(values, o.value)
		}
	}
	return values
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value or panics with *UnwrapError if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&UnwrapError{Kind: "Option"})
	}
	return o.value
}

// Expect returns the contained value or panics with the error produced by
// onNone. The factory runs only on the empty path.
func (o Option[T]) Expect(onNone func() error) T {
	if !o.present {
		panic(onNone())
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// UnwrapOrZero returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Map applies fn to the contained value if present. Use FlatMapOption when
// fn itself produces an Option; mapping into a nested Option is almost
// always a mistake.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.present {
		return o
	}
	return Some(fn(o.value))
}

// AndThen chains a computation that may itself come up empty. The result
// of fn is returned as-is, so no nesting is introduced.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if !o.present {
		return o
	}
	return fn(o.value)
}

// Filter clears the Option when the predicate rejects its value.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the receiver when present, otherwise the fallback produced by
// fn. The fallback is not evaluated on the Some path.
func (o Option[T]) Or(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}

// Tap runs fn on the contained value for its side effect and returns the
// receiver unchanged.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// Contains reports whether the Option holds a value accepted by the predicate.
func (o Option[T]) Contains(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// Match executes exactly one of the two branches based on the Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two branches and returns its result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// ToSlice converts the Option to a slice of zero or one elements.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// ToPtr converts the Option to a pointer, nil when empty.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// All returns an iterator over the Option (0 or 1 elements).
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies a transformation function to an Option.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMapOption applies a function that returns an Option, flattening one
// level of nesting.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// ZipOption combines two Options pointwise into a Pair. The result is Some
// only when both inputs are.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipOptionWith(a, b, NewPair[A, B])
}

// ZipOptionWith combines two Options pointwise using fn.
func ZipOptionWith[A, B, C any](a Option[A], b Option[B], fn func(A, B) C) Option[C] {
	if !a.present || !b.present {
		return None[C]()
	}
	return Some(fn(a.value, b.value))
}

// OptionEqual reports whether two Options are both empty, or both present
// with == values. Equality is shallow, matching == semantics.
func OptionEqual[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// OptionEqualFunc is OptionEqual with a caller-supplied value comparison.
func OptionEqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}

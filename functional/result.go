package functional

import (
	"fmt"
	"iter"
)

// Result represents the outcome of an operation that may fail. It contains
// either a success value of type T or a failure payload of type E. The
// payload is an ordinary value; it does not have to implement error.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// TryFunc wraps a function call's return pair with error handling.
func TryFunc[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Catch is Try with a recover barrier: a panic inside fn becomes the
// failure payload instead of unwinding the caller.
func Catch[T any](fn func() (T, error)) (r Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T, error](fmt.Errorf("functional: recovered: %v", p))
		}
	}()
	value, err := fn()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics with *UnwrapError on failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Kind: "Result"})
	}
	return r.value
}

// UnwrapErr returns the failure payload or panics on success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("functional: called UnwrapErr on Ok")
	}
	return r.err
}

// Expect returns the success value or panics with the error produced by
// onErr from the failure payload.
func (r Result[T, E]) Expect(onErr func(E) error) T {
	if !r.ok {
		panic(onErr(r.err))
	}
	return r.value
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the
// failure payload.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Map applies fn to the success value; no-op on failure.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Ok[T, E](fn(r.value))
}

// MapErr applies fn to the failure payload; no-op on success.
func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T, E](fn(r.err))
}

// AndThen chains a computation that may itself fail, propagating the first
// failure payload.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return fn(r.value)
}

// Or returns the receiver on success, otherwise the fallback produced from
// the failure payload. The fallback is not evaluated on the Ok path.
func (r Result[T, E]) Or(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Tap runs fn on the success value for its side effect and returns the
// receiver unchanged.
func (r Result[T, E]) Tap(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr runs fn on the failure payload for its side effect and returns
// the receiver unchanged.
func (r Result[T, E]) TapErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Contains reports whether the Result succeeded with a value accepted by
// the predicate.
func (r Result[T, E]) Contains(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// Match executes exactly one of the two branches based on the Result state.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// MatchResult executes one of two branches and returns its result.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// ToOption converts the Result to an Option, discarding the failure payload.
func (r Result[T, E]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// ToSlice converts the Result to a slice of zero or one success values.
func (r Result[T, E]) ToSlice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// All returns an iterator over the Result (0 or 1 success values).
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies a transformation function to the success value.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapResultErr applies a transformation function to the failure payload,
// possibly changing its type.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// FlatMapResult applies a function that returns a Result, flattening one
// level of nesting.
func FlatMapResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(r.value)
}

// ZipResult combines two Results pointwise into a Pair. The first failure
// payload wins.
func ZipResult[A, B, E any](a Result[A, E], b Result[B, E]) Result[Pair[A, B], E] {
	return ZipResultWith(a, b, NewPair[A, B])
}

// ZipResultWith combines two Results pointwise using fn.
func ZipResultWith[A, B, C, E any](a Result[A, E], b Result[B, E], fn func(A, B) C) Result[C, E] {
	if !a.ok {
		return Err[C, E](a.err)
	}
	if !b.ok {
		return Err[C, E](b.err)
	}
	return Ok[C, E](fn(a.value, b.value))
}

// ResultEqual reports whether two Results are in the same state with ==
// payloads. Equality is shallow, matching == semantics.
func ResultEqual[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// ResultEqualFunc is ResultEqual with caller-supplied comparisons for each
// branch.
func ResultEqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqOk(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}

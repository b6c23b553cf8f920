package functional

import (
	"context"
	"fmt"
)

// AsyncResult defers the production of a Result until a terminal operation
// runs the chain. Like AsyncOption it re-runs the whole thunk chain on
// every terminal operation and composes strictly in sequence.
type AsyncResult[T, E any] struct {
	run func(context.Context) Result[T, E]
}

// DeferResult wraps a deferred Result computation.
func DeferResult[T, E any](run func(context.Context) Result[T, E]) AsyncResult[T, E] {
	return AsyncResult[T, E]{run: run}
}

// FromResultAsync lifts an already-computed Result.
func FromResultAsync[T, E any](r Result[T, E]) AsyncResult[T, E] {
	return DeferResult(func(context.Context) Result[T, E] { return r })
}

// AsyncOk lifts a plain value into a ready AsyncResult.
func AsyncOk[T, E any](value T) AsyncResult[T, E] {
	return FromResultAsync(Ok[T, E](value))
}

// AsyncErr creates a failed AsyncResult.
func AsyncErr[T, E any](err E) AsyncResult[T, E] {
	return FromResultAsync(Err[T, E](err))
}

// GoResult defers a fallible computation. When the chain runs, an error
// becomes the failure payload, a panic is converted into one, and an
// already-cancelled context fails with its cause.
func GoResult[T any](fn func(context.Context) (T, error)) AsyncResult[T, error] {
	return DeferResult(func(ctx context.Context) (r Result[T, error]) {
		defer func() {
			if p := recover(); p != nil {
				r = Err[T, error](fmt.Errorf("functional: recovered: %v", p))
			}
		}()
		if err := ctx.Err(); err != nil {
			return Err[T, error](err)
		}
		value, err := fn(ctx)
		if err != nil {
			return Err[T, error](err)
		}
		return Ok[T, error](value)
	})
}

// Eval runs the chain and returns the resolved Result.
func (a AsyncResult[T, E]) Eval(ctx context.Context) Result[T, E] {
	return a.run(ctx)
}

// Map applies fn to the resolved success value once the chain runs.
func (a AsyncResult[T, E]) Map(fn func(T) T) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		return a.run(ctx).Map(fn)
	})
}

// MapErr applies fn to the resolved failure payload once the chain runs.
func (a AsyncResult[T, E]) MapErr(fn func(E) E) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		return a.run(ctx).MapErr(fn)
	})
}

// AndThen chains a computation that may itself fail.
func (a AsyncResult[T, E]) AndThen(fn func(T) Result[T, E]) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		return a.run(ctx).AndThen(fn)
	})
}

// AndThenAsync chains another deferred computation, awaited only when the
// receiver resolves successfully.
func (a AsyncResult[T, E]) AndThenAsync(fn func(T) AsyncResult[T, E]) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		r := a.run(ctx)
		if !r.ok {
			return r
		}
		return fn(r.value).run(ctx)
	})
}

// Or falls back to another deferred computation built from the failure
// payload. The fallback chain is not run on the Ok path.
func (a AsyncResult[T, E]) Or(fn func(E) AsyncResult[T, E]) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		r := a.run(ctx)
		if r.ok {
			return r
		}
		return fn(r.err).run(ctx)
	})
}

// Tap runs fn on the resolved success value for its side effect.
func (a AsyncResult[T, E]) Tap(fn func(T)) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		return a.run(ctx).Tap(fn)
	})
}

// TapErr runs fn on the resolved failure payload for its side effect.
func (a AsyncResult[T, E]) TapErr(fn func(E)) AsyncResult[T, E] {
	return DeferResult(func(ctx context.Context) Result[T, E] {
		return a.run(ctx).TapErr(fn)
	})
}

// Unwrap runs the chain and returns the resolved success value, or
// *UnwrapError when the chain failed.
func (a AsyncResult[T, E]) Unwrap(ctx context.Context) (T, error) {
	r := a.run(ctx)
	if !r.ok {
		var zero T
		return zero, &UnwrapError{Kind: "Result"}
	}
	return r.value, nil
}

// UnwrapOr runs the chain and returns the resolved value or a default.
func (a AsyncResult[T, E]) UnwrapOr(ctx context.Context, defaultValue T) T {
	return a.run(ctx).UnwrapOr(defaultValue)
}

// Match runs the chain and dispatches to exactly one branch.
func (a AsyncResult[T, E]) Match(ctx context.Context, onOk func(T), onErr func(E)) {
	a.run(ctx).Match(onOk, onErr)
}

// Contains runs the chain and reports whether it resolved successfully to
// a value accepted by the predicate.
func (a AsyncResult[T, E]) Contains(ctx context.Context, predicate func(T) bool) bool {
	return a.run(ctx).Contains(predicate)
}

// MapAsyncResult applies a transformation function across the async boundary.
func MapAsyncResult[T, U, E any](a AsyncResult[T, E], fn func(T) U) AsyncResult[U, E] {
	return DeferResult(func(ctx context.Context) Result[U, E] {
		return MapResult(a.run(ctx), fn)
	})
}

// FlatMapAsyncResult chains a deferred computation of a different type.
func FlatMapAsyncResult[T, U, E any](a AsyncResult[T, E], fn func(T) AsyncResult[U, E]) AsyncResult[U, E] {
	return DeferResult(func(ctx context.Context) Result[U, E] {
		r := a.run(ctx)
		if !r.ok {
			return Err[U, E](r.err)
		}
		return fn(r.value).run(ctx)
	})
}

// AsyncResultToOption converts the deferred Result into a deferred Option,
// discarding the failure payload.
func AsyncResultToOption[T, E any](a AsyncResult[T, E]) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		return ResultToOption(a.run(ctx))
	})
}

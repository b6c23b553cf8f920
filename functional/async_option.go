package functional

import "context"

// AsyncOption defers the production of an Option until a terminal
// operation runs the chain. Every transformation wraps the previous thunk
// and delegates to the sync Option method of the same name once it
// resolves, so steps run strictly in sequence. Nothing is memoized: each
// terminal operation re-runs the whole chain.
type AsyncOption[T any] struct {
	run func(context.Context) Option[T]
}

// DeferOption wraps a deferred Option computation.
func DeferOption[T any](run func(context.Context) Option[T]) AsyncOption[T] {
	return AsyncOption[T]{run: run}
}

// FromOptionAsync lifts an already-computed Option.
func FromOptionAsync[T any](o Option[T]) AsyncOption[T] {
	return DeferOption(func(context.Context) Option[T] { return o })
}

// AsyncSome lifts a plain value into a ready AsyncOption.
func AsyncSome[T any](value T) AsyncOption[T] {
	return FromOptionAsync(Some(value))
}

// AsyncNone creates an empty AsyncOption.
func AsyncNone[T any]() AsyncOption[T] {
	return FromOptionAsync(None[T]())
}

// GoOption defers a fallible computation. When the chain runs, an error, a
// panic, or an already-cancelled context all collapse to None instead of
// escaping.
func GoOption[T any](fn func(context.Context) (T, error)) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) (o Option[T]) {
		defer func() {
			if recover() != nil {
				o = None[T]()
			}
		}()
		if ctx.Err() != nil {
			return None[T]()
		}
		value, err := fn(ctx)
		if err != nil {
			return None[T]()
		}
		return Some(value)
	})
}

// Eval runs the chain and returns the resolved Option.
func (a AsyncOption[T]) Eval(ctx context.Context) Option[T] {
	return a.run(ctx)
}

// Map applies fn to the resolved value once the chain runs.
func (a AsyncOption[T]) Map(fn func(T) T) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		return a.run(ctx).Map(fn)
	})
}

// AndThen chains a computation that may itself come up empty.
func (a AsyncOption[T]) AndThen(fn func(T) Option[T]) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		return a.run(ctx).AndThen(fn)
	})
}

// AndThenAsync chains another deferred computation, awaited only when the
// receiver resolves to a present value.
func (a AsyncOption[T]) AndThenAsync(fn func(T) AsyncOption[T]) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		o := a.run(ctx)
		if !o.present {
			return o
		}
		return fn(o.value).run(ctx)
	})
}

// Filter clears the resolved Option when the predicate rejects its value.
func (a AsyncOption[T]) Filter(predicate func(T) bool) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		return a.run(ctx).Filter(predicate)
	})
}

// Or falls back to another deferred computation when the receiver resolves
// empty. The fallback chain is not run on the present path.
func (a AsyncOption[T]) Or(fn func() AsyncOption[T]) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		o := a.run(ctx)
		if o.present {
			return o
		}
		return fn().run(ctx)
	})
}

// Tap runs fn on the resolved value for its side effect.
func (a AsyncOption[T]) Tap(fn func(T)) AsyncOption[T] {
	return DeferOption(func(ctx context.Context) Option[T] {
		return a.run(ctx).Tap(fn)
	})
}

// Unwrap runs the chain and returns the resolved value, or *UnwrapError
// when the chain came up empty.
func (a AsyncOption[T]) Unwrap(ctx context.Context) (T, error) {
	o := a.run(ctx)
	if !o.present {
		var zero T
		return zero, &UnwrapError{Kind: "Option"}
	}
	return o.value, nil
}

// UnwrapOr runs the chain and returns the resolved value or a default.
func (a AsyncOption[T]) UnwrapOr(ctx context.Context, defaultValue T) T {
	return a.run(ctx).UnwrapOr(defaultValue)
}

// Match runs the chain and dispatches to exactly one branch.
func (a AsyncOption[T]) Match(ctx context.Context, onSome func(T), onNone func()) {
	a.run(ctx).Match(onSome, onNone)
}

// Contains runs the chain and reports whether it resolved to a value
// accepted by the predicate.
func (a AsyncOption[T]) Contains(ctx context.Context, predicate func(T) bool) bool {
	return a.run(ctx).Contains(predicate)
}

// MapAsyncOption applies a transformation function across the async boundary.
func MapAsyncOption[T, U any](a AsyncOption[T], fn func(T) U) AsyncOption[U] {
	return DeferOption(func(ctx context.Context) Option[U] {
		return MapOption(a.run(ctx), fn)
	})
}

// FlatMapAsyncOption chains a deferred computation of a different type.
func FlatMapAsyncOption[T, U any](a AsyncOption[T], fn func(T) AsyncOption[U]) AsyncOption[U] {
	return DeferOption(func(ctx context.Context) Option[U] {
		o := a.run(ctx)
		if !o.present {
			return None[U]()
		}
		return fn(o.value).run(ctx)
	})
}

// AsyncOptionToResult converts the deferred Option into a deferred Result,
// using ErrMissingValue as the failure payload for None.
func AsyncOptionToResult[T any](a AsyncOption[T]) AsyncResult[T, error] {
	return DeferResult(func(ctx context.Context) Result[T, error] {
		return OptionToResult(a.run(ctx))
	})
}

package functional

// relayNone and relayFail are the internal panic tokens that Pull and
// PullOk use to abort a relay body. Any other panic crosses the barrier
// untouched.
type relayNone struct{}

type relayFail struct{ err any }

// Pull returns the Option's value, aborting the surrounding RelayOption
// immediately when the Option is empty. It must only be called from inside
// a RelayOption body.
func Pull[T any](o Option[T]) T {
	if !o.present {
		panic(relayNone{})
	}
	return o.value
}

// RelayOption runs body with early-return semantics: the first empty
// Option passed through Pull stops the body at that point, statements
// after it never execute, and the overall result is None. When every Pull
// succeeds, the body's return value is the result.
func RelayOption[T any](body func() Option[T]) (result Option[T]) {
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(relayNone); ok {
				result = None[T]()
				return
			}
			panic(p)
		}
	}()
	return body()
}

// PullOk returns the Result's success value, aborting the surrounding
// RelayResult with the failure payload when the Result failed. It must
// only be called from inside a RelayResult body with a matching E.
func PullOk[T, E any](r Result[T, E]) T {
	if !r.ok {
		panic(relayFail{err: r.err})
	}
	return r.value
}

// RelayResult runs body with early-return semantics over Results: the
// first failed Result passed through PullOk stops the body and its payload
// becomes the overall failure.
func RelayResult[T, E any](body func() Result[T, E]) (result Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			if fail, ok := p.(relayFail); ok {
				result = Err[T, E](fail.err.(E))
				return
			}
			panic(p)
		}
	}()
	return body()
}

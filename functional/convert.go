package functional

// OptionToResult converts an Option to a Result, using ErrMissingValue as
// the failure payload for None.
func OptionToResult[T any](o Option[T]) Result[T, error] {
	if o.present {
		return Ok[T, error](o.value)
	}
	return Err[T, error](ErrMissingValue)
}

// OptionToResultWith converts an Option to a Result with a caller-supplied
// failure payload factory, invoked only on the None path.
func OptionToResultWith[T, E any](o Option[T], onNone func() E) Result[T, E] {
	if o.present {
		return Ok[T, E](o.value)
	}
	return Err[T, E](onNone())
}

// ResultToOption converts a Result to an Option, discarding the failure
// payload.
func ResultToOption[T, E any](r Result[T, E]) Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

package functional

// Scope is the read-only set of named bindings accumulated by a Do chain.
// Binding never mutates a Scope; each step copies it and adds one key.
type Scope map[string]any

func (s Scope) with(key string, value any) Scope {
	next := make(Scope, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[key] = value
	return next
}

// ScopeValue fetches a binding by name, panicking with *BindError when the
// key was never bound or holds a value of a different type.
func ScopeValue[T any](s Scope, key string) T {
	v, ok := s[key]
	if !ok {
		panic(&BindError{Key: key, Reason: "is not bound"})
	}
	t, ok := v.(T)
	if !ok {
		panic(&BindError{Key: key, Reason: "is bound to a different type"})
	}
	return t
}

// DoOption opens an Option Do chain over an empty Scope. Successive
// BindOption/LetOption calls thread the scope through, short-circuiting
// the whole chain on the first empty step.
func DoOption() Option[Scope] {
	return Some(Scope{})
}

// BindOption evaluates fn against the accumulated scope and records its
// value under key. An empty receiver short-circuits without invoking fn;
// an empty fn result short-circuits the rest of the chain. Rebinding an
// existing key panics with *BindError.
func BindOption[T any](o Option[Scope], key string, fn func(Scope) Option[T]) Option[Scope] {
	if !o.present {
		return o
	}
	if _, exists := o.value[key]; exists {
		panic(&BindError{Key: key, Reason: "is already bound"})
	}
	bound := fn(o.value)
	if !bound.present {
		return None[Scope]()
	}
	return Some(o.value.with(key, bound.value))
}

// LetOption binds a plain value computed from the scope. A nil value counts
// as a failed binding and short-circuits, mirroring BindOption with an
// empty step.
func LetOption[T any](o Option[Scope], key string, fn func(Scope) T) Option[Scope] {
	return BindOption(o, key, func(s Scope) Option[T] {
		return FromNillable(fn(s))
	})
}

// BindToOption starts a Do chain from an existing Option, binding its value
// under key.
func BindToOption[T any](o Option[T], key string) Option[Scope] {
	return BindOption(DoOption(), key, func(Scope) Option[T] { return o })
}

// DoResult opens a Result Do chain over an empty Scope.
func DoResult[E any]() Result[Scope, E] {
	return Ok[Scope, E](Scope{})
}

// BindResult is BindOption for Results: the first failure payload
// propagates and every later step is skipped.
func BindResult[T, E any](r Result[Scope, E], key string, fn func(Scope) Result[T, E]) Result[Scope, E] {
	if !r.ok {
		return Err[Scope, E](r.err)
	}
	if _, exists := r.value[key]; exists {
		panic(&BindError{Key: key, Reason: "is already bound"})
	}
	bound := fn(r.value)
	if !bound.ok {
		return Err[Scope, E](bound.err)
	}
	return Ok[Scope, E](r.value.with(key, bound.value))
}

// LetResult binds a plain value computed from the scope. A nil value fails
// the chain with ErrMissingValue.
func LetResult[T any](r Result[Scope, error], key string, fn func(Scope) T) Result[Scope, error] {
	return BindResult(r, key, func(s Scope) Result[T, error] {
		return OptionToResult(FromNillable(fn(s)))
	})
}

// BindToResult starts a Do chain from an existing Result, binding its value
// under key.
func BindToResult[T, E any](r Result[T, E], key string) Result[Scope, E] {
	return BindResult(DoResult[E](), key, func(Scope) Result[T, E] { return r })
}

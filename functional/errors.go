package functional

import (
	"errors"
	"strconv"
)

// ErrMissingValue is the failure payload used when an empty Option is
// converted into a Result without a caller-supplied payload.
var ErrMissingValue = errors.New("functional: missing value")

// UnwrapError is the panic value raised by Unwrap on an empty Option or a
// failed Result, and the error returned by the async Unwrap terminals.
// Kind names the container that was unwrapped, "Option" or "Result".
type UnwrapError struct {
	Kind string
}

func (e *UnwrapError) Error() string {
	return "functional: called Unwrap on an empty " + e.Kind
}

// BindError is the panic value raised by a Do chain when a binding is
// rebound, missing, or holds a value of an unexpected type.
type BindError struct {
	Key    string
	Reason string
}

func (e *BindError) Error() string {
	return "functional: binding " + strconv.Quote(e.Key) + " " + e.Reason
}

// NewError builds an error from a plain message. It exists so callers of
// Expect and OptionToResultWith do not need to import the errors package
// for one-line payloads.
func NewError(message string) error {
	return errors.New(message)
}

package functional

import (
	"errors"
	"testing"
)

func TestResultBasicOperations(t *testing.T) {
	t.Run("Ok creates successful result", func(t *testing.T) {
		r := Ok[int, error](42)
		if !r.IsOk() || r.IsErr() {
			t.Error("expected Ok state")
		}
		if r.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", r.Unwrap())
		}
	})

	t.Run("Err creates failed result", func(t *testing.T) {
		r := Err[int]("denied")
		if r.IsOk() || !r.IsErr() {
			t.Error("expected Err state")
		}
		if r.UnwrapErr() != "denied" {
			t.Errorf("unexpected payload: %v", r.UnwrapErr())
		}
	})

	t.Run("Unwrap on Err panics with UnwrapError", func(t *testing.T) {
		defer func() {
			p := recover()
			ue, ok := p.(*UnwrapError)
			if !ok {
				t.Fatalf("expected *UnwrapError, got %T", p)
			}
			if ue.Kind != "Result" {
				t.Errorf("expected kind Result, got %s", ue.Kind)
			}
		}()
		Err[int](errors.New("x")).Unwrap()
	})

	t.Run("UnwrapErr on Ok panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		Ok[int, error](1).UnwrapErr()
	})

	t.Run("Expect builds the panic from the payload", func(t *testing.T) {
		defer func() {
			p := recover()
			err, ok := p.(error)
			if !ok || err.Error() != "code 7" {
				t.Errorf("unexpected panic: %v", p)
			}
		}()
		Err[int](7).Expect(func(code int) error {
			return NewError("code 7")
		})
	})

	t.Run("UnwrapOr and UnwrapOrElse", func(t *testing.T) {
		if Err[int](errors.New("x")).UnwrapOr(9) != 9 {
			t.Error("expected default")
		}
		got := Err[int]("boom").UnwrapOrElse(func(msg string) int { return len(msg) })
		if got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})
}

func TestResultConstructors(t *testing.T) {
	t.Run("Try wraps success and failure", func(t *testing.T) {
		if Try(func() (int, error) { return 1, nil }).Unwrap() != 1 {
			t.Error("expected Ok(1)")
		}
		r := Try(func() (int, error) { return 0, errors.New("nope") })
		if !r.IsErr() {
			t.Error("expected Err")
		}
	})

	t.Run("TryFunc wraps a call's return pair", func(t *testing.T) {
		parse := func() (int, error) { return 3, nil }
		if TryFunc(parse()).Unwrap() != 3 {
			t.Error("expected Ok(3)")
		}
	})

	t.Run("Catch converts panics into the payload", func(t *testing.T) {
		r := Catch(func() (int, error) { panic("kaboom") })
		if !r.IsErr() {
			t.Fatal("expected Err")
		}
		if r.UnwrapErr() == nil {
			t.Error("expected non-nil error payload")
		}
	})
}

func TestResultTransformations(t *testing.T) {
	t.Run("MapResultErr transforms only the payload", func(t *testing.T) {
		r := MapResultErr(Err[int](errors.New("x")), func(e error) string {
			return e.Error()
		})
		if r.UnwrapErr() != "x" {
			t.Errorf("expected x, got %v", r.UnwrapErr())
		}
	})

	t.Run("MapResultErr is a no-op on Ok", func(t *testing.T) {
		r := MapResultErr(Ok[int, error](5), func(e error) string {
			t.Error("must not run on Ok")
			return ""
		})
		if r.Unwrap() != 5 {
			t.Error("expected Ok(5)")
		}
	})

	t.Run("Map skips the Err branch", func(t *testing.T) {
		called := false
		r := Err[int]("bad").Map(func(n int) int {
			called = true
			return n
		})
		if called || !r.IsErr() {
			t.Error("Map must not run on Err")
		}
	})

	t.Run("AndThen propagates the first failure", func(t *testing.T) {
		positive := func(n int) Result[int, string] {
			if n <= 0 {
				return Err[int]("not positive")
			}
			return Ok[int, string](n)
		}
		if Ok[int, string](3).AndThen(positive).Unwrap() != 3 {
			t.Error("expected Ok(3)")
		}
		if Ok[int, string](-3).AndThen(positive).UnwrapErr() != "not positive" {
			t.Error("expected propagated failure")
		}
	})

	t.Run("Or recovers from failure", func(t *testing.T) {
		r := Err[int]("e").Or(func(msg string) Result[int, string] {
			return Ok[int, string](len(msg))
		})
		if r.Unwrap() != 1 {
			t.Error("expected recovered value")
		}
		Ok[int, string](1).Or(func(string) Result[int, string] {
			t.Error("fallback must not run on Ok")
			return Err[int]("")
		})
	})

	t.Run("Tap and TapErr observe the right branch", func(t *testing.T) {
		var okSeen, errSeen bool
		Ok[int, string](1).Tap(func(int) { okSeen = true }).TapErr(func(string) { errSeen = true })
		if !okSeen || errSeen {
			t.Error("expected only Tap to run on Ok")
		}
		okSeen, errSeen = false, false
		Err[int]("x").Tap(func(int) { okSeen = true }).TapErr(func(string) { errSeen = true })
		if okSeen || !errSeen {
			t.Error("expected only TapErr to run on Err")
		}
	})

	t.Run("ZipResultWith keeps the first failure", func(t *testing.T) {
		sum := func(a, b int) int { return a + b }
		if ZipResultWith(Ok[int, string](1), Ok[int, string](2), sum).Unwrap() != 3 {
			t.Error("expected Ok(3)")
		}
		r := ZipResultWith(Err[int]("first"), Err[int]("second"), sum)
		if r.UnwrapErr() != "first" {
			t.Error("expected first failure to win")
		}
	})
}

func TestResultConversions(t *testing.T) {
	t.Run("ToOption discards the payload", func(t *testing.T) {
		if Ok[int, error](1).ToOption().Unwrap() != 1 {
			t.Error("expected Some(1)")
		}
		if Err[int](errors.New("x")).ToOption().IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("All yields only success values", func(t *testing.T) {
		count := 0
		for v := range Ok[int, error](9).All() {
			count++
			if v != 9 {
				t.Errorf("expected 9, got %d", v)
			}
		}
		if count != 1 {
			t.Errorf("expected one value, got %d", count)
		}
		for range Err[int](errors.New("x")).All() {
			t.Error("Err must yield nothing")
		}
	})
}

func TestResultEquality(t *testing.T) {
	if !ResultEqual(Ok[int, string](1), Ok[int, string](1)) {
		t.Error("equal Ok values should compare equal")
	}
	if ResultEqual(Ok[int, string](1), Err[int]("x")) {
		t.Error("Ok should not equal Err")
	}
	if !ResultEqual(Err[int]("x"), Err[int]("x")) {
		t.Error("equal payloads should compare equal")
	}
	eqLen := func(a, b []int) bool { return len(a) == len(b) }
	eqStr := func(a, b string) bool { return a == b }
	if !ResultEqualFunc(Ok[[]int, string]([]int{1}), Ok[[]int, string]([]int{2}), eqLen, eqStr) {
		t.Error("expected equal under custom comparison")
	}
}

func TestResultString(t *testing.T) {
	if Ok[int, error](42).String() != "Ok(42)" {
		t.Error("unexpected string for Ok")
	}
	if Err[int]("x").String() != "Err(x)" {
		t.Error("unexpected string for Err")
	}
}

package functional

import "testing"

func TestPipe(t *testing.T) {
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	t.Run("applies left to right", func(t *testing.T) {
		if Pipe(3, double, inc) != 7 {
			t.Errorf("expected 7, got %d", Pipe(3, double, inc))
		}
	})

	t.Run("no functions is identity", func(t *testing.T) {
		if Pipe(3) != 3 {
			t.Error("expected input unchanged")
		}
	})
}

func TestCompose(t *testing.T) {
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	t.Run("applies right to left", func(t *testing.T) {
		if Compose(double, inc)(3) != 8 {
			t.Errorf("expected 8, got %d", Compose(double, inc)(3))
		}
	})

	t.Run("AndThen is the mirror of Compose", func(t *testing.T) {
		if AndThen(double, inc)(3) != Compose(inc, double)(3) {
			t.Error("expected mirrored application order")
		}
	})
}

func TestCombinators(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		if Identity("x") != "x" {
			t.Error("expected input unchanged")
		}
	})

	t.Run("Const ignores its argument", func(t *testing.T) {
		answer := Const[int, string](42)
		if answer("anything") != 42 {
			t.Error("expected constant value")
		}
	})

	t.Run("Not negates a predicate", func(t *testing.T) {
		even := func(n int) bool { return n%2 == 0 }
		odd := Not(even)
		if odd(2) || !odd(3) {
			t.Error("expected negated predicate")
		}
	})

	t.Run("Flip swaps arguments", func(t *testing.T) {
		sub := func(a, b int) int { return a - b }
		if Flip(sub)(2, 10) != 8 {
			t.Error("expected 10-2")
		}
	})

	t.Run("Curry and Uncurry invert each other", func(t *testing.T) {
		add := func(a, b int) int { return a + b }
		if Curry(add)(1)(2) != 3 {
			t.Error("expected 3")
		}
		if Uncurry(Curry(add))(1, 2) != 3 {
			t.Error("expected round-trip to behave like the original")
		}
	})
}

func TestPipeline(t *testing.T) {
	p := NewPipeline(5)
	doubled := Then(p, func(n int) int { return n * 2 })
	asString := Then(doubled, func(n int) string {
		if n == 10 {
			return "ten"
		}
		return "other"
	})
	if asString.Value() != "ten" {
		t.Errorf("expected ten, got %s", asString.Value())
	}
}

package functional

// Pair represents a tuple of two values. It is the carrier type for the
// zip operations on Option and Result.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapPairFirst applies a function to the first element.
func MapPairFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapPairSecond applies a function to the second element.
func MapPairSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// Zip combines two slices into a slice of Pairs, truncating to the shorter.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	result := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		result[i] = NewPair(as[i], bs[i])
	}
	return result
}

// ZipWith combines two slices using a function.
func ZipWith[A, B, C any](as []A, bs []B, fn func(A, B) C) []C {
	n := min(len(as), len(bs))
	result := make([]C, n)
	for i := 0; i < n; i++ {
		result[i] = fn(as[i], bs[i])
	}
	return result
}

// Unzip splits a slice of Pairs into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

package sort

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func counts(slice []int) map[int]int {
	result := make(map[int]int, len(slice))
	for _, v := range slice {
		result[v]++
	}
	return result
}

func sameCounts(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}

func TestQuickSortProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("output is sorted", prop.ForAll(
		func(arr []int) bool {
			return IsSorted(QuickSort(arr))
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("output is a permutation of the input", prop.ForAll(
		func(arr []int) bool {
			return sameCounts(counts(arr), counts(QuickSort(arr)))
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("input is never mutated", prop.ForAll(
		func(arr []int) bool {
			before := make([]int, len(arr))
			copy(before, arr)
			QuickSort(arr)
			for i := range arr {
				if arr[i] != before[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestQuickSortEdgeCases(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		if len(QuickSort([]int{})) != 0 {
			t.Error("expected empty result")
		}
	})

	t.Run("single element", func(t *testing.T) {
		result := QuickSort([]int{7})
		if len(result) != 1 || result[0] != 7 {
			t.Errorf("expected [7], got %v", result)
		}
	})

	t.Run("duplicates survive", func(t *testing.T) {
		result := QuickSort([]int{3, 1, 3, 2, 1})
		expected := []int{1, 1, 2, 3, 3}
		for i := range expected {
			if result[i] != expected[i] {
				t.Fatalf("expected %v, got %v", expected, result)
			}
		}
	})
}

func TestQuickSortBy(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	users := []user{{"carol", 35}, {"alice", 28}, {"bob", 31}}

	byAge := QuickSortBy(users, func(u user) int { return u.age })
	if byAge[0].name != "alice" || byAge[2].name != "carol" {
		t.Errorf("unexpected order: %v", byAge)
	}

	byName := QuickSortBy(users, func(u user) string { return u.name })
	if !IsSortedBy(byName, func(u user) string { return u.name }) {
		t.Errorf("expected name order: %v", byName)
	}

	if users[0].name != "carol" {
		t.Error("input was mutated")
	}
}

func TestShuffleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("output is a permutation of the input", prop.ForAll(
		func(arr []int) bool {
			return sameCounts(counts(arr), counts(Shuffle(arr)))
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("input is never mutated", prop.ForAll(
		func(arr []int) bool {
			before := make([]int, len(arr))
			copy(before, arr)
			Shuffle(arr)
			for i := range arr {
				if arr[i] != before[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestReversed(t *testing.T) {
	result := Reversed([]int{1, 2, 3})
	if result[0] != 3 || result[1] != 2 || result[2] != 1 {
		t.Errorf("unexpected order: %v", result)
	}
	if len(Reversed([]int{})) != 0 {
		t.Error("expected empty result")
	}
}

package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"facet/seqs"
)

func collect[T any](seq iter.Seq[T]) []T {
	var result []T
	for v := range seq {
		result = append(result, v)
	}
	return result
}

func TestFilter(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})
	got := collect(seqs.Filter(input, func(x int) bool { return x%2 == 0 }))
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Filter mismatch: got %v", got)
	}
}

func TestReject(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})
	got := collect(seqs.Reject(input, func(x int) bool { return x%2 == 0 }))
	if !slices.Equal(got, []int{1, 3, 5}) {
		t.Errorf("Reject mismatch: got %v", got)
	}
}

func TestMap(t *testing.T) {
	input := slices.Values([]int{1, 2, 3})
	got := collect(seqs.Map(input, func(x int) int { return x * 10 }))
	if !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("Map mismatch: got %v", got)
	}
}

func TestOperate(t *testing.T) {
	input := slices.Values([]int{1, 2, 3})
	got := collect(seqs.Operate(input, 5, func(x, operand int) int { return x + operand }))
	if !slices.Equal(got, []int{6, 7, 8}) {
		t.Errorf("Operate mismatch: got %v", got)
	}
}

func TestReduce(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4})
	got := seqs.Reduce(input, 0, func(acc, x int) int { return acc + x })
	if got != 10 {
		t.Errorf("Reduce = %d, want 10", got)
	}
}

func TestDistinct(t *testing.T) {
	input := slices.Values([]int{1, 2, 2, 3, 1, 4})
	got := collect(seqs.Distinct(input))
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Distinct mismatch: got %v", got)
	}
}

func TestConcat(t *testing.T) {
	a := slices.Values([]int{1, 2})
	b := slices.Values([]int{3})
	got := collect(seqs.Concat(a, b))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Concat mismatch: got %v", got)
	}
}

func TestTake(t *testing.T) {
	t.Run("Bounded", func(t *testing.T) {
		got := collect(seqs.Take(seqs.Range(0, 100, 1), 3))
		if !slices.Equal(got, []int{0, 1, 2}) {
			t.Errorf("Take mismatch: got %v", got)
		}
	})

	t.Run("ZeroOrNegative", func(t *testing.T) {
		if got := collect(seqs.Take(seqs.Range(0, 10, 1), 0)); len(got) != 0 {
			t.Errorf("Take(0) should yield nothing, got %v", got)
		}
	})

	t.Run("FewerThanRequested", func(t *testing.T) {
		got := collect(seqs.Take(slices.Values([]int{1, 2}), 5))
		if !slices.Equal(got, []int{1, 2}) {
			t.Errorf("Take mismatch: got %v", got)
		}
	})
}

func TestSkip(t *testing.T) {
	got := collect(seqs.Skip(slices.Values([]int{1, 2, 3, 4}), 2))
	if !slices.Equal(got, []int{3, 4}) {
		t.Errorf("Skip mismatch: got %v", got)
	}
}

func TestTakeWhile(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 1, 2})
	got := collect(seqs.TakeWhile(input, func(x int) bool { return x < 3 }))
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("TakeWhile mismatch: got %v", got)
	}
}

func TestDropWhile(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 1, 2})
	got := collect(seqs.DropWhile(input, func(x int) bool { return x < 3 }))
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("DropWhile mismatch: got %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := seqs.First(slices.Values([]int{7, 8}))
	if !ok || v != 7 {
		t.Errorf("First = (%d, %v), want (7, true)", v, ok)
	}

	_, ok = seqs.First(slices.Values([]int{}))
	if ok {
		t.Error("First on empty sequence should report false")
	}
}

func TestLast(t *testing.T) {
	v, ok := seqs.Last(slices.Values([]int{7, 8}))
	if !ok || v != 8 {
		t.Errorf("Last = (%d, %v), want (8, true)", v, ok)
	}
}

func TestAnyAll(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	if !seqs.Any(slices.Values([]int{1, 2, 3}), even) {
		t.Error("Any should find the even element")
	}
	if seqs.Any(slices.Values([]int{1, 3}), even) {
		t.Error("Any should not find an even element")
	}
	if !seqs.All(slices.Values([]int{2, 4}), even) {
		t.Error("All should hold for all-even input")
	}
	if seqs.All(slices.Values([]int{2, 3}), even) {
		t.Error("All should fail on mixed input")
	}
}

func TestCount(t *testing.T) {
	if got := seqs.Count(seqs.Range(0, 10, 1)); got != 10 {
		t.Errorf("Count = %d, want 10", got)
	}
}

func TestSum(t *testing.T) {
	if got := seqs.Sum(slices.Values([]int{1, 2, 3})); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := seqs.Sum(slices.Values([]float64{0.5, 0.25})); got != 0.75 {
		t.Errorf("Sum = %v, want 0.75", got)
	}
}

func TestMinMax(t *testing.T) {
	input := []int{3, 1, 4, 1, 5}

	min, ok := seqs.Min(slices.Values(input))
	if !ok || min != 1 {
		t.Errorf("Min = (%d, %v), want (1, true)", min, ok)
	}

	max, ok := seqs.Max(slices.Values(input))
	if !ok || max != 5 {
		t.Errorf("Max = (%d, %v), want (5, true)", max, ok)
	}

	_, ok = seqs.Min(slices.Values([]int{}))
	if ok {
		t.Error("Min on empty sequence should report false")
	}

	first, ok := seqs.Min(slices.Values([]string{"pear", "apple", "plum"}))
	if !ok || first != "apple" {
		t.Errorf("Min = (%q, %v), want (\"apple\", true)", first, ok)
	}
}

func TestLaziness(t *testing.T) {
	// A pipeline over an unbounded generator must terminate once the
	// consumer stops pulling.
	calls := 0
	seq := seqs.Map(seqs.Primes(1_000_000), func(p int) int {
		calls++
		return p * 2
	})

	got := collect(seqs.Take(seq, 3))
	if !slices.Equal(got, []int{10, 14, 22}) {
		t.Errorf("Lazy pipeline mismatch: got %v", got)
	}
	if calls != 3 {
		t.Errorf("Map ran %d times, want 3", calls)
	}
}

package seqs_test

import (
	"slices"
	"testing"

	"facet/seqs"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"Ascending", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Stepped", 1, 10, 3, []int{1, 4, 7}},
		{"Descending", 5, 0, -2, []int{5, 3, 1}},
		{"ZeroStep", 0, 5, 0, nil},
		{"EmptyAscending", 5, 5, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(seqs.Range(tt.start, tt.end, tt.step))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}
}

func TestRepeat(t *testing.T) {
	got := collect(seqs.Repeat("x", 3))
	if !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("Repeat mismatch: got %v", got)
	}

	if got := collect(seqs.Repeat(1, 0)); len(got) != 0 {
		t.Errorf("Repeat with zero count should yield nothing, got %v", got)
	}
}

func TestRandomInts(t *testing.T) {
	got := collect(seqs.RandomInts(100))
	if len(got) != 100 {
		t.Fatalf("RandomInts yielded %d values, want 100", len(got))
	}
	for _, v := range got {
		if v < 0 {
			t.Fatalf("RandomInts yielded negative value %d", v)
		}
	}
}

func TestPrimes(t *testing.T) {
	got := collect(seqs.Primes(5))
	if !slices.Equal(got, []int{5, 7, 11, 13, 17}) {
		t.Errorf("Primes(5) = %v, want [5 7 11 13 17]", got)
	}

	if got := collect(seqs.Primes(0)); len(got) != 0 {
		t.Errorf("Primes(0) should yield nothing, got %v", got)
	}
}

func TestComposites(t *testing.T) {
	got := collect(seqs.Composites(5))
	if !slices.Equal(got, []int{4, 6, 8, 9, 10}) {
		t.Errorf("Composites(5) = %v, want [4 6 8 9 10]", got)
	}
}

func TestPrimesEarlyStop(t *testing.T) {
	// Breaking out of the loop must stop the scan.
	count := 0
	for range seqs.Primes(1000) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("consumed %d primes, want 2", count)
	}
}

package seqs

import (
	"iter"
	"math/rand/v2"

	"facet/numutil"
)

// RandomInts generates a sequence of random integers of the specified size.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields the integers from start towards end in increments of step,
// excluding end. A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Primes yields the first n primes, scanning upward from 5 exactly like
// numutil.GeneratePrimes.
func Primes(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		found := 0
		for candidate := 5; found < n; candidate++ {
			if numutil.IsPrime(candidate) {
				if !yield(candidate) {
					return
				}
				found++
			}
		}
	}
}

// Composites yields the first n composite numbers, scanning upward from 0
// exactly like numutil.GenerateComposites.
func Composites(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		found := 0
		for candidate := 0; found < n; candidate++ {
			if numutil.IsComposite(candidate) {
				if !yield(candidate) {
					return
				}
				found++
			}
		}
	}
}

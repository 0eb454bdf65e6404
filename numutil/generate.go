package numutil

import "math/rand/v2"

// RandFloatInRange returns a uniformly distributed float32 in
// [minimum, maximum).
func RandFloatInRange(minimum, maximum float32) float32 {
	return minimum + rand.Float32()*(maximum-minimum)
}

// GeneratePrimes returns the first n primes found scanning upward from 5.
// The scan deliberately skips 2 and 3, so GeneratePrimes(5) is
// [5 7 11 13 17]; callers that need the full prime sequence should test
// small candidates with IsPrime themselves.
func GeneratePrimes(n int) []int {
	if n <= 0 {
		return []int{}
	}

	primes := make([]int, 0, n)
	for candidate := 5; len(primes) < n; candidate++ {
		if IsPrime(candidate) {
			primes = append(primes, candidate)
		}
	}
	return primes
}

// GenerateComposites returns the first n composites found scanning upward
// from zero, so GenerateComposites(5) is [4 6 8 9 10].
func GenerateComposites(n int) []int {
	if n <= 0 {
		return []int{}
	}

	composites := make([]int, 0, n)
	for candidate := 0; len(composites) < n; candidate++ {
		if IsComposite(candidate) {
			composites = append(composites, candidate)
		}
	}
	return composites
}

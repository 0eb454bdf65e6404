/*
Package seqs mirrors the eager slice helpers of this module over Go 1.23+
iterators (iter.Seq), for pipelines that should not materialize
intermediate slices.

  - **Transformations**: [Map], [Filter], [Reject], [Operate], [Reduce],
    [Distinct], [Concat].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile].
  - **Sinks**: [First], [Last], [Any], [All], [Count], [Sum], [Min], [Max].
  - **Generators**: [Range], [Repeat], [RandomInts], [Primes], [Composites].

Everything is lazy and single-threaded: a pipeline does no work until it is
drained, and elements flow through one at a time.

	evens := seqs.Filter(seqs.Range(0, 100, 1), func(v int) bool {
		return v%2 == 0
	})
	total := seqs.Sum(seqs.Take(evens, 10))

Bridge to and from slices with slices.Values and slices.Collect from the
standard library; the eager counterparts of these helpers live in package
sliceutil.
*/
package seqs

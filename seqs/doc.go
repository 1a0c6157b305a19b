/*
Package seqs provides lazy helpers for Go 1.23+ iterators (iter.Seq).

It covers:

  - **Functional Transformations**: [Map], [Filter], [Reduce].
  - **Deduplication**: [Distinct] and [DistinctBy] yield first occurrences in order.
  - **Limits**: [Take], [TakeWhile] and the integer generator [Range].
  - **Sinks**: [Sum], [Min], [Max], [MinBy], [MaxBy], [Any], [Count], [Join], [Collect].

# Transform and Reduce

Because every stage is lazy, chaining a transformation into a sink reduces
in a single pass without materialising an intermediate slice:

	total := seqs.Sum(seqs.Map(slices.Values(nums), func(x int) int {
		return x * x
	}))

# Error Handling

[TryMap] and [TryReduce] accept functions that can fail. TryMap yields each
error next to its result and leaves it to the consumer to stop; TryReduce
stops at the first error.
*/
package seqs

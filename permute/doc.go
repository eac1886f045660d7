// Package permute enumerates the distinct permutations of a word's bytes.
//
// What:
//
//   - Permutations(word): every distinct arrangement, materialized as a slice.
//   - Walk(word, opts...): the configurable generator behind Permutations,
//     supporting cancellation, a per-permutation hook, an output limit and
//     streaming (no accumulation).
//   - All(word): a lazy iter.Seq over the same emission order.
//   - Count(word): the exact number of distinct permutations,
//     n! / (m1!·m2!·…), where mi are the multiplicities of each distinct byte.
//
// Algorithm (backtracking over positions, left to right):
//
//  1. Copy word into a private working buffer; start = 0, end = n-1.
//  2. If start == end, the buffer is a complete permutation: emit it.
//  3. Otherwise, for each i in [start, end]:
//     - skip i if buf[i] already occurs in buf[start:i] of the current buffer;
//     - swap buf[start] and buf[i], recurse with start+1, swap back.
//
// The duplicate check looks at the current working buffer, not the original
// word, because bytes move during backtracking. This is what guarantees that
// each distinct permutation is emitted exactly once.
//
// Order:
//
//	Emission order is the order in which the search above discovers
//	permutations, relative to the input ordering. For "abc":
//	abc acb bac bca cba cab.
//
// The empty word has exactly one permutation, the empty word.
//
// Case:
//
//	Bytes are compared exactly; "Aa" has two permutations. WithNormalize
//	lower-cases the word with normalize.Lower before generating.
//
// Complexity:
//
//   - Time:   O(P · n²) where P = Count(word) (the duplicate scan is O(n) per
//     candidate), plus O(n) per emitted string.
//   - Memory: O(n) for the buffer and recursion stack, plus O(P · n) when
//     results are collected.
//
// Output grows combinatorially; bound the input length or use WithLimit,
// WithoutCollect or All for long words.
//
// Errors:
//
//   - context.Canceled / context.DeadlineExceeded  when the WithContext context is done.
//   - hook errors                                   returned by the WithOnEmit hook, wrapped.
package permute

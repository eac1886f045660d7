// Package anagram decides whether two words are anagrams of one another.
//
// What:
//
//   - IsAnagram(a, b, opts...): true iff a and b, once lower-cased with
//     normalize.Lower, hold the same multiset of bytes.
//   - Signature(s): the lower-cased, byte-sorted form of s. Two words are
//     anagrams exactly when their signatures are equal.
//
// Algorithm (SortStrategy, the default):
//
//  1. If len(a) != len(b), return false without normalizing.
//  2. Lower-case copies of a and b.
//  3. Sort both copies by byte value, ascending.
//  4. Return true iff the sorted copies are identical.
//
// CountStrategy replaces steps 3–4 with a 256-slot frequency table: counts
// are incremented for a and decremented for b, and the words are anagrams iff
// every slot ends at zero. Both strategies agree on every input.
//
// Complexity:
//
//   - SortStrategy:  Time O(n log n), Memory O(n).
//   - CountStrategy: Time O(n),       Memory O(1) (fixed 256-entry table).
//
// Properties:
//
//   - Symmetric: IsAnagram(a, b) == IsAnagram(b, a).
//   - Reflexive: IsAnagram(a, a) is always true.
//   - IsAnagram("", "") is true.
//
// Inputs are strings, so callers never observe the normalization; the
// package keeps no state and is safe for concurrent use.
package anagram

// Package normalize provides single-byte case normalization for words.
//
// What:
//
//   - LowerByte maps an ASCII upper-case byte ('A'..'Z') to its lower-case form.
//   - Lower and LowerBytes apply LowerByte to every byte of a word.
//   - IsLower reports whether a word is already in normalized form.
//
// Every byte value is accepted. Bytes outside 'A'..'Z' pass through untouched,
// including the individual bytes of multi-byte UTF-8 sequences, so the output
// always has the same length as the input.
//
// Why:
//
//   - Anagram comparison is case-insensitive; normalization is the first step
//     of anagram.IsAnagram.
//   - Callers of permute may opt in to generating permutations of the
//     normalized word.
//
// Complexity:
//
//   - Time:   O(n) for a word of n bytes.
//   - Memory: O(n) for the returned copy; Lower returns its input without
//     allocating when nothing needs mapping.
//
// Inputs are never mutated: LowerBytes always returns a fresh slice.
package normalize

// Package lvwords is a small toolkit for playing with the letters of a word:
// deciding whether two words are anagrams and enumerating every distinct
// rearrangement of a word's characters.
//
// 🚀 What is lvwords?
//
//	A zero-state, allocation-conscious library plus a terminal tool:
//		• Case normalization: single-byte ASCII lower-casing
//		• Anagram test: sort-based or frequency-based, case-insensitive
//		• Permutations: duplicate-aware backtracking, eager or lazy (iter.Seq)
//		• Counting: exact multinomial count of distinct permutations
//
// ✨ Why lvwords?
//
//   - Predictable – documented emission order, no hidden normalization
//   - Safe – inputs are never mutated; every call works on its own copy
//   - Controllable – cancellation, output limits and streaming hooks
//
// Packages:
//
//	normalize/ — LowerByte, Lower, LowerBytes, IsLower
//	anagram/   — IsAnagram (SortStrategy, CountStrategy), Signature
//	permute/   — Permutations, Walk, All, Count
//	cmd/lvwords — interactive menu and one-shot check / permute / count commands
//
// Quick example:
//
//	anagram.IsAnagram("Listen", "Silent") // true
//	permute.Permutations("aab")           // [aab aba baa]
//
// Permutation output grows as n!; bound the word length (the CLI accepts 49
// bytes by default) or stream with permute.All for anything but short words.
//
//	go install github.com/katalvlaran/lvwords/cmd/lvwords@latest
package lvwords

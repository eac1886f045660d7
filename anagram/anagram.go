package anagram

import (
	"bytes"
	"slices"

	"github.com/katalvlaran/lvwords/normalize"
)

// IsAnagram reports whether a and b are anagrams: equal length and, after
// ASCII lower-casing, the same multiset of bytes.
func IsAnagram(a, b string, opts ...Option) bool {
	// 1. Length mismatch rules out an anagram before any normalization
	if len(a) != len(b) {
		return false
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Dispatch
	if o.Strategy == CountStrategy {
		return countEqual(a, b)
	}

	return sortEqual(a, b)
}

// Signature returns the lower-cased bytes of s sorted in ascending order.
func Signature(s string) string {
	return string(sortedLower(s))
}

// sortEqual compares the sorted, lower-cased copies of a and b.
func sortEqual(a, b string) bool {
	return bytes.Equal(sortedLower(a), sortedLower(b))
}

// sortedLower returns a fresh lower-cased copy of s sorted by byte value.
func sortedLower(s string) []byte {
	buf := normalize.LowerBytes([]byte(s))
	slices.Sort(buf)

	return buf
}

// countEqual compares byte frequencies of the lower-cased words.
// Callers guarantee len(a) == len(b).
func countEqual(a, b string) bool {
	var freq [256]int
	for i := 0; i < len(a); i++ {
		freq[normalize.LowerByte(a[i])]++
		freq[normalize.LowerByte(b[i])]--
	}
	for _, n := range freq {
		if n != 0 {
			return false
		}
	}

	return true
}

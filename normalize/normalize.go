package normalize

// toLower is the distance between an ASCII upper-case letter and its lower-case form.
const toLower = 'a' - 'A'

// LowerByte returns the ASCII lower-case form of c.
// Bytes outside 'A'..'Z' are returned unchanged.
func LowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + toLower
	}

	return c
}

// Lower returns s with every ASCII upper-case byte mapped to lower case.
// If s holds no upper-case byte, s itself is returned.
func Lower(s string) string {
	// 1. Find the first byte that needs mapping
	first := -1
	for i := 0; i < len(s); i++ {
		if LowerByte(s[i]) != s[i] {
			first = i
			break
		}
	}
	if first < 0 {
		return s // already normalized
	}

	// 2. Copy the untouched prefix, map the rest
	buf := make([]byte, len(s))
	copy(buf, s[:first])
	for i := first; i < len(s); i++ {
		buf[i] = LowerByte(s[i])
	}

	return string(buf)
}

// LowerBytes returns a new slice holding b with every ASCII upper-case byte
// mapped to lower case. b is not modified. A nil b yields an empty slice.
func LowerBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = LowerByte(c)
	}

	return out
}

// IsLower reports whether s contains no ASCII upper-case byte,
// that is, whether Lower(s) == s.
func IsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return false
		}
	}

	return true
}

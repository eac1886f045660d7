package anagram

// Strategy selects how IsAnagram compares the normalized multisets.
type Strategy int

const (
	// SortStrategy sorts both normalized words and compares them byte by byte.
	SortStrategy Strategy = iota

	// CountStrategy compares byte frequencies in a single pass over each word.
	CountStrategy
)

// String returns the lower-case name of s.
func (s Strategy) String() string {
	switch s {
	case SortStrategy:
		return "sort"
	case CountStrategy:
		return "count"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name produced by Strategy.String back to a Strategy.
// It reports false for unrecognized names.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "sort":
		return SortStrategy, true
	case "count":
		return CountStrategy, true
	default:
		return SortStrategy, false
	}
}

// Option configures IsAnagram.
type Option func(*Options)

// Options holds the configurable parameters of IsAnagram.
type Options struct {
	// Strategy picks the comparison algorithm. Unknown values behave as SortStrategy.
	Strategy Strategy
}

// DefaultOptions returns Options using SortStrategy.
func DefaultOptions() Options {
	return Options{Strategy: SortStrategy}
}

// WithStrategy returns an Option that selects the comparison strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

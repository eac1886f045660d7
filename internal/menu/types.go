package menu

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvwords/anagram"
	"github.com/katalvlaran/lvwords/internal/config"
	"github.com/katalvlaran/lvwords/internal/logging"
)

// Choice is a menu entry number.
type Choice int

const (
	ChoiceCheck   Choice = 1 // check two words for the anagram relation
	ChoicePermute Choice = 2 // list all permutations of one word
	ChoiceExit    Choice = 3 // leave the loop
)

var (
	// ErrInvalidChoice is returned by ParseChoice for anything but 1, 2 or 3.
	ErrInvalidChoice = errors.New("menu: invalid choice")

	// ErrInputTooLong is returned when a word exceeds the configured maximum length.
	ErrInputTooLong = errors.New("menu: input too long")
)

// Banner and prompts printed by the session.
const (
	Banner = "\n--- Anagram Program ---\n" +
		"1. Check if two words are anagrams\n" +
		"2. Generate all anagrams of a word\n" +
		"3. Exit\n"
	PromptChoice = "Enter your choice: "
	PromptFirst  = "Enter first word: "
	PromptSecond = "Enter second word: "
	PromptWord   = "Enter a word: "
	MsgExit      = "Exiting..."
	MsgInvalid   = "Invalid choice! Try again."
)

// maxTokenSize bounds a single whitespace-delimited token read from input.
const maxTokenSize = 1 << 20

// Option configures a Session.
type Option func(*Options)

// Options holds the configurable parameters of a Session.
type Options struct {
	// Logger receives diagnostics; defaults to a discarding logger.
	Logger *slog.Logger

	// MaxLength is the longest accepted word in bytes.
	MaxLength int

	// Strategy selects the anagram comparison algorithm.
	Strategy anagram.Strategy

	// Limit caps printed permutations; 0 means unlimited.
	Limit int

	// Normalize lower-cases words before generating permutations.
	Normalize bool
}

// DefaultOptions returns Options with a discarding logger, the default word
// length limit, SortStrategy, no permutation limit and no normalization.
func DefaultOptions() Options {
	return Options{
		Logger:    logging.NewDiscard(),
		MaxLength: config.DefaultMaxLength,
		Strategy:  anagram.SortStrategy,
		Limit:     0,
		Normalize: false,
	}
}

// WithLogger returns an Option that sets the diagnostics logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLength returns an Option that sets the longest accepted word.
// Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxLength = n
		}
	}
}

// WithStrategy returns an Option that selects the anagram comparison strategy.
func WithStrategy(s anagram.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLimit returns an Option that caps printed permutations.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithNormalize returns an Option that lower-cases words before generating permutations.
func WithNormalize(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

package permute

import (
	"context"
	"errors"
)

// errStop ends a walk early without reporting an error to the caller.
var errStop = errors.New("permute: stop")

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds the configurable parameters of Walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnEmit, if non-nil, is called once per distinct permutation in emission order.
	// Returning an error aborts the walk with that error.
	OnEmit func(p string) error

	// Limit, if positive, caps the number of emitted permutations.
	Limit int

	// Collect accumulates emitted permutations in Result.Permutations. Default true.
	Collect bool

	// Normalize lower-cases the word with normalize.Lower before generating.
	Normalize bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - No hook
//   - No limit
//   - Collection enabled
//   - No normalization
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEmit:    nil,
		Limit:     0,
		Collect:   true,
		Normalize: false,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEmit returns an Option that installs fn as the per-permutation hook.
func WithOnEmit(fn func(p string) error) Option {
	return func(o *Options) {
		o.OnEmit = fn
	}
}

// WithLimit returns an Option that stops the walk after n permutations.
// n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithoutCollect returns an Option that leaves Result.Permutations empty.
// Use it together with WithOnEmit to stream permutations.
func WithoutCollect() Option {
	return func(o *Options) {
		o.Collect = false
	}
}

// WithNormalize returns an Option that lower-cases the word before generating.
func WithNormalize() Option {
	return func(o *Options) {
		o.Normalize = true
	}
}

// Result captures the outcome of a walk.
type Result struct {
	// Permutations lists emitted permutations in emission order (empty without Collect).
	Permutations []string

	// Emitted counts permutations produced, collected or not.
	Emitted int

	// Truncated reports that Limit stopped the walk before every permutation was emitted.
	Truncated bool
}

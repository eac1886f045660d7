package permute

import (
	"errors"
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/lvwords/normalize"
)

// walker carries the working buffer and options through the recursion.
type walker struct {
	opts Options
	buf  []byte  // working sequence, permuted in place
	end  int     // last index of buf
	res  *Result // result collector
}

// Permutations returns every distinct permutation of word in emission order.
// Permutations("") returns a single empty string.
func Permutations(word string) []string {
	// The default walk has no hook and no context, so it cannot fail.
	res, _ := Walk(word)

	return res.Permutations
}

// Walk generates the distinct permutations of word, honoring opts.
// It returns the Result gathered so far together with any context or hook error.
func Walk(word string, opts ...Option) (*Result, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Normalize {
		word = normalize.Lower(word)
	}

	// 2. Private working copy; the caller's word is never aliased
	w := &walker{
		opts: o,
		buf:  []byte(word),
		end:  len(word) - 1,
		res:  &Result{},
	}
	if o.Collect {
		w.res.Permutations = make([]string, 0, capacityHint(word, o.Limit))
	}

	// 3. Generate; the empty word has exactly one permutation
	var err error
	if len(word) == 0 {
		err = w.emit()
	} else {
		err = w.generate(0)
	}

	// 4. An early stop is not an error
	if errors.Is(err, errStop) {
		return w.res, nil
	}

	return w.res, err
}

// All returns a lazy sequence of the distinct permutations of word.
// Breaking out of the range loop stops generation.
func All(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_, _ = Walk(word, WithoutCollect(), WithOnEmit(func(p string) error {
			if !yield(p) {
				return errStop
			}

			return nil
		}))
	}
}

// Count returns the number of distinct permutations of word:
// len(word)! divided by the factorial of each byte's multiplicity.
func Count(word string) *big.Int {
	var freq [256]int64
	for i := 0; i < len(word); i++ {
		freq[word[i]]++
	}

	n := new(big.Int).MulRange(1, int64(len(word)))
	for _, m := range freq {
		if m > 1 {
			n.Quo(n, new(big.Int).MulRange(1, m))
		}
	}

	return n
}

// generate fixes position start and recurses on the remainder of the buffer.
func (w *walker) generate(start int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Complete permutation
	if start == w.end {
		return w.emit()
	}

	// 3. Try each distinct candidate for position start
	for i := start; i <= w.end; i++ {
		if w.seen(start, i) {
			continue
		}
		w.buf[start], w.buf[i] = w.buf[i], w.buf[start]
		err := w.generate(start + 1)
		w.buf[start], w.buf[i] = w.buf[i], w.buf[start] // backtrack
		if err != nil {
			return err
		}
	}

	return nil
}

// seen reports whether buf[i] already occurs in buf[start:i].
func (w *walker) seen(start, i int) bool {
	for j := start; j < i; j++ {
		if w.buf[j] == w.buf[i] {
			return true
		}
	}

	return false
}

// emit records the current buffer as a permutation.
func (w *walker) emit() error {
	if w.opts.Limit > 0 && w.res.Emitted == w.opts.Limit {
		w.res.Truncated = true

		return errStop
	}

	p := string(w.buf)
	if w.opts.OnEmit != nil {
		if err := w.opts.OnEmit(p); err != nil {
			if errors.Is(err, errStop) {
				return err
			}

			return fmt.Errorf("permute: OnEmit hook for %q: %w", p, err)
		}
	}
	w.res.Emitted++
	if w.opts.Collect {
		w.res.Permutations = append(w.res.Permutations, p)
	}

	return nil
}

// maxCapacityHint bounds the preallocation for collected results.
const maxCapacityHint = 1 << 16

// capacityHint returns a preallocation size for collected permutations.
func capacityHint(word string, limit int) int {
	hint := maxCapacityHint
	if c := Count(word); c.IsInt64() && c.Int64() < int64(hint) {
		hint = int(c.Int64())
	}
	if limit > 0 && limit < hint {
		hint = limit
	}

	return hint
}

// Package menu implements the interactive anagram menu: check two words,
// list the permutations of one word, or exit.
//
// Input is read as whitespace-delimited tokens, so a choice and its words may
// share a line. Invalid choices and overlong words print a message and show
// the menu again; only I/O failures and cancellation end the session with an
// error. End of input ends the session normally.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lvwords/anagram"
	"github.com/katalvlaran/lvwords/internal/output"
	"github.com/katalvlaran/lvwords/normalize"
	"github.com/katalvlaran/lvwords/permute"
)

// Session is one run of the interactive menu.
type Session struct {
	in    *bufio.Scanner
	split *wordSplitter
	out   io.Writer
	opts  Options
}

// NewSession returns a Session reading tokens from r and writing to w.
func NewSession(r io.Reader, w io.Writer, opts ...Option) *Session {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	sp := &wordSplitter{max: maxTokenSize}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(sp.split)

	return &Session{in: sc, split: sp, out: w, opts: o}
}

// ParseChoice converts a menu token to a Choice.
func ParseChoice(tok string) (Choice, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, tok)
	}
	switch c := Choice(n); c {
	case ChoiceCheck, ChoicePermute, ChoiceExit:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, n)
	}
}

// Run shows the menu until the user exits, input ends, ctx is canceled or
// an I/O error occurs. Exiting and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	log := s.opts.Logger
	for {
		// 1. Cancellation check
		if err := ctx.Err(); err != nil {
			return err
		}

		// 2. Menu and choice
		if err := s.print(Banner + PromptChoice); err != nil {
			return err
		}
		tok, err := s.next()
		if err != nil {
			return eofIsNil(err)
		}

		choice, err := ParseChoice(tok)
		if err != nil {
			log.Debug("rejected menu input", "input", tok)
			if err = s.println(MsgInvalid); err != nil {
				return err
			}
			continue
		}
		log.Debug("menu choice", "choice", int(choice))

		// 3. Dispatch
		switch choice {
		case ChoiceCheck:
			err = s.check()
		case ChoicePermute:
			err = s.permute(ctx)
		case ChoiceExit:
			return s.println(MsgExit)
		}

		// 4. Recoverable input errors redisplay the menu
		if errors.Is(err, ErrInputTooLong) {
			log.Warn("word rejected", "error", err)
			if err = s.println(fmt.Sprintf("Input too long (max %d characters). Try again.", s.opts.MaxLength)); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return eofIsNil(err)
		}
	}
}

// check reads two words and prints whether they are anagrams.
func (s *Session) check() error {
	words, err := s.readWords(PromptFirst, PromptSecond)
	if err != nil {
		return err
	}
	first, second := words[0], words[1]

	if anagram.IsAnagram(first, second, anagram.WithStrategy(s.opts.Strategy)) {
		return s.println(output.MsgAnagram)
	}

	return s.println(output.MsgNotAnagram)
}

// permute reads one word and prints each distinct permutation on its own line.
func (s *Session) permute(ctx context.Context) error {
	words, err := s.readWords(PromptWord)
	if err != nil {
		return err
	}
	word := words[0]
	if s.opts.Normalize {
		word = normalize.Lower(word)
	}

	total := permute.Count(word)
	s.opts.Logger.Info("generating permutations", "word", word, "total", total.String())
	if err = s.println(output.MsgPermutations); err != nil {
		return err
	}

	res, err := permute.Walk(word,
		permute.WithContext(ctx),
		permute.WithoutCollect(),
		permute.WithLimit(s.opts.Limit),
		permute.WithOnEmit(s.println),
	)
	if err != nil {
		return err
	}
	if res.Truncated {
		s.opts.Logger.Warn("permutation output truncated", "emitted", res.Emitted, "total", total.String())
	}

	return output.NewPrinter(s.out, output.FormatHuman).Permutations(output.PermuteResult{
		Word:      word,
		Total:     total.String(),
		Emitted:   res.Emitted,
		Truncated: res.Truncated,
	})
}

// readWords prompts for and reads one word per prompt, enforcing MaxLength.
// Every word is consumed before any is rejected, so a rejected word never
// leaves its partners behind to be read as menu choices.
func (s *Session) readWords(prompts ...string) ([]string, error) {
	words := make([]string, 0, len(prompts))
	var rejected error
	for _, p := range prompts {
		if err := s.print(p); err != nil {
			return nil, err
		}
		w, err := s.next()
		if err != nil {
			return nil, err
		}
		if rejected == nil {
			if s.split.cut {
				rejected = fmt.Errorf("%w: more than %d bytes (max %d)", ErrInputTooLong, maxTokenSize, s.opts.MaxLength)
			} else {
				rejected = ValidateWord(w, s.opts.MaxLength)
			}
		}
		words = append(words, w)
	}
	if rejected != nil {
		return nil, rejected
	}

	return words, nil
}

// ValidateWord returns an error wrapping ErrInputTooLong if w is longer than limit bytes.
func ValidateWord(w string, limit int) error {
	if len(w) > limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(w), limit)
	}

	return nil
}

// next returns the next input token, or io.EOF when input is exhausted.
func (s *Session) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("menu: read input: %w", err)
	}

	return "", io.EOF
}

func (s *Session) print(msg string) error {
	_, err := io.WriteString(s.out, msg)

	return err
}

func (s *Session) println(msg string) error {
	_, err := fmt.Fprintln(s.out, msg)

	return err
}

// wordSplitter is bufio.ScanWords that cuts a token reaching max bytes
// instead of failing the scanner. The rest of a cut token is discarded and
// cut reports whether the last returned token was cut.
type wordSplitter struct {
	max        int
	cut        bool
	discarding bool
}

func (ws *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	// 1. Drop the tail of a cut token up to the next space
	if ws.discarding {
		for i := 0; i < len(data); {
			r, n := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				ws.discarding = false

				return i, nil, nil
			}
			i += n
		}

		return len(data), nil, nil
	}

	// 2. Regular word splitting
	adv, tok, err := bufio.ScanWords(data, atEOF)
	if tok != nil || err != nil || atEOF || len(data)-adv < ws.max {
		if tok != nil {
			ws.cut = false
		}

		return adv, tok, err
	}

	// 3. Buffer full without a word boundary: cut here
	ws.cut = true
	ws.discarding = true

	return len(data), data[adv:], nil
}

// eofIsNil maps end of input to a normal session end.
func eofIsNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

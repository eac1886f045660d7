package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwords/anagram"
	"github.com/katalvlaran/lvwords/internal/menu"
	"github.com/katalvlaran/lvwords/internal/output"
)

// prompt is what the session prints before every choice.
const prompt = menu.Banner + menu.PromptChoice

// run feeds input to a fresh session and returns its output.
func run(t *testing.T, input string, opts ...menu.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := menu.NewSession(strings.NewReader(input), &out, opts...).Run(context.Background())

	return out.String(), err
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestParseChoice(t *testing.T) {
	for tok, want := range map[string]menu.Choice{"1": menu.ChoiceCheck, "2": menu.ChoicePermute, "3": menu.ChoiceExit} {
		got, err := menu.ParseChoice(tok)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, tok := range []string{"0", "4", "-1", "x", "1a", ""} {
		_, err := menu.ParseChoice(tok)
		assert.ErrorIs(t, err, menu.ErrInvalidChoice, tok)
	}
}

func TestRun_CheckAnagram(t *testing.T) {
	out, err := run(t, "1\nListen\nSilent\n3\n")
	require.NoError(t, err)
	assert.Equal(t,
		prompt+menu.PromptFirst+menu.PromptSecond+output.MsgAnagram+"\n"+
			prompt+menu.MsgExit+"\n",
		out)
}

func TestRun_CheckNotAnagram(t *testing.T) {
	for _, s := range []anagram.Strategy{anagram.SortStrategy, anagram.CountStrategy} {
		out, err := run(t, "1 abc abd 3", menu.WithStrategy(s))
		require.NoError(t, err)
		assert.Contains(t, out, output.MsgNotAnagram, s.String())
	}
}

func TestRun_Permute(t *testing.T) {
	out, err := run(t, "2 aab 3")
	require.NoError(t, err)
	assert.Equal(t,
		prompt+menu.PromptWord+output.MsgPermutations+"\naab\naba\nbaa\n"+
			prompt+menu.MsgExit+"\n",
		out)
}

func TestRun_PermuteLimit(t *testing.T) {
	out, err := run(t, "2 abc 3", menu.WithLimit(2))
	require.NoError(t, err)
	assert.Contains(t, out, output.MsgPermutations+"\nabc\nacb\n... output truncated after 2 of 6 permutations\n")
	assert.NotContains(t, out, "bac")
}

func TestRun_PermuteNormalize(t *testing.T) {
	out, err := run(t, "2 Aa 3", menu.WithNormalize(true))
	require.NoError(t, err)
	assert.Contains(t, out, output.MsgPermutations+"\naa\n"+menu.Banner)
}

func TestRun_InvalidChoice(t *testing.T) {
	out, err := run(t, "x 7 3")
	require.NoError(t, err)
	assert.Equal(t,
		prompt+menu.MsgInvalid+"\n"+
			prompt+menu.MsgInvalid+"\n"+
			prompt+menu.MsgExit+"\n",
		out)
}

func TestRun_InputTooLong(t *testing.T) {
	out, err := run(t, "2 abcd 1 abc abcd 3", menu.WithMaxLength(3))
	require.NoError(t, err)
	msg := "Input too long (max 3 characters). Try again.\n"
	assert.Equal(t,
		prompt+menu.PromptWord+msg+
			prompt+menu.PromptFirst+menu.PromptSecond+msg+
			prompt+menu.MsgExit+"\n",
		out)
}

func TestRun_FirstWordTooLongConsumesSecond(t *testing.T) {
	out, err := run(t, "1 abcd 2 3", menu.WithMaxLength(3))
	require.NoError(t, err)
	assert.Equal(t,
		prompt+menu.PromptFirst+menu.PromptSecond+"Input too long (max 3 characters). Try again.\n"+
			prompt+menu.MsgExit+"\n",
		out)
	assert.NotContains(t, out, menu.PromptWord, "second word must not be dispatched as a choice")
}

func TestRun_EndOfInput(t *testing.T) {
	out, err := run(t, "")
	require.NoError(t, err)
	assert.Equal(t, prompt, out)

	out, err = run(t, "1 abc")
	require.NoError(t, err)
	assert.Equal(t, prompt+menu.PromptFirst+menu.PromptSecond, out)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := menu.NewSession(strings.NewReader("3"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRun_WriteError(t *testing.T) {
	err := menu.NewSession(strings.NewReader("3"), failWriter{}).Run(context.Background())
	assert.EqualError(t, err, "disk full")
}

func TestRun_OversizedTokenAtWordPrompt(t *testing.T) {
	huge := strings.Repeat("a", 1<<20+1)
	out, err := run(t, "2 "+huge+" 3")
	require.NoError(t, err)
	assert.Equal(t,
		prompt+menu.PromptWord+"Input too long (max 49 characters). Try again.\n"+
			prompt+menu.MsgExit+"\n",
		out)
}

func TestRun_OversizedTokenAtChoicePrompt(t *testing.T) {
	out, err := run(t, strings.Repeat("1", 1<<20+5)+"\n3")
	require.NoError(t, err)
	assert.Equal(t, prompt+menu.MsgInvalid+"\n"+prompt+menu.MsgExit+"\n", out)
}

func TestValidateWord(t *testing.T) {
	assert.NoError(t, menu.ValidateWord("", 3))
	assert.NoError(t, menu.ValidateWord("abc", 3))

	err := menu.ValidateWord("abcd", 3)
	assert.ErrorIs(t, err, menu.ErrInputTooLong)
	assert.Contains(t, err.Error(), "4 bytes (max 3)")
}

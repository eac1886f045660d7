package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwords/anagram"
	"github.com/katalvlaran/lvwords/internal/menu"
	"github.com/katalvlaran/lvwords/internal/output"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD1 WORD2",
		Short: "Check whether two words are anagrams",
		Long: `Check whether two words are anagrams, ignoring ASCII case.

Examples:
  lvwords check Listen Silent
  lvwords check abc abd --strategy count --format json`,
		Args: cobra.ExactArgs(2),
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	for _, w := range args {
		if err := menu.ValidateWord(w, a.cfg.MaxLength); err != nil {
			return err
		}
	}

	strategy := a.cfg.AnagramStrategy()
	res := output.CheckResult{
		First:    args[0],
		Second:   args[1],
		Strategy: strategy.String(),
		Anagram:  anagram.IsAnagram(args[0], args[1], anagram.WithStrategy(strategy)),
	}
	a.log.Debug("anagram check", "first", res.First, "second", res.Second, "anagram", res.Anagram)

	format, err := output.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	return output.NewPrinter(cmd.OutOrStdout(), format).Check(res)
}

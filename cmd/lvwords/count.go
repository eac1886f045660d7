package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwords/internal/output"
	"github.com/katalvlaran/lvwords/normalize"
	"github.com/katalvlaran/lvwords/permute"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count WORD",
		Short: "Print how many distinct permutations a word has",
		Long: `Print the exact number of distinct permutations of a word without
generating them. Useful to bound output before running permute.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runCount,
	}
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	word := args[0]
	if a.cfg.NormalizePermutations {
		word = normalize.Lower(word)
	}

	format, err := output.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	return output.NewPrinter(cmd.OutOrStdout(), format).Count(output.CountResult{
		Word:  word,
		Count: permute.Count(word).String(),
	})
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwords/internal/menu"
	"github.com/katalvlaran/lvwords/internal/output"
	"github.com/katalvlaran/lvwords/normalize"
	"github.com/katalvlaran/lvwords/permute"
)

func newPermuteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "permute WORD",
		Short: "List every distinct permutation of a word",
		Long: `List every distinct permutation of a word, one per line in human format.
Repeated characters never produce duplicate lines.

Examples:
  lvwords permute aab
  lvwords permute mississippi --limit 10
  lvwords permute Stop --lower --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: a.runPermute,
	}
}

func (a *app) runPermute(cmd *cobra.Command, args []string) error {
	word := args[0]
	if err := menu.ValidateWord(word, a.cfg.MaxLength); err != nil {
		return err
	}
	if a.cfg.NormalizePermutations {
		word = normalize.Lower(word)
	}

	format, err := output.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	printer := output.NewPrinter(cmd.OutOrStdout(), format)

	total := permute.Count(word)
	a.log.Info("generating permutations", "word", word, "total", total.String())

	opts := []permute.Option{
		permute.WithContext(cmd.Context()),
		permute.WithLimit(a.cfg.MaxPermutations),
	}
	if printer.Streams() {
		opts = append(opts, permute.WithoutCollect(), permute.WithOnEmit(printer.Line))
	}
	res, err := permute.Walk(word, opts...)
	if err != nil {
		return err
	}
	if res.Truncated {
		a.log.Warn("permutation output truncated", "emitted", res.Emitted, "total", total.String())
	}

	return printer.Permutations(output.PermuteResult{
		Word:         word,
		Total:        total.String(),
		Emitted:      res.Emitted,
		Truncated:    res.Truncated,
		Permutations: res.Permutations,
	})
}

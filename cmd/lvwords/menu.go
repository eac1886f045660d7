package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwords/internal/menu"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Show the interactive menu:

  1. Check if two words are anagrams
  2. Generate all anagrams of a word
  3. Exit

Words are read as whitespace-delimited tokens from standard input.`,
		Args: cobra.NoArgs,
		RunE: a.runMenu,
	}
}

// runMenu runs an interactive session on the command's standard streams.
func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	s := menu.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithLogger(a.log),
		menu.WithMaxLength(a.cfg.MaxLength),
		menu.WithStrategy(a.cfg.AnagramStrategy()),
		menu.WithLimit(a.cfg.MaxPermutations),
		menu.WithNormalize(a.cfg.NormalizePermutations),
	)

	// Interrupting the menu is how users leave it; that is not a failure.
	if err := s.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

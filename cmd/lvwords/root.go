package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwords/internal/config"
	"github.com/katalvlaran/lvwords/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	verbosity  int
	quiet      bool

	cfg *config.Config
	log *slog.Logger
}

// newRootCmd builds the lvwords command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvwords",
		Short: "Check anagrams and list the distinct permutations of a word",
		Long: `lvwords decides whether two words are anagrams (case-insensitively) and
enumerates every distinct permutation of a word's characters.

Run without a subcommand for the interactive menu.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runMenu,
	}
	root.SetVersionTemplate("lvwords version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (yaml, json or toml)")
	pf.String("format", "human", "Output format for one-shot commands (human, json, yaml)")
	pf.Int("max-length", config.DefaultMaxLength, "Longest accepted word in bytes")
	pf.Int("limit", 0, "Stop after this many permutations (0 = unlimited)")
	pf.Bool("lower", false, "Lower-case words before generating permutations")
	pf.String("strategy", "sort", "Anagram comparison strategy (sort, count)")
	pf.String("log-level", "", "Log level (debug, info, warn, error); overrides -v")
	pf.CountVarP(&a.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.BoolVar(&a.quiet, "quiet", false, "Suppress all log output")

	root.AddCommand(
		newMenuCmd(a),
		newCheckCmd(a),
		newPermuteCmd(a),
		newCountCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), logging.Resolve(cfg.LogLevel, a.verbosity, a.quiet))
	a.log.Debug("configuration loaded",
		"config", a.configPath,
		"max_length", cfg.MaxLength,
		"max_permutations", cfg.MaxPermutations,
		"format", cfg.Format,
		"strategy", cfg.Strategy,
	)

	return nil
}

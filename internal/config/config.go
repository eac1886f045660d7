// Package config loads lvwords settings from defaults, an optional config
// file and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvwords/anagram"
	"github.com/katalvlaran/lvwords/internal/logging"
	"github.com/katalvlaran/lvwords/internal/output"
)

// DefaultMaxLength is the longest word accepted by default: the historical
// 50-byte input buffer minus its terminator.
const DefaultMaxLength = 49

// Config holds every lvwords setting.
type Config struct {
	// MaxLength is the longest accepted word, in bytes.
	MaxLength int `mapstructure:"max_length" yaml:"max_length"`

	// MaxPermutations caps generated permutations; 0 means unlimited.
	MaxPermutations int `mapstructure:"max_permutations" yaml:"max_permutations"`

	// Format selects the one-shot output format: human, json or yaml.
	Format string `mapstructure:"format" yaml:"format"`

	// LogLevel overrides the verbosity flags when non-empty.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// NormalizePermutations lower-cases words before generating permutations.
	NormalizePermutations bool `mapstructure:"normalize_permutations" yaml:"normalize_permutations"`

	// Strategy names the anagram comparison strategy: sort or count.
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"max-length": "max_length",
	"limit":      "max_permutations",
	"format":     "format",
	"log-level":  "log_level",
	"lower":      "normalize_permutations",
	"strategy":   "strategy",
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MaxLength:             DefaultMaxLength,
		MaxPermutations:       0,
		Format:                string(output.FormatHuman),
		LogLevel:              "",
		NormalizePermutations: false,
		Strategy:              anagram.SortStrategy.String(),
	}
}

// Load resolves the configuration. path names an optional config file whose
// type follows its extension (yaml, json, toml); an empty path reads no file.
// Flags present in fs and changed by the user override file and defaults.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	def := DefaultConfig()
	v.SetDefault("max_length", def.MaxLength)
	v.SetDefault("max_permutations", def.MaxPermutations)
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("normalize_permutations", def.NormalizePermutations)
	v.SetDefault("strategy", def.Strategy)

	// Optional file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// Flags
	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Strategy = strings.ToLower(cfg.Strategy)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.MaxLength <= 0 {
		return &Error{Field: "max_length", Message: fmt.Sprintf("must be positive, got %d", c.MaxLength)}
	}
	if c.MaxPermutations < 0 {
		return &Error{Field: "max_permutations", Message: fmt.Sprintf("must not be negative, got %d", c.MaxPermutations)}
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return &Error{Field: "format", Message: err.Error()}
	}
	if c.LogLevel != "" {
		if _, ok := logging.LevelFromString(c.LogLevel); !ok {
			return &Error{Field: "log_level", Message: fmt.Sprintf("unknown level %q (want debug, info, warn, error or silent)", c.LogLevel)}
		}
	}
	if _, ok := anagram.ParseStrategy(c.Strategy); !ok {
		return &Error{Field: "strategy", Message: fmt.Sprintf("unknown strategy %q (want sort or count)", c.Strategy)}
	}

	return nil
}

// AnagramStrategy returns the configured comparison strategy.
func (c *Config) AnagramStrategy() anagram.Strategy {
	s, _ := anagram.ParseStrategy(c.Strategy)

	return s
}

// Error reports an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/render"
)

// Config holds every setting that can come from the config file. Flags
// given on the command line take precedence.
type Config struct {
	// Dictionary is the newline-delimited word list to search.
	Dictionary string `yaml:"dictionary"`
	// Clean drops likely plurals and past tenses from the dictionary.
	Clean bool `yaml:"clean"`

	Limit    bool   `yaml:"limit"`
	PerLine  int    `yaml:"per_line"`
	MaxLines int    `yaml:"max_lines"`
	Color    string `yaml:"color"`

	Symbols SymbolsConfig `yaml:"symbols"`
	Fetch   FetchConfig   `yaml:"fetch"`
}

// SymbolsConfig holds the one-character feedback symbols.
type SymbolsConfig struct {
	Exact   string `yaml:"exact"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
}

// FetchConfig describes where the game script lives and which arrays in
// it hold the word lists.
type FetchConfig struct {
	URL      string   `yaml:"url"`
	CacheDir string   `yaml:"cache_dir"`
	Prefixes []string `yaml:"prefixes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: "words.txt",
		Limit:      true,
		PerLine:    render.DefaultPerLine,
		MaxLines:   render.DefaultMaxLines,
		Color:      string(render.ColorAuto),
		Symbols: SymbolsConfig{
			Exact:   string(feedback.DefaultSymbols.Exact),
			Present: string(feedback.DefaultSymbols.Present),
			Absent:  string(feedback.DefaultSymbols.Absent),
		},
		Fetch: FetchConfig{
			URL:      "https://www.powerlanguage.co.uk/wordle/main.4d41d2be.js",
			CacheDir: ".",
			Prefixes: []string{"var Ma=", ",Oa="},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/wordle/config.yaml or the platform
// equivalent; it is empty when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wordle", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by their type.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return errors.New("dictionary must not be empty")
	}
	if c.PerLine <= 0 {
		return fmt.Errorf("per_line must be positive, got %d", c.PerLine)
	}
	if c.MaxLines <= 0 {
		return fmt.Errorf("max_lines must be positive, got %d", c.MaxLines)
	}
	if _, err := render.ParseColorMode(c.Color); err != nil {
		return err
	}
	if _, err := c.FeedbackSymbols(); err != nil {
		return err
	}
	return nil
}

// FeedbackSymbols converts the configured symbols.
func (c *Config) FeedbackSymbols() (feedback.Symbols, error) {
	var runes [3]rune
	for i, s := range []string{c.Symbols.Exact, c.Symbols.Present, c.Symbols.Absent} {
		if utf8.RuneCountInString(s) != 1 {
			return feedback.Symbols{}, fmt.Errorf("feedback symbol %q must be a single character", s)
		}
		runes[i], _ = utf8.DecodeRuneInString(s)
	}

	sym := feedback.Symbols{Exact: runes[0], Present: runes[1], Absent: runes[2]}
	if err := sym.Validate(); err != nil {
		return feedback.Symbols{}, err
	}
	return sym, nil
}

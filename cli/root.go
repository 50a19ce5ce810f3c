// Package cli implements the wordle command and its subcommands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bent101/wordle-matches/config"
	"github.com/bent101/wordle-matches/constraint"
	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/logger"
	"github.com/bent101/wordle-matches/render"
	"github.com/bent101/wordle-matches/wordlist"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	dictPath   string
	clean      bool
	color      string
	verbose    bool

	cfg     *config.Config
	symbols feedback.Symbols
	log     zerolog.Logger
	printer *render.Printer
}

// NewRootCommand creates the wordle command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Narrow down Wordle answers from the feedback of past guesses",
		Long: `wordle lists the dictionary words that are still possible given the
guesses of a game and the feedback each received.

Feedback is written with one symbol per letter: g for green (right letter,
right place), y for yellow (right letter, wrong place) and . for gray.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&a.dictPath, "dict", "d", "", "newline-delimited word list")
	flags.BoolVar(&a.clean, "clean", false, "drop likely plurals and past tenses from the word list")
	flags.StringVar(&a.color, "color", "", "color annotated guesses: auto, always or never")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging information to stderr")

	rootCmd.AddCommand(newReplayCommand(a))
	rootCmd.AddCommand(newPartitionCommand(a))
	rootCmd.AddCommand(newFreqCommand(a))
	rootCmd.AddCommand(newFetchCommand(a))

	return rootCmd
}

// Execute runs rootCmd, reports any error on its error stream and returns
// the exit code for the process.
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return int(ExitOK)
	}

	code := exitCode(err)
	stderr := rootCmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if code == ExitUsage || code == ExitInput {
		fmt.Fprintln(stderr, "Run 'wordle --help' for usage.")
	}
	return int(code)
}

func (a *app) setup(cmd *cobra.Command) error {
	path, required := a.configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("dict") {
		cfg.Dictionary = a.dictPath
	}
	if changed("clean") {
		cfg.Clean = a.clean
	}
	if changed("color") {
		cfg.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}

	a.cfg = cfg
	a.symbols, _ = cfg.FeedbackSymbols()
	a.log = logger.New(cmd.ErrOrStderr(), a.verbose)

	mode, _ := render.ParseColorMode(cfg.Color)
	out := cmd.OutOrStdout()
	a.printer = render.NewPrinter(out, mode.Enabled(asFile(out)))
	a.printer.Symbols = a.symbols
	a.printer.Limit = cfg.Limit
	a.printer.PerLine = cfg.PerLine
	a.printer.MaxLines = cfg.MaxLines

	if path != "" {
		a.log.Debug().Str("config", path).Msg("configuration loaded")
	}
	return nil
}

// loadDictionary loads the five letter words of the configured dictionary.
func (a *app) loadDictionary() (*wordlist.Dictionary, error) {
	opts := []wordlist.Option{wordlist.WithLength(feedback.Length)}
	if a.cfg.Clean {
		opts = append(opts, wordlist.WithClean())
	}

	d, err := wordlist.Load(a.cfg.Dictionary, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", a.cfg.Dictionary).Bool("clean", a.cfg.Clean).Int("words", d.Len()).Msg("loaded dictionary")
	return d, nil
}

// parsePlays parses guess:feedback arguments.
func (a *app) parsePlays(args []string) ([]constraint.Play, error) {
	plays := make([]constraint.Play, 0, len(args))
	for _, arg := range args {
		if !strings.Contains(arg, ":") {
			return nil, usageError("expected guess:feedback, got %q", arg)
		}
		p, err := constraint.ParsePlay(arg, a.symbols)
		if err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

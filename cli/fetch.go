package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bent101/wordle-matches/scrape"
)

type fetchFlags struct {
	refresh bool
	url     string
	out     string
}

func newFetchCommand(a *app) *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Build the dictionary from the word lists in the game's script",
		Long: `Download the game's script (or reuse the cached copy), extract the
configured word arrays from it and write them, sorted and without
duplicates, to the dictionary file.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, a, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "download again even if a cached copy exists")
	cmd.Flags().StringVar(&flags.url, "url", "", "script URL (default from config)")
	cmd.Flags().StringVarP(&flags.out, "output", "o", "", "dictionary to write (default the configured dictionary)")

	return cmd
}

func runFetch(cmd *cobra.Command, a *app, flags *fetchFlags) error {
	url := a.cfg.Fetch.URL
	if flags.url != "" {
		url = flags.url
	}
	out := a.cfg.Dictionary
	if flags.out != "" {
		out = flags.out
	}
	if len(a.cfg.Fetch.Prefixes) == 0 {
		return usageError("no word array prefixes configured")
	}

	f := scrape.NewFetcher(a.cfg.Fetch.CacheDir, a.log)
	if stderr := asFile(cmd.ErrOrStderr()); stderr != nil && term.IsTerminal(int(stderr.Fd())) {
		f.Progress = stderr
	}

	src, err := f.Fetch(cmd.Context(), url, flags.refresh)
	if err != nil {
		return err
	}

	lists := make([][]string, 0, len(a.cfg.Fetch.Prefixes))
	for _, prefix := range a.cfg.Fetch.Prefixes {
		words, err := scrape.ExtractArray(src, prefix)
		if err != nil {
			return err
		}
		a.log.Debug().Str("prefix", prefix).Int("words", len(words)).Msg("extracted")
		lists = append(lists, words)
	}

	n, err := scrape.WriteDictionary(out, lists...)
	if err != nil {
		return err
	}
	a.log.Info().Str("path", out).Int("words", n).Msg("wrote dictionary")
	return nil
}

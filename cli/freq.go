package cli

import (
	"github.com/spf13/cobra"

	"github.com/bent101/wordle-matches/letterfreq"
	"github.com/bent101/wordle-matches/wordlist"
)

func newFreqCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "freq [file]",
		Short: "Print letter frequencies of the five letter words in a word list",
		Long: `Count how often each letter appears in the five letter words of a word
list, overall and at each position. Words that look like plurals or past
tenses of shorter words in the same list are skipped.

The file defaults to the configured dictionary.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Dictionary
			if len(args) == 1 {
				path = args[0]
			}
			return runFreq(a, path)
		},
	}
}

func runFreq(a *app, path string) error {
	// the raw list: shorter words are needed as roots
	d, err := wordlist.Load(path)
	if err != nil {
		return err
	}

	stats := letterfreq.Count(d.Words)
	a.log.Debug().Str("path", path).Int("entries", d.Len()).Int("valid", stats.Valid).Msg("counted letters")

	a.printer.Frequencies(stats)
	return nil
}

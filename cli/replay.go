package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-matches/constraint"
	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/wordlist"
)

type replayFlags struct {
	limit   bool
	explain bool
}

func newReplayCommand(a *app) *cobra.Command {
	flags := &replayFlags{}

	cmd := &cobra.Command{
		Use:     "replay guess... answer | guess:feedback...",
		Aliases: []string{"matches"},
		Short:   "Show the possible answers after each guess of a game",
		Long: `Replay a game one guess at a time, listing the words still possible
after each guess.

Either give the guesses followed by the answer, and the feedback is worked
out for you, or give each guess with the feedback the game showed.

Examples:
  wordle replay arise donut sugar
  wordle replay arise:yy.y. donut:...y.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") {
				a.printer.Limit = flags.limit
			}
			return runReplay(a, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.limit, "limit", true, "truncate long lists of matches")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "print what is known about each letter after every guess")

	return cmd
}

func runReplay(a *app, args []string, flags *replayFlags) error {
	// Parse everything up front so bad input prints nothing.
	var (
		plays  []constraint.Play
		answer string
		err    error
	)
	switch {
	case allHavePlays(args, true):
		plays, err = a.parsePlays(args)
	case allHavePlays(args, false):
		answer = args[len(args)-1]
		plays, err = constraint.Replay(answer, args[:len(args)-1]...)
	default:
		return usageError("give either guess1 guess2 ... answer or guess1:feedback1 guess2:feedback2 ...")
	}
	if err != nil {
		return err
	}
	if answer != "" {
		if err := feedback.ValidateWord(answer); err != nil {
			return err
		}
	}

	dict, err := a.loadDictionary()
	if err != nil {
		return err
	}

	state := constraint.New()
	set := wordlist.Full(dict.Len())
	for _, pl := range plays {
		a.printer.Annotate(pl.Guess, pl.Pattern)
		if err := state.Update(pl.Guess, pl.Pattern); err != nil {
			return err
		}

		set = dict.Narrow(set, state.Matches)
		a.log.Debug().Str("guess", pl.Guess).Stringer("pattern", pl.Pattern).Int("matches", set.Count).Msg("applied")
		a.printer.Matches(dict.Select(set))
		if flags.explain {
			if err := a.printer.Explain(state); err != nil {
				return err
			}
		}
		a.printer.Blank()
	}

	if answer != "" {
		a.printer.Annotate(answer, feedback.Solved)
		a.printer.Blank()
	}
	return nil
}

// allHavePlays reports whether every argument is (or, with want false, is
// not) of the form guess:feedback.
func allHavePlays(args []string, want bool) bool {
	for _, arg := range args {
		if strings.Contains(arg, ":") != want {
			return false
		}
	}
	return true
}

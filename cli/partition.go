package cli

import (
	"github.com/spf13/cobra"

	"github.com/bent101/wordle-matches/constraint"
	"github.com/bent101/wordle-matches/feedback"
)

func newPartitionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "partition probe [guess:feedback...]",
		Short: "Show how a guess would split the remaining candidates",
		Long: `For every word still possible after the given plays, work out the
feedback probe would receive if that word were the answer, and group the
candidates by that feedback. Smaller groups mean a more informative guess.

Example:
  wordle partition crane arise:yy.y.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartition(a, args[0], args[1:])
		},
	}
}

func runPartition(a *app, probe string, args []string) error {
	if err := feedback.ValidateWord(probe); err != nil {
		return err
	}
	plays, err := a.parsePlays(args)
	if err != nil {
		return err
	}

	dict, err := a.loadDictionary()
	if err != nil {
		return err
	}

	state := constraint.New()
	if err := state.Apply(plays...); err != nil {
		return err
	}

	set := dict.Filter(state.Matches)
	groups, err := dict.Partition(set, probe)
	if err != nil {
		return err
	}
	a.log.Debug().Int("candidates", set.Count).Int("groups", len(groups)).Msg("partitioned")
	for _, g := range groups {
		a.log.Debug().Stringer("pattern", g.Pattern).Int("candidates", g.Bitvec.Count).Msg("group")
	}

	a.printer.Partition(dict, probe, groups)
	return nil
}

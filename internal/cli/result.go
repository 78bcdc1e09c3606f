package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/result"
)

// ResultOptions holds flags for the result command.
type ResultOptions struct {
	matchOptions
	TeamsPath string
}

// NewResultCommand creates the result command.
func NewResultCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResultOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:           "result",
		Short:         "Show the match result and top performers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResult(cmd, opts)
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.TeamsPath, "teams", "", "path to teams YAML file (required)")
	_ = cmd.MarkFlagRequired("teams")
	return cmd
}

func runResult(cmd *cobra.Command, opts *ResultOptions) error {
	out := formatter(cmd, opts.RootOptions)

	teams, err := LoadTeams(opts.TeamsPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load teams", err)
	}

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	// Which side batted first: in the second innings it is the current
	// bowling side, in the first the current batting side.
	firstBatting, firstBowling := teams.TeamA, teams.TeamB
	if state.Innings >= 2 {
		if state.BattingTeamID == teams.TeamA.ID {
			firstBatting, firstBowling = teams.TeamB, teams.TeamA
		}
	} else if state.BattingTeamID == teams.TeamB.ID {
		firstBatting, firstBowling = teams.TeamB, teams.TeamA
	}

	res := result.Compute(state, firstBatting, firstBowling)
	perf1 := result.TopPerformers(state, firstBatting, firstBowling, 1)
	perf2 := result.TopPerformers(state, firstBowling, firstBatting, 2)

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"result":               res,
			"first_innings_stars":  perf1,
			"second_innings_stars": perf2,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", res.Text, res.Margin)
	for i, perf := range []result.Performers{perf1, perf2} {
		if perf.TopScorer == nil && perf.BestSpell == nil {
			continue
		}
		fmt.Fprintf(w, "Innings %d:", i+1)
		if perf.TopScorer != nil {
			fmt.Fprintf(w, " %s %d (%d)", perf.TopScorer.Name, perf.TopScorer.Runs, perf.TopScorer.Balls)
		}
		if perf.BestSpell != nil {
			fmt.Fprintf(w, ", %s %d/%d (%s)", perf.BestSpell.Name, perf.BestSpell.Wickets, perf.BestSpell.Runs, perf.BestSpell.Overs)
		}
		fmt.Fprintln(w)
	}
	return nil
}

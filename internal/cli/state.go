package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/stats"
)

// StateOptions holds flags for the state command.
type StateOptions struct {
	matchOptions
	Tape int
}

// NewStateCommand creates the state command.
func NewStateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StateOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the live match state",
		Long: `Show the score line, derived rates, chase arithmetic and the recent
ball tape, plus the advisory over-rate pace.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runState(cmd, opts)
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().IntVar(&opts.Tape, "tape", 6, "number of recent balls to show")
	return cmd
}

func runState(cmd *cobra.Command, opts *StateOptions) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	r, err := matchRules(state)
	if err != nil {
		return err
	}
	oversAllowed := r.TotalOversAllowed(state)
	summary := stats.Compute(state, oversAllowed)
	pace := stats.OverRatePace(state.Timer, state.TotalBalls, r.Format.SecondsPerOver, time.Now())
	tape := stats.Tape(state.Log, state.Innings, opts.Tape)

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"match_id":  state.MatchID,
			"innings":   state.Innings,
			"batting":   state.BattingTeamID,
			"score":     state.Score,
			"wickets":   state.Wickets,
			"overs":     state.OversString(),
			"summary":   summary,
			"over_rate": pace,
			"tape":      tape,
			"completed": state.Completed,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s batting, innings %d: %s\n", state.BattingTeamID, state.Innings, scoreLine(state))
	fmt.Fprintf(w, "Run rate %.2f", summary.RunRate)
	if state.Target > 0 {
		fmt.Fprintf(w, ", need %d off %d (req %.2f)",
			summary.RunsNeeded, summary.BallsLeft, summary.RequiredRate)
	}
	fmt.Fprintln(w)

	if len(tape) > 0 {
		fmt.Fprint(w, "Recent: ")
		for i, entry := range tape {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, entry.Label)
		}
		fmt.Fprintln(w)
	}

	if !state.Timer.StartTime.IsZero() {
		status := "on pace"
		if pace.BehindRate {
			status = "behind pace"
		}
		fmt.Fprintf(w, "Over rate: %.1f expected, %s actual (%s)\n",
			pace.ExpectedOvers, state.OversString(), status)
	}
	if state.Completed {
		fmt.Fprintln(w, "Match completed")
	}
	return nil
}

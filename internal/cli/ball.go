package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/innings"
)

// BallOptions holds flags for the ball command.
type BallOptions struct {
	matchOptions
	Extra      string
	ExtraRuns  int
	Commentary string
	Players    int
}

var extraNames = map[string]event.ExtraType{
	"":        event.ExtraNone,
	"wide":    event.ExtraWide,
	"no-ball": event.ExtraNoBall,
	"bye":     event.ExtraBye,
	"leg-bye": event.ExtraLegBye,
}

// NewBallCommand creates the ball command.
func NewBallCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BallOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "ball <runs>",
		Short: "Record a delivery",
		Long: `Record one delivery. <runs> are runs off the bat; extras travel on
--extra and --extra-runs. Wides and no-balls do not count toward the over
and default --extra-runs to 1, the run the umpire signals; pass
--extra-runs explicitly when the batters ran more.

Examples:
  willow ball 4 --db ./match.db
  willow ball 0 --extra wide --db ./match.db
  willow ball 0 --extra leg-bye --extra-runs 2 --db ./match.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBall(cmd, opts, args[0])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.Extra, "extra", "", "extra type (wide|no-ball|bye|leg-bye)")
	cmd.Flags().IntVar(&opts.ExtraRuns, "extra-runs", 0, "runs scored as extras on this delivery")
	cmd.Flags().StringVar(&opts.Commentary, "commentary", "", "free-text commentary for the ball")
	cmd.Flags().IntVar(&opts.Players, "players", 11, "players per side, bounds the all-out check")

	return cmd
}

func runBall(cmd *cobra.Command, opts *BallOptions, runsArg string) error {
	out := formatter(cmd, opts.RootOptions)

	runs, err := strconv.Atoi(runsArg)
	if err != nil || runs < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid runs %q", runsArg))
	}

	extra, ok := extraNames[opts.Extra]
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid extra %q: must be wide, no-ball, bye or leg-bye", opts.Extra))
	}
	if (extra == event.ExtraBye || extra == event.ExtraLegBye) && opts.ExtraRuns == 0 {
		return NewExitError(ExitCommandError, "byes and leg-byes need --extra-runs")
	}
	// A wide or no-ball scores at least the one signalled run.
	if (extra == event.ExtraWide || extra == event.ExtraNoBall) && !cmd.Flags().Changed("extra-runs") {
		opts.ExtraRuns = 1
	}

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if state.Completed {
		return NewExitError(ExitFailure, "match is already completed")
	}

	eng := resume(state)
	eng.ApplyBall(event.Ball{
		BatRuns:    runs,
		ExtraRuns:  opts.ExtraRuns,
		Extra:      extra,
		Commentary: opts.Commentary,
	})
	next := eng.State()

	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	r, err := matchRules(next)
	if err != nil {
		return err
	}
	reason := innings.Check(next, r.TotalOversAllowed(next), opts.Players, r.Format.FlexibleSquad)

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"score":       next.Score,
			"wickets":     next.Wickets,
			"overs":       next.OversString(),
			"innings":     next.Innings,
			"innings_end": string(reason),
		})
	}
	line := scoreLine(next)
	if reason != innings.EndReasonNone {
		line += fmt.Sprintf(" - innings over: %s", reason)
	}
	return out.Success(line)
}

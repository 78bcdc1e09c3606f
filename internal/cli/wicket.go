package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/innings"
)

// WicketOptions holds flags for the wicket command.
type WicketOptions struct {
	matchOptions
	Batter  string
	Fielder string
	Players int
}

var wicketNames = map[string]event.WicketType{
	"bowled":            event.WicketBowled,
	"caught":            event.WicketCaught,
	"lbw":               event.WicketLBW,
	"stumped":           event.WicketStumped,
	"hit-wicket":        event.WicketHitWicket,
	"run-out":           event.WicketRunOut,
	"handled-ball":      event.WicketHandledBall,
	"obstructing-field": event.WicketObstructingField,
	"timed-out":         event.WicketTimedOut,
}

// NewWicketCommand creates the wicket command.
func NewWicketCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WicketOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "wicket <type>",
		Short: "Record a dismissal",
		Long: `Record a dismissal on a zero-run delivery. Bowler credit follows the
dismissal type: run outs, handled ball, obstructing the field and timed out
never reach the bowler's column.

The dismissed batter defaults to the striker; pass --batter for run outs at
the non-striker's end.

Example:
  willow wicket caught --fielder p7 --db ./match.db
  willow wicket run-out --batter p3 --db ./match.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWicket(cmd, opts, args[0])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.Batter, "batter", "", "dismissed player id (default: striker)")
	cmd.Flags().StringVar(&opts.Fielder, "fielder", "", "fielder player id (catches, run outs, stumpings)")
	cmd.Flags().IntVar(&opts.Players, "players", 11, "players per side, bounds the all-out check")

	return cmd
}

func runWicket(cmd *cobra.Command, opts *WicketOptions, typeArg string) error {
	out := formatter(cmd, opts.RootOptions)

	wtype, ok := wicketNames[typeArg]
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid wicket type %q", typeArg))
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
	eng.RecordWicket(engine.Wicket{
		Type:      wtype,
		BatterID:  opts.Batter,
		FielderID: opts.Fielder,
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
			"wicket":      string(wtype),
			"innings_end": string(reason),
		})
	}
	line := fmt.Sprintf("WICKET! %s - %s", wtype, scoreLine(next))
	if reason != innings.EndReasonNone {
		line += fmt.Sprintf(" - innings over: %s", reason)
	}
	return out.Success(line)
}

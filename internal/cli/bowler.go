package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BowlerOptions holds flags for the bowler command.
type BowlerOptions struct {
	matchOptions
	MidOver bool
}

// NewBowlerCommand creates the bowler command.
func NewBowlerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BowlerOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "bowler <player-id>",
		Short: "Change or replace the bowler",
		Long: `Set the bowler for the next over. The per-bowler over cap and the
consecutive-over rule are checked first; --mid-over records an injury
replacement instead, which skips both checks and keeps the over's ball
count.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBowler(cmd, opts, args[0])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().BoolVar(&opts.MidOver, "mid-over", false, "injury replacement mid-over")
	return cmd
}

func runBowler(cmd *cobra.Command, opts *BowlerOptions, bowlerID string) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	eng := resume(state)
	if opts.MidOver {
		eng.ReplaceBowlerMidOver(bowlerID)
	} else {
		r, err := matchRules(state)
		if err != nil {
			return err
		}
		avail := r.BowlerAvailability(state, bowlerID)
		if !avail.Available {
			return NewExitError(ExitFailure, fmt.Sprintf("bowler %s unavailable: %s", bowlerID, avail.Reason))
		}
		eng.ChangeBowler(bowlerID)
	}
	next := eng.State()

	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"bowler":   bowlerID,
			"mid_over": opts.MidOver,
			"overs":    next.OversString(),
		})
	}
	if opts.MidOver {
		return out.Success(fmt.Sprintf("Bowler replaced mid-over: %s", bowlerID))
	}
	return out.Success(fmt.Sprintf("New bowler: %s", bowlerID))
}

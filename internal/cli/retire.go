package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/event"
)

// RetireOptions holds flags for the retire command.
type RetireOptions struct {
	matchOptions
	Out bool
}

// NewRetireCommand creates the retire command.
func NewRetireCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RetireOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "retire <player-id>",
		Short: "Retire a batter",
		Long: `Retire a batter. Retired hurt vacates the crease without a wicket and
the batter may resume later; --out records Retired Out, which counts as a
wicket but never credits the bowler.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRetire(cmd, opts, args[0])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().BoolVar(&opts.Out, "out", false, "retire out (counts as a wicket)")
	return cmd
}

func runRetire(cmd *cobra.Command, opts *RetireOptions, playerID string) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if playerID != state.StrikerID && playerID != state.NonStrikerID {
		return NewExitError(ExitFailure, fmt.Sprintf("player %q is not at the crease", playerID))
	}

	reason := event.WicketRetiredHurt
	if opts.Out {
		reason = event.WicketRetiredOut
	}

	eng := resume(state)
	eng.RetireBatter(playerID, reason)
	next := eng.State()

	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"player": playerID,
			"reason": string(reason),
			"score":  next.Score,
			"overs":  next.OversString(),
		})
	}
	return out.Success(fmt.Sprintf("%s: %s - %s", reason, playerID, scoreLine(next)))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
)

// BatterOptions holds flags for the batter command.
type BatterOptions struct {
	matchOptions
	NonStriker bool
}

// NewBatterCommand creates the batter command.
func NewBatterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatterOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "batter <player-id>",
		Short: "Send in the next batter",
		Long: `Fill an empty crease slot after a wicket or retirement. The striker slot
is assumed; pass --non-striker when the run out was at the other end.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatter(cmd, opts, args[0])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().BoolVar(&opts.NonStriker, "non-striker", false, "fill the non-striker slot")
	return cmd
}

func runBatter(cmd *cobra.Command, opts *BatterOptions, playerID string) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	slot := engine.RoleStriker
	if opts.NonStriker {
		slot = engine.RoleNonStriker
	}

	eng := resume(state)
	eng.SendInBatter(playerID, slot)
	next := eng.State()

	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"player": playerID,
			"slot":   string(slot),
		})
	}
	return out.Success(fmt.Sprintf("New batter: %s (%s)", playerID, slot))
}

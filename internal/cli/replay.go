package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &matchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Verify the archived log against the snapshot",
		Long: `Rebuild the current innings from the archived event log and compare the
result with the saved snapshot. Exit code 1 when they disagree.

The log is the source of truth; a mismatch means the snapshot drifted and
roughly always indicates a bug worth reporting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts)
		},
	}

	addMatchFlags(cmd, opts)
	return cmd
}

func runReplay(cmd *cobra.Command, opts *matchOptions) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer st.Close()

	report, err := st.Replay(cmd.Context(), state.MatchID)
	if err != nil {
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	if opts.Format == "json" {
		if err := out.Success(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d events: %d/%d (%s)\n",
			report.EventCount, report.ReplayScore, report.ReplayWickets,
			scoreLine(state))
		for _, m := range report.Mismatches {
			fmt.Fprintf(cmd.OutOrStdout(), "  mismatch: %s\n", m)
		}
	}

	if !report.Consistent {
		return NewExitError(ExitFailure, "replay inconsistent with snapshot")
	}
	return nil
}

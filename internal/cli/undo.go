package cli

import (
	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
)

// NewUndoCommand creates the undo command.
func NewUndoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &matchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last recorded event",
		Long: `Remove the most recent event from the log and rebuild the innings by
replaying what remains. There is no redo.

The live engine keeps full state snapshots for undo; across CLI
invocations only the log survives, so undo is limited to events of the
current innings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUndo(cmd, opts)
		},
	}

	addMatchFlags(cmd, opts)
	return cmd
}

func runUndo(cmd *cobra.Command, opts *matchOptions) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer st.Close()

	if len(state.Log) == 0 {
		return out.Success("Nothing to undo")
	}
	removed := state.Log[0]
	if removed.Innings != state.Innings {
		return NewExitError(ExitFailure, "cannot undo past the start of the innings")
	}

	state.Log = state.Log[1:]
	next := engine.ReplayInnings(state)

	if err := st.SaveSnapshot(cmd.Context(), next); err != nil {
		return WrapExitError(ExitCommandError, "failed to save match", err)
	}
	lastSeq := int64(0)
	if len(next.Log) > 0 {
		lastSeq = next.Log[0].Seq
	}
	if err := st.DeleteEventsAfter(cmd.Context(), next.MatchID, lastSeq); err != nil {
		return WrapExitError(ExitCommandError, "failed to trim archived events", err)
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"removed_seq": removed.Seq,
			"score":       next.Score,
			"wickets":     next.Wickets,
			"overs":       next.OversString(),
		})
	}
	return out.Success("Undone - " + scoreLine(next))
}

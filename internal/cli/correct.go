package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
)

// CorrectOptions holds flags for the correct command.
type CorrectOptions struct {
	matchOptions
	Role string
}

// NewCorrectCommand creates the correct command.
func NewCorrectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CorrectOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "correct <old-id> <new-id>",
		Short: "Correct a mis-identified player",
		Long: `Rewrite every occurrence of a player id in the given role, in the crease
slot and throughout the event log. Recorded runs, wickets and ball counts
are untouched; only the identity changes.

Example:
  willow correct p4 p5 --role striker --db ./match.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrect(cmd, opts, args[0], args[1])
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.Role, "role", "striker", "role to rewrite (striker|non-striker|bowler)")
	return cmd
}

func runCorrect(cmd *cobra.Command, opts *CorrectOptions, oldID, newID string) error {
	out := formatter(cmd, opts.RootOptions)

	var role engine.Role
	switch opts.Role {
	case "striker":
		role = engine.RoleStriker
	case "non-striker":
		role = engine.RoleNonStriker
	case "bowler":
		role = engine.RoleBowler
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid role %q: must be striker, non-striker or bowler", opts.Role))
	}

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	eng := resume(state)
	eng.CorrectPlayerIdentity(oldID, newID, role)
	next := eng.State()

	if err := st.SaveSnapshot(cmd.Context(), next); err != nil {
		return WrapExitError(ExitCommandError, "failed to save match", err)
	}
	// The rewrite changes event content, so the archived rows are stale.
	// Re-archive from scratch rather than relying on hash idempotency.
	if err := st.DeleteEventsAfter(cmd.Context(), next.MatchID, 0); err != nil {
		return WrapExitError(ExitCommandError, "failed to trim archived events", err)
	}
	if err := st.AppendLog(cmd.Context(), next.MatchID, next.Log); err != nil {
		return WrapExitError(ExitCommandError, "failed to archive events", err)
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"role":   opts.Role,
			"old_id": oldID,
			"new_id": newID,
		})
	}
	return out.Success(fmt.Sprintf("Corrected %s: %s -> %s", opts.Role, oldID, newID))
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewDeclareCommand creates the declare command.
func NewDeclareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &matchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare the innings",
		Long: `Record the batting captain's declaration. The innings-end check reports
Declared ahead of every other condition; follow with 'willow innings' to
move to the next innings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeclare(cmd, opts)
		},
	}

	addMatchFlags(cmd, opts)
	return cmd
}

func runDeclare(cmd *cobra.Command, opts *matchOptions) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer st.Close()

	eng := resume(state)
	eng.DeclareInnings()
	next := eng.State()

	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"innings": next.Innings,
			"score":   next.Score,
			"wickets": next.Wickets,
			"overs":   next.OversString(),
		})
	}
	return out.Success("Innings declared at " + scoreLine(next))
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/scorecard"
)

// CardOptions holds flags for the card command.
type CardOptions struct {
	matchOptions
	TeamsPath string
	Innings   int
}

// NewCardCommand creates the card command.
func NewCardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CardOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Show the scorecard",
		Long: `Derive the batting and bowling cards from the event log. Cards are
recomputed from the log on every call; nothing is cached.

Example:
  willow card --db ./match.db --teams teams.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, opts)
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.TeamsPath, "teams", "", "path to teams YAML file (required)")
	_ = cmd.MarkFlagRequired("teams")
	cmd.Flags().IntVar(&opts.Innings, "innings", 0, "innings to show (default: current)")
	return cmd
}

func runCard(cmd *cobra.Command, opts *CardOptions) error {
	out := formatter(cmd, opts.RootOptions)

	teams, err := LoadTeams(opts.TeamsPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load teams", err)
	}

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	innings := opts.Innings
	if innings == 0 {
		innings = state.Innings
	}

	// Which side batted the requested innings.
	battingID, bowlingID := state.BattingTeamID, state.BowlingTeamID
	if innings != state.Innings {
		battingID, bowlingID = bowlingID, battingID
	}
	battingTeam, ok := teams.teamByID(battingID)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("team %q not in teams file", battingID))
	}
	bowlingTeam, ok := teams.teamByID(bowlingID)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("team %q not in teams file", bowlingID))
	}

	strikerID, nonStrikerID := "", ""
	if innings == state.Innings {
		strikerID, nonStrikerID = state.StrikerID, state.NonStrikerID
	}
	batting := scorecard.BuildBattingCard(state.Log, battingTeam.Players, innings, strikerID, nonStrikerID)
	bowling := scorecard.BuildBowlingCard(state.Log, bowlingTeam.Players, innings)

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"innings": innings,
			"batting": batting,
			"bowling": bowling,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s - innings %d\n\n", battingTeam.Name, innings)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BATTER\tR\tB\t4s\t6s\tSR\t")
	for _, row := range batting {
		name := row.Name
		if row.AtCrease {
			name += "*"
		}
		dismissal := row.Dismissal
		if !row.Out && dismissal == "" {
			dismissal = "not out"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f\t%s\n",
			name, row.Runs, row.Balls, row.Fours, row.Sixes, row.StrikeRate, dismissal)
	}
	fmt.Fprintln(tw, "\t\t\t\t\t\t")
	fmt.Fprintln(tw, "BOWLER\tO\tM\tR\tW\tECON\t")
	for _, row := range bowling {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f\t\n",
			row.Name, row.Overs, row.Maidens, row.Runs, row.Wickets, row.Economy)
	}
	return tw.Flush()
}

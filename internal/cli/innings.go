package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/result"
	"github.com/willowsc/willow/internal/roster"
)

// InningsOptions holds flags for the innings command.
type InningsOptions struct {
	matchOptions
	TeamsPath string
	Striker   string
	NonStrike string
	Bowler    string
}

// NewInningsCommand creates the innings command.
func NewInningsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InningsOptions{matchOptions: matchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "innings",
		Short: "End the innings and start the next, or complete the match",
		Long: `Archive the current innings. After the first innings the sides swap and
the chase target is set to the first-innings score plus one. After the
second the match completes and the result is reported (--teams supplies
display names).

Example:
  willow innings --db ./match.db --striker p1 --non-striker p2 --bowler q8`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInnings(cmd, opts)
		},
	}

	addMatchFlags(cmd, &opts.matchOptions)
	cmd.Flags().StringVar(&opts.TeamsPath, "teams", "", "path to teams YAML file (for the result line)")
	cmd.Flags().StringVar(&opts.Striker, "striker", "", "next innings opening striker")
	cmd.Flags().StringVar(&opts.NonStrike, "non-striker", "", "next innings opening non-striker")
	cmd.Flags().StringVar(&opts.Bowler, "bowler", "", "next innings opening bowler")
	return cmd
}

func runInnings(cmd *cobra.Command, opts *InningsOptions) error {
	out := formatter(cmd, opts.RootOptions)

	st, state, err := openMatch(cmd.Context(), &opts.matchOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if state.Completed {
		return NewExitError(ExitFailure, "match is already completed")
	}

	eng := resume(state)
	eng.EndInnings()

	if state.Innings == 1 {
		target := state.Score + 1
		eng.StartInnings(state.BowlingTeamID, state.BattingTeamID, target)
		if opts.Striker != "" && opts.NonStrike != "" && opts.Bowler != "" {
			eng.ApplyBall(event.Ball{
				Kind:         event.KindPlayerChange,
				StrikerID:    opts.Striker,
				NonStrikerID: opts.NonStrike,
				BowlerID:     opts.Bowler,
				Commentary:   "Openers",
			})
		}
		next := eng.State()
		if err := persist(cmd.Context(), st, next); err != nil {
			return err
		}
		if opts.Format == "json" {
			return out.Success(map[string]any{
				"innings": next.Innings,
				"target":  next.Target,
			})
		}
		return out.Success(fmt.Sprintf("Innings 2 underway, target %d", target))
	}

	eng.CompleteMatch()
	next := eng.State()
	if err := persist(cmd.Context(), st, next); err != nil {
		return err
	}

	// The chasing side is batting; the other side batted first.
	teamA := roster.Team{ID: next.BowlingTeamID, Name: next.BowlingTeamID}
	teamB := roster.Team{ID: next.BattingTeamID, Name: next.BattingTeamID}
	if opts.TeamsPath != "" {
		teams, err := LoadTeams(opts.TeamsPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load teams", err)
		}
		if t, ok := teams.teamByID(teamA.ID); ok {
			teamA = t
		}
		if t, ok := teams.teamByID(teamB.ID); ok {
			teamB = t
		}
	}
	res := result.Compute(next, teamA, teamB)

	if opts.Format == "json" {
		return out.Success(res)
	}
	return out.Success(fmt.Sprintf("%s %s", res.Text, res.Margin))
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/rules"
	"github.com/willowsc/willow/internal/store"
)

// NewOptions holds flags for the new command.
type NewOptions struct {
	*RootOptions
	Database     string
	MatchID      string
	MatchFormat  string
	TeamsPath    string
	TossWinner   string
	TossDecision string
	Striker      string
	NonStriker   string
	Bowler       string

	// IDGenerator allows overriding match id generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator engine.MatchIDGenerator
}

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a match",
		Long: `Create a match and persist its opening state.

The toss decides the batting side: the winner bats on "bat", otherwise the
other team does. Openers and opening bowler are optional; when all three
are given the log records who took the field.

Example:
  willow new --db ./match.db --teams teams.yaml --match-format T20 \
    --toss-winner ind --toss-decision bat`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.TeamsPath, "teams", "", "path to teams YAML file (required)")
	_ = cmd.MarkFlagRequired("teams")
	cmd.Flags().StringVar(&opts.MatchID, "match", "", "match id (default: generated UUIDv7)")
	cmd.Flags().StringVar(&opts.MatchFormat, "match-format", "T20", "playing format from the catalog")
	cmd.Flags().StringVar(&opts.TossWinner, "toss-winner", "", "team id that won the toss (default: team_a)")
	cmd.Flags().StringVar(&opts.TossDecision, "toss-decision", "bat", "toss decision (bat|bowl)")
	cmd.Flags().StringVar(&opts.Striker, "striker", "", "opening striker player id")
	cmd.Flags().StringVar(&opts.NonStriker, "non-striker", "", "opening non-striker player id")
	cmd.Flags().StringVar(&opts.Bowler, "bowler", "", "opening bowler player id")

	return cmd
}

func runNew(cmd *cobra.Command, opts *NewOptions) error {
	out := formatter(cmd, opts.RootOptions)

	teams, err := LoadTeams(opts.TeamsPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load teams", err)
	}

	if _, err := rules.Lookup(opts.MatchFormat); err != nil {
		return WrapExitError(ExitCommandError, "unknown match format", err)
	}

	decision := match.DecisionBat
	switch opts.TossDecision {
	case "bat":
	case "bowl":
		decision = match.DecisionBowl
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid toss decision %q: must be bat or bowl", opts.TossDecision))
	}

	tossWinner := opts.TossWinner
	if tossWinner != "" {
		if _, ok := teams.teamByID(tossWinner); !ok {
			return NewExitError(ExitCommandError, fmt.Sprintf("toss winner %q is not one of the teams", tossWinner))
		}
	}

	gen := opts.IDGenerator
	if gen == nil {
		gen = engine.UUIDv7Generator{}
	}
	matchID := opts.MatchID
	if matchID == "" {
		matchID = gen.Generate()
	}

	state := match.New(match.Setup{
		MatchID:      matchID,
		Format:       opts.MatchFormat,
		TeamAID:      teams.TeamA.ID,
		TeamBID:      teams.TeamB.ID,
		TossWinnerID: tossWinner,
		TossDecision: decision,
		StrikerID:    opts.Striker,
		NonStrikerID: opts.NonStriker,
		BowlerID:     opts.Bowler,
	}, time.Now())

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if err := persist(cmd.Context(), st, state); err != nil {
		return err
	}

	if opts.Format == "json" {
		return out.Success(state)
	}
	return out.Success(fmt.Sprintf("Match %s created: %s vs %s, %s, %s bat first",
		matchID, teams.TeamA.Name, teams.TeamB.Name, opts.MatchFormat,
		teamName(teams, state.BattingTeamID)))
}

// teamName resolves a display name, falling back to the raw id.
func teamName(teams TeamsFile, id string) string {
	if t, ok := teams.teamByID(id); ok {
		return t.Name
	}
	return id
}

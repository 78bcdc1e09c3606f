package match

import (
	"time"

	"github.com/willowsc/willow/internal/event"
)

// Setup is the initial match configuration produced by the external setup
// flow. Player and team ids are assumed valid; the engine never validates
// them against a roster.
type Setup struct {
	MatchID      string
	Format       string
	TeamAID      string
	TeamBID      string
	TossWinnerID string
	TossDecision Decision

	// Optional pre-selected openers. When all three are present the
	// initial state carries a match-started marker event so the log
	// records who took the field.
	StrikerID    string
	NonStrikerID string
	BowlerID     string
}

// New builds the first-innings state from a setup. The toss decides the
// batting side: the winner bats on "Bat", otherwise the other team does.
func New(cfg Setup, now time.Time) State {
	tossWinner := cfg.TossWinnerID
	if tossWinner == "" {
		tossWinner = cfg.TeamAID
	}

	battingTeamID := tossWinner
	if cfg.TossDecision != DecisionBat {
		battingTeamID = otherTeam(tossWinner, cfg.TeamAID, cfg.TeamBID)
	}
	bowlingTeamID := otherTeam(battingTeamID, cfg.TeamAID, cfg.TeamBID)

	s := State{
		MatchID:       cfg.MatchID,
		Format:        cfg.Format,
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		Innings:       1,
		StrikerID:     cfg.StrikerID,
		NonStrikerID:  cfg.NonStrikerID,
		BowlerID:      cfg.BowlerID,
		Log:           event.Log{},
		InningsScores: []InningsScore{},
		TossWinnerID:  tossWinner,
		TossDecision:  cfg.TossDecision,
	}

	if cfg.StrikerID != "" && cfg.NonStrikerID != "" && cfg.BowlerID != "" {
		s.Log = s.Log.Prepend(event.Ball{
			Kind:         event.KindMatchStarted,
			Timestamp:    now,
			Innings:      1,
			StrikerID:    cfg.StrikerID,
			NonStrikerID: cfg.NonStrikerID,
			BowlerID:     cfg.BowlerID,
			Extra:        event.ExtraNone,
			Commentary:   "Match started",
		})
	}

	return s
}

func otherTeam(teamID, a, b string) string {
	if teamID == a {
		return b
	}
	return a
}

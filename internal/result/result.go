// Package result summarizes a finished match: winner, margin, and the
// standout performers. Everything derives from the innings archive and the
// scorecard builders; nothing here keeps its own tallies.
package result

import (
	"fmt"

	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/roster"
	"github.com/willowsc/willow/internal/scorecard"
)

// Result is the outcome of a completed match.
type Result struct {
	WinnerID string `json:"winner_id,omitempty"`
	Tied     bool   `json:"tied"`
	Text     string `json:"text"`
	Margin   string `json:"margin"`
}

// Performers names the match's top scorer and best bowling spell.
type Performers struct {
	TopScorer *scorecard.BattingRow `json:"top_scorer,omitempty"`
	BestSpell *scorecard.BowlingRow `json:"best_spell,omitempty"`
}

// Compute decides the match outcome from the innings archive. The side
// batting second may still be mid-innings (a chase ends the moment the
// target falls), so its live score stands in when no archived summary
// exists yet.
func Compute(state match.State, teamA, teamB roster.Team) Result {
	scoreA, _ := teamScore(state, teamA.ID)
	scoreB, wicketsB := teamScore(state, teamB.ID)

	switch {
	case scoreA > scoreB:
		return Result{
			WinnerID: teamA.ID,
			Text:     teamA.Name + " Won",
			Margin:   fmt.Sprintf("by %d runs", scoreA-scoreB),
		}
	case scoreB > scoreA:
		wicketsLeft := 10 - wicketsB
		if wicketsLeft < 1 {
			wicketsLeft = 1
		}
		return Result{
			WinnerID: teamB.ID,
			Text:     teamB.Name + " Won",
			Margin:   fmt.Sprintf("by %d wickets", wicketsLeft),
		}
	default:
		return Result{Tied: true, Text: "Match Tied", Margin: "Scores Level"}
	}
}

// TopPerformers finds the leading batter and bowler of one innings.
// battingTeam batted, bowlingTeam bowled.
func TopPerformers(state match.State, battingTeam, bowlingTeam roster.Team, innings int) Performers {
	var out Performers

	batting := scorecard.BuildBattingCard(state.Log, battingTeam.Players, innings, "", "")
	for i := range batting {
		row := &batting[i]
		if out.TopScorer == nil || row.Runs > out.TopScorer.Runs {
			out.TopScorer = row
		}
	}

	bowling := scorecard.BuildBowlingCard(state.Log, bowlingTeam.Players, innings)
	for i := range bowling {
		row := &bowling[i]
		if out.BestSpell == nil ||
			row.Wickets > out.BestSpell.Wickets ||
			(row.Wickets == out.BestSpell.Wickets && row.Economy < out.BestSpell.Economy) {
			out.BestSpell = row
		}
	}
	return out
}

// teamScore sums a team's archived innings, adding the live counters when
// the team is batting an innings that has not been archived yet.
func teamScore(state match.State, teamID string) (score, wickets int) {
	archivedCurrent := false
	for _, s := range state.InningsScores {
		if s.TeamID != teamID {
			continue
		}
		score += s.Score
		wickets = s.Wickets
		if s.Innings == state.Innings {
			archivedCurrent = true
		}
	}
	if state.BattingTeamID == teamID && !archivedCurrent {
		score += state.Score
		wickets = state.Wickets
	}
	return score, wickets
}

package scorecard

import (
	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/roster"
)

// BowlingRow is one bowler's line on the card.
type BowlingRow struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Balls    int     `json:"balls"`
	Overs    string  `json:"overs"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
}

// BuildBowlingCard builds the bowling card for one innings.
//
// Runs conceded exclude byes and leg-byes entirely; a wide or no-ball adds
// a fixed +1 penalty on top of whatever runs the event itself recorded.
// The penalty lives here and only here, so the live team score never
// double-counts it. Wickets count only when the dismissal credits the
// bowler. Bowlers with no balls bowled are dropped.
func BuildBowlingCard(log event.Log, squad []roster.Player, innings int) []BowlingRow {
	rows := make(map[string]*BowlingRow, len(squad))
	order := make([]string, 0, len(squad))
	for _, p := range squad {
		rows[p.ID] = &BowlingRow{PlayerID: p.ID, Name: p.Name}
		order = append(order, p.ID)
	}

	// Per-over run tallies for the maiden count, keyed by bowler.
	type overRun struct {
		bowlerID string
		runs     int
		balls    int
	}
	var curOver overRun
	closeOver := func() {
		if curOver.balls == 6 && curOver.runs == 0 {
			if row, ok := rows[curOver.bowlerID]; ok {
				row.Maidens++
			}
		}
		curOver = overRun{}
	}

	for _, b := range log.ForInnings(innings) {
		if b.Kind.IsMeta() {
			continue
		}
		row, ok := rows[b.BowlerID]
		if !ok {
			continue
		}

		charged := 0
		if b.Extra != event.ExtraBye && b.Extra != event.ExtraLegBye {
			charged = b.BatRuns + b.ExtraRuns
			if b.Extra == event.ExtraWide || b.Extra == event.ExtraNoBall {
				charged++
			}
			row.Runs += charged
		}

		if curOver.bowlerID != b.BowlerID {
			closeOver()
			curOver.bowlerID = b.BowlerID
		}
		curOver.runs += charged

		if b.Extra.Legal() {
			row.Balls++
			curOver.balls++
			if curOver.balls == 6 {
				closeOver()
			}
		}

		if b.IsWicket && b.CreditBowler {
			row.Wickets++
		}
	}

	out := make([]BowlingRow, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.Balls == 0 {
			continue
		}
		row.Overs = match.OverString(row.Balls)
		row.Economy = round2(float64(row.Runs) / (float64(row.Balls) / 6))
		out = append(out, *row)
	}
	return out
}

// BuildBowlingCardFromState builds the card for the state's live innings.
func BuildBowlingCardFromState(state match.State, squad []roster.Player) []BowlingRow {
	return BuildBowlingCard(state.Log, squad, state.Innings)
}

// Package scorecard derives batting and bowling card rows from the ball
// event log. Builders are pure functions recomputed on every log change;
// rows are never persisted independently of the log they came from.
package scorecard

import (
	"math"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/roster"
)

// BattingRow is one batter's line on the card.
type BattingRow struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	Out        bool    `json:"out"`
	Dismissal  string  `json:"dismissal,omitempty"`
	AtCrease   bool    `json:"at_crease"`
	StrikeRate float64 `json:"strike_rate"`
}

// BuildBattingCard builds the batting card for one innings.
//
// Balls faced count only legal deliveries: wides never reach the batter,
// and no-balls are excluded identically to wides. The no-ball exclusion is
// a fixed convention of this system (most real-world scoring counts
// no-balls as balls faced); tests pin it.
//
// Players who never faced a ball, were never dismissed, and are not at the
// crease are silently dropped from the output.
func BuildBattingCard(log event.Log, squad []roster.Player, innings int, strikerID, nonStrikerID string) []BattingRow {
	rows := make(map[string]*BattingRow, len(squad))
	order := make([]string, 0, len(squad))
	for _, p := range squad {
		rows[p.ID] = &BattingRow{
			PlayerID: p.ID,
			Name:     p.Name,
			AtCrease: p.ID == strikerID || p.ID == nonStrikerID,
		}
		order = append(order, p.ID)
	}

	for _, b := range log.ForInnings(innings) {
		if b.Kind.IsMeta() {
			continue
		}
		if row, ok := rows[b.StrikerID]; ok && b.Extra != event.ExtraWide {
			row.Runs += b.BatRuns
			if b.BatRuns == 4 {
				row.Fours++
			}
			if b.BatRuns == 6 {
				row.Sixes++
			}
			if b.Extra.Legal() {
				row.Balls++
			}
		}
		if b.IsWicket && b.OutPlayerID != "" {
			if row, ok := rows[b.OutPlayerID]; ok {
				row.Out = true
				row.Dismissal = b.Commentary
				if row.Dismissal == "" {
					row.Dismissal = "Out"
				}
			}
		}
	}

	out := make([]BattingRow, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.Balls == 0 && !row.Out && !row.AtCrease {
			continue
		}
		if row.Balls > 0 {
			row.StrikeRate = round1(float64(row.Runs) / float64(row.Balls) * 100)
		}
		out = append(out, *row)
	}
	return out
}

// BuildBattingCardFromState builds the card for the state's live innings.
func BuildBattingCardFromState(state match.State, squad []roster.Player) []BattingRow {
	return BuildBattingCard(state.Log, squad, state.Innings, state.StrikerID, state.NonStrikerID)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

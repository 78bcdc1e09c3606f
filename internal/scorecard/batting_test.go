package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/roster"
)

var battingSquad = []roster.Player{
	{ID: "a1", Name: "R. Mehta"},
	{ID: "a2", Name: "S. Okafor"},
	{ID: "a3", Name: "T. Walsh"},
}

// chronological builds a newest-first log from oldest-first input.
func chronological(balls ...event.Ball) event.Log {
	log := event.Log{}
	for i, b := range balls {
		if b.Kind == "" {
			b.Kind = event.KindDelivery
		}
		if b.Innings == 0 {
			b.Innings = 1
		}
		b.Seq = int64(i + 1)
		log = log.Prepend(b)
	}
	return log
}

func TestBuildBattingCard_RunsBoundariesAndStrikeRate(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", BatRuns: 4},
		event.Ball{StrikerID: "a1", BatRuns: 6},
		event.Ball{StrikerID: "a1", BatRuns: 1},
		event.Ball{StrikerID: "a2", BatRuns: 0},
	)

	rows := BuildBattingCard(log, battingSquad, 1, "a2", "a1")
	require.Len(t, rows, 2)

	a1 := rows[0]
	assert.Equal(t, 11, a1.Runs)
	assert.Equal(t, 3, a1.Balls)
	assert.Equal(t, 1, a1.Fours)
	assert.Equal(t, 1, a1.Sixes)
	assert.InDelta(t, 366.7, a1.StrikeRate, 0.001)
	assert.True(t, a1.AtCrease)

	a2 := rows[1]
	assert.Equal(t, 0, a2.Runs)
	assert.Equal(t, 1, a2.Balls)
	assert.Equal(t, float64(0), a2.StrikeRate)
}

func TestBuildBattingCard_WideNeverReachesBatter(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", Extra: event.ExtraWide, ExtraRuns: 3},
	)

	rows := BuildBattingCard(log, battingSquad, 1, "a1", "a2")
	require.Len(t, rows, 2, "crease pair appears even without a ball faced")
	assert.Equal(t, 0, rows[0].Runs)
	assert.Equal(t, 0, rows[0].Balls)
}

func TestBuildBattingCard_NoBallRunsCountBallDoesNot(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", Extra: event.ExtraNoBall, BatRuns: 4, ExtraRuns: 0},
	)

	rows := BuildBattingCard(log, battingSquad, 1, "a1", "a2")
	a1 := rows[0]
	assert.Equal(t, 4, a1.Runs, "runs off the bat on a no-ball stay with the batter")
	assert.Equal(t, 1, a1.Fours)
	assert.Equal(t, 0, a1.Balls, "no-balls are not balls faced")
}

func TestBuildBattingCard_ByesNotCredited(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", Extra: event.ExtraBye, ExtraRuns: 4},
	)

	a1 := BuildBattingCard(log, battingSquad, 1, "a1", "a2")[0]
	assert.Equal(t, 0, a1.Runs)
	assert.Equal(t, 0, a1.Fours)
	assert.Equal(t, 1, a1.Balls, "a bye is still a legal ball faced")
}

func TestBuildBattingCard_DismissalMarking(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", BatRuns: 2},
		event.Ball{
			StrikerID:    "a1",
			IsWicket:     true,
			Wicket:       event.WicketCaught,
			CreditBowler: true,
			OutPlayerID:  "a1",
			Commentary:   "WICKET! Caught",
		},
	)

	rows := BuildBattingCard(log, battingSquad, 1, "", "a2")
	require.Len(t, rows, 2)
	a1 := rows[0]
	assert.True(t, a1.Out)
	assert.Equal(t, "WICKET! Caught", a1.Dismissal)
	assert.False(t, a1.AtCrease)
}

func TestBuildBattingCard_DropsIdlePlayers(t *testing.T) {
	log := chronological(event.Ball{StrikerID: "a1", BatRuns: 1})

	rows := BuildBattingCard(log, battingSquad, 1, "a2", "a1")
	for _, r := range rows {
		assert.NotEqual(t, "a3", r.PlayerID)
	}
}

func TestBuildBattingCard_FiltersInnings(t *testing.T) {
	log := chronological(
		event.Ball{StrikerID: "a1", BatRuns: 4, Innings: 1},
		event.Ball{StrikerID: "a1", BatRuns: 6, Innings: 2},
	)

	rows := BuildBattingCard(log, battingSquad, 2, "a1", "a2")
	assert.Equal(t, 6, rows[0].Runs)
}

func TestBuildBattingCardFromState(t *testing.T) {
	state := match.State{
		Innings:      1,
		StrikerID:    "a1",
		NonStrikerID: "a2",
		Log:          chronological(event.Ball{StrikerID: "a1", BatRuns: 1}),
	}
	rows := BuildBattingCardFromState(state, battingSquad)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Runs)
}

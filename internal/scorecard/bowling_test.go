package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/roster"
)

var bowlingSquad = []roster.Player{
	{ID: "k1", Name: "L. Brandt"},
	{ID: "k2", Name: "M. Osei"},
}

func TestBuildBowlingCard_RunsWicketsEconomy(t *testing.T) {
	log := chronological(
		event.Ball{BowlerID: "k1", StrikerID: "a1", BatRuns: 4},
		event.Ball{BowlerID: "k1", StrikerID: "a1", BatRuns: 0},
		event.Ball{BowlerID: "k1", StrikerID: "a1", IsWicket: true, Wicket: event.WicketBowled, CreditBowler: true, OutPlayerID: "a1"},
	)

	rows := BuildBowlingCard(log, bowlingSquad, 1)
	require.Len(t, rows, 1)
	k1 := rows[0]
	assert.Equal(t, 3, k1.Balls)
	assert.Equal(t, "0.3", k1.Overs)
	assert.Equal(t, 4, k1.Runs)
	assert.Equal(t, 1, k1.Wickets)
	assert.InDelta(t, 8.0, k1.Economy, 0.001)
}

func TestBuildBowlingCard_WidePenaltyChargedHere(t *testing.T) {
	// Five wide: four ran plus the one-run penalty the card adds itself.
	log := chronological(
		event.Ball{BowlerID: "k1", Extra: event.ExtraWide, ExtraRuns: 4},
		event.Ball{BowlerID: "k1", BatRuns: 0},
	)

	k1 := BuildBowlingCard(log, bowlingSquad, 1)[0]
	assert.Equal(t, 5, k1.Runs)
	assert.Equal(t, 1, k1.Balls, "the wide does not count toward the over")
}

func TestBuildBowlingCard_NoBallPenaltyAndBatRuns(t *testing.T) {
	log := chronological(
		event.Ball{BowlerID: "k1", Extra: event.ExtraNoBall, BatRuns: 4},
		event.Ball{BowlerID: "k1", BatRuns: 0},
	)

	k1 := BuildBowlingCard(log, bowlingSquad, 1)[0]
	assert.Equal(t, 5, k1.Runs, "four off the bat plus the no-ball penalty")
	assert.Equal(t, 1, k1.Balls)
}

func TestBuildBowlingCard_ByesNotCharged(t *testing.T) {
	log := chronological(
		event.Ball{BowlerID: "k1", Extra: event.ExtraBye, ExtraRuns: 4},
		event.Ball{BowlerID: "k1", Extra: event.ExtraLegBye, ExtraRuns: 2},
	)

	k1 := BuildBowlingCard(log, bowlingSquad, 1)[0]
	assert.Equal(t, 0, k1.Runs)
	assert.Equal(t, 2, k1.Balls)
	assert.Equal(t, float64(0), k1.Economy)
}

func TestBuildBowlingCard_RunOutNotCredited(t *testing.T) {
	log := chronological(
		event.Ball{BowlerID: "k1", BatRuns: 1, IsWicket: true, Wicket: event.WicketRunOut, CreditBowler: false, OutPlayerID: "a1"},
	)

	k1 := BuildBowlingCard(log, bowlingSquad, 1)[0]
	assert.Equal(t, 0, k1.Wickets)
}

func TestBuildBowlingCard_MaidenOver(t *testing.T) {
	balls := make([]event.Ball, 0, 8)
	for i := 0; i < 6; i++ {
		balls = append(balls, event.Ball{BowlerID: "k1", BatRuns: 0})
	}
	balls = append(balls,
		event.Ball{BowlerID: "k2", BatRuns: 1},
		event.Ball{BowlerID: "k2", BatRuns: 0},
	)
	rows := BuildBowlingCard(chronological(balls...), bowlingSquad, 1)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Maidens)
	assert.Equal(t, 0, rows[1].Maidens)
}

func TestBuildBowlingCard_ByesDoNotSpoilMaiden(t *testing.T) {
	balls := make([]event.Ball, 0, 6)
	for i := 0; i < 5; i++ {
		balls = append(balls, event.Ball{BowlerID: "k1", BatRuns: 0})
	}
	balls = append(balls, event.Ball{BowlerID: "k1", Extra: event.ExtraBye, ExtraRuns: 2})

	k1 := BuildBowlingCard(chronological(balls...), bowlingSquad, 1)[0]
	assert.Equal(t, 1, k1.Maidens, "byes are not charged to the bowler")
}

func TestBuildBowlingCard_WideSpoilsMaiden(t *testing.T) {
	balls := make([]event.Ball, 0, 7)
	for i := 0; i < 3; i++ {
		balls = append(balls, event.Ball{BowlerID: "k1", BatRuns: 0})
	}
	balls = append(balls, event.Ball{BowlerID: "k1", Extra: event.ExtraWide})
	for i := 0; i < 3; i++ {
		balls = append(balls, event.Ball{BowlerID: "k1", BatRuns: 0})
	}

	k1 := BuildBowlingCard(chronological(balls...), bowlingSquad, 1)[0]
	assert.Equal(t, 0, k1.Maidens)
	assert.Equal(t, 1, k1.Runs)
}

func TestBuildBowlingCard_DropsBowlersWithNoBalls(t *testing.T) {
	log := chronological(event.Ball{BowlerID: "k1", BatRuns: 0})
	rows := BuildBowlingCard(log, bowlingSquad, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "k1", rows[0].PlayerID)
}

package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowsc/willow/internal/event"
)

var setupNow = time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

func TestNew_TossWinnerBats(t *testing.T) {
	s := New(Setup{
		MatchID:      "m1",
		Format:       "T20",
		TeamAID:      "avr",
		TeamBID:      "knc",
		TossWinnerID: "knc",
		TossDecision: DecisionBat,
	}, setupNow)

	assert.Equal(t, "knc", s.BattingTeamID)
	assert.Equal(t, "avr", s.BowlingTeamID)
	assert.Equal(t, 1, s.Innings)
	assert.Equal(t, "T20", s.Format)
	assert.Equal(t, "knc", s.TossWinnerID)
	assert.Empty(t, s.Log)
}

func TestNew_TossWinnerBowls(t *testing.T) {
	s := New(Setup{
		MatchID:      "m1",
		TeamAID:      "avr",
		TeamBID:      "knc",
		TossWinnerID: "knc",
		TossDecision: DecisionBowl,
	}, setupNow)

	assert.Equal(t, "avr", s.BattingTeamID)
	assert.Equal(t, "knc", s.BowlingTeamID)
}

func TestNew_DefaultsTossWinnerToTeamA(t *testing.T) {
	s := New(Setup{
		MatchID:      "m1",
		TeamAID:      "avr",
		TeamBID:      "knc",
		TossDecision: DecisionBat,
	}, setupNow)

	assert.Equal(t, "avr", s.TossWinnerID)
	assert.Equal(t, "avr", s.BattingTeamID)
}

func TestNew_RecordsMatchStartedMarkerWhenOpenersKnown(t *testing.T) {
	s := New(Setup{
		MatchID:      "m1",
		TeamAID:      "avr",
		TeamBID:      "knc",
		TossDecision: DecisionBat,
		StrikerID:    "a1",
		NonStrikerID: "a2",
		BowlerID:     "k1",
	}, setupNow)

	require.Len(t, s.Log, 1)
	marker := s.Log[0]
	assert.Equal(t, event.KindMatchStarted, marker.Kind)
	assert.Equal(t, setupNow, marker.Timestamp)
	assert.Equal(t, "a1", marker.StrikerID)
	assert.Equal(t, "a2", marker.NonStrikerID)
	assert.Equal(t, "k1", marker.BowlerID)
	assert.Equal(t, 1, marker.Innings)

	assert.Equal(t, "a1", s.StrikerID)
	assert.Equal(t, "a2", s.NonStrikerID)
	assert.Equal(t, "k1", s.BowlerID)
}

func TestNew_NoMarkerWhenOpenersPartial(t *testing.T) {
	s := New(Setup{
		MatchID:      "m1",
		TeamAID:      "avr",
		TeamBID:      "knc",
		TossDecision: DecisionBat,
		StrikerID:    "a1",
	}, setupNow)

	assert.Empty(t, s.Log)
	assert.Equal(t, "a1", s.StrikerID)
}

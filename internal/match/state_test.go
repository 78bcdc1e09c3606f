package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowsc/willow/internal/event"
)

func TestClone_DeepCopiesLogAndArchive(t *testing.T) {
	original := State{
		MatchID: "m1",
		Score:   42,
		Innings: 1,
		Log: event.Log{
			{Kind: event.KindDelivery, Seq: 2, Runs: 4, BatRuns: 4},
			{Kind: event.KindDelivery, Seq: 1, Runs: 1, BatRuns: 1},
		},
		InningsScores: []InningsScore{
			{Innings: 1, TeamID: "avr", Score: 42, Wickets: 3, Overs: "8.2"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Log[0].Runs = 6
	clone.InningsScores[0].Score = 99
	clone.Score = 0

	assert.Equal(t, 4, original.Log[0].Runs)
	assert.Equal(t, 42, original.InningsScores[0].Score)
	assert.Equal(t, 42, original.Score)
}

func TestClone_EmptyCollections(t *testing.T) {
	clone := State{MatchID: "m1"}.Clone()

	assert.NotNil(t, clone.Log)
	assert.NotNil(t, clone.InningsScores)
	assert.Empty(t, clone.Log)
}

func TestOverString(t *testing.T) {
	tests := []struct {
		balls int
		want  string
	}{
		{0, "0.0"},
		{1, "0.1"},
		{5, "0.5"},
		{6, "1.0"},
		{13, "2.1"},
		{120, "20.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OverString(tt.balls), "balls=%d", tt.balls)
	}
}

func TestOversString_UsesTotalBalls(t *testing.T) {
	s := State{TotalBalls: 27}
	assert.Equal(t, "4.3", s.OversString())
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willowsc/willow/internal/match"
)

func TestRunRate(t *testing.T) {
	assert.Equal(t, float64(0), RunRate(0, 0))
	assert.InDelta(t, 6.0, RunRate(6, 6), 0.001)
	assert.InDelta(t, 9.33, RunRate(14, 9), 0.001)
}

func TestRequiredRate(t *testing.T) {
	assert.InDelta(t, 10.0, RequiredRate(100, 50, 30), 0.001)
	assert.Equal(t, float64(0), RequiredRate(100, 100, 30), "target already reached")
	assert.Equal(t, float64(0), RequiredRate(100, 50, 0), "no balls left")
}

func TestStrikeRate(t *testing.T) {
	assert.Equal(t, float64(0), StrikeRate(10, 0))
	assert.InDelta(t, 100.0, StrikeRate(6, 6), 0.001)
	assert.InDelta(t, 133.3, StrikeRate(4, 3), 0.001)
}

func TestCompute_FirstInnings(t *testing.T) {
	state := match.State{
		Innings:    1,
		Score:      45,
		TotalBalls: 30,
	}
	s := Compute(state, 20)

	assert.Equal(t, "5.0", s.Overs)
	assert.InDelta(t, 9.0, s.RunRate, 0.001)
	assert.Equal(t, 90, s.BallsLeft)
	assert.Equal(t, 0, s.RunsNeeded)
	assert.Equal(t, float64(0), s.RequiredRate)
}

func TestCompute_ChaseArithmetic(t *testing.T) {
	state := match.State{
		Innings:    2,
		Score:      80,
		TotalBalls: 60,
		Target:     161,
	}
	s := Compute(state, 20)

	assert.Equal(t, 161, s.Target)
	assert.Equal(t, 81, s.RunsNeeded)
	assert.Equal(t, 60, s.BallsLeft)
	assert.InDelta(t, 8.1, s.RequiredRate, 0.001)
}

func TestCompute_ChaseAlreadyWon(t *testing.T) {
	state := match.State{Innings: 2, Score: 161, TotalBalls: 100, Target: 161}
	s := Compute(state, 20)
	assert.Equal(t, 0, s.RunsNeeded)
	assert.Equal(t, float64(0), s.RequiredRate)
}

func TestCompute_BallsLeftNeverNegative(t *testing.T) {
	state := match.State{Innings: 1, TotalBalls: 125}
	assert.Equal(t, 0, Compute(state, 20).BallsLeft)
}

// Package stats computes derived numeric statistics from match state and
// the event log: run rates, required rates, and the advisory over-rate
// timer. Everything here is read-only over a snapshot; nothing writes
// match state.
package stats

import (
	"math"

	"github.com/willowsc/willow/internal/match"
)

// Summary bundles the headline numbers shown alongside the score.
type Summary struct {
	Overs        string  `json:"overs"`
	RunRate      float64 `json:"run_rate"`
	RequiredRate float64 `json:"required_rate"`
	Target       int     `json:"target,omitempty"`
	RunsNeeded   int     `json:"runs_needed,omitempty"`
	BallsLeft    int     `json:"balls_left"`
}

// Compute derives the summary for the current innings.
func Compute(state match.State, totalOversAllowed int) Summary {
	s := Summary{
		Overs:   state.OversString(),
		RunRate: RunRate(state.Score, state.TotalBalls),
		Target:  state.Target,
	}
	ballsLeft := totalOversAllowed*6 - state.TotalBalls
	if ballsLeft < 0 {
		ballsLeft = 0
	}
	s.BallsLeft = ballsLeft

	if state.Innings == 2 && state.Target > 0 {
		needed := state.Target - state.Score
		if needed < 0 {
			needed = 0
		}
		s.RunsNeeded = needed
		s.RequiredRate = RequiredRate(state.Target, state.Score, ballsLeft)
	}
	return s
}

// RunRate is runs per over: score / (balls/6). Zero when no balls bowled.
func RunRate(score, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return round2(float64(score) / (float64(balls) / 6))
}

// RequiredRate is the runs-per-over pace the chasing side needs. Guarded:
// zero when no balls remain (the chase is decided either way by then).
func RequiredRate(target, score, ballsLeft int) float64 {
	if ballsLeft <= 0 {
		return 0
	}
	needed := target - score
	if needed <= 0 {
		return 0
	}
	return round2(float64(needed) / (float64(ballsLeft) / 6))
}

// StrikeRate is runs per hundred balls, one decimal, zero on no balls.
func StrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return math.Round(float64(runs)/float64(balls)*1000) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package stats

import (
	"math"
	"time"

	"github.com/willowsc/willow/internal/match"
)

// OverRate is the advisory over-rate reading: how many overs have actually
// been bowled against the elapsed-time-proportional expectation. It never
// blocks scoring; consumers decide what a warning looks like.
type OverRate struct {
	Elapsed       time.Duration `json:"elapsed"`
	ActualOvers   float64       `json:"actual_overs"`
	ExpectedOvers float64       `json:"expected_overs"`
	BehindRate    bool          `json:"behind_rate"`
}

// OverRatePace computes the over-rate reading at the given instant.
//
// Elapsed time runs from the innings clock start, minus accumulated pause
// allowances (and the currently open pause, if any). Expected overs are
// elapsed divided by the format's seconds-per-over pace; the behind flag
// raises once actual overs trail the expectation.
func OverRatePace(timer match.Timer, totalBalls int, secondsPerOver int, now time.Time) OverRate {
	if timer.StartTime.IsZero() || secondsPerOver <= 0 {
		return OverRate{}
	}

	elapsed := now.Sub(timer.StartTime) - timer.Allowances
	if timer.Paused && !timer.PausedAt.IsZero() {
		elapsed -= now.Sub(timer.PausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	actual := float64(totalBalls) / 6
	expected := elapsed.Seconds() / float64(secondsPerOver)

	return OverRate{
		Elapsed:       elapsed,
		ActualOvers:   round1(actual),
		ExpectedOvers: round1(expected),
		BehindRate:    actual < expected,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Package rules holds the format-driven match policy: over allocations,
// per-bowler caps, and who may legally bowl the next over. Policy reads
// state; it never mutates it.
package rules

import (
	"github.com/willowsc/willow/internal/match"
)

// Rules binds a format to one match, with an optional per-match override
// of the over allocation.
type Rules struct {
	Format      Format
	CustomOvers int
}

// TotalOversAllowed is the innings over allocation, honoring a custom
// override and subtracting overs lost to weather.
func (r Rules) TotalOversAllowed(state match.State) int {
	overs := r.Format.Overs
	if r.CustomOvers > 0 {
		overs = r.CustomOvers
	}
	overs -= state.Adjustments.OversLost
	if overs < 0 {
		overs = 0
	}
	return overs
}

// BowlerAvailability reports whether a bowler may bowl the next over.
type BowlerAvailability struct {
	BowlerID    string `json:"bowler_id"`
	BallsBowled int    `json:"balls_bowled"`
	Overs       string `json:"overs"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason,omitempty"`
}

// BowlerAvailability evaluates the next-over legality for one bowler:
// the per-bowler cap must not be exhausted, and nobody bowls consecutive
// overs. Mid-over availability (injury replacement) is not gated here.
func (r Rules) BowlerAvailability(state match.State, bowlerID string) BowlerAvailability {
	balls := legalBallsBowled(state, bowlerID)
	a := BowlerAvailability{
		BowlerID:    bowlerID,
		BallsBowled: balls,
		Overs:       match.OverString(balls),
		Available:   true,
	}

	if cap := r.Format.OversPerBowler; cap > 0 && balls >= cap*6 {
		a.Available = false
		a.Reason = "over allocation used"
		return a
	}

	// At an over boundary the previous over's bowler must change ends.
	if state.TotalBalls > 0 && state.TotalBalls%6 == 0 {
		if last, ok := state.Log.LastDelivery(); ok && last.BowlerID == bowlerID {
			a.Available = false
			a.Reason = "bowled the previous over"
		}
	}
	return a
}

func legalBallsBowled(state match.State, bowlerID string) int {
	n := 0
	for _, b := range state.Log.Deliveries(state.Innings) {
		if b.BowlerID == bowlerID && b.Extra.Legal() {
			n++
		}
	}
	return n
}

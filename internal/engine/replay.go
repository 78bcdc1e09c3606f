package engine

import (
	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// ReplayInnings rebuilds the current innings' counters by folding its
// events through ApplyDelivery from a cleared base. The log is the truth;
// score, wickets, ball count and crease slots come out derived. Events
// from earlier innings are carried through untouched.
//
// Used when resuming a persisted match: the in-memory undo stack does not
// survive a restart, so a rewind drops log entries and replays the rest.
func ReplayInnings(state match.State) match.State {
	base := state.Clone()
	full := base.Log

	base.Score = 0
	base.Wickets = 0
	base.TotalBalls = 0
	base.StrikerID = ""
	base.NonStrikerID = ""
	base.BowlerID = ""
	// Derived from the declaration event; a surviving one re-sets it.
	base.Adjustments.Declared = false
	base.Log = event.Log{}

	for _, ball := range full.ForInnings(base.Innings) {
		base = ApplyDelivery(base, ball)
	}

	base.Log = full
	return base
}

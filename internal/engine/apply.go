package engine

import (
	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// ApplyDelivery applies one ball or meta-event to a match state and returns
// the next state. Pure and total: the input state is never mutated, and no
// input is rejected. Validation of player ids and filled slots is the
// caller's responsibility.
//
// Missing event fields are back-filled from the current state: striker,
// non-striker and bowler ids default to the current occupants, the innings
// number to the current innings, and the over/ball indices are derived from
// the legal-ball count. Meta-events use the same back-fill so that a
// player-change event only needs to carry the one id it changes.
//
// INVARIANTS:
//   - Runs on the returned event always equal BatRuns + ExtraRuns.
//   - Only deliveries whose extra is neither Wide nor NoBall advance
//     TotalBalls; wides and no-balls are replayed within the over.
//   - Meta-events never change score or ball count (a Retired Out
//     retirement is the one meta-event that adds a wicket).
//   - The new event is prepended to the log (log order: newest-first).
func ApplyDelivery(cur match.State, ball event.Ball) match.State {
	next := cur.Clone()
	ball = backfill(cur, ball)

	if ball.Kind.IsMeta() {
		return applyMeta(next, ball)
	}

	// Runs accounting. BatRuns stay with the striker (credited in the
	// batting card unless the ball was a wide); ExtraRuns always go to
	// the team. The wide/no-ball +1 penalty is bowler-only bookkeeping
	// applied in the bowling-card builder, never here; ExtraRuns
	// already reflects everything the team actually scored.
	ball.Runs = ball.BatRuns + ball.ExtraRuns
	next.Score += ball.Runs

	legal := ball.Extra.Legal()
	if legal {
		next.TotalBalls++
	}

	// Strike rotation. Odd runs off the bat rotate strike, as do byes and
	// leg-byes with an odd run count. At an over boundary the batters
	// change ends exactly once, regardless of the last ball's parity.
	rotation := ball.BatRuns
	if ball.Extra == event.ExtraBye || ball.Extra == event.ExtraLegBye {
		rotation = ball.ExtraRuns
	}
	switch {
	case legal && next.TotalBalls%6 == 0:
		next.StrikerID, next.NonStrikerID = next.NonStrikerID, next.StrikerID
	case rotation%2 == 1:
		next.StrikerID, next.NonStrikerID = next.NonStrikerID, next.StrikerID
	}

	if ball.IsWicket {
		next.Wickets++
		clearDismissedSlot(&next, ball.OutPlayerID, ball.StrikerID)
	}

	// The innings clock starts with the first delivery.
	if next.Timer.StartTime.IsZero() {
		next.Timer.StartTime = ball.Timestamp
	}

	next.Log = next.Log.Prepend(ball)
	return next
}

// backfill fills missing event fields from the current state.
func backfill(cur match.State, ball event.Ball) event.Ball {
	if ball.Innings == 0 {
		ball.Innings = cur.Innings
	}
	if ball.StrikerID == "" {
		ball.StrikerID = cur.StrikerID
	}
	if ball.NonStrikerID == "" {
		ball.NonStrikerID = cur.NonStrikerID
	}
	if ball.BowlerID == "" {
		ball.BowlerID = cur.BowlerID
	}
	if ball.Extra == "" {
		ball.Extra = event.ExtraNone
	}
	ball.Over = cur.TotalBalls / 6
	if ball.Kind.IsMeta() {
		ball.BallInOver = cur.TotalBalls % 6
	} else {
		ball.BallInOver = cur.TotalBalls%6 + 1
	}
	return ball
}

// applyMeta applies a zero-effect marker: the crease pointers move, the
// score and ball count do not.
func applyMeta(next match.State, ball event.Ball) match.State {
	ball.Runs = 0
	ball.BatRuns = 0
	ball.ExtraRuns = 0
	ball.Extra = event.ExtraNone

	switch ball.Kind {
	case event.KindMatchStarted, event.KindPlayerChange:
		next.StrikerID = ball.StrikerID
		next.NonStrikerID = ball.NonStrikerID
		next.BowlerID = ball.BowlerID

	case event.KindBowlerReplacement:
		next.BowlerID = ball.BowlerID

	case event.KindRetirement:
		// Retired Out counts as a wicket; Retired Hurt only vacates
		// the slot so a replacement can be prompted for.
		if ball.IsWicket {
			next.Wickets++
		}
		clearDismissedSlot(&next, ball.OutPlayerID, "")

	case event.KindDeclaration:
		next.Adjustments.Declared = true
	}

	next.Log = next.Log.Prepend(ball)
	return next
}

// clearDismissedSlot vacates whichever crease slot the dismissed player
// occupies so the surrounding controller can prompt for a replacement.
// An empty out id falls back to the striker (the common case for bowled,
// caught, LBW).
func clearDismissedSlot(s *match.State, outID, fallback string) {
	if outID == "" {
		outID = fallback
	}
	switch outID {
	case s.StrikerID:
		s.StrikerID = ""
	case s.NonStrikerID:
		s.NonStrikerID = ""
	}
}

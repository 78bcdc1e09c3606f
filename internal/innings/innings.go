// Package innings decides whether the current innings must end.
package innings

import "github.com/willowsc/willow/internal/match"

// EndReason enumerates why an innings ends. The empty value means the
// innings continues. These are reported conditions, not errors: the
// checker is the sole authority for whether the controller should prompt
// an innings transition, and it must be re-evaluated after every ball.
type EndReason string

const (
	// EndReasonNone means no end condition holds.
	EndReasonNone EndReason = ""
	// EndReasonAllOut means the batting side has no pair left.
	EndReasonAllOut EndReason = "All Out"
	// EndReasonOversCompleted means the format's over allocation is used.
	EndReasonOversCompleted EndReason = "Overs Completed"
	// EndReasonTargetChased means the chasing side reached the target.
	EndReasonTargetChased EndReason = "Target Chased"
	// EndReasonDeclared means the batting captain declared.
	EndReasonDeclared EndReason = "Declared"
)

// defaultPlayers is assumed when the squad size is unknown.
const defaultPlayers = 11

// Check evaluates the end-of-innings conditions in priority order and
// returns the first that holds. Stateless predicate over the snapshot.
//
// Order matters: an explicit declaration wins over a simultaneous wicket
// or over limit, and the chase check runs last because it only applies to
// the second innings. A reached target still ends the innings the instant
// it happens, with no over-completion required.
func Check(state match.State, totalOversAllowed, battingTeamPlayers int, allowFlexibleSquad bool) EndReason {
	if state.Adjustments.Declared {
		return EndReasonDeclared
	}

	players := battingTeamPlayers
	if players <= 0 {
		players = defaultPlayers
	}

	// You need a pair to bat, so at most players-1 wickets can fall.
	// Standard rules cap the limit at 10 even for oversized squads;
	// flexible squads play until everyone has batted.
	maxWickets := players - 1
	if maxWickets < 0 {
		maxWickets = 0
	}
	limit := maxWickets
	if !allowFlexibleSquad && limit > 10 {
		limit = 10
	}
	if state.Wickets >= limit {
		return EndReasonAllOut
	}

	if state.TotalBalls >= totalOversAllowed*6 {
		return EndReasonOversCompleted
	}

	if state.Innings == 2 && state.Target > 0 && state.Score >= state.Target {
		return EndReasonTargetChased
	}

	return EndReasonNone
}

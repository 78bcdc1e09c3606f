// Package engine implements the willow match engine: the pure delivery
// application function and the stateful controller that sequences it.
package engine

import (
	"log/slog"
	"time"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// Role identifies a crease slot for identity correction and replacement.
type Role string

const (
	RoleStriker    Role = "striker"
	RoleNonStriker Role = "non_striker"
	RoleBowler     Role = "bowler"
)

// Wicket is the transient input describing a dismissal. The controller
// translates it into a zero-run delivery event; it is never stored as-is.
type Wicket struct {
	Type      event.WicketType
	BatterID  string
	BowlerID  string // optional; back-filled from state when empty
	FielderID string // optional
}

// Engine owns the live match state and its undo stack, and sequences all
// mutations through ApplyDelivery.
//
// Single-owner, single-threaded: exactly one event is applied at a time,
// always initiated by an explicit call. State transitions are strictly
// serialized by call order; the undo stack records one snapshot per
// mutating call, LIFO, unbounded for the session, no redo.
type Engine struct {
	state match.State
	undo  []match.State
	clock *Clock
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNowFunc overrides the wall-clock source. Tests use a deterministic
// clock so timestamps and over-rate figures are reproducible.
func WithNowFunc(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithClock seeds the logical clock, used when resuming a persisted match
// so new events continue the existing seq range.
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New creates an Engine owning the given initial state.
func New(initial match.State, opts ...Option) *Engine {
	e := &Engine{
		state: initial,
		clock: NewClock(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	// Resume the seq range when the initial state already has a log.
	if len(initial.Log) > 0 && e.clock.Current() < initial.Log[0].Seq {
		e.clock = NewClockAt(initial.Log[0].Seq)
	}
	return e
}

// State returns a snapshot of the current state. The snapshot is a deep
// copy: consumers can hold it across further scoring without seeing
// subsequent mutations.
func (e *Engine) State() match.State {
	return e.state.Clone()
}

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool {
	return len(e.undo) > 0
}

// UndoDepth returns the number of snapshots on the undo stack.
func (e *Engine) UndoDepth() int {
	return len(e.undo)
}

// ApplyBall pushes the current state onto the undo stack and replaces it
// with the result of applying the ball.
func (e *Engine) ApplyBall(ball event.Ball) {
	if ball.Kind == "" {
		ball.Kind = event.KindDelivery
	}
	if ball.Timestamp.IsZero() {
		ball.Timestamp = e.now()
	}
	ball.Seq = e.clock.Next()

	e.push()
	e.state = ApplyDelivery(e.state, ball)

	slog.Debug("ball applied",
		"match_id", e.state.MatchID,
		"kind", ball.Kind,
		"seq", ball.Seq,
		"score", e.state.Score,
		"wickets", e.state.Wickets,
		"balls", e.state.TotalBalls,
	)
}

// RecordWicket translates a dismissal into a zero-run wicket delivery and
// routes it through ApplyBall. Bowler credit follows the dismissal type:
// run outs and retirements never reach the bowler's column.
func (e *Engine) RecordWicket(w Wicket) {
	if w.BatterID == "" {
		w.BatterID = e.state.StrikerID
	}
	e.ApplyBall(event.Ball{
		Kind:         event.KindDelivery,
		Extra:        event.ExtraNone,
		IsWicket:     true,
		Wicket:       w.Type,
		CreditBowler: w.Type.CreditsBowler(),
		OutPlayerID:  w.BatterID,
		BowlerID:     w.BowlerID,
		FielderID:    w.FielderID,
		Commentary:   "WICKET! " + string(w.Type),
	})
}

// UndoBall pops the most recent snapshot and restores it verbatim.
// A no-op on an empty stack, never an error. There is no redo.
func (e *Engine) UndoBall() bool {
	if len(e.undo) == 0 {
		return false
	}
	e.state = e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	return true
}

// CorrectPlayerIdentity retroactively rewrites every occurrence of oldID
// in the given role: the current crease pointer, the entire event log, and
// any out-player match. Recorded runs, wickets, and ball counts are left
// untouched. Used to fix a scorer's mis-identification. The correction
// is a single undoable step.
func (e *Engine) CorrectPlayerIdentity(oldID, newID string, role Role) {
	e.push()
	next := e.state.Clone()

	switch role {
	case RoleStriker:
		if next.StrikerID == oldID {
			next.StrikerID = newID
		}
	case RoleNonStriker:
		if next.NonStrikerID == oldID {
			next.NonStrikerID = newID
		}
	case RoleBowler:
		if next.BowlerID == oldID {
			next.BowlerID = newID
		}
	}

	for i := range next.Log {
		b := &next.Log[i]
		switch role {
		case RoleStriker:
			if b.StrikerID == oldID {
				b.StrikerID = newID
			}
		case RoleNonStriker:
			if b.NonStrikerID == oldID {
				b.NonStrikerID = newID
			}
		case RoleBowler:
			if b.BowlerID == oldID {
				b.BowlerID = newID
			}
		}
		if b.OutPlayerID == oldID {
			b.OutPlayerID = newID
		}
	}

	e.state = next
	slog.Info("player identity corrected",
		"match_id", e.state.MatchID,
		"role", role,
		"old_id", oldID,
		"new_id", newID,
	)
}

// RetireBatter emits a retirement meta-event. Retired Out counts as a
// wicket; Retired Hurt only vacates the slot so a replacement can come in.
func (e *Engine) RetireBatter(playerID string, reason event.WicketType) {
	e.ApplyBall(event.Ball{
		Kind:         event.KindRetirement,
		IsWicket:     reason == event.WicketRetiredOut,
		Wicket:       reason,
		CreditBowler: false,
		OutPlayerID:  playerID,
		Commentary:   string(reason),
	})
}

// SendInBatter emits a player-change meta-event filling an empty crease
// slot with the next batter.
func (e *Engine) SendInBatter(playerID string, slot Role) {
	ball := event.Ball{
		Kind:       event.KindPlayerChange,
		Commentary: "New batter",
	}
	if slot == RoleNonStriker {
		ball.NonStrikerID = playerID
	} else {
		ball.StrikerID = playerID
	}
	e.ApplyBall(ball)
}

// ChangeBowler emits a player-change meta-event for the normal end-of-over
// bowler change.
func (e *Engine) ChangeBowler(newBowlerID string) {
	e.ApplyBall(event.Ball{
		Kind:       event.KindPlayerChange,
		BowlerID:   newBowlerID,
		Commentary: "New bowler",
	})
}

// ReplaceBowlerMidOver emits a bowler-replacement meta-event changing the
// bowler without affecting the ball count, for injury substitution mid-over.
// Distinct from the end-of-over change flow.
func (e *Engine) ReplaceBowlerMidOver(newBowlerID string) {
	e.ApplyBall(event.Ball{
		Kind:       event.KindBowlerReplacement,
		BowlerID:   newBowlerID,
		Commentary: "Injury replacement (bowler)",
	})
}

// DeclareInnings marks the innings declared. The innings-end checker
// consumes the flag; nothing ends until the controller is told to.
func (e *Engine) DeclareInnings() {
	e.ApplyBall(event.Ball{
		Kind:       event.KindDeclaration,
		Commentary: "Innings declared",
	})
}

// EndInnings archives the current innings summary. It does not reset the
// live counters (StartInnings does) and does not complete the match.
// Callers must guard against double-ending; a second call without an
// intervening StartInnings duplicates the summary row.
func (e *Engine) EndInnings() {
	e.push()
	next := e.state.Clone()
	next.InningsScores = append(next.InningsScores, match.InningsScore{
		Innings: next.Innings,
		TeamID:  next.BattingTeamID,
		Score:   next.Score,
		Wickets: next.Wickets,
		Overs:   next.OversString(),
	})
	e.state = next

	slog.Info("innings ended",
		"match_id", e.state.MatchID,
		"innings", next.Innings,
		"score", next.Score,
		"wickets", next.Wickets,
		"overs", next.OversString(),
	)
}

// StartInnings begins the next innings: increments the innings number,
// resets score, wickets, balls and crease slots, sets the chase target
// (0 for none), and clears the declaration flag. Callers must EndInnings
// first; StartInnings archives nothing itself.
func (e *Engine) StartInnings(battingTeamID, bowlingTeamID string, target int) {
	e.push()
	next := e.state.Clone()
	next.Innings++
	next.BattingTeamID = battingTeamID
	next.BowlingTeamID = bowlingTeamID
	next.Score = 0
	next.Wickets = 0
	next.TotalBalls = 0
	next.StrikerID = ""
	next.NonStrikerID = ""
	next.BowlerID = ""
	next.Target = target
	next.Adjustments.Declared = false
	next.Timer = match.Timer{}
	e.state = next

	slog.Info("innings started",
		"match_id", e.state.MatchID,
		"innings", next.Innings,
		"batting_team", battingTeamID,
		"target", target,
	)
}

// CompleteMatch marks the match completed. Purely a flag for consumers;
// the engine accepts no further judgment about why.
func (e *Engine) CompleteMatch() {
	e.push()
	next := e.state.Clone()
	next.Completed = true
	e.state = next
}

// PauseClock pauses the over-rate clock (drinks, injury). Advisory only,
// not an undoable scoring action.
func (e *Engine) PauseClock() {
	if e.state.Timer.Paused || e.state.Timer.StartTime.IsZero() {
		return
	}
	e.state.Timer.Paused = true
	e.state.Timer.PausedAt = e.now()
}

// ResumeClock resumes the over-rate clock, adding the paused interval to
// the accumulated allowances.
func (e *Engine) ResumeClock() {
	if !e.state.Timer.Paused {
		return
	}
	e.state.Timer.Allowances += e.now().Sub(e.state.Timer.PausedAt)
	e.state.Timer.Paused = false
	e.state.Timer.PausedAt = time.Time{}
}

// push records the current state on the undo stack.
func (e *Engine) push() {
	e.undo = append(e.undo, e.state)
}

// Package match defines the authoritative match state snapshot.
//
// State is a denormalized cache of the ball event log: Score, Wickets, and
// TotalBalls are always exactly reproducible by replaying the filtered,
// chronological log for the current innings. The engine mutates state
// exclusively through delivery application; undo restores a prior full
// snapshot rather than subtracting an event's effect.
package match

import (
	"fmt"
	"time"

	"github.com/willowsc/willow/internal/event"
)

// Decision is the toss winner's choice.
type Decision string

const (
	DecisionBat  Decision = "Bat"
	DecisionBowl Decision = "Bowl"
)

// InningsScore is the archived summary of a completed innings.
type InningsScore struct {
	Innings int    `json:"innings"`
	TeamID  string `json:"team_id"`
	Score   int    `json:"score"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"`
}

// Adjustments holds scorer-applied corrections to the playing conditions:
// declaration, overs lost to weather, and the day/session markers used in
// multi-day formats.
type Adjustments struct {
	OversLost int    `json:"overs_lost"`
	LastHour  bool   `json:"last_hour"`
	Day       int    `json:"day"`
	Session   string `json:"session"`
	Declared  bool   `json:"declared"`
}

// Timer is the over-rate timing block. It only ever feeds the advisory
// over-rate computation; nothing in the engine reads it to make decisions.
type Timer struct {
	// StartTime is when the innings clock started; zero means not started.
	StartTime time.Time `json:"start_time"`
	// Allowances is accumulated paused time excluded from the elapsed
	// calculation (drinks breaks, injuries).
	Allowances time.Duration `json:"allowances"`
	Paused     bool          `json:"paused"`
	PausedAt   time.Time     `json:"paused_at"`
}

// State is the authoritative snapshot of a match in progress.
//
// Ownership: the engine controller exclusively owns the live State and its
// undo stack. External layers read snapshots or submit events through the
// controller's operations; they must never mutate State fields directly.
type State struct {
	MatchID string `json:"match_id"`
	// Format names the playing format in the rules catalog ("T20", "Test").
	Format string `json:"format,omitempty"`

	BattingTeamID string `json:"batting_team_id"`
	BowlingTeamID string `json:"bowling_team_id"`

	Score   int `json:"score"`
	Wickets int `json:"wickets"`
	// TotalBalls counts legal deliveries this innings. Wides and no-balls
	// do not advance it.
	TotalBalls int `json:"total_balls"`

	StrikerID    string `json:"striker_id"`
	NonStrikerID string `json:"non_striker_id"`
	BowlerID     string `json:"bowler_id"`

	// Innings number, 1 or 2.
	Innings int `json:"innings"`
	// Target is the chase target for the second innings; 0 means none.
	Target int `json:"target"`

	// Log is the full ball event log, newest-first, across both innings.
	Log event.Log `json:"log"`

	InningsScores []InningsScore `json:"innings_scores"`
	Completed     bool           `json:"completed"`

	TossWinnerID string   `json:"toss_winner_id,omitempty"`
	TossDecision Decision `json:"toss_decision,omitempty"`

	Adjustments Adjustments `json:"adjustments"`
	Timer       Timer       `json:"timer"`
}

// Clone returns a deep copy of the state. Undo snapshots and delivery
// application both rely on this: the original and the clone share no
// mutable structure.
func (s State) Clone() State {
	next := s
	next.Log = make(event.Log, len(s.Log))
	copy(next.Log, s.Log)
	next.InningsScores = make([]InningsScore, len(s.InningsScores))
	copy(next.InningsScores, s.InningsScores)
	return next
}

// OversString formats the current innings progression as "O.B".
func (s State) OversString() string {
	return OverString(s.TotalBalls)
}

// OverString formats a legal-ball count as overs, e.g. 13 balls -> "2.1".
func OverString(balls int) string {
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

package event

import "time"

// Kind identifies the kind of a ball event.
//
// A Delivery is a ball actually bowled. Every other kind is a meta-event:
// it records a change at the crease (new batter, new bowler, retirement,
// declaration) and carries zero runs and zero balls. Meta-events must never
// be counted toward balls faced, balls bowled, or runs scored.
type Kind string

const (
	// KindDelivery records a ball bowled, legal or not.
	KindDelivery Kind = "delivery"
	// KindMatchStarted records the opening players taking the field.
	KindMatchStarted Kind = "match.started"
	// KindPlayerChange records a new batter or the end-of-over bowler change.
	KindPlayerChange Kind = "player.changed"
	// KindRetirement records a batter retiring, hurt or out.
	KindRetirement Kind = "batter.retired"
	// KindBowlerReplacement records a mid-over bowler substitution (injury).
	KindBowlerReplacement Kind = "bowler.replaced"
	// KindDeclaration records the batting captain declaring the innings.
	KindDeclaration Kind = "innings.declared"
)

// IsMeta reports whether the kind is a zero-effect marker rather than a
// delivery. Meta-events adjust the players at the crease but never the score,
// the wicket count (retirement excepted), or over progression.
func (k Kind) IsMeta() bool {
	return k != KindDelivery
}

// ExtraType classifies the extra, if any, conceded on a delivery.
type ExtraType string

const (
	ExtraNone   ExtraType = "None"
	ExtraWide   ExtraType = "Wide"
	ExtraNoBall ExtraType = "NoBall"
	ExtraBye    ExtraType = "Bye"
	ExtraLegBye ExtraType = "LegBye"
)

// Legal reports whether a delivery with this extra counts toward the over.
// Wides and no-balls are replayed within the same over; everything else
// advances the ball count.
func (e ExtraType) Legal() bool {
	return e != ExtraWide && e != ExtraNoBall
}

// WicketType names the mode of dismissal.
type WicketType string

const (
	WicketBowled           WicketType = "Bowled"
	WicketCaught           WicketType = "Caught"
	WicketLBW              WicketType = "LBW"
	WicketRunOut           WicketType = "Run Out"
	WicketStumped          WicketType = "Stumped"
	WicketHitWicket        WicketType = "Hit Wicket"
	WicketHandledBall      WicketType = "Handled Ball"
	WicketObstructingField WicketType = "Obstructing Field"
	WicketTimedOut         WicketType = "Timed Out"
	WicketRetiredOut       WicketType = "Retired Out"
	WicketRetiredHurt      WicketType = "Retired Hurt"
)

// CreditsBowler reports whether the dismissal is credited to the bowler.
// Run outs, retirements, and the obscure batter-fault dismissals belong to
// the fielding side or nobody, not the bowler's column.
func (w WicketType) CreditsBowler() bool {
	switch w {
	case WicketRunOut, WicketHandledBall, WicketObstructingField,
		WicketTimedOut, WicketRetiredOut, WicketRetiredHurt:
		return false
	}
	return true
}

// Ball is one entry in the ball event log: a delivery or a meta-event.
// Balls are immutable once appended; the only sanctioned rewrite is the
// engine's identity-correction operation, which swaps player ids in place
// without touching runs, wickets, or ball counts.
type Ball struct {
	// Kind tags the event. The zero value is not valid; constructors and
	// the engine always set it.
	Kind Kind `json:"kind"`
	// Seq is the monotonic sequence number stamped by the engine's clock.
	Seq int64 `json:"seq"`
	// Timestamp is when the event was recorded.
	Timestamp time.Time `json:"timestamp"`
	// Innings the event belongs to (1 or 2).
	Innings int `json:"innings"`
	// Over index (0-based) and ball-within-over index (1-based), both
	// derived from the ball count at application time.
	Over       int `json:"over"`
	BallInOver int `json:"ball_in_over"`

	StrikerID    string `json:"striker_id"`
	NonStrikerID string `json:"non_striker_id,omitempty"`
	BowlerID     string `json:"bowler_id"`

	// Runs is the total credited to the team for this event.
	// The engine maintains Runs == BatRuns + ExtraRuns.
	Runs int `json:"runs"`
	// BatRuns is the portion scored off the bat.
	BatRuns int `json:"bat_runs"`
	// ExtraRuns is the portion conceded as extras: byes, leg-byes, and
	// runs taken on a wide or no-ball. The wide/no-ball +1 bowler penalty
	// is bowling-card bookkeeping and is NOT part of ExtraRuns.
	ExtraRuns int       `json:"extra_runs"`
	Extra     ExtraType `json:"extra"`

	IsWicket bool       `json:"is_wicket"`
	Wicket   WicketType `json:"wicket,omitempty"`
	// CreditBowler is false for dismissals that do not belong in the
	// bowler's wicket column (run outs, retirements).
	CreditBowler bool   `json:"credit_bowler"`
	OutPlayerID  string `json:"out_player_id,omitempty"`
	FielderID    string `json:"fielder_id,omitempty"`

	// Commentary is the free-text tag shown on scorecards as dismissal
	// text. It carries no semantics; event kinds are tagged via Kind.
	Commentary string `json:"commentary,omitempty"`
}

// Legal reports whether the ball advances over progression.
// Meta-events never do.
func (b Ball) Legal() bool {
	return b.Kind == KindDelivery && b.Extra.Legal()
}

package event

// Log is the append-only ball event log.
//
// Storage order is newest-first: index 0 is the most recent event. This
// matches the access pattern of the timeline tape and undo inspection.
// Any derivation (scorecards, replay checks) must process events
// oldest-first; use Chronological or ForInnings.
type Log []Ball

// Prepend returns a new log with b as the most recent event.
// The receiver is never mutated; the returned log shares no spine with it.
func (l Log) Prepend(b Ball) Log {
	next := make(Log, 0, len(l)+1)
	next = append(next, b)
	next = append(next, l...)
	return next
}

// Chronological returns the events oldest-first.
func (l Log) Chronological() []Ball {
	out := make([]Ball, len(l))
	for i, b := range l {
		out[len(l)-1-i] = b
	}
	return out
}

// ForInnings returns the events of one innings, oldest-first.
func (l Log) ForInnings(innings int) []Ball {
	var out []Ball
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Innings == innings {
			out = append(out, l[i])
		}
	}
	return out
}

// Deliveries returns the non-meta events of one innings, oldest-first.
func (l Log) Deliveries(innings int) []Ball {
	var out []Ball
	for _, b := range l.ForInnings(innings) {
		if !b.Kind.IsMeta() {
			out = append(out, b)
		}
	}
	return out
}

// LastDelivery returns the most recent non-meta event, if any.
func (l Log) LastDelivery() (Ball, bool) {
	for _, b := range l {
		if !b.Kind.IsMeta() {
			return b, true
		}
	}
	return Ball{}, false
}

// Dismissed returns the set of player ids recorded out in the innings.
// Retired-hurt batters are not dismissed and may return.
func (l Log) Dismissed(innings int) map[string]bool {
	out := make(map[string]bool)
	for _, b := range l {
		if b.Innings != innings || !b.IsWicket || b.OutPlayerID == "" {
			continue
		}
		if b.Wicket == WicketRetiredHurt {
			continue
		}
		out[b.OutPlayerID] = true
	}
	return out
}

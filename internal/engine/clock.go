package engine

import "sync/atomic"

// Clock is the monotonic logical clock that stamps every ball event with a
// strictly increasing seq number. Seq ordering makes the log's chronology
// explicit and replay deterministic, independent of wall-clock timestamps.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though scoring is strictly serialized by call order in practice.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at a specific sequence number.
// Used when resuming a match from a persisted log.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

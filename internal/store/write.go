package store

import (
	"context"
	"fmt"
	"time"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// SaveSnapshot upserts the latest full state for a match.
// The event log travels inside the state JSON, so a snapshot alone is
// enough to resume scoring; AppendEvent additionally archives each ball
// as its own row for querying and replay verification.
func (s *Store) SaveSnapshot(ctx context.Context, state match.State) error {
	stateJSON, err := marshalState(state)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	now := time.Now().UnixMilli()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO matches (id, state, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`, state.MatchID, stateJSON, now, now)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// AppendEvent inserts one ball into the event log. Returns whether a new
// row was inserted.
//
// Idempotency rides on the content address: replaying the same ball hashes
// to the same value and ON CONFLICT(match_id, hash) DO NOTHING drops the
// duplicate silently. A ball that differs in any field hashes differently
// and lands as a fresh row.
//
// Note: the match referenced by matchID must exist (foreign key constraint).
func (s *Store) AppendEvent(ctx context.Context, matchID string, ball event.Ball) (inserted bool, err error) {
	hash, err := event.Hash(ball)
	if err != nil {
		return false, fmt.Errorf("append event: %w", err)
	}

	payload, err := marshalBall(ball)
	if err != nil {
		return false, fmt.Errorf("append event: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO events (match_id, seq, hash, kind, innings, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, hash) DO NOTHING
	`,
		matchID,
		ball.Seq,
		hash,
		string(ball.Kind),
		ball.Innings,
		payload,
	)
	if err != nil {
		return false, fmt.Errorf("append event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("append event: rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// AppendLog writes every event of a log in one transaction, oldest first.
// Events already present (by content address) are skipped. Used when
// archiving a match that was scored in memory.
func (s *Store) AppendLog(ctx context.Context, matchID string, log event.Log) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append log: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, ball := range log.Chronological() {
		hash, err := event.Hash(ball)
		if err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		payload, err := marshalBall(ball)
		if err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO events (match_id, seq, hash, kind, innings, payload)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(match_id, hash) DO NOTHING
		`, matchID, ball.Seq, hash, string(ball.Kind), ball.Innings, payload)
		if err != nil {
			return fmt.Errorf("append log: seq %d: %w", ball.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append log: commit: %w", err)
	}

	return nil
}

// DeleteEventsAfter removes events with seq greater than the given value.
// Undo rewinds the in-memory state; this keeps the archived log in step.
func (s *Store) DeleteEventsAfter(ctx context.Context, matchID string, seq int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM events WHERE match_id = ? AND seq > ?
	`, matchID, seq)
	if err != nil {
		return fmt.Errorf("delete events after %d: %w", seq, err)
	}
	return nil
}

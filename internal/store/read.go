package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// ErrNotFound is returned when a match has no snapshot in the store.
var ErrNotFound = errors.New("match not found")

// LoadSnapshot retrieves the latest saved state for a match.
// Returns ErrNotFound if the match has never been saved.
func (s *Store) LoadSnapshot(ctx context.Context, matchID string) (match.State, error) {
	var stateJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT state FROM matches WHERE id = ?
	`, matchID).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return match.State{}, fmt.Errorf("load snapshot %q: %w", matchID, ErrNotFound)
	}
	if err != nil {
		return match.State{}, fmt.Errorf("load snapshot %q: %w", matchID, err)
	}

	return unmarshalState(stateJSON)
}

// ListEvents returns the archived event log for a match in chronological
// order. Ties on seq break on the content address so replays see one
// deterministic ordering.
//
// Returns an empty slice (not nil) if no events exist for the match.
func (s *Store) ListEvents(ctx context.Context, matchID string) ([]event.Ball, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload
		FROM events
		WHERE match_id = ?
		ORDER BY seq ASC, hash COLLATE BINARY ASC
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	balls := []event.Ball{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ball, err := unmarshalBall(payload)
		if err != nil {
			return nil, err
		}
		balls = append(balls, ball)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return balls, nil
}

// LoadLog reads the archived events back as a newest-first log.
func (s *Store) LoadLog(ctx context.Context, matchID string) (event.Log, error) {
	balls, err := s.ListEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}

	log := make(event.Log, len(balls))
	for i, ball := range balls {
		log[len(balls)-1-i] = ball
	}
	return log, nil
}

// ListMatches returns the IDs of all saved matches, newest first.
func (s *Store) ListMatches(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM matches ORDER BY updated_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan match id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return ids, nil
}

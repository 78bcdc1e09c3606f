package store

import (
	"context"
	"fmt"

	"github.com/willowsc/willow/internal/engine"
)

// Report is the outcome of replaying an archived event log against the
// saved snapshot. Consistent means the current innings' deliveries fold
// back to the snapshot's counters.
type Report struct {
	MatchID        string
	EventCount     int
	SnapshotEvents int
	ReplayScore    int
	ReplayWickets  int
	ReplayBalls    int
	Consistent     bool
	Mismatches     []string
}

// Replay rebuilds the current innings from the archived event log and
// checks the result against the stored snapshot.
//
// Innings transitions are scorer actions rather than logged events, so
// replay starts from an empty innings seeded with the snapshot's
// identifiers and folds in only the current innings' events. Earlier
// innings are covered by the snapshot's archived InningsScores.
func (s *Store) Replay(ctx context.Context, matchID string) (Report, error) {
	report := Report{MatchID: matchID}

	snapshot, err := s.LoadSnapshot(ctx, matchID)
	if err != nil {
		return report, fmt.Errorf("replay: %w", err)
	}

	log, err := s.LoadLog(ctx, matchID)
	if err != nil {
		return report, fmt.Errorf("replay: %w", err)
	}
	report.EventCount = len(log)
	report.SnapshotEvents = len(snapshot.Log)

	rebuilt := snapshot.Clone()
	rebuilt.Log = log
	replayed := engine.ReplayInnings(rebuilt)

	report.ReplayScore = replayed.Score
	report.ReplayWickets = replayed.Wickets
	report.ReplayBalls = replayed.TotalBalls

	if replayed.Score != snapshot.Score {
		report.Mismatches = append(report.Mismatches,
			fmt.Sprintf("score: replayed %d, snapshot %d", replayed.Score, snapshot.Score))
	}
	if replayed.Wickets != snapshot.Wickets {
		report.Mismatches = append(report.Mismatches,
			fmt.Sprintf("wickets: replayed %d, snapshot %d", replayed.Wickets, snapshot.Wickets))
	}
	if replayed.TotalBalls != snapshot.TotalBalls {
		report.Mismatches = append(report.Mismatches,
			fmt.Sprintf("balls: replayed %d, snapshot %d", replayed.TotalBalls, snapshot.TotalBalls))
	}
	if len(log) != len(snapshot.Log) {
		report.Mismatches = append(report.Mismatches,
			fmt.Sprintf("log length: archived %d, snapshot %d", len(log), len(snapshot.Log)))
	}

	report.Consistent = len(report.Mismatches) == 0
	return report, nil
}

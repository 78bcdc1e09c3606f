package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "willow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testState() match.State {
	return match.State{
		MatchID:       "m1",
		Format:        "T20",
		BattingTeamID: "avr",
		BowlingTeamID: "knc",
		Innings:       1,
		StrikerID:     "a1",
		NonStrikerID:  "a2",
		BowlerID:      "k1",
		Log:           event.Log{},
		InningsScores: []match.InningsScore{},
	}
}

func testBall(seq int64) event.Ball {
	return event.Ball{
		Kind:         event.KindDelivery,
		Seq:          seq,
		Timestamp:    time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC).Add(time.Duration(seq) * 30 * time.Second),
		Innings:      1,
		StrikerID:    "a1",
		NonStrikerID: "a2",
		BowlerID:     "k1",
		Runs:         1,
		BatRuns:      1,
		Extra:        event.ExtraNone,
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "willow.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.SaveSnapshot(context.Background(), testState()))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	loaded, err := s2.LoadSnapshot(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "avr", loaded.BattingTeamID)
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	state := testState()
	state.Score = 42
	state.Log = state.Log.Prepend(testBall(1))
	require.NoError(t, s.SaveSnapshot(ctx, state))

	loaded, err := s.LoadSnapshot(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, state.Score, loaded.Score)
	assert.Equal(t, state.MatchID, loaded.MatchID)
	require.Len(t, loaded.Log, 1)
	assert.Equal(t, int64(1), loaded.Log[0].Seq)
}

func TestSaveSnapshot_Upserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	state := testState()
	require.NoError(t, s.SaveSnapshot(ctx, state))
	state.Score = 99
	require.NoError(t, s.SaveSnapshot(ctx, state))

	loaded, err := s.LoadSnapshot(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 99, loaded.Score)

	ids, err := s.ListMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadSnapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendEvent_IdempotentOnContentAddress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	ball := testBall(1)
	inserted, err := s.AppendEvent(ctx, "m1", ball)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.AppendEvent(ctx, "m1", ball)
	require.NoError(t, err)
	assert.False(t, inserted, "identical content is dropped silently")

	changed := ball
	changed.BatRuns = 4
	changed.Runs = 4
	inserted, err = s.AppendEvent(ctx, "m1", changed)
	require.NoError(t, err)
	assert.True(t, inserted, "any field change is a fresh event")

	events, err := s.ListEvents(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestListEvents_ChronologicalOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	for _, seq := range []int64{3, 1, 2} {
		_, err := s.AppendEvent(ctx, "m1", testBall(seq))
		require.NoError(t, err)
	}

	events, err := s.ListEvents(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(1), events[0].Seq)
	assert.Equal(t, int64(2), events[1].Seq)
	assert.Equal(t, int64(3), events[2].Seq)
}

func TestListEvents_EmptyIsNotNil(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	events, err := s.ListEvents(ctx, "m1")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestAppendLog_WritesAllAndSkipsDuplicates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	log := event.Log{}
	for seq := int64(1); seq <= 3; seq++ {
		log = log.Prepend(testBall(seq))
	}
	require.NoError(t, s.AppendLog(ctx, "m1", log))
	require.NoError(t, s.AppendLog(ctx, "m1", log))

	events, err := s.ListEvents(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestLoadLog_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	for seq := int64(1); seq <= 3; seq++ {
		_, err := s.AppendEvent(ctx, "m1", testBall(seq))
		require.NoError(t, err)
	}

	log, err := s.LoadLog(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, int64(3), log[0].Seq)
	assert.Equal(t, int64(1), log[2].Seq)
}

func TestDeleteEventsAfter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSnapshot(ctx, testState()))

	for seq := int64(1); seq <= 4; seq++ {
		_, err := s.AppendEvent(ctx, "m1", testBall(seq))
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteEventsAfter(ctx, "m1", 2))

	events, err := s.ListEvents(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[1].Seq)
}

func TestListMatches_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := testState()
	first.MatchID = "m-old"
	require.NoError(t, s.SaveSnapshot(ctx, first))

	time.Sleep(2 * time.Millisecond)

	second := testState()
	second.MatchID = "m-new"
	require.NoError(t, s.SaveSnapshot(ctx, second))

	ids, err := s.ListMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"m-new", "m-old"}, ids)
}

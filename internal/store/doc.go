// Package store provides SQLite-backed durable storage for match scoring.
//
// Two kinds of rows:
//   - Snapshots: the latest full match state, one row per match
//   - Events: the append-only ball log, one row per recorded event
//
// Ordering uses seq INTEGER (logical clock), never timestamps, with the
// content address as tiebreaker: ORDER BY seq ASC, hash ASC COLLATE BINARY.
// Duplicate appends are dropped on UNIQUE(match_id, hash), so re-sending
// the same ball is always safe.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Content addresses are computed in internal/event/hash.go using canonical
// JSON and SHA-256 with domain separation.
package store

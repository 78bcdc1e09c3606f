// Package harness executes YAML scoring scenarios through the real engine
// and compares the outcome against expectations and golden snapshots.
//
// A scenario is a match setup (teams, toss, openers), a flat list of
// scoring steps (deliveries, wickets, retirements, corrections, undo,
// innings transitions), and an expect block over the final state. The
// runner applies every step through the engine controller exactly as the
// CLI would, with a deterministic wall clock so the resulting snapshot is
// byte-stable.
//
// Golden files live in testdata/golden and are regenerated with
// `go test ./internal/harness -update`.
package harness

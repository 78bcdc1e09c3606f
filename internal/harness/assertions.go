package harness

import (
	"fmt"
)

// Verify checks the scenario's expect block against an execution result.
// Returns one message per failed expectation; empty means the scenario
// passed. Score and wickets are always checked; the remaining fields only
// when set.
func Verify(result *Result) []string {
	var failures []string
	expect := result.Scenario.Expect
	final := result.Final

	if final.Score != expect.Score {
		failures = append(failures, fmt.Sprintf("score: got %d, want %d", final.Score, expect.Score))
	}
	if final.Wickets != expect.Wickets {
		failures = append(failures, fmt.Sprintf("wickets: got %d, want %d", final.Wickets, expect.Wickets))
	}
	if expect.Overs != "" && final.OversString() != expect.Overs {
		failures = append(failures, fmt.Sprintf("overs: got %s, want %s", final.OversString(), expect.Overs))
	}
	if expect.Striker != "" && final.StrikerID != expect.Striker {
		failures = append(failures, fmt.Sprintf("striker: got %q, want %q", final.StrikerID, expect.Striker))
	}
	if expect.NonStriker != "" && final.NonStrikerID != expect.NonStriker {
		failures = append(failures, fmt.Sprintf("non-striker: got %q, want %q", final.NonStrikerID, expect.NonStriker))
	}
	if expect.Innings != 0 && final.Innings != expect.Innings {
		failures = append(failures, fmt.Sprintf("innings: got %d, want %d", final.Innings, expect.Innings))
	}
	if expect.Target != 0 && final.Target != expect.Target {
		failures = append(failures, fmt.Sprintf("target: got %d, want %d", final.Target, expect.Target))
	}
	if expect.InningsEnd != "" && string(result.EndReason) != expect.InningsEnd {
		failures = append(failures, fmt.Sprintf("innings end: got %q, want %q", result.EndReason, expect.InningsEnd))
	}

	return failures
}

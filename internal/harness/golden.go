package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/willowsc/willow/internal/scorecard"
	"github.com/willowsc/willow/internal/stats"
)

// Snapshot is the serialized shape compared against golden files. It
// carries the derived view of the match rather than the raw state, so a
// golden diff reads like a scorecard.
type Snapshot struct {
	ScenarioName string                 `json:"scenario_name"`
	Score        int                    `json:"score"`
	Wickets      int                    `json:"wickets"`
	Overs        string                 `json:"overs"`
	Innings      int                    `json:"innings"`
	Target       int                    `json:"target,omitempty"`
	EndReason    string                 `json:"end_reason,omitempty"`
	Batting      []scorecard.BattingRow `json:"batting"`
	Bowling      []scorecard.BowlingRow `json:"bowling"`
	Summary      stats.Summary          `json:"summary"`
	Tape         []stats.TapeEntry      `json:"tape"`
}

// RunWithGolden executes a scenario, verifies its expect block, and
// compares the derived snapshot against a golden file under
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("scenario %s: %v", scenario.Name, err)
	}
	for _, failure := range Verify(result) {
		t.Errorf("scenario %s: %s", scenario.Name, failure)
	}

	snapshot := Snapshot{
		ScenarioName: scenario.Name,
		Score:        result.Final.Score,
		Wickets:      result.Final.Wickets,
		Overs:        result.Final.OversString(),
		Innings:      result.Final.Innings,
		Target:       result.Final.Target,
		EndReason:    string(result.EndReason),
		Batting:      result.Batting,
		Bowling:      result.Bowling,
		Summary:      result.Summary,
		Tape:         stats.Tape(result.Final.Log, result.Final.Innings, 12),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
}

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_AllPass(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)

			for _, failure := range Verify(result) {
				t.Error(failure)
			}
		})
	}
}

func TestGoldenScenarios(t *testing.T) {
	names := []string{
		"opening-over-singles",
		"extras-and-legality",
		"maiden-over-wicket",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)
			RunWithGolden(t, scenario)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "extras-and-legality.yaml"))
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, first.Final, second.Final)
	assert.Equal(t, first.Batting, second.Batting)
	assert.Equal(t, first.Bowling, second.Bowling)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: catches a misspelled key
teams:
  team_a: {id: a, name: A, players: [{id: a1, name: One}]}
  team_b: {id: b, name: B, players: [{id: b1, name: Two}]}
toss: {winner: a, decision: bat}
openers: {striker: a1, non_striker: a2, bowler: b1}
ballz:
  - runs: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_RequiresOpeners(t *testing.T) {
	path := writeScenario(t, `
name: no-openers
description: openers are mandatory
teams:
  team_a: {id: a, name: A, players: [{id: a1, name: One}]}
  team_b: {id: b, name: B, players: [{id: b1, name: Two}]}
toss: {winner: a, decision: bat}
openers: {striker: a1, non_striker: a2}
balls:
  - runs: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openers")
}

func TestLoadScenario_RejectsCombinedActions(t *testing.T) {
	path := writeScenario(t, `
name: two-actions
description: a step takes exactly one action
teams:
  team_a: {id: a, name: A, players: [{id: a1, name: One}]}
  team_b: {id: b, name: B, players: [{id: b1, name: Two}]}
toss: {winner: a, decision: bat}
openers: {striker: a1, non_striker: a2, bowler: b1}
balls:
  - wicket: Bowled
    retire: a1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one action")
}

func TestLoadScenario_RejectsDuplicateTeamIDs(t *testing.T) {
	path := writeScenario(t, `
name: dup-teams
description: team ids must differ
teams:
  team_a: {id: a, name: A, players: [{id: a1, name: One}]}
  team_b: {id: a, name: Also A, players: [{id: b1, name: Two}]}
toss: {winner: a, decision: bat}
openers: {striker: a1, non_striker: a2, bowler: b1}
balls:
  - runs: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team ids must differ")
}

func TestRun_UndoOnEmptyLogFails(t *testing.T) {
	path := writeScenario(t, `
name: undo-empty
description: undo with nothing recorded is a scenario error
teams:
  team_a: {id: a, name: A, players: [{id: a1, name: One}]}
  team_b: {id: b, name: B, players: [{id: b1, name: Two}]}
toss: {winner: a, decision: bat}
openers: {striker: a1, non_striker: a2, bowler: b1}
balls:
  - undo: true
  - undo: true
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to undo")
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

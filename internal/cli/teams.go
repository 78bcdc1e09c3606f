package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/willowsc/willow/internal/roster"
)

// TeamsFile is the on-disk YAML shape naming both sides and their squads.
type TeamsFile struct {
	TeamA roster.Team `yaml:"team_a"`
	TeamB roster.Team `yaml:"team_b"`
}

// LoadTeams reads a teams YAML file.
func LoadTeams(path string) (TeamsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TeamsFile{}, fmt.Errorf("read teams file: %w", err)
	}

	var teams TeamsFile
	if err := yaml.Unmarshal(data, &teams); err != nil {
		return TeamsFile{}, fmt.Errorf("parse teams file %s: %w", path, err)
	}

	if teams.TeamA.ID == "" || teams.TeamB.ID == "" {
		return TeamsFile{}, fmt.Errorf("teams file %s: both team_a.id and team_b.id are required", path)
	}
	if teams.TeamA.ID == teams.TeamB.ID {
		return TeamsFile{}, fmt.Errorf("teams file %s: team ids must differ", path)
	}

	return teams, nil
}

// teamByID resolves one of the two sides by id.
func (t TeamsFile) teamByID(id string) (roster.Team, bool) {
	switch id {
	case t.TeamA.ID:
		return t.TeamA, true
	case t.TeamB.ID:
		return t.TeamB, true
	}
	return roster.Team{}, false
}

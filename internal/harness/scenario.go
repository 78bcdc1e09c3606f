package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/willowsc/willow/internal/roster"
)

// Scenario defines a conformance test scenario: a match setup, a sequence
// of scoring steps driven through the real engine, and the expected final
// numbers.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// MatchFormat names a playing format from the rules catalog.
	// Defaults to T20.
	MatchFormat string `yaml:"match_format,omitempty"`

	// Teams defines both sides inline.
	Teams TeamsBlock `yaml:"teams"`

	// Toss fixes the toss outcome for determinism.
	Toss TossBlock `yaml:"toss"`

	// Openers take the field before the first ball.
	Openers OpenersBlock `yaml:"openers"`

	// Balls is the scoring sequence. Each step is exactly one action.
	Balls []Step `yaml:"balls"`

	// Expect validates the final state.
	Expect ExpectBlock `yaml:"expect"`
}

// TeamsBlock names both sides and their squads.
type TeamsBlock struct {
	TeamA roster.Team `yaml:"team_a"`
	TeamB roster.Team `yaml:"team_b"`
}

// TossBlock fixes who won the toss and what they chose.
type TossBlock struct {
	Winner   string `yaml:"winner"`
	Decision string `yaml:"decision"` // "bat" | "bowl"
}

// OpenersBlock names the players taking the field first.
type OpenersBlock struct {
	Striker    string `yaml:"striker"`
	NonStriker string `yaml:"non_striker"`
	Bowler     string `yaml:"bowler"`
}

// Step is one scoring action. Exactly one of the action fields may be set;
// Runs alone records a plain delivery.
type Step struct {
	// Runs off the bat for a delivery step.
	Runs int `yaml:"runs,omitempty"`
	// Extra classifies the delivery ("Wide", "NoBall", "Bye", "LegBye").
	Extra string `yaml:"extra,omitempty"`
	// ExtraRuns scored as extras on the delivery.
	ExtraRuns int `yaml:"extra_runs,omitempty"`
	// Delivery forces a zero-run delivery step (a dot ball).
	Delivery bool `yaml:"delivery,omitempty"`

	// Wicket names a dismissal type ("Bowled", "Run Out", ...).
	Wicket  string `yaml:"wicket,omitempty"`
	Batter  string `yaml:"batter,omitempty"`
	Fielder string `yaml:"fielder,omitempty"`

	// Retire pulls a batter; Out makes it Retired Out.
	Retire string `yaml:"retire,omitempty"`
	Out    bool   `yaml:"out,omitempty"`

	// SendIn fills an empty crease slot; Slot is "striker" (default) or
	// "non_striker".
	SendIn string `yaml:"send_in,omitempty"`
	Slot   string `yaml:"slot,omitempty"`

	// Bowler sets the next-over bowler; MidOver makes it an injury
	// replacement instead.
	Bowler  string `yaml:"bowler,omitempty"`
	MidOver bool   `yaml:"mid_over,omitempty"`

	// Undo rewinds the previous step.
	Undo bool `yaml:"undo,omitempty"`

	// Declare records a declaration.
	Declare bool `yaml:"declare,omitempty"`

	// Correct rewrites a player identity.
	Correct *CorrectBlock `yaml:"correct,omitempty"`

	// NextInnings archives the innings and starts the next.
	NextInnings bool `yaml:"next_innings,omitempty"`

	// Commentary tags the delivery.
	Commentary string `yaml:"commentary,omitempty"`
}

// CorrectBlock is the identity-correction step payload.
type CorrectBlock struct {
	Old  string `yaml:"old"`
	New  string `yaml:"new"`
	Role string `yaml:"role"` // "striker" | "non_striker" | "bowler"
}

// ExpectBlock validates the final state. Zero-valued fields are skipped,
// except Score and Wickets which are always checked.
type ExpectBlock struct {
	Score      int    `yaml:"score"`
	Wickets    int    `yaml:"wickets"`
	Overs      string `yaml:"overs,omitempty"`
	Striker    string `yaml:"striker,omitempty"`
	NonStriker string `yaml:"non_striker,omitempty"`
	Innings    int    `yaml:"innings,omitempty"`
	Target     int    `yaml:"target,omitempty"`
	InningsEnd string `yaml:"innings_end,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so a typo fails the scenario rather than silently skipping a
// step.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Teams.TeamA.ID == "" || s.Teams.TeamB.ID == "" {
		return fmt.Errorf("both team ids are required")
	}
	if s.Teams.TeamA.ID == s.Teams.TeamB.ID {
		return fmt.Errorf("team ids must differ")
	}
	if s.Openers.Striker == "" || s.Openers.NonStriker == "" || s.Openers.Bowler == "" {
		return fmt.Errorf("openers (striker, non_striker, bowler) are required")
	}
	if len(s.Balls) == 0 {
		return fmt.Errorf("balls list is required and must be non-empty")
	}
	switch s.Toss.Decision {
	case "", "bat", "bowl":
	default:
		return fmt.Errorf("toss decision %q: must be bat or bowl", s.Toss.Decision)
	}
	for i, step := range s.Balls {
		if err := validateStep(i, step); err != nil {
			return err
		}
	}
	return nil
}

// validateStep checks that a step names at most one action.
func validateStep(index int, s Step) error {
	actions := 0
	if s.Wicket != "" {
		actions++
	}
	if s.Retire != "" {
		actions++
	}
	if s.SendIn != "" {
		actions++
	}
	if s.Bowler != "" {
		actions++
	}
	if s.Undo {
		actions++
	}
	if s.Declare {
		actions++
	}
	if s.Correct != nil {
		actions++
	}
	if s.NextInnings {
		actions++
	}
	if actions > 1 {
		return fmt.Errorf("balls[%d]: steps take exactly one action", index)
	}
	if actions == 1 && (s.Runs != 0 || s.Extra != "" || s.ExtraRuns != 0) {
		return fmt.Errorf("balls[%d]: delivery fields cannot combine with an action", index)
	}
	if s.Correct != nil && (s.Correct.Old == "" || s.Correct.New == "") {
		return fmt.Errorf("balls[%d]: correct needs old and new ids", index)
	}
	return nil
}

package harness

import (
	"fmt"
	"time"

	"github.com/willowsc/willow/internal/engine"
	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/innings"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/roster"
	"github.com/willowsc/willow/internal/rules"
	"github.com/willowsc/willow/internal/scorecard"
	"github.com/willowsc/willow/internal/stats"
)

// Result captures everything a scenario execution produced: the final
// state, the innings-end verdict, and the derived cards and summary.
type Result struct {
	Scenario  *Scenario
	Final     match.State
	EndReason innings.EndReason
	Batting   []scorecard.BattingRow
	Bowling   []scorecard.BowlingRow
	Summary   stats.Summary
}

// scenarioEpoch anchors scenario timestamps so goldens are stable.
var scenarioEpoch = time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

// Run executes a scenario through the real engine.
//
// Time is deterministic: the wall clock starts at a fixed epoch and
// advances 30 seconds per recorded event, so timestamps, seqs, and the
// over-rate reading are identical on every run.
func Run(scenario *Scenario) (*Result, error) {
	formatName := scenario.MatchFormat
	if formatName == "" {
		formatName = "T20"
	}
	format, err := rules.Lookup(formatName)
	if err != nil {
		return nil, err
	}
	r := rules.Rules{Format: format}

	decision := match.DecisionBat
	if scenario.Toss.Decision == "bowl" {
		decision = match.DecisionBowl
	}

	tick := scenarioEpoch
	nowFunc := func() time.Time {
		tick = tick.Add(30 * time.Second)
		return tick
	}

	initial := match.New(match.Setup{
		MatchID:      "scenario-" + scenario.Name,
		Format:       formatName,
		TeamAID:      scenario.Teams.TeamA.ID,
		TeamBID:      scenario.Teams.TeamB.ID,
		TossWinnerID: scenario.Toss.Winner,
		TossDecision: decision,
		StrikerID:    scenario.Openers.Striker,
		NonStrikerID: scenario.Openers.NonStriker,
		BowlerID:     scenario.Openers.Bowler,
	}, scenarioEpoch)

	eng := engine.New(initial, engine.WithNowFunc(nowFunc))

	for i, step := range scenario.Balls {
		if err := applyStep(eng, step); err != nil {
			return nil, fmt.Errorf("balls[%d]: %w", i, err)
		}
	}

	final := eng.State()
	battingTeam := teamByID(scenario.Teams, final.BattingTeamID)
	bowlingTeam := teamByID(scenario.Teams, final.BowlingTeamID)

	result := &Result{
		Scenario:  scenario,
		Final:     final,
		EndReason: innings.Check(final, r.TotalOversAllowed(final), len(battingTeam.Players), format.FlexibleSquad),
		Batting:   scorecard.BuildBattingCardFromState(final, battingTeam.Players),
		Bowling:   scorecard.BuildBowlingCardFromState(final, bowlingTeam.Players),
		Summary:   stats.Compute(final, r.TotalOversAllowed(final)),
	}
	return result, nil
}

// applyStep routes one scenario step to the matching engine operation.
func applyStep(eng *engine.Engine, step Step) error {
	switch {
	case step.Wicket != "":
		eng.RecordWicket(engine.Wicket{
			Type:      event.WicketType(step.Wicket),
			BatterID:  step.Batter,
			FielderID: step.Fielder,
		})

	case step.Retire != "":
		reason := event.WicketRetiredHurt
		if step.Out {
			reason = event.WicketRetiredOut
		}
		eng.RetireBatter(step.Retire, reason)

	case step.SendIn != "":
		slot := engine.RoleStriker
		if step.Slot == "non_striker" {
			slot = engine.RoleNonStriker
		}
		eng.SendInBatter(step.SendIn, slot)

	case step.Bowler != "":
		if step.MidOver {
			eng.ReplaceBowlerMidOver(step.Bowler)
		} else {
			eng.ChangeBowler(step.Bowler)
		}

	case step.Undo:
		if !eng.UndoBall() {
			return fmt.Errorf("nothing to undo")
		}

	case step.Declare:
		eng.DeclareInnings()

	case step.Correct != nil:
		role, err := parseRole(step.Correct.Role)
		if err != nil {
			return err
		}
		eng.CorrectPlayerIdentity(step.Correct.Old, step.Correct.New, role)

	case step.NextInnings:
		state := eng.State()
		eng.EndInnings()
		eng.StartInnings(state.BowlingTeamID, state.BattingTeamID, state.Score+1)

	default:
		extra, err := parseExtra(step.Extra)
		if err != nil {
			return err
		}
		eng.ApplyBall(event.Ball{
			BatRuns:    step.Runs,
			ExtraRuns:  step.ExtraRuns,
			Extra:      extra,
			Commentary: step.Commentary,
		})
	}
	return nil
}

func parseExtra(name string) (event.ExtraType, error) {
	switch name {
	case "":
		return event.ExtraNone, nil
	case string(event.ExtraWide), string(event.ExtraNoBall),
		string(event.ExtraBye), string(event.ExtraLegBye):
		return event.ExtraType(name), nil
	}
	return event.ExtraNone, fmt.Errorf("unknown extra %q", name)
}

func parseRole(name string) (engine.Role, error) {
	switch name {
	case "striker", "":
		return engine.RoleStriker, nil
	case "non_striker":
		return engine.RoleNonStriker, nil
	case "bowler":
		return engine.RoleBowler, nil
	}
	return "", fmt.Errorf("unknown role %q", name)
}

func teamByID(teams TeamsBlock, id string) roster.Team {
	if teams.TeamA.ID == id {
		return teams.TeamA
	}
	return teams.TeamB
}

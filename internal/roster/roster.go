// Package roster holds the player and team value types the engine consumes.
//
// The engine only ever reads ids from these; names and roles exist to
// resolve display and to bound the available-batter and available-bowler
// pools. Profile data lives with the external layer.
package roster

import (
	"github.com/willowsc/willow/internal/match"
)

// PlayerRole describes a player's primary discipline.
type PlayerRole string

const (
	RoleBatter       PlayerRole = "Batter"
	RoleBowler       PlayerRole = "Bowler"
	RoleAllRounder   PlayerRole = "All-rounder"
	RoleWicketKeeper PlayerRole = "Wicket-keeper"
)

// Player is a roster entry.
type Player struct {
	ID   string     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Role PlayerRole `json:"role,omitempty" yaml:"role,omitempty"`
}

// Team is a named collection of players.
type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Players []Player `json:"players" yaml:"players"`
}

// Player returns the team member with the given id, if present.
func (t Team) Player(id string) (Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Selectable narrows a team to its squad for this match. An empty
// restriction list, or a flexible squad, makes the whole team selectable.
func Selectable(team Team, squadIDs []string, flexibleSquad bool) []Player {
	if len(squadIDs) == 0 || flexibleSquad {
		return team.Players
	}
	allowed := make(map[string]bool, len(squadIDs))
	for _, id := range squadIDs {
		allowed[id] = true
	}
	var out []Player
	for _, p := range team.Players {
		if allowed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// AvailableBatters returns the selectable batters who are not out in the
// current innings and not already at the crease. Retired-hurt batters
// remain available to resume.
func AvailableBatters(selectable []Player, state match.State) []Player {
	dismissed := state.Log.Dismissed(state.Innings)
	var out []Player
	for _, p := range selectable {
		if dismissed[p.ID] {
			continue
		}
		if p.ID == state.StrikerID || p.ID == state.NonStrikerID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NeedsBowlerChange reports whether scoring must pause for a new bowler:
// the over just completed and the bowler slot still names whoever bowled
// the last delivery of it.
func NeedsBowlerChange(state match.State) bool {
	if state.TotalBalls == 0 || state.TotalBalls%6 != 0 {
		return false
	}
	last, ok := state.Log.LastDelivery()
	if !ok {
		return false
	}
	return state.BowlerID == last.BowlerID
}

// ByID indexes players by id for display lookups.
func ByID(players []Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}

package ai

import (
	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/session"
	"github.com/talgya/hexfront/internal/units"
)

// GreedyAI takes whatever is cheapest and closest: the cheapest available
// tech, the cheapest template at every idle factory, and the first target
// in reach. A deliberately simple sparring partner for TacticalAI.
type GreedyAI struct {
	rnd entropy.Source
}

func (a *GreedyAI) ID() string   { return "greedy" }
func (a *GreedyAI) Name() string { return "Greedy" }

func (a *GreedyAI) PlanTurn(view *session.View, team string) []Action {
	var actions []Action

	if techID, ok := a.cheapestTech(view, team); ok {
		actions = append(actions, Research{TechID: techID})
	}
	actions = append(actions, a.planProduction(view, team)...)
	actions = append(actions, a.planUnitActions(view, team)...)
	return append(actions, EndTurn{})
}

func (a *GreedyAI) cheapestTech(view *session.View, team string) (string, bool) {
	id := ""
	cost := 0
	for _, def := range view.AvailableTechs(team) {
		if id == "" || def.Cost < cost {
			id = def.ID
			cost = def.Cost
		}
	}
	return id, id != ""
}

// planProduction buys the cheapest affordable template at every idle
// factory, most units for the money.
func (a *GreedyAI) planProduction(view *session.View, team string) []Action {
	funds := view.Resources(team).Funds
	var actions []Action
	for _, b := range view.BuildingsOwnedBy(team) {
		if b.Type != buildings.TypeFactory {
			continue
		}
		if _, occupied := view.UnitAt(b.Coord()); occupied {
			continue
		}
		var pick *units.UnitTemplate
		for _, t := range view.Templates(team) {
			if t.Cost <= funds && (pick == nil || t.Cost < pick.Cost) {
				pick = t
			}
		}
		if pick == nil {
			continue
		}
		funds -= pick.Cost
		actions = append(actions, Build{FactoryQ: b.Q, FactoryR: b.R, TemplateID: pick.ID})
	}
	return actions
}

// planUnitActions: shoot the first enemy in range; otherwise capture
// underfoot; otherwise march at the nearest enemy or foreign building.
func (a *GreedyAI) planUnitActions(view *session.View, team string) []Action {
	var actions []Action
	claimed := make(map[hexgrid.AxialCoord]bool)

	for _, u := range view.ActiveUnitsOf(team) {
		if targets := view.TargetsInRange(u); len(targets) > 0 && u.Attack > 0 {
			t := targets[0]
			actions = append(actions, Attack{UnitID: u.ID, TargetQ: t.Q, TargetR: t.R})
			continue
		}
		if b, ok := view.BuildingAt(u.Coord()); ok && b.Owner != team && u.CanCapture {
			actions = append(actions, Capture{UnitID: u.ID})
			continue
		}

		goal, ok := a.nearestObjective(view, u)
		if !ok {
			actions = append(actions, Wait{UnitID: u.ID})
			continue
		}
		if dest, ok := stepToward(view, u, goal, claimed); ok {
			claimed[dest] = true
			actions = append(actions, Move{UnitID: u.ID, TargetQ: dest.Q, TargetR: dest.R})
		} else {
			actions = append(actions, Wait{UnitID: u.ID})
		}
	}
	return actions
}

func (a *GreedyAI) nearestObjective(view *session.View, u *units.Unit) (hexgrid.AxialCoord, bool) {
	var goal hexgrid.AxialCoord
	nearest := -1
	consider := func(c hexgrid.AxialCoord) {
		d := hexgrid.Distance(u.Coord(), c)
		if nearest < 0 || d < nearest {
			nearest = d
			goal = c
		}
	}
	for _, e := range view.EnemiesOf(u.Team) {
		consider(e.Coord())
	}
	for _, b := range view.Buildings() {
		if b.Owner != u.Team {
			consider(b.Coord())
		}
	}
	return goal, nearest >= 0
}

// stepToward picks the reachable tile closest to the goal, path cost as the
// tiebreak.
func stepToward(view *session.View, u *units.Unit, goal hexgrid.AxialCoord, claimed map[hexgrid.AxialCoord]bool) (hexgrid.AxialCoord, bool) {
	reach := view.ReachableFor(u)
	var best hexgrid.AxialCoord
	bestDist := hexgrid.Distance(u.Coord(), goal)
	bestCost := 0.0
	found := false
	for _, r := range orderedReachable(reach) {
		c := hexgrid.AxialCoord{Q: r.Q, R: r.R}
		if c == u.Coord() || claimed[c] {
			continue
		}
		d := hexgrid.Distance(c, goal)
		if d < bestDist || (found && d == bestDist && r.Cost < bestCost) {
			best = c
			bestDist = d
			bestCost = r.Cost
			found = true
		}
	}
	return best, found
}

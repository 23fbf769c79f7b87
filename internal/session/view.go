package session

import (
	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/combat"
	"github.com/talgya/hexfront/internal/economy"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/pathfind"
	"github.com/talgya/hexfront/internal/tech"
	"github.com/talgya/hexfront/internal/units"
)

// View is the read-only window the AI plans against. It never mutates the
// session; queries that can fail return ordinary false/empty results.
type View struct {
	s *Session
}

// TileAt returns the tile at (q, r).
func (v *View) TileAt(q, r int) (hexgrid.Tile, bool) {
	return v.s.Map.TileAt(q, r)
}

// MapRadius returns the battlefield radius.
func (v *View) MapRadius() int {
	return v.s.Map.Radius
}

// Buildings returns every building in placement order.
func (v *View) Buildings() []*buildings.Building {
	return v.s.Rosters.All()
}

// BuildingAt returns the building on a hex.
func (v *View) BuildingAt(c hexgrid.AxialCoord) (*buildings.Building, bool) {
	return v.s.Rosters.At(c)
}

// BuildingsOwnedBy returns a team's buildings in placement order.
func (v *View) BuildingsOwnedBy(team string) []*buildings.Building {
	return v.s.Rosters.OwnedBy(team)
}

// BuildingsOfType returns buildings of one kind in placement order.
func (v *View) BuildingsOfType(typ buildings.Type) []*buildings.Building {
	return v.s.Rosters.OfType(typ)
}

// Units returns every living unit in spawn order.
func (v *View) Units() []*units.Unit {
	return v.s.Units()
}

// UnitByID returns the unit with the given id.
func (v *View) UnitByID(id string) (*units.Unit, bool) {
	return v.s.UnitByID(id)
}

// UnitAt returns the unit standing on a hex.
func (v *View) UnitAt(c hexgrid.AxialCoord) (*units.Unit, bool) {
	return v.s.UnitAt(c)
}

// UnitsOf returns a team's units in spawn order.
func (v *View) UnitsOf(team string) []*units.Unit {
	return v.s.UnitsOf(team)
}

// ActiveUnitsOf returns the team's units that have not acted this turn.
func (v *View) ActiveUnitsOf(team string) []*units.Unit {
	var out []*units.Unit
	for _, u := range v.s.UnitsOf(team) {
		if !u.HasActed {
			out = append(out, u)
		}
	}
	return out
}

// EnemiesOf returns every unit not on the given team.
func (v *View) EnemiesOf(team string) []*units.Unit {
	return v.s.EnemiesOf(team)
}

// Resources returns a copy of the team's balances. Unknown teams read as
// zero; the view never seats a team as a side effect of a query.
func (v *View) Resources(team string) economy.Resources {
	if r, ok := v.s.Ledger.Lookup(team); ok {
		return *r
	}
	return economy.Resources{}
}

// Templates returns the team's designs in registration order.
func (v *View) Templates(team string) []*units.UnitTemplate {
	t, ok := v.s.teamState(team)
	if !ok {
		return nil
	}
	return t.Templates.All()
}

// TemplateByID returns one of the team's designs.
func (v *View) TemplateByID(team, id string) (*units.UnitTemplate, bool) {
	t, ok := v.s.teamState(team)
	if !ok {
		return nil, false
	}
	return t.Templates.Get(id)
}

// Catalog returns the component catalog. Catalog data is immutable.
func (v *View) Catalog() *units.Catalog {
	return v.s.Catalog
}

// TechTree returns the technology graph. Tree data is immutable.
func (v *View) TechTree() *tech.Tree {
	return v.s.TechTree
}

// TechAvailability classifies a tech for the team at its current science.
func (v *View) TechAvailability(team, techID string) tech.Availability {
	t, ok := v.s.teamState(team)
	if !ok {
		return tech.Availability{State: tech.StateUnknown}
	}
	science := 0
	if r, found := v.s.Ledger.Lookup(team); found {
		science = r.Science
	}
	return t.Research.Availability(v.s.TechTree, techID, science)
}

// AvailableTechs returns the techs the team could purchase right now, in
// tree declaration order.
func (v *View) AvailableTechs(team string) []tech.Definition {
	var out []tech.Definition
	for _, def := range v.s.TechTree.All() {
		if v.TechAvailability(team, def.ID).State == tech.StateAvailable {
			out = append(out, def)
		}
	}
	return out
}

// UnlockedChassis returns the team's usable chassis ids in unlock order.
func (v *View) UnlockedChassis(team string) []string {
	if t, ok := v.s.teamState(team); ok {
		return t.Research.UnlockedChassis()
	}
	return nil
}

// UnlockedWeapons returns the team's usable weapon ids in unlock order.
func (v *View) UnlockedWeapons(team string) []string {
	if t, ok := v.s.teamState(team); ok {
		return t.Research.UnlockedWeapons()
	}
	return nil
}

// UnlockedSystems returns the team's usable system ids in unlock order.
func (v *View) UnlockedSystems(team string) []string {
	if t, ok := v.s.teamState(team); ok {
		return t.Research.UnlockedSystems()
	}
	return nil
}

// blockedByEnemies builds the blocked set a unit paths around: every enemy
// position.
func (v *View) blockedByEnemies(u *units.Unit) map[hexgrid.AxialCoord]bool {
	blocked := make(map[hexgrid.AxialCoord]bool)
	for _, e := range v.s.EnemiesOf(u.Team) {
		blocked[e.Coord()] = true
	}
	return blocked
}

// occupiedByFriends builds the occupied set: friendly positions other than
// the unit's own.
func (v *View) occupiedByFriends(u *units.Unit) map[hexgrid.AxialCoord]bool {
	occupied := make(map[hexgrid.AxialCoord]bool)
	for _, f := range v.s.UnitsOf(u.Team) {
		if f.ID != u.ID {
			occupied[f.Coord()] = true
		}
	}
	return occupied
}

// ReachableFor returns every position the unit can end its move on this
// turn: bounded by speed, enemies block, friendlies can be passed through
// but not ended on.
func (v *View) ReachableFor(u *units.Unit) map[hexgrid.AxialCoord]pathfind.Reachable {
	return pathfind.ReachablePositions(v.s.Map, u.Coord(), u.Speed, u.TerrainCosts, v.blockedByEnemies(u), v.occupiedByFriends(u))
}

// PathFor returns the unit's cheapest route to a goal, ignoring the speed
// budget. Enemies block; friendly tiles are traversable.
func (v *View) PathFor(u *units.Unit, goal hexgrid.AxialCoord) (*pathfind.Path, bool) {
	return pathfind.FindPath(v.s.Map, u.Coord(), goal, u.TerrainCosts, v.blockedByEnemies(u))
}

// ExpectedDamage previews the variance-free damage attacker deals defender.
func (v *View) ExpectedDamage(attacker, defender *units.Unit) int {
	return combat.Damage(attacker, defender, 0)
}

// IsInRange reports whether the unit can hit the target hex from where it
// stands.
func (v *View) IsInRange(u *units.Unit, target hexgrid.AxialCoord) bool {
	return combat.InRange(u, target)
}

// TargetsInRange returns the enemies the unit can hit without moving, in
// spawn order.
func (v *View) TargetsInRange(u *units.Unit) []*units.Unit {
	var out []*units.Unit
	for _, e := range v.s.EnemiesOf(u.Team) {
		if combat.InRange(u, e.Coord()) {
			out = append(out, e)
		}
	}
	return out
}

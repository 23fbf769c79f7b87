// Package session holds all mutable state of one running game: the map,
// units, buildings, and the per-team research, template, and resource
// state. Everything is an explicit field here — there are no package-level
// registries — so multiple sessions can coexist in one process.
package session

import (
	"fmt"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/economy"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/tech"
	"github.com/talgya/hexfront/internal/units"
)

// TeamState groups everything one team owns besides its units.
type TeamState struct {
	Name      string
	Research  *tech.Research
	Templates *units.TemplateRegistry
}

// Session is the complete world state. Mutated only by the orchestrator,
// one action at a time; the AI reads it through View.
type Session struct {
	Map      *hexgrid.Map
	Catalog  *units.Catalog
	TechTree *tech.Tree
	Rosters  *buildings.Roster
	Ledger   *economy.Ledger
	Rand     entropy.Source

	unitsOrdered []*units.Unit
	unitByID     map[string]*units.Unit
	teams        []*TeamState
	teamByName   map[string]*TeamState

	unitSeq     int
	templateSeq int
}

// New creates a session over a generated map.
func New(m *hexgrid.Map, catalog *units.Catalog, tree *tech.Tree, rnd entropy.Source) *Session {
	return &Session{
		Map:        m,
		Catalog:    catalog,
		TechTree:   tree,
		Rosters:    buildings.NewRoster(),
		Ledger:     economy.NewLedger(),
		Rand:       rnd,
		unitByID:   make(map[string]*units.Unit),
		teamByName: make(map[string]*TeamState),
	}
}

// Team returns a team's state, creating it on first access. New teams get
// the base components unlocked and a starter infantry design.
func (s *Session) Team(name string) *TeamState {
	if t, ok := s.teamByName[name]; ok {
		return t
	}
	t := &TeamState{
		Name:      name,
		Research:  tech.NewResearch(units.BaseChassisIDs(), units.BaseWeaponIDs(), units.BaseSystemIDs()),
		Templates: units.NewTemplateRegistry(),
	}
	starter, res := s.Catalog.BuildTemplate(s.NextTemplateID(), "Infantry",
		units.BaseChassisIDs()[0], units.BaseWeaponIDs()[0], units.BaseSystemIDs())
	if !res.Valid {
		// Both the built-in catalog and LoadCatalog guarantee the starter
		// loadout validates, so this is a programming error.
		panic(fmt.Sprintf("starter template invalid: %s", res.Err))
	}
	if err := t.Templates.Register(starter); err != nil {
		panic(err)
	}
	s.teams = append(s.teams, t)
	s.teamByName[name] = t
	s.Ledger.Team(name)
	return t
}

// teamState returns a team's state without creating it.
func (s *Session) teamState(name string) (*TeamState, bool) {
	t, ok := s.teamByName[name]
	return t, ok
}

// Teams returns team states in creation order.
func (s *Session) Teams() []*TeamState {
	return s.teams
}

// NextUnitID returns a deterministic unit id. Replays of the same seed see
// the same ids.
func (s *Session) NextUnitID() string {
	s.unitSeq++
	return fmt.Sprintf("u-%d", s.unitSeq)
}

// NextTemplateID returns a deterministic template id.
func (s *Session) NextTemplateID() string {
	s.templateSeq++
	return fmt.Sprintf("tpl-%d", s.templateSeq)
}

// SpawnUnit fields a unit from a template for a team.
func (s *Session) SpawnUnit(team string, q, r int, tpl *units.UnitTemplate) *units.Unit {
	u := units.NewUnit(s.NextUnitID(), team, q, r, tpl)
	s.unitsOrdered = append(s.unitsOrdered, u)
	s.unitByID[u.ID] = u
	return u
}

// RemoveUnit takes a destroyed unit off the map and forfeits any capture
// progress it held.
func (s *Session) RemoveUnit(id string) {
	u, ok := s.unitByID[id]
	if !ok {
		return
	}
	delete(s.unitByID, id)
	for i, cur := range s.unitsOrdered {
		if cur == u {
			s.unitsOrdered = append(s.unitsOrdered[:i], s.unitsOrdered[i+1:]...)
			break
		}
	}
	s.Rosters.ResetCaptureByUnit(id)
}

// Units returns every living unit in spawn order.
func (s *Session) Units() []*units.Unit {
	return s.unitsOrdered
}

// UnitByID returns the unit with the given id.
func (s *Session) UnitByID(id string) (*units.Unit, bool) {
	u, ok := s.unitByID[id]
	return u, ok
}

// UnitAt returns the unit standing on a hex.
func (s *Session) UnitAt(c hexgrid.AxialCoord) (*units.Unit, bool) {
	for _, u := range s.unitsOrdered {
		if u.Coord() == c {
			return u, true
		}
	}
	return nil, false
}

// UnitsOf returns a team's units in spawn order.
func (s *Session) UnitsOf(team string) []*units.Unit {
	var out []*units.Unit
	for _, u := range s.unitsOrdered {
		if u.Team == team {
			out = append(out, u)
		}
	}
	return out
}

// EnemiesOf returns every unit not on the given team, in spawn order.
func (s *Session) EnemiesOf(team string) []*units.Unit {
	var out []*units.Unit
	for _, u := range s.unitsOrdered {
		if u.Team != team {
			out = append(out, u)
		}
	}
	return out
}

// ResetTurn clears the acted flag for a team at the start of its turn.
func (s *Session) ResetTurn(team string) {
	for _, u := range s.unitsOrdered {
		if u.Team == team {
			u.HasActed = false
		}
	}
}

// View returns the read-only interface the AI consumes.
func (s *Session) View() *View {
	return &View{s: s}
}

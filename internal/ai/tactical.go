package ai

import (
	"strings"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/session"
	"github.com/talgya/hexfront/internal/tech"
	"github.com/talgya/hexfront/internal/units"
)

// TacticalAI runs four ordered phases each turn: research one tech, design
// around unused components, produce from front-line factories, then move,
// attack, and capture with every active unit.
type TacticalAI struct {
	rnd entropy.Source
}

func (a *TacticalAI) ID() string   { return "tactical" }
func (a *TacticalAI) Name() string { return "Tactical" }

func (a *TacticalAI) PlanTurn(view *session.View, team string) []Action {
	var actions []Action
	actions = append(actions, a.planResearch(view, team)...)
	actions = append(actions, a.planDesigns(view, team)...)
	actions = append(actions, a.planProduction(view, team)...)
	actions = append(actions, a.planUnitActions(view, team)...)
	return append(actions, EndTurn{})
}

// OnTechUnlocked designs around the freshly unlocked component right away
// rather than waiting for the next turn's design phase.
func (a *TacticalAI) OnTechUnlocked(view *session.View, team, techID string) []Action {
	def, ok := view.TechTree().Get(techID)
	if !ok {
		return nil
	}
	return a.designsFor(view, team, []string{def.Unlocks})
}

// researchWeight ranks a tech by the category its id names. Chassis unlock
// whole mobility classes, so they outrank weapons, which outrank systems.
func researchWeight(id string) int {
	switch {
	case strings.Contains(id, "chassis"):
		return 3
	case strings.Contains(id, "weapon"):
		return 2
	case strings.Contains(id, "system"), strings.Contains(id, "armor"), strings.Contains(id, "capture"):
		return 1
	default:
		return 0
	}
}

// planResearch purchases at most one tech: the highest-weighted affordable
// one, ties broken by lower cost.
func (a *TacticalAI) planResearch(view *session.View, team string) []Action {
	var best *tech.Definition
	bestWeight := -1
	for _, def := range view.AvailableTechs(team) {
		def := def
		w := researchWeight(def.ID)
		if w > bestWeight || (w == bestWeight && best != nil && def.Cost < best.Cost) {
			best = &def
			bestWeight = w
		}
	}
	if best == nil {
		return nil
	}
	return []Action{Research{TechID: best.ID}}
}

// planDesigns creates one template for every unlocked component no current
// design uses.
func (a *TacticalAI) planDesigns(view *session.View, team string) []Action {
	var unused []string
	for _, id := range view.UnlockedChassis(team) {
		if !componentInUse(view.Templates(team), id) {
			unused = append(unused, id)
		}
	}
	for _, id := range view.UnlockedWeapons(team) {
		if !componentInUse(view.Templates(team), id) {
			unused = append(unused, id)
		}
	}
	for _, id := range view.UnlockedSystems(team) {
		if !componentInUse(view.Templates(team), id) {
			unused = append(unused, id)
		}
	}
	return a.designsFor(view, team, unused)
}

func componentInUse(tpls []*units.UnitTemplate, id string) bool {
	for _, t := range tpls {
		if t.ChassisID == id || t.WeaponID == id {
			return true
		}
		for _, sid := range t.SystemIDs {
			if sid == id {
				return true
			}
		}
	}
	return false
}

// designsFor synthesizes a loadout featuring each listed component,
// greedily: first weapon that fits the remaining budget, then the first
// compatible system with any remaining capacity.
func (a *TacticalAI) designsFor(view *session.View, team string, componentIDs []string) []Action {
	var actions []Action
	cat := view.Catalog()
	for _, id := range componentIDs {
		var d *Design
		if _, ok := cat.ChassisByID(id); ok {
			d = a.designAroundChassis(view, team, id)
		} else if _, ok := cat.WeaponByID(id); ok {
			d = a.designAroundWeapon(view, team, id)
		} else if _, ok := cat.SystemByID(id); ok {
			d = a.designAroundSystem(view, team, id)
		}
		if d == nil {
			continue
		}
		if res := cat.ValidateTemplate(d.ChassisID, d.WeaponID, d.SystemIDs); !res.Valid {
			continue
		}
		d.Name = "MK-" + id + "-" + a.rnd.Suffix()
		actions = append(actions, *d)
	}
	return actions
}

func (a *TacticalAI) designAroundChassis(view *session.View, team, chassisID string) *Design {
	cat := view.Catalog()
	chassis, ok := cat.ChassisByID(chassisID)
	if !ok {
		return nil
	}
	remaining := chassis.MaxWeight
	d := &Design{ChassisID: chassisID}
	for _, wid := range view.UnlockedWeapons(team) {
		w, ok := cat.WeaponByID(wid)
		if !ok || w.Weight > remaining {
			continue
		}
		if len(w.RequiresChassis) > 0 && !containsID(w.RequiresChassis, chassisID) {
			continue
		}
		d.WeaponID = wid
		remaining -= w.Weight
		break
	}
	if sid, ok := a.firstFittingSystem(view, team, chassisID, remaining); ok {
		d.SystemIDs = []string{sid}
	}
	if d.WeaponID == "" && len(d.SystemIDs) == 0 {
		// Nothing fit the chassis: a bare hull can't fight or capture, so
		// there is no point registering it.
		return nil
	}
	return d
}

func (a *TacticalAI) designAroundWeapon(view *session.View, team, weaponID string) *Design {
	cat := view.Catalog()
	w, ok := cat.WeaponByID(weaponID)
	if !ok {
		return nil
	}
	for _, cid := range view.UnlockedChassis(team) {
		chassis, ok := cat.ChassisByID(cid)
		if !ok || w.Weight > chassis.MaxWeight {
			continue
		}
		if len(w.RequiresChassis) > 0 && !containsID(w.RequiresChassis, cid) {
			continue
		}
		d := &Design{ChassisID: cid, WeaponID: weaponID}
		if sid, ok := a.firstFittingSystem(view, team, cid, chassis.MaxWeight-w.Weight); ok {
			d.SystemIDs = []string{sid}
		}
		return d
	}
	return nil
}

func (a *TacticalAI) designAroundSystem(view *session.View, team, systemID string) *Design {
	cat := view.Catalog()
	sys, ok := cat.SystemByID(systemID)
	if !ok {
		return nil
	}
	for _, cid := range view.UnlockedChassis(team) {
		chassis, ok := cat.ChassisByID(cid)
		if !ok || sys.Weight > chassis.MaxWeight {
			continue
		}
		if len(sys.RequiresChassis) > 0 && !containsID(sys.RequiresChassis, cid) {
			continue
		}
		d := &Design{ChassisID: cid, SystemIDs: []string{systemID}}
		remaining := chassis.MaxWeight - sys.Weight
		for _, wid := range view.UnlockedWeapons(team) {
			w, ok := cat.WeaponByID(wid)
			if !ok || w.Weight > remaining {
				continue
			}
			if len(w.RequiresChassis) > 0 && !containsID(w.RequiresChassis, cid) {
				continue
			}
			d.WeaponID = wid
			break
		}
		return d
	}
	return nil
}

func (a *TacticalAI) firstFittingSystem(view *session.View, team, chassisID string, remaining int) (string, bool) {
	cat := view.Catalog()
	for _, sid := range view.UnlockedSystems(team) {
		sys, ok := cat.SystemByID(sid)
		if !ok || sys.Weight > remaining {
			continue
		}
		if len(sys.RequiresChassis) > 0 && !containsID(sys.RequiresChassis, chassisID) {
			continue
		}
		return sid, true
	}
	return "", false
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// planProduction sorts owned factories front line first (ascending distance
// to the nearest enemy unit or enemy building) and spends available funds
// top-down, buying the single most expensive affordable template at each
// idle factory.
func (a *TacticalAI) planProduction(view *session.View, team string) []Action {
	var factories []*buildings.Building
	for _, b := range view.BuildingsOwnedBy(team) {
		if b.Type == buildings.TypeFactory {
			factories = append(factories, b)
		}
	}
	if len(factories) == 0 {
		return nil
	}

	dist := func(b *buildings.Building) int {
		nearest := 1 << 30
		for _, e := range view.EnemiesOf(team) {
			if d := hexgrid.Distance(b.Coord(), e.Coord()); d < nearest {
				nearest = d
			}
		}
		for _, eb := range view.Buildings() {
			if eb.Owner == "" || eb.Owner == team {
				continue
			}
			if d := hexgrid.Distance(b.Coord(), eb.Coord()); d < nearest {
				nearest = d
			}
		}
		return nearest
	}
	// Insertion sort keeps equal-distance factories in placement order.
	for i := 1; i < len(factories); i++ {
		for j := i; j > 0 && dist(factories[j]) < dist(factories[j-1]); j-- {
			factories[j], factories[j-1] = factories[j-1], factories[j]
		}
	}

	funds := view.Resources(team).Funds
	var actions []Action
	for _, f := range factories {
		if _, occupied := view.UnitAt(f.Coord()); occupied {
			continue
		}
		var pick *units.UnitTemplate
		for _, t := range view.Templates(team) {
			if t.Cost <= funds && (pick == nil || t.Cost > pick.Cost) {
				pick = t
			}
		}
		if pick == nil {
			continue
		}
		funds -= pick.Cost
		actions = append(actions, Build{FactoryQ: f.Q, FactoryR: f.R, TemplateID: pick.ID})
	}
	return actions
}

// planUnitActions decides for each active unit: capture in place, attack,
// close-range capture, or advance. claimed keeps two units in the same
// pass from targeting one tile.
func (a *TacticalAI) planUnitActions(view *session.View, team string) []Action {
	var actions []Action
	claimed := make(map[hexgrid.AxialCoord]bool)

	for _, u := range view.ActiveUnitsOf(team) {
		if b, ok := view.BuildingAt(u.Coord()); ok && b.Owner != team && u.CanCapture {
			actions = append(actions, Capture{UnitID: u.ID})
			continue
		}

		reach := view.ReachableFor(u)

		var capOpt *captureOption
		if u.CanCapture {
			capOpt = bestCapture(view, u, reach, claimed)
		}
		var atkOpt *attackOption
		if u.Attack > 0 {
			atkOpt = bestAttack(view, u, reach, claimed)
		}

		switch {
		case capOpt != nil && atkOpt != nil && capOpt.distance > captureCloseRange:
			actions = append(actions, a.attackActions(u, atkOpt, claimed)...)
		case capOpt != nil && capOpt.distance <= captureCloseRange:
			actions = append(actions, a.captureActions(u, capOpt, claimed)...)
		case atkOpt != nil:
			actions = append(actions, a.attackActions(u, atkOpt, claimed)...)
		default:
			if dest, ok := bestAdvance(view, u, reach, claimed); ok {
				claimed[dest] = true
				actions = append(actions, Move{UnitID: u.ID, TargetQ: dest.Q, TargetR: dest.R})
			} else {
				actions = append(actions, Wait{UnitID: u.ID})
			}
		}
	}
	return actions
}

func (a *TacticalAI) attackActions(u *units.Unit, opt *attackOption, claimed map[hexgrid.AxialCoord]bool) []Action {
	var actions []Action
	if opt.firingPos != u.Coord() {
		claimed[opt.firingPos] = true
		actions = append(actions, Move{UnitID: u.ID, TargetQ: opt.firingPos.Q, TargetR: opt.firingPos.R})
	}
	return append(actions, Attack{UnitID: u.ID, TargetQ: opt.target.Q, TargetR: opt.target.R})
}

func (a *TacticalAI) captureActions(u *units.Unit, opt *captureOption, claimed map[hexgrid.AxialCoord]bool) []Action {
	var actions []Action
	dest := opt.building.Coord()
	if dest != u.Coord() {
		claimed[dest] = true
		actions = append(actions, Move{UnitID: u.ID, TargetQ: dest.Q, TargetR: dest.R})
	}
	return append(actions, Capture{UnitID: u.ID})
}

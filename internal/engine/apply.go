package engine

import (
	"log/slog"

	"github.com/talgya/hexfront/internal/ai"
	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/combat"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/units"
)

// apply validates and executes one action. The planner's view may be stale
// by the time an action lands — a blocker may have moved, a target may have
// died — so every precondition is rechecked here. Returns whether the
// action was applied and whether the turn is over.
func (e *Engine) apply(team string, ctrl ai.Controller, action ai.Action) (applied, end bool) {
	switch a := action.(type) {
	case ai.Move:
		return e.applyMove(team, a), false
	case ai.Attack:
		return e.applyAttack(team, a), false
	case ai.Capture:
		return e.applyCapture(team, a), false
	case ai.Wait:
		return e.applyWait(team, a), false
	case ai.Build:
		return e.applyBuild(team, a), false
	case ai.Research:
		return e.applyResearch(team, ctrl, a), false
	case ai.Design:
		return e.applyDesign(team, a), false
	case ai.EndTurn:
		return true, true
	default:
		slog.Warn("unknown action variant", "action", action.String())
		return false, false
	}
}

// activeUnit fetches a unit that belongs to the team and can still act.
func (e *Engine) activeUnit(team, unitID string) (*units.Unit, bool) {
	u, ok := e.sess.UnitByID(unitID)
	if !ok || u.Team != team || !u.Alive() || u.HasActed {
		return nil, false
	}
	return u, true
}

func (e *Engine) applyMove(team string, a ai.Move) bool {
	u, ok := e.activeUnit(team, a.UnitID)
	if !ok {
		return false
	}
	target := hexgrid.AxialCoord{Q: a.TargetQ, R: a.TargetR}
	if target == u.Coord() {
		return true
	}
	reach := e.sess.View().ReachableFor(u)
	if _, ok := reach[target]; !ok {
		return false
	}
	// Moving away forfeits any capture in progress.
	e.sess.Rosters.ResetCaptureByUnit(u.ID)
	u.MoveTo(target)
	return true
}

func (e *Engine) applyAttack(team string, a ai.Attack) bool {
	attacker, ok := e.activeUnit(team, a.UnitID)
	if !ok {
		return false
	}
	target := hexgrid.AxialCoord{Q: a.TargetQ, R: a.TargetR}
	defender, ok := e.sess.UnitAt(target)
	if !ok || defender.Team == team {
		return false
	}
	if !combat.InRange(attacker, target) {
		return false
	}

	res := combat.Execute(attacker, defender, e.rnd.Variance(e.cfg.CombatVariance), e.rnd.Variance(e.cfg.CombatVariance))
	attacker.HasActed = true
	if res.DefenderDied {
		e.sess.RemoveUnit(defender.ID)
	}
	if res.AttackerDied {
		e.sess.RemoveUnit(attacker.ID)
	}
	slog.Debug("attack resolved",
		"attacker", attacker.ID, "defender", defender.ID,
		"dealt", res.AttackerDamage, "counter", res.DefenderDamage,
		"defender_died", res.DefenderDied, "attacker_died", res.AttackerDied)
	return true
}

func (e *Engine) applyCapture(team string, a ai.Capture) bool {
	u, ok := e.activeUnit(team, a.UnitID)
	if !ok || !u.CanCapture {
		return false
	}
	b, ok := e.sess.Rosters.At(u.Coord())
	if !ok || b.Owner == team {
		return false
	}
	// Completion and the ownership flip are one step: no state where the
	// building is captured but ownerless.
	if b.ApplyCaptureProgress(u.ID, buildings.CapturePower) {
		prev := b.Owner
		b.Owner = team
		slog.Info("building captured", "team", team, "from", prev, "type", b.Type, "q", b.Q, "r", b.R)
	}
	u.HasActed = true
	return true
}

func (e *Engine) applyWait(team string, a ai.Wait) bool {
	u, ok := e.activeUnit(team, a.UnitID)
	if !ok {
		return false
	}
	u.HasActed = true
	return true
}

func (e *Engine) applyBuild(team string, a ai.Build) bool {
	coord := hexgrid.AxialCoord{Q: a.FactoryQ, R: a.FactoryR}
	b, ok := e.sess.Rosters.At(coord)
	if !ok || b.Type != buildings.TypeFactory || b.Owner != team {
		return false
	}
	if _, occupied := e.sess.UnitAt(coord); occupied {
		return false
	}
	tpl, ok := e.sess.Team(team).Templates.Get(a.TemplateID)
	if !ok {
		return false
	}
	if !e.sess.Ledger.Team(team).SpendFunds(tpl.Cost) {
		return false
	}
	u := e.sess.SpawnUnit(team, coord.Q, coord.R, tpl)
	u.HasActed = true // fresh units act next turn
	slog.Debug("unit produced", "team", team, "unit", u.ID, "template", tpl.Name)
	return true
}

func (e *Engine) applyResearch(team string, ctrl ai.Controller, a ai.Research) bool {
	state := e.sess.Team(team)
	res := state.Research.Purchase(e.sess.TechTree, a.TechID, e.sess.Ledger.Team(team))
	if !res.Success {
		slog.Debug("research rejected", "team", team, "tech", a.TechID, "reason", res.Err)
		return false
	}
	slog.Info("tech unlocked", "team", team, "tech", a.TechID, "component", res.Unlocked)

	if notifier, ok := ctrl.(ai.TechUnlockedNotifier); ok {
		for _, extra := range notifier.OnTechUnlocked(e.sess.View(), team, a.TechID) {
			// Reactions are limited to design follow-ups; anything else
			// waits for the next planning pass.
			if d, isDesign := extra.(ai.Design); isDesign {
				e.applyDesign(team, d)
			}
		}
	}
	return true
}

func (e *Engine) applyDesign(team string, a ai.Design) bool {
	state := e.sess.Team(team)
	if !state.Research.ChassisUnlocked(a.ChassisID) {
		return false
	}
	if a.WeaponID != "" && !state.Research.WeaponUnlocked(a.WeaponID) {
		return false
	}
	for _, sid := range a.SystemIDs {
		if !state.Research.SystemUnlocked(sid) {
			return false
		}
	}

	tpl, res := e.sess.Catalog.BuildTemplate(e.sess.NextTemplateID(), a.Name, a.ChassisID, a.WeaponID, a.SystemIDs)
	if !res.Valid {
		slog.Debug("design rejected", "team", team, "name", a.Name, "reason", res.Err)
		return false
	}
	if err := state.Templates.Register(tpl); err != nil {
		slog.Warn("design name collision", "team", team, "name", a.Name, "error", err)
		return false
	}
	slog.Debug("template registered", "team", team, "name", tpl.Name, "cost", tpl.Cost)
	return true
}

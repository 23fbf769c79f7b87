package ai

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/session"
)

// Phase names one of the tactical planning phases a doctrine rule can
// enable.
type Phase string

const (
	PhaseResearch   Phase = "research"
	PhaseDesign     Phase = "design"
	PhaseProduction Phase = "production"
	PhaseManeuver   Phase = "maneuver"
)

// DoctrineRule is a condition → phases pair. Rules fire in priority order;
// an exclusive rule blocks lower-priority rules in the same category, so a
// "hold back" rule can suppress a "spend everything" rule below it.
type DoctrineRule struct {
	Name         string
	Priority     int
	Category     string
	Exclusive    bool
	ConditionSrc string
	Phases       []Phase

	program *vm.Program
}

// RuleEnv is the expression environment: read-only numeric queries over the
// planning view.
type RuleEnv struct {
	View *session.View
	Team string
}

// Funds returns the team's fund balance.
func (e RuleEnv) Funds() int { return e.View.Resources(e.Team).Funds }

// Science returns the team's science balance.
func (e RuleEnv) Science() int { return e.View.Resources(e.Team).Science }

// UnitCount returns how many units the team fields.
func (e RuleEnv) UnitCount() int { return len(e.View.UnitsOf(e.Team)) }

// EnemyCount returns how many hostile units are on the map.
func (e RuleEnv) EnemyCount() int { return len(e.View.EnemiesOf(e.Team)) }

// FactoryCount returns how many factories the team owns.
func (e RuleEnv) FactoryCount() int {
	n := 0
	for _, b := range e.View.BuildingsOwnedBy(e.Team) {
		if b.Type == buildings.TypeFactory {
			n++
		}
	}
	return n
}

// AvailableTechCount returns how many techs the team could buy right now.
func (e RuleEnv) AvailableTechCount() int { return len(e.View.AvailableTechs(e.Team)) }

// TemplateCount returns how many designs the team has registered.
func (e RuleEnv) TemplateCount() int { return len(e.View.Templates(e.Team)) }

// DoctrineAI gates TacticalAI's phases behind an expr rule set. Which
// phases run each turn is decided by the doctrine, not hardcoded.
type DoctrineAI struct {
	rules []*DoctrineRule
	inner *TacticalAI
}

// NewDoctrineAI compiles every rule condition. A rule that does not compile
// fails construction; planning never sees an invalid program.
func NewDoctrineAI(rules []*DoctrineRule, rnd entropy.Source) (*DoctrineAI, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sorted := append([]*DoctrineRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })
	return &DoctrineAI{rules: sorted, inner: &TacticalAI{rnd: rnd}}, nil
}

func (a *DoctrineAI) ID() string   { return "doctrine" }
func (a *DoctrineAI) Name() string { return "Doctrine" }

func (a *DoctrineAI) PlanTurn(view *session.View, team string) []Action {
	env := RuleEnv{View: view, Team: team}
	enabled := make(map[Phase]bool)
	fired := make(map[string]bool) // category → exclusive rule already fired

	for _, r := range a.rules {
		if fired[r.Category] {
			continue
		}
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("doctrine rule error", "rule", r.Name, "error", err)
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}
		slog.Debug("doctrine rule fired", "rule", r.Name, "priority", r.Priority)
		for _, p := range r.Phases {
			enabled[p] = true
		}
		if r.Exclusive {
			fired[r.Category] = true
		}
	}

	var actions []Action
	if enabled[PhaseResearch] {
		actions = append(actions, a.inner.planResearch(view, team)...)
	}
	if enabled[PhaseDesign] {
		actions = append(actions, a.inner.planDesigns(view, team)...)
	}
	if enabled[PhaseProduction] {
		actions = append(actions, a.inner.planProduction(view, team)...)
	}
	if enabled[PhaseManeuver] {
		actions = append(actions, a.inner.planUnitActions(view, team)...)
	}
	return append(actions, EndTurn{})
}

// OnTechUnlocked defers to the tactical design reaction.
func (a *DoctrineAI) OnTechUnlocked(view *session.View, team, techID string) []Action {
	return a.inner.OnTechUnlocked(view, team, techID)
}

// DefaultDoctrine is a balanced rule set: research early, keep the design
// bench fresh, hold funds in reserve until there is enough for real
// production, and always maneuver.
func DefaultDoctrine() []*DoctrineRule {
	return []*DoctrineRule{
		{
			Name:         "open-tech-lead",
			Priority:     900,
			Category:     "economy",
			ConditionSrc: `Science() >= 10 && AvailableTechCount() > 0`,
			Phases:       []Phase{PhaseResearch},
		},
		{
			Name:         "retool-designs",
			Priority:     800,
			Category:     "economy",
			ConditionSrc: `TemplateCount() < 6`,
			Phases:       []Phase{PhaseDesign},
		},
		{
			Name:         "conserve-funds",
			Priority:     750,
			Category:     "production",
			Exclusive:    true,
			ConditionSrc: `Funds() < 200`,
			Phases:       nil, // blocks field-army below
		},
		{
			Name:         "field-army",
			Priority:     700,
			Category:     "production",
			Exclusive:    true,
			ConditionSrc: `FactoryCount() > 0`,
			Phases:       []Phase{PhaseProduction},
		},
		{
			Name:         "press-attack",
			Priority:     600,
			Category:     "maneuver",
			Exclusive:    true,
			ConditionSrc: `UnitCount() > 0`,
			Phases:       []Phase{PhaseManeuver},
		},
	}
}

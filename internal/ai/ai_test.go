package ai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/session"
	"github.com/talgya/hexfront/internal/tech"
	"github.com/talgya/hexfront/internal/units"
)

func newBattle(t *testing.T, radius int) *session.Session {
	t.Helper()
	m := hexgrid.NewMap(radius)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := hexgrid.AxialCoord{Q: q, R: r}
			if m.InBounds(c) {
				m.Set(hexgrid.Tile{Q: q, R: r, Type: hexgrid.TileGrass})
			}
		}
	}
	return session.New(m, units.DefaultCatalog(), tech.DefaultTree(), entropy.NewSource(1))
}

func starterTemplate(t *testing.T, s *session.Session, team string) *units.UnitTemplate {
	t.Helper()
	tpls := s.Team(team).Templates.All()
	if len(tpls) == 0 {
		t.Fatal("starter template missing")
	}
	return tpls[0]
}

func countEndTurns(actions []Action) (count int, last bool) {
	for i, a := range actions {
		if _, ok := a.(EndTurn); ok {
			count++
			last = i == len(actions)-1
		}
	}
	return count, last
}

func TestNoOpPlansOnlyEndTurn(t *testing.T) {
	s := newBattle(t, 3)
	s.Team("red")
	plan := (&NoOpAI{}).PlanTurn(s.View(), "red")
	if len(plan) != 1 {
		t.Fatalf("noop plan = %v, want a lone end-turn", plan)
	}
	if _, ok := plan[0].(EndTurn); !ok {
		t.Fatalf("noop plan = %v, want a lone end-turn", plan)
	}
}

func TestTacticalResearchesHighestWeightedTech(t *testing.T) {
	s := newBattle(t, 3)
	s.Team("red")
	s.Ledger.Team("red").AddScience(15)

	// Affordable: chassis-wheels (10) and system-toolkit (15). Chassis
	// outweigh systems regardless of cost.
	plan := (&TacticalAI{rnd: s.Rand}).PlanTurn(s.View(), "red")

	var researches []Research
	for _, a := range plan {
		if r, ok := a.(Research); ok {
			researches = append(researches, r)
		}
	}
	if len(researches) != 1 {
		t.Fatalf("%d research actions, want exactly 1", len(researches))
	}
	if researches[0].TechID != "chassis-wheels" {
		t.Fatalf("researched %s, want chassis-wheels", researches[0].TechID)
	}
	if n, last := countEndTurns(plan); n != 1 || !last {
		t.Fatalf("plan %v must finish with a single end-turn", plan)
	}
}

func TestTacticalCapturesUnderfoot(t *testing.T) {
	s := newBattle(t, 3)
	tpl := starterTemplate(t, s, "red")
	u := s.SpawnUnit("red", 0, 0, tpl)
	s.Rosters.Add(buildings.New(0, 0, buildings.TypeCity, ""))

	plan := (&TacticalAI{rnd: s.Rand}).PlanTurn(s.View(), "red")
	for _, a := range plan {
		if cap, ok := a.(Capture); ok {
			if cap.UnitID != u.ID {
				t.Fatalf("capture by %s, want %s", cap.UnitID, u.ID)
			}
			return
		}
	}
	t.Fatalf("plan %v has no capture for the unit standing on a neutral city", plan)
}

func TestTacticalPrefersKillShot(t *testing.T) {
	s := newBattle(t, 3)
	tpl := starterTemplate(t, s, "red")
	u := s.SpawnUnit("red", 0, 0, tpl)
	s.SpawnUnit("blue", 1, 0, tpl) // full health
	wounded := s.SpawnUnit("blue", 0, 1, tpl)
	wounded.Health = 1

	plan := (&TacticalAI{rnd: s.Rand}).PlanTurn(s.View(), "red")
	for _, a := range plan {
		if atk, ok := a.(Attack); ok {
			if atk.UnitID != u.ID || atk.TargetQ != 0 || atk.TargetR != 1 {
				t.Fatalf("attack = %+v, want the killable target at (0,1)", atk)
			}
			return
		}
	}
	t.Fatalf("plan %v has no attack despite two adjacent enemies", plan)
}

func TestTacticalProductionBuysMostExpensive(t *testing.T) {
	s := newBattle(t, 3)
	team := s.Team("red")
	scout, res := s.Catalog.BuildTemplate(s.NextTemplateID(), "Scout", "foot", "", nil)
	if !res.Valid {
		t.Fatalf("scout invalid: %s", res.Err)
	}
	if err := team.Templates.Register(scout); err != nil {
		t.Fatal(err)
	}
	s.Rosters.Add(buildings.New(2, 0, buildings.TypeFactory, "red"))
	s.Ledger.Team("red").AddFunds(300)

	plan := (&TacticalAI{rnd: s.Rand}).PlanTurn(s.View(), "red")
	infantry := starterTemplate(t, s, "red")
	for _, a := range plan {
		if b, ok := a.(Build); ok {
			if b.TemplateID != infantry.ID {
				t.Fatalf("built %s, want the pricier infantry %s", b.TemplateID, infantry.ID)
			}
			return
		}
	}
	t.Fatalf("plan %v has no build despite an idle factory and funds", plan)
}

func TestGreedyBuysCheapestAndShootsFirstTarget(t *testing.T) {
	s := newBattle(t, 3)
	team := s.Team("red")
	scout, res := s.Catalog.BuildTemplate(s.NextTemplateID(), "Scout", "foot", "", nil)
	if !res.Valid {
		t.Fatalf("scout invalid: %s", res.Err)
	}
	if err := team.Templates.Register(scout); err != nil {
		t.Fatal(err)
	}
	s.Rosters.Add(buildings.New(2, 0, buildings.TypeFactory, "red"))
	s.Ledger.Team("red").AddFunds(300)

	tpl := starterTemplate(t, s, "red")
	u := s.SpawnUnit("red", -2, 0, tpl)
	first := s.SpawnUnit("blue", -1, 0, tpl)
	wounded := s.SpawnUnit("blue", -2, 1, tpl)
	wounded.Health = 1

	plan := (&GreedyAI{rnd: s.Rand}).PlanTurn(s.View(), "red")

	sawBuild, sawAttack := false, false
	for _, a := range plan {
		switch act := a.(type) {
		case Build:
			sawBuild = true
			if act.TemplateID != scout.ID {
				t.Fatalf("built %s, want the cheapest scout %s", act.TemplateID, scout.ID)
			}
		case Attack:
			sawAttack = true
			// Greedy takes the first target in spawn order, not the kill.
			if act.UnitID != u.ID || act.TargetQ != first.Q || act.TargetR != first.R {
				t.Fatalf("attack = %+v, want the first-spawned enemy", act)
			}
		}
	}
	if !sawBuild || !sawAttack {
		t.Fatalf("plan %v missing build (%v) or attack (%v)", plan, sawBuild, sawAttack)
	}
}

func TestDoctrineConservesFunds(t *testing.T) {
	s := newBattle(t, 3)
	s.Team("red")
	s.Rosters.Add(buildings.New(2, 0, buildings.TypeFactory, "red"))
	s.Ledger.Team("red").AddFunds(150)

	d, err := NewDoctrineAI(DefaultDoctrine(), s.Rand)
	if err != nil {
		t.Fatalf("doctrine: %v", err)
	}

	// Under 200 funds the conserve rule blocks the production rule in the
	// same category.
	for _, a := range d.PlanTurn(s.View(), "red") {
		if _, ok := a.(Build); ok {
			t.Fatal("doctrine built a unit while conserving funds")
		}
	}

	s.Ledger.Team("red").AddFunds(150)
	sawBuild := false
	for _, a := range d.PlanTurn(s.View(), "red") {
		if _, ok := a.(Build); ok {
			sawBuild = true
		}
	}
	if !sawBuild {
		t.Fatal("doctrine should produce once funds clear the reserve")
	}
}

func TestTacticalDesignsAroundNewComponent(t *testing.T) {
	s := newBattle(t, 3)
	team := s.Team("red")
	res := s.Ledger.Team("red")
	res.AddScience(100)
	team.Research.Purchase(s.TechTree, "chassis-wheels", res)

	a := &TacticalAI{rnd: s.Rand}
	plan := a.OnTechUnlocked(s.View(), "red", "chassis-wheels")
	if len(plan) != 1 {
		t.Fatalf("reaction = %v, want one design", plan)
	}
	d, ok := plan[0].(Design)
	if !ok || d.ChassisID != "wheels" {
		t.Fatalf("reaction = %+v, want a design built around the wheels chassis", plan[0])
	}
	if v := s.Catalog.ValidateTemplate(d.ChassisID, d.WeaponID, d.SystemIDs); !v.Valid {
		t.Fatalf("synthesized design is invalid: %s", v.Err)
	}
}

func TestTacticalSkipsUnarmableChassis(t *testing.T) {
	// The pod has no carrying capacity, so no unlocked weapon or system
	// fits it. Designing around it must yield nothing rather than a bare
	// hull that can neither fight nor capture.
	yaml := `
chassis:
  - id: foot
    name: Foot
    max_weight: 2
    speed: 3
    base_cost: 100
    terrain_costs:
      grass: 1
      building: 1
  - id: pod
    name: Pod
    max_weight: 0
    speed: 8
    base_cost: 200
    terrain_costs:
      grass: 1
      building: 1
weapons:
  - id: mg
    name: Machine Gun
    weight: 1
    cost: 100
    attack: 3
    range: 1
systems:
  - id: capture
    name: Capture Kit
    weight: 1
    cost: 50
    grants_capture: true
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := units.LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	m := hexgrid.NewMap(3)
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			c := hexgrid.AxialCoord{Q: q, R: r}
			if m.InBounds(c) {
				m.Set(hexgrid.Tile{Q: q, R: r, Type: hexgrid.TileGrass})
			}
		}
	}
	s := session.New(m, cat, tech.DefaultTree(), entropy.NewSource(1))
	s.Team("red")

	a := &TacticalAI{rnd: s.Rand}
	if plan := a.designsFor(s.View(), "red", []string{"pod"}); len(plan) != 0 {
		t.Fatalf("designs = %v, want none for a chassis nothing fits on", plan)
	}
}

func TestControllerRegistry(t *testing.T) {
	ids := RegisteredControllers()
	want := []string{"doctrine", "greedy", "noop", "tactical"}
	if len(ids) != len(want) {
		t.Fatalf("registered = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("registered = %v, want %v", ids, want)
		}
	}
	if _, ok := NewController("tactical", entropy.NewSource(1)); !ok {
		t.Fatal("tactical controller should construct")
	}
	if _, ok := NewController("nonsense", entropy.NewSource(1)); ok {
		t.Fatal("unknown controller id should fail")
	}
}

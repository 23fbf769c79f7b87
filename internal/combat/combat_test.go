package combat

import (
	"testing"

	"github.com/talgya/hexfront/internal/units"
)

func soldier(health int) *units.Unit {
	return &units.Unit{ID: "s", Team: "red", Attack: 4, Range: 1, Health: health}
}

func tank(q, r int) *units.Unit {
	return &units.Unit{ID: "t", Team: "blue", Q: q, R: r, Attack: 7, Range: 1, Health: 10, Armored: true, ArmorPiercing: true}
}

func TestBaseDamageScalesWithHealth(t *testing.T) {
	prev := -1
	for health := 0; health <= 10; health++ {
		got := BaseExpectedDamage(soldier(health))
		if got < prev {
			t.Fatalf("damage decreased as health rose: health=%d dmg=%d prev=%d", health, got, prev)
		}
		prev = got
	}
	if got := BaseExpectedDamage(soldier(10)); got != 4 {
		t.Fatalf("full-health damage = %d, want 4", got)
	}
	if got := BaseExpectedDamage(soldier(5)); got != 2 {
		t.Fatalf("half-health damage = %d, want floor(4*5/10)=2", got)
	}
}

func TestArmorDividesByFive(t *testing.T) {
	s := soldier(10)
	tk := tank(1, 0)
	if got := Damage(s, tk, 0); got != 0 {
		t.Fatalf("non-AP vs armored = %d, want floor(4/5)=0", got)
	}
	// Armor-piercing ignores armor entirely.
	if got := Damage(tk, tk, 0); got != 7 {
		t.Fatalf("AP vs armored = %d, want 7", got)
	}
	// Armor without AP, larger gun: floored division.
	big := &units.Unit{Attack: 9, Health: 10}
	if got := Damage(big, tk, 0); got != 1 {
		t.Fatalf("attack 9 vs armored = %d, want floor(9/5)=1", got)
	}
}

func TestVarianceClampsAtZero(t *testing.T) {
	s := soldier(10)
	target := &units.Unit{Health: 10}
	if got := Damage(s, target, -10); got != 0 {
		t.Fatalf("damage = %d, want clamp to 0", got)
	}
	if got := Damage(s, target, 2); got != 6 {
		t.Fatalf("damage = %d, want 4+2", got)
	}
}

func TestExecuteSoldierVersusTank(t *testing.T) {
	s := soldier(10) // at (0,0)
	tk := tank(1, 0) // adjacent

	res := Execute(s, tk, 0, 0)
	if res.AttackerDamage != 0 {
		t.Fatalf("soldier dealt %d, want 0 against armor", res.AttackerDamage)
	}
	if res.DefenderDamage != 7 {
		t.Fatalf("tank countered for %d, want full 7", res.DefenderDamage)
	}
	if res.DefenderDied || res.AttackerDied {
		t.Fatalf("nobody should die: %+v", res)
	}
	if s.Health != 3 {
		t.Fatalf("soldier health = %d, want 3", s.Health)
	}
	if tk.Health != 10 {
		t.Fatalf("tank health = %d, want 10", tk.Health)
	}
}

func TestExecuteNoCounterWhenOutOfRange(t *testing.T) {
	artillery := &units.Unit{ID: "a", Team: "red", Q: 0, R: 0, Attack: 5, Range: 3, Health: 10}
	rifle := &units.Unit{ID: "r", Team: "blue", Q: 3, R: 0, Attack: 3, Range: 1, Health: 10}

	res := Execute(artillery, rifle, 0, 0)
	if res.AttackerDamage != 5 {
		t.Fatalf("artillery dealt %d, want 5", res.AttackerDamage)
	}
	if res.DefenderDamage != 0 {
		t.Fatalf("rifle countered for %d from 3 hexes with range 1", res.DefenderDamage)
	}
}

func TestExecuteNoCounterWhenDefenderDies(t *testing.T) {
	killer := &units.Unit{ID: "k", Team: "red", Q: 0, R: 0, Attack: 10, Range: 1, Health: 10}
	victim := &units.Unit{ID: "v", Team: "blue", Q: 1, R: 0, Attack: 10, Range: 1, Health: 5}

	res := Execute(killer, victim, 0, 0)
	if !res.DefenderDied {
		t.Fatal("victim at 5 health should die to 10 damage")
	}
	if res.DefenderDamage != 0 {
		t.Fatal("the dead do not counter-attack")
	}
	if victim.Health != 0 {
		t.Fatalf("victim health = %d, want clamp at 0", victim.Health)
	}
}

// Package combat resolves attacks: health-scaled damage, armor against
// non-piercing weapons, and the defender's counter-attack.
package combat

import (
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/units"
)

// armorDivisor applies when the defender is armored and the attacker's
// weapon is not armor-piercing.
const armorDivisor = 5

// BaseExpectedDamage is the attacker's output at full variance-free
// strength: attack scaled by remaining health, floored. A unit at half
// health hits half as hard.
func BaseExpectedDamage(attacker *units.Unit) int {
	return attacker.Attack * attacker.Health / units.MaxHealth
}

// Damage computes the final damage the attacker deals the defender.
// Variance may be negative; the result never drops below zero.
func Damage(attacker, defender *units.Unit, variance int) int {
	dmg := BaseExpectedDamage(attacker)
	if defender.Armored && !attacker.ArmorPiercing {
		dmg /= armorDivisor
	}
	dmg += variance
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

// InRange reports whether the unit can hit a target hex from its current
// position. Same distance rule as movement; evaluated independently per
// direction, so an artillery piece can fire without exposing itself.
func InRange(u *units.Unit, target hexgrid.AxialCoord) bool {
	return hexgrid.Distance(u.Coord(), target) <= u.Range
}

// Result reports what an exchange did to both sides.
type Result struct {
	AttackerDamage int // dealt by the attacker
	DefenderDamage int // dealt by the defender's counter, zero if none
	AttackerDied   bool
	DefenderDied   bool
}

// Execute applies a full exchange: the attacker strikes, then the defender
// counters if it survived and the attacker stands within the defender's own
// range. Both units' health is mutated; removal of the dead is the caller's
// job.
func Execute(attacker, defender *units.Unit, attackerVariance, defenderVariance int) Result {
	var res Result

	res.AttackerDamage = Damage(attacker, defender, attackerVariance)
	res.DefenderDied = defender.ApplyDamage(res.AttackerDamage)

	if !res.DefenderDied && InRange(defender, attacker.Coord()) {
		res.DefenderDamage = Damage(defender, attacker, defenderVariance)
		res.AttackerDied = attacker.ApplyDamage(res.DefenderDamage)
	}
	return res
}

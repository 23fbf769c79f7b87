package ai

import (
	"sort"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/combat"
	"github.com/talgya/hexfront/internal/hexgrid"
	"github.com/talgya/hexfront/internal/pathfind"
	"github.com/talgya/hexfront/internal/session"
	"github.com/talgya/hexfront/internal/units"
)

// Attack scoring constants. Damage dealt dominates, kills get a large
// bonus, expected counter-fire is a penalty, and finishing wounded targets
// is rewarded.
const (
	scorePerDamage    = 10
	scoreKillBonus    = 150
	scorePerCounter   = 3
	scorePerWoundGap  = 8
	captureCloseRange = 2
)

// buildingTypeValue ranks capture targets by kind.
func buildingTypeValue(t buildings.Type) int {
	switch t {
	case buildings.TypeCapital:
		return 10
	case buildings.TypeFactory:
		return 3
	case buildings.TypeCity:
		return 2
	default:
		return 1
	}
}

// movePriority weights a target for the fallback advance. Values above 100
// are squared so strategic buildings dominate over mere proximity.
func movePriority(p int) float64 {
	if p > 100 {
		return float64(p) * float64(p)
	}
	return float64(p)
}

// orderedReachable flattens a reachable set into a deterministic evaluation
// order: cheapest first, then by coordinate.
func orderedReachable(reach map[hexgrid.AxialCoord]pathfind.Reachable) []pathfind.Reachable {
	out := make([]pathfind.Reachable, 0, len(reach))
	for _, r := range reach {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

// captureOption is the best reachable capture target for one unit.
type captureOption struct {
	building *buildings.Building
	moveCost float64
	distance int // hex distance from the unit's current position
	score    float64
}

// bestCapture scores every reachable non-own building as typeValue*1000
// minus the path cost to reach it. Claimed tiles are skipped. Requires the
// unit to be capture-capable; callers check that.
func bestCapture(view *session.View, u *units.Unit, reach map[hexgrid.AxialCoord]pathfind.Reachable, claimed map[hexgrid.AxialCoord]bool) *captureOption {
	var best *captureOption
	for _, b := range view.Buildings() {
		if b.Owner == u.Team {
			continue
		}
		c := b.Coord()
		if claimed[c] {
			continue
		}
		r, ok := reach[c]
		if !ok {
			continue
		}
		score := float64(buildingTypeValue(b.Type))*1000 - r.Cost
		if best == nil || score > best.score {
			best = &captureOption{
				building: b,
				moveCost: r.Cost,
				distance: hexgrid.Distance(u.Coord(), c),
				score:    score,
			}
		}
	}
	return best
}

// attackOption is the best (firing position, target) pair for one unit.
type attackOption struct {
	firingPos hexgrid.AxialCoord
	target    *units.Unit
	damage    int
	score     int
}

// bestAttack evaluates every enemy from the unit's current hex first, then
// from each reachable tile in deterministic order. Strictly higher scores
// win, so the first-evaluated pair takes ties.
func bestAttack(view *session.View, u *units.Unit, reach map[hexgrid.AxialCoord]pathfind.Reachable, claimed map[hexgrid.AxialCoord]bool) *attackOption {
	enemies := view.EnemiesOf(u.Team)
	if len(enemies) == 0 {
		return nil
	}

	positions := []hexgrid.AxialCoord{u.Coord()}
	for _, r := range orderedReachable(reach) {
		c := hexgrid.AxialCoord{Q: r.Q, R: r.R}
		if c == u.Coord() || claimed[c] {
			continue
		}
		positions = append(positions, c)
	}

	var best *attackOption
	for _, pos := range positions {
		for _, enemy := range enemies {
			if hexgrid.Distance(pos, enemy.Coord()) > u.Range {
				continue
			}
			score, damage := scoreAttack(u, enemy, pos)
			if best == nil || score > best.score {
				best = &attackOption{firingPos: pos, target: enemy, damage: damage, score: score}
			}
		}
	}
	return best
}

// scoreAttack rates one exchange. Counter-damage counts only when the
// defender would survive and holds the firing position in its own range.
func scoreAttack(attacker, defender *units.Unit, firingPos hexgrid.AxialCoord) (score, damage int) {
	damage = combat.Damage(attacker, defender, 0)

	score = damage * scorePerDamage
	if damage >= defender.Health {
		score += scoreKillBonus
	} else if hexgrid.Distance(defender.Coord(), firingPos) <= defender.Range {
		counter := combat.Damage(defender, attacker, 0)
		score -= counter * scorePerCounter
	}
	if defender.Health < units.MaxHealth {
		score += (units.MaxHealth - defender.Health) * scorePerWoundGap
	}
	return score, damage
}

// advanceTarget is one point of interest for the fallback move.
type advanceTarget struct {
	coord    hexgrid.AxialCoord
	priority int
}

// advanceTargets collects every enemy unit and capturable building with a
// movement priority. Buildings outrank units; the capital outranks all.
func advanceTargets(view *session.View, team string) []advanceTarget {
	var out []advanceTarget
	for _, b := range view.Buildings() {
		if b.Owner == team {
			continue
		}
		p := 110
		switch b.Type {
		case buildings.TypeCapital:
			p = 200
		case buildings.TypeFactory:
			p = 150
		case buildings.TypeCity:
			p = 120
		}
		out = append(out, advanceTarget{coord: b.Coord(), priority: p})
	}
	for _, e := range view.EnemiesOf(team) {
		out = append(out, advanceTarget{coord: e.Coord(), priority: 50})
	}
	return out
}

// bestAdvance picks the reachable tile with the highest summed pull toward
// every visible target. Returns false when nothing beats standing still.
func bestAdvance(view *session.View, u *units.Unit, reach map[hexgrid.AxialCoord]pathfind.Reachable, claimed map[hexgrid.AxialCoord]bool) (hexgrid.AxialCoord, bool) {
	targets := advanceTargets(view, u.Team)
	if len(targets) == 0 {
		return hexgrid.AxialCoord{}, false
	}

	pull := func(c hexgrid.AxialCoord) float64 {
		total := 0.0
		for _, t := range targets {
			total += movePriority(t.priority) / float64(hexgrid.Distance(c, t.coord)+1)
		}
		return total
	}

	bestCoord := u.Coord()
	bestScore := pull(bestCoord)
	moved := false
	for _, r := range orderedReachable(reach) {
		c := hexgrid.AxialCoord{Q: r.Q, R: r.R}
		if c == u.Coord() || claimed[c] {
			continue
		}
		if s := pull(c); s > bestScore {
			bestCoord = c
			bestScore = s
			moved = true
		}
	}
	return bestCoord, moved
}

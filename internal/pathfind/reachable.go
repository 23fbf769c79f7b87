package pathfind

import (
	"container/heap"

	"github.com/talgya/hexfront/internal/hexgrid"
)

// Reachable is one position a unit can end its move on this turn.
type Reachable struct {
	Q    int
	R    int
	Cost float64
}

// ReachablePositions runs a budget-limited Dijkstra from start. Every entry
// in the result satisfies cost <= speed. Blocked positions cannot be entered
// at all; occupied positions can be moved through but not ended on, so they
// are stripped from the final result — except the start tile itself, which a
// unit may always stay on.
func ReachablePositions(src hexgrid.TileSource, start hexgrid.AxialCoord, speed float64, costs hexgrid.TerrainCosts, blocked, occupied map[hexgrid.AxialCoord]bool) map[hexgrid.AxialCoord]Reachable {
	result := make(map[hexgrid.AxialCoord]Reachable)
	if !passable(src, start, costs, blocked) {
		return result
	}

	seq := 0
	open := &frontier{{coord: start, g: 0, f: 0, seq: 0}}
	heap.Init(open)
	settled := make(map[hexgrid.AxialCoord]bool)
	bestCost := map[hexgrid.AxialCoord]float64{start: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if settled[cur.coord] {
			continue
		}
		settled[cur.coord] = true
		result[cur.coord] = Reachable{Q: cur.coord.Q, R: cur.coord.R, Cost: cur.g}

		for _, next := range cur.coord.Neighbors() {
			if settled[next] || !passable(src, next, costs, blocked) {
				continue
			}
			tile, _ := src.TileAt(next.Q, next.R)
			g := cur.g + costs.Cost(tile.Type)
			if g > speed {
				continue
			}
			if prev, seen := bestCost[next]; seen && prev <= g {
				continue
			}
			seq++
			bestCost[next] = g
			heap.Push(open, &searchNode{coord: next, g: g, f: g, seq: seq})
		}
	}

	for c := range occupied {
		if c != start {
			delete(result, c)
		}
	}
	return result
}

// Package pathfind implements movement search over the hex grid: single-path
// A* and a budget-limited reachable-set search. Both take terrain costs as a
// parameter so one map serves every mobility profile.
package pathfind

import (
	"container/heap"

	"github.com/talgya/hexfront/internal/hexgrid"
)

// Path is a walkable route including the start tile. TotalCost sums the
// terrain cost of every tile entered (the start tile costs nothing).
type Path struct {
	Steps     []hexgrid.AxialCoord
	TotalCost float64
}

// Length returns the number of tiles in the path, start included.
func (p *Path) Length() int {
	return len(p.Steps)
}

// Goal returns the final tile of the path.
func (p *Path) Goal() hexgrid.AxialCoord {
	return p.Steps[len(p.Steps)-1]
}

type searchNode struct {
	coord  hexgrid.AxialCoord
	g      float64 // cumulative cost from start
	f      float64 // g + heuristic
	seq    int     // insertion order, breaks equal-f ties FIFO
	parent *searchNode
	index  int // heap index
}

// frontier orders nodes by f, then by insertion order so that equal-f nodes
// pop in the order they were pushed. Search results must be reproducible.
type frontier []*searchNode

func (fr frontier) Len() int { return len(fr) }
func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	return fr[i].seq < fr[j].seq
}
func (fr frontier) Swap(i, j int) {
	fr[i], fr[j] = fr[j], fr[i]
	fr[i].index = i
	fr[j].index = j
}
func (fr *frontier) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*fr)
	*fr = append(*fr, n)
}
func (fr *frontier) Pop() any {
	old := *fr
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*fr = old[:len(old)-1]
	return n
}

// passable reports whether the coordinate holds a tile this profile can
// enter: the tile exists, its cost is finite, and it is not blocked.
func passable(src hexgrid.TileSource, c hexgrid.AxialCoord, costs hexgrid.TerrainCosts, blocked map[hexgrid.AxialCoord]bool) bool {
	if blocked[c] {
		return false
	}
	tile, ok := src.TileAt(c.Q, c.R)
	if !ok {
		return false
	}
	return costs.Passable(tile.Type)
}

// FindPath runs A* from start to goal using the hex distance heuristic.
// Returns false when no route exists, or when start or goal is itself
// impassable or blocked.
func FindPath(src hexgrid.TileSource, start, goal hexgrid.AxialCoord, costs hexgrid.TerrainCosts, blocked map[hexgrid.AxialCoord]bool) (*Path, bool) {
	if !passable(src, start, costs, blocked) || !passable(src, goal, costs, blocked) {
		return nil, false
	}

	seq := 0
	startNode := &searchNode{
		coord: start,
		g:     0,
		f:     float64(hexgrid.Distance(start, goal)),
		seq:   seq,
	}
	open := &frontier{startNode}
	heap.Init(open)

	best := map[hexgrid.AxialCoord]*searchNode{start: startNode}
	closed := make(map[hexgrid.AxialCoord]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if cur.coord == goal {
			return rebuild(cur), true
		}
		if closed[cur.coord] {
			continue
		}
		closed[cur.coord] = true

		for _, next := range cur.coord.Neighbors() {
			if closed[next] || !passable(src, next, costs, blocked) {
				continue
			}
			tile, _ := src.TileAt(next.Q, next.R)
			g := cur.g + costs.Cost(tile.Type)

			prev, seen := best[next]
			if seen && prev.g <= g {
				continue
			}
			seq++
			node := &searchNode{
				coord:  next,
				g:      g,
				f:      g + float64(hexgrid.Distance(next, goal)),
				seq:    seq,
				parent: cur,
			}
			best[next] = node
			heap.Push(open, node)
		}
	}
	return nil, false
}

func rebuild(n *searchNode) *Path {
	total := n.g
	var steps []hexgrid.AxialCoord
	for cur := n; cur != nil; cur = cur.parent {
		steps = append(steps, cur.coord)
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &Path{Steps: steps, TotalCost: total}
}

package buildings

import "github.com/talgya/hexfront/internal/hexgrid"

// Roster holds every building on the map in placement order, with a
// coordinate index for lookups.
type Roster struct {
	ordered []*Building
	byCoord map[hexgrid.AxialCoord]*Building
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{byCoord: make(map[hexgrid.AxialCoord]*Building)}
}

// Add places a building. A second building on the same hex replaces the
// first; maps are generated with at most one structure per hex.
func (r *Roster) Add(b *Building) {
	if prev, ok := r.byCoord[b.Coord()]; ok {
		for i, cur := range r.ordered {
			if cur == prev {
				r.ordered[i] = b
				break
			}
		}
		r.byCoord[b.Coord()] = b
		return
	}
	r.ordered = append(r.ordered, b)
	r.byCoord[b.Coord()] = b
}

// At returns the building on the given hex.
func (r *Roster) At(c hexgrid.AxialCoord) (*Building, bool) {
	b, ok := r.byCoord[c]
	return b, ok
}

// All returns every building in placement order. Callers must not mutate
// the returned slice.
func (r *Roster) All() []*Building {
	return r.ordered
}

// OwnedBy returns the buildings owned by a team, in placement order.
func (r *Roster) OwnedBy(team string) []*Building {
	var out []*Building
	for _, b := range r.ordered {
		if b.Owner == team {
			out = append(out, b)
		}
	}
	return out
}

// OfType returns the buildings of one kind, in placement order.
func (r *Roster) OfType(typ Type) []*Building {
	var out []*Building
	for _, b := range r.ordered {
		if b.Type == typ {
			out = append(out, b)
		}
	}
	return out
}

// ResetCaptureByUnit clears capture progress on the one building the unit
// was working on, if any. Called when the unit dies or moves away. A unit
// with no capture in progress is a no-op.
func (r *Roster) ResetCaptureByUnit(unitID string) {
	for _, b := range r.ordered {
		if b.CapturingUnitID == unitID {
			b.resetCapture()
			return
		}
	}
}

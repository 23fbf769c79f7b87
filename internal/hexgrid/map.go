package hexgrid

import "fmt"

// TileSource is the read interface pathfinding consumes. The second return
// is false when no tile exists at the coordinate.
type TileSource interface {
	TileAt(q, r int) (Tile, bool)
}

// Map holds the battlefield hex grid.
// A hex grid of radius R contains hexes where max(|q|, |r|, |s|) <= R.
type Map struct {
	Tiles  map[AxialCoord]Tile `json:"-"`
	Radius int                 `json:"radius"`
}

// NewMap creates an empty map with the given radius.
func NewMap(radius int) *Map {
	return &Map{
		Tiles:  make(map[AxialCoord]Tile),
		Radius: radius,
	}
}

// TileAt returns the tile at (q, r), or false if out of bounds.
func (m *Map) TileAt(q, r int) (Tile, bool) {
	t, ok := m.Tiles[AxialCoord{Q: q, R: r}]
	return t, ok
}

// Set places a tile at its own coordinate.
func (m *Map) Set(t Tile) {
	m.Tiles[t.Coord()] = t
}

// InBounds returns true if the coordinate is within the map radius.
func (m *Map) InBounds(c AxialCoord) bool {
	q, r, s := abs(c.Q), abs(c.R), abs(c.S())
	max := q
	if r > max {
		max = r
	}
	if s > max {
		max = s
	}
	return max <= m.Radius
}

// TileCount returns the total number of tiles in the map.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, tiles=%d)", m.Radius, m.TileCount())
}

package hexgrid

import "math"

// TileType enumerates the terrain of a single hex.
type TileType string

// Terrain types. Building tiles mark the footprint of a structure; the
// structure itself is tracked separately.
const (
	TileGrass    TileType = "grass"
	TileWoods    TileType = "woods"
	TileMountain TileType = "mountain"
	TileWater    TileType = "water"
	TileRoad     TileType = "road"
	TileBuilding TileType = "building"
)

// Tile is a single hex on the battlefield. Immutable once generated.
type Tile struct {
	Q    int      `json:"q"`
	R    int      `json:"r"`
	Type TileType `json:"type"`
}

// Coord returns the tile's position.
func (t Tile) Coord() AxialCoord {
	return AxialCoord{Q: t.Q, R: t.R}
}

// Impassable is the movement cost of terrain a mobility profile cannot enter.
var Impassable = math.Inf(1)

// TerrainCosts maps tile type to movement cost for one mobility profile.
// Costs are per chassis, not per map, so different unit kinds share a single
// map representation. A missing entry means impassable.
type TerrainCosts map[TileType]float64

// Cost returns the movement cost for entering a tile of the given type.
func (tc TerrainCosts) Cost(t TileType) float64 {
	c, ok := tc[t]
	if !ok {
		return Impassable
	}
	return c
}

// Passable reports whether the tile type can be entered at all.
func (tc TerrainCosts) Passable(t TileType) bool {
	return !math.IsInf(tc.Cost(t), 1)
}

// Clone returns an independent copy. Profiles are never shared mutably
// across units with different mobility.
func (tc TerrainCosts) Clone() TerrainCosts {
	out := make(TerrainCosts, len(tc))
	for k, v := range tc {
		out[k] = v
	}
	return out
}

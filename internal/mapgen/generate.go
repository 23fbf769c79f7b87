// Package mapgen builds battlefields from layered simplex noise: elevation
// picks water and mountains, moisture picks woods, and a road is carved
// between the two capitals.
package mapgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/hexgrid"
)

// Config holds generation parameters.
type Config struct {
	Radius        int
	Seed          int64
	WaterLevel    float64 // elevation below this is water
	MountainLevel float64 // elevation above this is mountain
	WoodsMoisture float64 // moisture above this on open ground is woods
	Teams         []string
}

// DefaultConfig returns a battlefield sized for a two-team skirmish.
func DefaultConfig(teams []string) Config {
	return Config{
		Radius:        8,
		Seed:          1,
		WaterLevel:    0.22,
		MountainLevel: 0.78,
		WoodsMoisture: 0.62,
		Teams:         teams,
	}
}

// noiseScale stretches coordinates so features span several hexes.
const noiseScale = 0.18

// Generate creates the map and its buildings. Each team gets a capital on
// the map edge with a factory beside it; cities and labs scatter over the
// open ground between them.
func Generate(cfg Config) (*hexgrid.Map, *buildings.Roster) {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	moistNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	m := hexgrid.NewMap(cfg.Radius)
	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			c := hexgrid.AxialCoord{Q: q, R: r}
			if !m.InBounds(c) {
				continue
			}
			elev := elevNoise.Eval2(float64(q)*noiseScale, float64(r)*noiseScale)
			moist := moistNoise.Eval2(float64(q)*noiseScale, float64(r)*noiseScale)

			typ := hexgrid.TileGrass
			switch {
			case elev < cfg.WaterLevel:
				typ = hexgrid.TileWater
			case elev > cfg.MountainLevel:
				typ = hexgrid.TileMountain
			case moist > cfg.WoodsMoisture:
				typ = hexgrid.TileWoods
			}
			m.Set(hexgrid.Tile{Q: q, R: r, Type: typ})
		}
	}

	roster := buildings.NewRoster()
	anchors := capitalAnchors(cfg.Radius, len(cfg.Teams))
	for i, at := range anchors {
		placeCapital(m, roster, at, cfg.Teams[i])
	}
	if len(anchors) >= 2 {
		carveRoad(m, anchors[0], anchors[1])
	}

	scatterNeutrals(m, roster, cfg)
	return m, roster
}

// capitalAnchors spreads n capitals evenly around the edge ring, so two
// teams start on opposite sides and larger seatings still get one anchor
// each. n is capped at the ring size on very small maps.
func capitalAnchors(radius, n int) []hexgrid.AxialCoord {
	edge := radius - 1
	if edge < 1 {
		edge = 1
	}
	ring := ringCoords(edge)
	if n > len(ring) {
		n = len(ring)
	}
	anchors := make([]hexgrid.AxialCoord, 0, n)
	for i := 0; i < n; i++ {
		anchors = append(anchors, ring[i*len(ring)/n])
	}
	return anchors
}

// ringCoords walks the hexes at exactly the given cube distance from the
// origin, in a fixed clockwise order.
func ringCoords(radius int) []hexgrid.AxialCoord {
	out := make([]hexgrid.AxialCoord, 0, 6*radius)
	cur := hexgrid.AxialCoord{Q: -radius, R: radius}
	for _, dir := range hexgrid.NeighborDirections {
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = hexgrid.AxialCoord{Q: cur.Q + dir.Q, R: cur.R + dir.R}
		}
	}
	return out
}

// placeCapital stamps a capital and an adjacent factory, flattening the
// terrain underneath.
func placeCapital(m *hexgrid.Map, roster *buildings.Roster, at hexgrid.AxialCoord, team string) {
	m.Set(hexgrid.Tile{Q: at.Q, R: at.R, Type: hexgrid.TileBuilding})
	roster.Add(buildings.New(at.Q, at.R, buildings.TypeCapital, team))

	for _, n := range at.Neighbors() {
		if !m.InBounds(n) {
			continue
		}
		if _, taken := roster.At(n); taken {
			continue
		}
		m.Set(hexgrid.Tile{Q: n.Q, R: n.R, Type: hexgrid.TileBuilding})
		roster.Add(buildings.New(n.Q, n.R, buildings.TypeFactory, team))
		return
	}
}

// carveRoad lays road tiles along the straight hex line between two points,
// skipping water and existing buildings.
func carveRoad(m *hexgrid.Map, from, to hexgrid.AxialCoord) {
	steps := hexgrid.Distance(from, to)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		fq := float64(from.Q) + (float64(to.Q)-float64(from.Q))*t
		fr := float64(from.R) + (float64(to.R)-float64(from.R))*t
		c := hexgrid.Round(fq, fr)
		tile, ok := m.TileAt(c.Q, c.R)
		if !ok || tile.Type == hexgrid.TileWater || tile.Type == hexgrid.TileBuilding {
			continue
		}
		m.Set(hexgrid.Tile{Q: c.Q, R: c.R, Type: hexgrid.TileRoad})
	}
}

// scatterNeutrals drops unowned cities and labs on open ground. Placement
// is seeded, so the same config reproduces the same map.
func scatterNeutrals(m *hexgrid.Map, roster *buildings.Roster, cfg Config) {
	rnd := entropy.NewSource(uint64(cfg.Seed) + 7)
	cities := cfg.Radius
	labs := cfg.Radius / 2

	attempts := (cities + labs) * 20
	for attempts > 0 && (cities > 0 || labs > 0) {
		attempts--
		q := rnd.IntN(2*cfg.Radius+1) - cfg.Radius
		r := rnd.IntN(2*cfg.Radius+1) - cfg.Radius
		c := hexgrid.AxialCoord{Q: q, R: r}
		tile, ok := m.TileAt(q, r)
		if !ok || tile.Type == hexgrid.TileWater || tile.Type == hexgrid.TileMountain || tile.Type == hexgrid.TileBuilding {
			continue
		}
		if _, taken := roster.At(c); taken {
			continue
		}
		m.Set(hexgrid.Tile{Q: q, R: r, Type: hexgrid.TileBuilding})
		if cities > 0 {
			roster.Add(buildings.New(q, r, buildings.TypeCity, ""))
			cities--
		} else {
			roster.Add(buildings.New(q, r, buildings.TypeLab, ""))
			labs--
		}
	}
}

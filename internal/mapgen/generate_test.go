package mapgen

import (
	"testing"

	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/hexgrid"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig([]string{"red", "blue"})
	cfg.Seed = 42

	m1, r1 := Generate(cfg)
	m2, r2 := Generate(cfg)

	if m1.TileCount() != m2.TileCount() {
		t.Fatalf("tile counts differ: %d vs %d", m1.TileCount(), m2.TileCount())
	}
	for coord, tile := range m1.Tiles {
		if other, ok := m2.TileAt(coord.Q, coord.R); !ok || other.Type != tile.Type {
			t.Fatalf("tile at %v differs between runs of the same seed", coord)
		}
	}
	b1, b2 := r1.All(), r2.All()
	if len(b1) != len(b2) {
		t.Fatalf("building counts differ: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if *b1[i] != *b2[i] {
			t.Fatalf("building %d differs: %+v vs %+v", i, b1[i], b2[i])
		}
	}
}

func TestGenerateSeedsChangeTerrain(t *testing.T) {
	cfg := DefaultConfig([]string{"red", "blue"})
	cfg.Seed = 1
	m1, _ := Generate(cfg)
	cfg.Seed = 2
	m2, _ := Generate(cfg)

	differs := false
	for coord, tile := range m1.Tiles {
		if other, ok := m2.TileAt(coord.Q, coord.R); ok && other.Type != tile.Type {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestGeneratePlacesCapitalPerTeam(t *testing.T) {
	teams := []string{"red", "blue"}
	m, roster := Generate(DefaultConfig(teams))

	capitals := roster.OfType(buildings.TypeCapital)
	if len(capitals) != len(teams) {
		t.Fatalf("%d capitals, want %d", len(capitals), len(teams))
	}
	owners := map[string]bool{}
	for _, c := range capitals {
		owners[c.Owner] = true
		if !m.InBounds(c.Coord()) {
			t.Fatalf("capital at %v is out of bounds", c.Coord())
		}
		// Every capital comes with an adjacent owned factory.
		found := false
		for _, n := range c.Coord().Neighbors() {
			if b, ok := roster.At(n); ok && b.Type == buildings.TypeFactory && b.Owner == c.Owner {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("capital of %s has no adjacent factory", c.Owner)
		}
	}
	for _, team := range teams {
		if !owners[team] {
			t.Fatalf("no capital for team %s", team)
		}
	}
}

func TestGenerateSeatsManyTeams(t *testing.T) {
	teams := []string{"red", "blue", "green", "yellow", "violet", "teal"}
	_, roster := Generate(DefaultConfig(teams))

	capitals := roster.OfType(buildings.TypeCapital)
	if len(capitals) != len(teams) {
		t.Fatalf("%d capitals, want one per team (%d)", len(capitals), len(teams))
	}
	owners := map[string]bool{}
	coords := map[hexgrid.AxialCoord]bool{}
	for _, c := range capitals {
		owners[c.Owner] = true
		if coords[c.Coord()] {
			t.Fatalf("two capitals share %v", c.Coord())
		}
		coords[c.Coord()] = true
	}
	for _, team := range teams {
		if !owners[team] {
			t.Fatalf("no capital for team %s", team)
		}
	}
}

func TestCapitalAnchorsSpreadAndBound(t *testing.T) {
	anchors := capitalAnchors(8, 2)
	if len(anchors) != 2 {
		t.Fatalf("%d anchors, want 2", len(anchors))
	}
	if d := hexgrid.Distance(anchors[0], anchors[1]); d < 7 {
		t.Fatalf("two-team anchors only %d hexes apart", d)
	}
	for _, n := range []int{3, 5, 8} {
		anchors := capitalAnchors(8, n)
		if len(anchors) != n {
			t.Fatalf("%d anchors for %d teams", len(anchors), n)
		}
		for _, a := range anchors {
			if got := hexgrid.Distance(hexgrid.AxialCoord{}, a); got != 7 {
				t.Fatalf("anchor %v at distance %d, want on the edge ring (7)", a, got)
			}
		}
	}
	// Tiny map: anchor count is capped at the ring size, never past it.
	if got := len(capitalAnchors(1, 10)); got != 6 {
		t.Fatalf("%d anchors on a radius-1 map, want the 6-hex ring cap", got)
	}
}

func TestGenerateBuildingsSitOnBuildingTiles(t *testing.T) {
	m, roster := Generate(DefaultConfig([]string{"red", "blue"}))
	for _, b := range roster.All() {
		tile, ok := m.TileAt(b.Q, b.R)
		if !ok {
			t.Fatalf("building at (%d,%d) off the map", b.Q, b.R)
		}
		if tile.Type != hexgrid.TileBuilding {
			t.Fatalf("building at (%d,%d) sits on %s terrain", b.Q, b.R, tile.Type)
		}
	}
}

func TestGenerateNeutralsAreUnowned(t *testing.T) {
	_, roster := Generate(DefaultConfig([]string{"red", "blue"}))
	for _, b := range roster.All() {
		switch b.Type {
		case buildings.TypeCity, buildings.TypeLab:
			if b.Owner != "" {
				t.Fatalf("%s at (%d,%d) owned by %q, want neutral", b.Type, b.Q, b.R, b.Owner)
			}
		}
	}
}

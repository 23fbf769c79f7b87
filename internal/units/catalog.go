package units

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexfront/internal/hexgrid"
)

// DefaultCatalog returns the built-in component set. Foot infantry, the
// machine gun, and the capture kit are the base components every team starts
// with; everything else sits behind the tech tree.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Chassis: []ChassisComponent{
			{
				ID: "foot", Name: "Foot", MaxWeight: 2, Speed: 3, BaseCost: 100,
				TerrainCosts: hexgrid.TerrainCosts{
					hexgrid.TileGrass: 1, hexgrid.TileWoods: 1.5, hexgrid.TileMountain: 2,
					hexgrid.TileRoad: 1, hexgrid.TileBuilding: 1,
				},
			},
			{
				ID: "wheels", Name: "Wheels", MaxWeight: 6, Speed: 6, BaseCost: 250,
				TerrainCosts: hexgrid.TerrainCosts{
					hexgrid.TileGrass: 1, hexgrid.TileWoods: 2,
					hexgrid.TileRoad: 0.5, hexgrid.TileBuilding: 1,
				},
			},
			{
				ID: "treads", Name: "Treads", MaxWeight: 10, Speed: 4, BaseCost: 400,
				TerrainCosts: hexgrid.TerrainCosts{
					hexgrid.TileGrass: 1, hexgrid.TileWoods: 2, hexgrid.TileMountain: 3,
					hexgrid.TileRoad: 0.5, hexgrid.TileBuilding: 1,
				},
			},
			{
				ID: "hover", Name: "Hover", MaxWeight: 5, Speed: 5, BaseCost: 500,
				TerrainCosts: hexgrid.TerrainCosts{
					hexgrid.TileGrass: 1, hexgrid.TileWoods: 1, hexgrid.TileMountain: 2,
					hexgrid.TileWater: 1, hexgrid.TileRoad: 1, hexgrid.TileBuilding: 1,
				},
			},
		},
		Weapons: []WeaponComponent{
			{ID: "mg", Name: "Machine Gun", Weight: 1, Cost: 100, Attack: 3, Range: 1},
			{ID: "cannon", Name: "Cannon", Weight: 4, Cost: 300, Attack: 7, Range: 1, ArmorPiercing: true},
			{ID: "rockets", Name: "Rockets", Weight: 3, Cost: 250, Attack: 5, Range: 2},
			{
				ID: "artillery", Name: "Artillery", Weight: 6, Cost: 500, Attack: 5, Range: 3,
				RequiresChassis: []string{"wheels", "treads"},
			},
		},
		Systems: []SystemComponent{
			{ID: "capture", Name: "Capture Kit", Weight: 1, Cost: 50, GrantsCapture: true},
			{ID: "toolkit", Name: "Engineering Toolkit", Weight: 2, Cost: 150, GrantsBuild: true},
			{ID: "armor", Name: "Armor Plating", Weight: 2, Cost: 200, GrantsArmor: true},
		},
	}
	c.index()
	return c
}

// BaseChassisIDs lists the chassis unlocked for every team from turn one.
func BaseChassisIDs() []string { return []string{"foot"} }

// BaseWeaponIDs lists the weapons unlocked for every team from turn one.
func BaseWeaponIDs() []string { return []string{"mg"} }

// BaseSystemIDs lists the systems unlocked for every team from turn one.
func BaseSystemIDs() []string { return []string{"capture"} }

// LoadCatalog reads a component catalog from a YAML file. Components missing
// a terrain cost entry treat that terrain as impassable. The catalog must
// define every base component and a valid starter loadout over them; teams
// are seeded from those at session setup, so a gap would surface later as a
// broken session instead of a load error.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Chassis) == 0 {
		return nil, fmt.Errorf("catalog %s defines no chassis", path)
	}
	c.index()
	for _, id := range BaseChassisIDs() {
		if _, ok := c.ChassisByID(id); !ok {
			return nil, fmt.Errorf("catalog %s missing base chassis %q", path, id)
		}
	}
	for _, id := range BaseWeaponIDs() {
		if _, ok := c.WeaponByID(id); !ok {
			return nil, fmt.Errorf("catalog %s missing base weapon %q", path, id)
		}
	}
	for _, id := range BaseSystemIDs() {
		if _, ok := c.SystemByID(id); !ok {
			return nil, fmt.Errorf("catalog %s missing base system %q", path, id)
		}
	}
	if res := c.ValidateTemplate(BaseChassisIDs()[0], BaseWeaponIDs()[0], BaseSystemIDs()); !res.Valid {
		return nil, fmt.Errorf("catalog %s starter loadout invalid: %s", path, res.Err)
	}
	return &c, nil
}

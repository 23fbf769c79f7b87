// Package units defines the component catalog (chassis, weapons, systems),
// unit templates composed from it, and the units fielded on the map.
package units

import (
	"github.com/talgya/hexfront/internal/hexgrid"
)

// ChassisComponent supplies mobility, a weight budget for mounted
// components, and the base cost of the hull.
type ChassisComponent struct {
	ID           string               `yaml:"id"`
	Name         string               `yaml:"name"`
	MaxWeight    int                  `yaml:"max_weight"`
	Speed        float64              `yaml:"speed"`
	BaseCost     int                  `yaml:"base_cost"`
	TerrainCosts hexgrid.TerrainCosts `yaml:"terrain_costs"`
}

// WeaponComponent supplies offense. RequiresChassis, when set, limits the
// weapon to the listed hulls.
type WeaponComponent struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Weight          int      `yaml:"weight"`
	Cost            int      `yaml:"cost"`
	Attack          int      `yaml:"attack"`
	Range           int      `yaml:"range"`
	ArmorPiercing   bool     `yaml:"armor_piercing"`
	RequiresChassis []string `yaml:"requires_chassis"`
}

// SystemComponent supplies utility through grants flags.
type SystemComponent struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Weight          int      `yaml:"weight"`
	Cost            int      `yaml:"cost"`
	GrantsCapture   bool     `yaml:"grants_capture"`
	GrantsBuild     bool     `yaml:"grants_build"`
	GrantsArmor     bool     `yaml:"grants_armor"`
	RequiresChassis []string `yaml:"requires_chassis"`
}

// Catalog holds every known component, keyed by id and kept in declaration
// order so iteration is stable.
type Catalog struct {
	Chassis []ChassisComponent `yaml:"chassis"`
	Weapons []WeaponComponent  `yaml:"weapons"`
	Systems []SystemComponent  `yaml:"systems"`

	chassisByID map[string]*ChassisComponent
	weaponByID  map[string]*WeaponComponent
	systemByID  map[string]*SystemComponent
}

// index rebuilds the id lookups after the slices change.
func (c *Catalog) index() {
	c.chassisByID = make(map[string]*ChassisComponent, len(c.Chassis))
	for i := range c.Chassis {
		c.chassisByID[c.Chassis[i].ID] = &c.Chassis[i]
	}
	c.weaponByID = make(map[string]*WeaponComponent, len(c.Weapons))
	for i := range c.Weapons {
		c.weaponByID[c.Weapons[i].ID] = &c.Weapons[i]
	}
	c.systemByID = make(map[string]*SystemComponent, len(c.Systems))
	for i := range c.Systems {
		c.systemByID[c.Systems[i].ID] = &c.Systems[i]
	}
}

// ChassisByID returns the chassis with the given id.
func (c *Catalog) ChassisByID(id string) (*ChassisComponent, bool) {
	ch, ok := c.chassisByID[id]
	return ch, ok
}

// WeaponByID returns the weapon with the given id.
func (c *Catalog) WeaponByID(id string) (*WeaponComponent, bool) {
	w, ok := c.weaponByID[id]
	return w, ok
}

// SystemByID returns the system with the given id.
func (c *Catalog) SystemByID(id string) (*SystemComponent, bool) {
	s, ok := c.systemByID[id]
	return s, ok
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

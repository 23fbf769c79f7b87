package units

import "github.com/talgya/hexfront/internal/hexgrid"

// MaxHealth is the health every unit is produced with. Damage output scales
// with remaining health, so this is also the combat math denominator.
const MaxHealth = 10

// Unit is a fielded instance of a template.
type Unit struct {
	ID         string
	Team       string
	TemplateID string
	Q          int
	R          int

	Speed         float64
	Attack        int
	Range         int
	Health        int
	TerrainCosts  hexgrid.TerrainCosts
	CanCapture    bool
	CanBuild      bool
	Armored       bool
	ArmorPiercing bool

	HasActed bool
}

// NewUnit fields a unit from a template at the given position.
func NewUnit(id, team string, q, r int, tpl *UnitTemplate) *Unit {
	return &Unit{
		ID:            id,
		Team:          team,
		TemplateID:    tpl.ID,
		Q:             q,
		R:             r,
		Speed:         tpl.Speed,
		Attack:        tpl.Attack,
		Range:         tpl.Range,
		Health:        MaxHealth,
		TerrainCosts:  tpl.TerrainCosts,
		CanCapture:    tpl.CanCapture,
		CanBuild:      tpl.CanBuild,
		Armored:       tpl.Armored,
		ArmorPiercing: tpl.ArmorPiercing,
	}
}

// Coord returns the unit's position.
func (u *Unit) Coord() hexgrid.AxialCoord {
	return hexgrid.AxialCoord{Q: u.Q, R: u.R}
}

// Alive reports whether the unit is still on the map.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// ApplyDamage reduces health, clamping at zero, and reports whether the unit
// died from it.
func (u *Unit) ApplyDamage(dmg int) bool {
	u.Health -= dmg
	if u.Health < 0 {
		u.Health = 0
	}
	return u.Health == 0
}

// MoveTo places the unit on a new hex.
func (u *Unit) MoveTo(c hexgrid.AxialCoord) {
	u.Q = c.Q
	u.R = c.R
}

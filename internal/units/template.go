package units

import (
	"fmt"

	"github.com/talgya/hexfront/internal/hexgrid"
)

// UnitTemplate is a named, validated loadout: one chassis, at most one
// weapon, any number of systems, with stats derived at build time.
type UnitTemplate struct {
	ID        string
	Name      string
	ChassisID string
	WeaponID  string // empty when unarmed
	SystemIDs []string

	Speed         float64
	Attack        int
	Range         int
	TerrainCosts  hexgrid.TerrainCosts
	Armored       bool
	ArmorPiercing bool
	CanCapture    bool
	CanBuild      bool
	Cost          int
}

// ValidationResult reports whether a loadout is legal, and why not.
// Validation never panics or errors in the Go sense: callers branch on it.
type ValidationResult struct {
	Valid       bool
	Err         string
	TotalWeight int
	MaxWeight   int
}

// ValidateTemplate checks a loadout against the catalog. Failures are
// reported in a fixed priority order: the weapon's chassis restriction,
// then each system's chassis restriction in list order, then total weight
// against the chassis budget. Cost plays no part in validity.
func (c *Catalog) ValidateTemplate(chassisID, weaponID string, systemIDs []string) ValidationResult {
	chassis, ok := c.ChassisByID(chassisID)
	if !ok {
		return ValidationResult{Err: fmt.Sprintf("unknown chassis %q", chassisID)}
	}

	total := 0
	if weaponID != "" {
		weapon, ok := c.WeaponByID(weaponID)
		if !ok {
			return ValidationResult{MaxWeight: chassis.MaxWeight, Err: fmt.Sprintf("unknown weapon %q", weaponID)}
		}
		if len(weapon.RequiresChassis) > 0 && !contains(weapon.RequiresChassis, chassisID) {
			return ValidationResult{
				MaxWeight: chassis.MaxWeight,
				Err:       fmt.Sprintf("weapon %s cannot be mounted on chassis %s", weapon.ID, chassis.ID),
			}
		}
		total += weapon.Weight
	}
	for _, sid := range systemIDs {
		sys, ok := c.SystemByID(sid)
		if !ok {
			return ValidationResult{MaxWeight: chassis.MaxWeight, Err: fmt.Sprintf("unknown system %q", sid)}
		}
		if len(sys.RequiresChassis) > 0 && !contains(sys.RequiresChassis, chassisID) {
			return ValidationResult{
				MaxWeight: chassis.MaxWeight,
				Err:       fmt.Sprintf("system %s cannot be mounted on chassis %s", sys.ID, chassis.ID),
			}
		}
		total += sys.Weight
	}

	if total > chassis.MaxWeight {
		return ValidationResult{
			TotalWeight: total,
			MaxWeight:   chassis.MaxWeight,
			Err:         fmt.Sprintf("total weight %d exceeds chassis limit %d", total, chassis.MaxWeight),
		}
	}
	return ValidationResult{Valid: true, TotalWeight: total, MaxWeight: chassis.MaxWeight}
}

// TemplateCost computes the funds price of a loadout, valid or not.
func (c *Catalog) TemplateCost(chassisID, weaponID string, systemIDs []string) int {
	cost := 0
	if chassis, ok := c.ChassisByID(chassisID); ok {
		cost += chassis.BaseCost
	}
	if weapon, ok := c.WeaponByID(weaponID); ok {
		cost += weapon.Cost
	}
	for _, sid := range systemIDs {
		if sys, ok := c.SystemByID(sid); ok {
			cost += sys.Cost
		}
	}
	return cost
}

// BuildTemplate validates a loadout and derives its stats. On failure the
// template is nil and the result carries the reason.
func (c *Catalog) BuildTemplate(id, name, chassisID, weaponID string, systemIDs []string) (*UnitTemplate, ValidationResult) {
	res := c.ValidateTemplate(chassisID, weaponID, systemIDs)
	if !res.Valid {
		return nil, res
	}

	chassis, _ := c.ChassisByID(chassisID)
	tpl := &UnitTemplate{
		ID:           id,
		Name:         name,
		ChassisID:    chassisID,
		WeaponID:     weaponID,
		SystemIDs:    append([]string(nil), systemIDs...),
		Speed:        chassis.Speed,
		TerrainCosts: chassis.TerrainCosts.Clone(),
		Cost:         c.TemplateCost(chassisID, weaponID, systemIDs),
	}
	if weaponID != "" {
		weapon, _ := c.WeaponByID(weaponID)
		tpl.Attack = weapon.Attack
		tpl.Range = weapon.Range
		tpl.ArmorPiercing = weapon.ArmorPiercing
	}
	for _, sid := range systemIDs {
		sys, _ := c.SystemByID(sid)
		tpl.CanCapture = tpl.CanCapture || sys.GrantsCapture
		tpl.CanBuild = tpl.CanBuild || sys.GrantsBuild
		tpl.Armored = tpl.Armored || sys.GrantsArmor
	}
	return tpl, res
}

// TemplateRegistry holds one team's designs in registration order.
type TemplateRegistry struct {
	ordered []*UnitTemplate
	byID    map[string]*UnitTemplate
	byName  map[string]*UnitTemplate
}

// NewTemplateRegistry returns an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		byID:   make(map[string]*UnitTemplate),
		byName: make(map[string]*UnitTemplate),
	}
}

// Register adds a template. Duplicate names or ids are an error: this is an
// administrative entry point, not a hot-path query.
func (r *TemplateRegistry) Register(t *UnitTemplate) error {
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("template id %q already registered", t.ID)
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("template name %q already registered", t.Name)
	}
	r.ordered = append(r.ordered, t)
	r.byID[t.ID] = t
	r.byName[t.Name] = t
	return nil
}

// Update replaces a registered template in place, keeping its position.
func (r *TemplateRegistry) Update(t *UnitTemplate) error {
	old, exists := r.byID[t.ID]
	if !exists {
		return fmt.Errorf("template id %q not registered", t.ID)
	}
	if other, clash := r.byName[t.Name]; clash && other.ID != t.ID {
		return fmt.Errorf("template name %q already registered", t.Name)
	}
	delete(r.byName, old.Name)
	for i, cur := range r.ordered {
		if cur.ID == t.ID {
			r.ordered[i] = t
			break
		}
	}
	r.byID[t.ID] = t
	r.byName[t.Name] = t
	return nil
}

// Get returns the template with the given id.
func (r *TemplateRegistry) Get(id string) (*UnitTemplate, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// All returns the team's templates in registration order. Callers must not
// mutate the returned slice.
func (r *TemplateRegistry) All() []*UnitTemplate {
	return r.ordered
}

// UsesComponent reports whether any registered template includes the
// component id as chassis, weapon, or system.
func (r *TemplateRegistry) UsesComponent(componentID string) bool {
	for _, t := range r.ordered {
		if t.ChassisID == componentID || t.WeaponID == componentID {
			return true
		}
		if contains(t.SystemIDs, componentID) {
			return true
		}
	}
	return false
}

package tech

import (
	"sync"

	"github.com/talgya/hexfront/internal/economy"
)

// AvailabilityState classifies whether a team may purchase a tech.
type AvailabilityState string

const (
	StateUnlocked            AvailabilityState = "unlocked"
	StatePrereqsMissing      AvailabilityState = "prereqs-missing"
	StateInsufficientScience AvailabilityState = "insufficient-science"
	StateAvailable           AvailabilityState = "available"
	StateUnknown             AvailabilityState = "unknown"
)

// Availability is the result of a purchase pre-check. Missing carries the
// names of unmet prerequisites when State is StatePrereqsMissing.
type Availability struct {
	State   AvailabilityState
	Missing []string
}

// PurchaseResult reports a purchase attempt. On failure nothing changed.
type PurchaseResult struct {
	Success  bool
	Err      string
	Unlocked string // component id granted on success
}

// Research is one team's unlock state. Each team owns its own instance, so
// purchases by different teams never interfere; the mutex only guards a
// single team's purchase against its own availability re-check.
type Research struct {
	mu sync.Mutex

	unlockedTechs map[string]bool
	techOrder     []string

	chassis map[string]bool
	weapons map[string]bool
	systems map[string]bool

	chassisOrder []string
	weaponOrder  []string
	systemOrder  []string
}

// NewResearch creates a research state seeded with the default-unlocked base
// components. Even a team that never researches can field these.
func NewResearch(baseChassis, baseWeapons, baseSystems []string) *Research {
	r := &Research{
		unlockedTechs: make(map[string]bool),
		chassis:       make(map[string]bool),
		weapons:       make(map[string]bool),
		systems:       make(map[string]bool),
	}
	for _, id := range baseChassis {
		r.unlockChassis(id)
	}
	for _, id := range baseWeapons {
		r.unlockWeapon(id)
	}
	for _, id := range baseSystems {
		r.unlockSystem(id)
	}
	return r
}

func (r *Research) unlockChassis(id string) {
	if !r.chassis[id] {
		r.chassis[id] = true
		r.chassisOrder = append(r.chassisOrder, id)
	}
}

func (r *Research) unlockWeapon(id string) {
	if !r.weapons[id] {
		r.weapons[id] = true
		r.weaponOrder = append(r.weaponOrder, id)
	}
}

func (r *Research) unlockSystem(id string) {
	if !r.systems[id] {
		r.systems[id] = true
		r.systemOrder = append(r.systemOrder, id)
	}
}

// TechUnlocked reports whether the tech has been purchased.
func (r *Research) TechUnlocked(id string) bool { return r.unlockedTechs[id] }

// ChassisUnlocked reports whether the chassis may be used in designs.
func (r *Research) ChassisUnlocked(id string) bool { return r.chassis[id] }

// WeaponUnlocked reports whether the weapon may be used in designs.
func (r *Research) WeaponUnlocked(id string) bool { return r.weapons[id] }

// SystemUnlocked reports whether the system may be used in designs.
func (r *Research) SystemUnlocked(id string) bool { return r.systems[id] }

// UnlockedChassis returns chassis ids in unlock order.
func (r *Research) UnlockedChassis() []string { return r.chassisOrder }

// UnlockedWeapons returns weapon ids in unlock order.
func (r *Research) UnlockedWeapons() []string { return r.weaponOrder }

// UnlockedSystems returns system ids in unlock order.
func (r *Research) UnlockedSystems() []string { return r.systemOrder }

// UnlockedTechs returns purchased tech ids in purchase order.
func (r *Research) UnlockedTechs() []string { return r.techOrder }

// PrereqsMet reports whether every prerequisite of the tech is unlocked.
func (r *Research) PrereqsMet(tree *Tree, id string) bool {
	def, ok := tree.Get(id)
	if !ok {
		return false
	}
	for _, req := range def.Requires {
		if !r.unlockedTechs[req] {
			return false
		}
	}
	return true
}

// Availability classifies the tech for this team at the given science
// balance. Never errors: unknown techs come back as StateUnknown.
func (r *Research) Availability(tree *Tree, id string, science int) Availability {
	def, ok := tree.Get(id)
	if !ok {
		return Availability{State: StateUnknown}
	}
	if r.unlockedTechs[id] {
		return Availability{State: StateUnlocked}
	}
	var missing []string
	for _, req := range def.Requires {
		if !r.unlockedTechs[req] {
			name := req
			if reqDef, ok := tree.Get(req); ok {
				name = reqDef.Name
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Availability{State: StatePrereqsMissing, Missing: missing}
	}
	if science < def.Cost {
		return Availability{State: StateInsufficientScience}
	}
	return Availability{State: StateAvailable}
}

// Purchase is transactional: it re-validates availability against the live
// science balance, spends, marks the tech unlocked, and unlocks exactly the
// one component the tech grants. If any precondition fails, no state
// changes.
func (r *Research) Purchase(tree *Tree, id string, res *economy.Resources) PurchaseResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := tree.Get(id)
	if !ok {
		return PurchaseResult{Err: "unknown tech " + id}
	}
	avail := r.Availability(tree, id, res.Science)
	switch avail.State {
	case StateUnlocked:
		return PurchaseResult{Err: "tech already unlocked"}
	case StatePrereqsMissing:
		return PurchaseResult{Err: "prerequisites not met"}
	case StateInsufficientScience:
		return PurchaseResult{Err: "insufficient science"}
	}
	if !res.SpendScience(def.Cost) {
		return PurchaseResult{Err: "insufficient science"}
	}

	r.unlockedTechs[id] = true
	r.techOrder = append(r.techOrder, id)
	switch def.Category {
	case CategoryChassis:
		r.unlockChassis(def.Unlocks)
	case CategoryWeapon:
		r.unlockWeapon(def.Unlocks)
	case CategorySystem:
		r.unlockSystem(def.Unlocks)
	}
	return PurchaseResult{Success: true, Unlocked: def.Unlocks}
}

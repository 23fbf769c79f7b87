// Package ai contains the turn planners. A controller reads the session
// through its View and emits an ordered action list; the orchestrator
// applies the list and re-validates every action at apply time.
package ai

import "fmt"

// Action is one atomic instruction for the orchestrator. The variant set is
// closed: dispatch is an exhaustive type switch.
type Action interface {
	isAction()
	String() string
}

// Move walks a unit to a reachable hex.
type Move struct {
	UnitID  string
	TargetQ int
	TargetR int
}

// Attack fires on the unit standing at the target hex.
type Attack struct {
	UnitID  string
	TargetQ int
	TargetR int
}

// Capture advances capture progress on the building under the unit.
type Capture struct {
	UnitID string
}

// Wait ends the unit's activation without doing anything.
type Wait struct {
	UnitID string
}

// Build produces a unit from a template at an owned, unoccupied factory.
type Build struct {
	FactoryQ   int
	FactoryR   int
	TemplateID string
}

// Research purchases one tech.
type Research struct {
	TechID string
}

// Design registers a new unit template from unlocked components.
type Design struct {
	Name      string
	ChassisID string
	WeaponID  string
	SystemIDs []string
}

// EndTurn closes the action list. Every plan ends with it.
type EndTurn struct{}

func (Move) isAction()     {}
func (Attack) isAction()   {}
func (Capture) isAction()  {}
func (Wait) isAction()     {}
func (Build) isAction()    {}
func (Research) isAction() {}
func (Design) isAction()   {}
func (EndTurn) isAction()  {}

func (a Move) String() string {
	return fmt.Sprintf("move %s -> (%d,%d)", a.UnitID, a.TargetQ, a.TargetR)
}

func (a Attack) String() string {
	return fmt.Sprintf("attack %s -> (%d,%d)", a.UnitID, a.TargetQ, a.TargetR)
}

func (a Capture) String() string { return "capture " + a.UnitID }

func (a Wait) String() string { return "wait " + a.UnitID }

func (a Build) String() string {
	return fmt.Sprintf("build %s at (%d,%d)", a.TemplateID, a.FactoryQ, a.FactoryR)
}

func (a Research) String() string { return "research " + a.TechID }

func (a Design) String() string {
	return fmt.Sprintf("design %s (%s/%s %v)", a.Name, a.ChassisID, a.WeaponID, a.SystemIDs)
}

func (EndTurn) String() string { return "end turn" }

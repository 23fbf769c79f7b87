// Package buildings tracks structures on the map and their capture state.
package buildings

import "github.com/talgya/hexfront/internal/hexgrid"

// Type enumerates building kinds.
type Type string

const (
	TypeCity    Type = "city"
	TypeFactory Type = "factory"
	TypeLab     Type = "lab"
	TypeCapital Type = "capital"
)

// MaxResistance is the capture countdown a building starts (and resets) at.
const MaxResistance = 20

// CapturePower is how much resistance one capture action removes.
const CapturePower = 10

// Building exists for the life of the map. Owner is empty while neutral.
// Only one unit at a time makes capture progress; a different unit taking
// over forfeits the first unit's progress.
type Building struct {
	Q                 int    `json:"q"`
	R                 int    `json:"r"`
	Type              Type   `json:"type"`
	Owner             string `json:"owner"`
	CaptureResistance int    `json:"capture_resistance"`
	CapturingUnitID   string `json:"capturing_unit_id"`
}

// New creates a building with full capture resistance.
func New(q, r int, typ Type, owner string) *Building {
	return &Building{
		Q:                 q,
		R:                 r,
		Type:              typ,
		Owner:             owner,
		CaptureResistance: MaxResistance,
	}
}

// Coord returns the building's position.
func (b *Building) Coord() hexgrid.AxialCoord {
	return hexgrid.AxialCoord{Q: b.Q, R: b.R}
}

// ApplyCaptureProgress advances a capture attempt by one unit. Switching
// attackers resets resistance to max before the new attacker's power lands.
// Returns true when resistance is depleted; the building's capture state is
// reset then, and the caller flips ownership as part of the same apply step.
func (b *Building) ApplyCaptureProgress(unitID string, power int) bool {
	if b.CapturingUnitID != unitID {
		b.CaptureResistance = MaxResistance
		b.CapturingUnitID = unitID
	}
	b.CaptureResistance -= power
	if b.CaptureResistance <= 0 {
		b.resetCapture()
		return true
	}
	return false
}

func (b *Building) resetCapture() {
	b.CaptureResistance = MaxResistance
	b.CapturingUnitID = ""
}

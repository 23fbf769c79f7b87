package buildings

import (
	"testing"

	"github.com/talgya/hexfront/internal/hexgrid"
)

func TestCaptureTakesTwoActions(t *testing.T) {
	b := New(0, 0, TypeCity, "")
	if done := b.ApplyCaptureProgress("u-1", CapturePower); done {
		t.Fatal("first capture action should not complete a fresh building")
	}
	if b.CaptureResistance != MaxResistance-CapturePower {
		t.Fatalf("resistance = %d, want %d", b.CaptureResistance, MaxResistance-CapturePower)
	}
	if done := b.ApplyCaptureProgress("u-1", CapturePower); !done {
		t.Fatal("second capture action should complete")
	}
	// Completed captures leave the building ready for the next contest.
	if b.CaptureResistance != MaxResistance || b.CapturingUnitID != "" {
		t.Fatalf("capture state not reset: resistance=%d capturer=%q",
			b.CaptureResistance, b.CapturingUnitID)
	}
}

func TestSwitchingAttackerForfeitsProgress(t *testing.T) {
	b := New(0, 0, TypeFactory, "red")
	b.ApplyCaptureProgress("u-1", CapturePower)

	// A different unit starting over resets to max before its power lands.
	if done := b.ApplyCaptureProgress("u-2", CapturePower); done {
		t.Fatal("new attacker should not inherit the old attacker's progress")
	}
	if b.CaptureResistance != MaxResistance-CapturePower {
		t.Fatalf("resistance = %d, want %d", b.CaptureResistance, MaxResistance-CapturePower)
	}
	if b.CapturingUnitID != "u-2" {
		t.Fatalf("capturer = %q, want u-2", b.CapturingUnitID)
	}
}

func TestResetCaptureByUnit(t *testing.T) {
	r := NewRoster()
	a := New(0, 0, TypeCity, "")
	c := New(2, 0, TypeLab, "")
	r.Add(a)
	r.Add(c)

	a.ApplyCaptureProgress("u-1", CapturePower)
	c.ApplyCaptureProgress("u-2", CapturePower)

	r.ResetCaptureByUnit("u-1")
	if a.CaptureResistance != MaxResistance || a.CapturingUnitID != "" {
		t.Fatal("u-1's capture progress should be cleared")
	}
	if c.CaptureResistance != MaxResistance-CapturePower || c.CapturingUnitID != "u-2" {
		t.Fatal("u-2's capture progress on another building must survive")
	}

	// Unknown unit is a no-op.
	r.ResetCaptureByUnit("u-99")
	if c.CaptureResistance != MaxResistance-CapturePower {
		t.Fatal("no-op reset changed an unrelated building")
	}
}

func TestRosterLookups(t *testing.T) {
	r := NewRoster()
	r.Add(New(0, 0, TypeCapital, "red"))
	r.Add(New(1, 0, TypeFactory, "red"))
	r.Add(New(3, -1, TypeCity, ""))

	if b, ok := r.At(hexgrid.AxialCoord{Q: 1, R: 0}); !ok || b.Type != TypeFactory {
		t.Fatal("factory lookup by coordinate failed")
	}
	if got := len(r.OwnedBy("red")); got != 2 {
		t.Fatalf("red owns %d buildings, want 2", got)
	}
	if got := len(r.OfType(TypeCity)); got != 1 {
		t.Fatalf("%d cities, want 1", got)
	}

	// Same-hex add replaces in place, keeping order and count.
	r.Add(New(3, -1, TypeLab, "blue"))
	if got := len(r.All()); got != 3 {
		t.Fatalf("%d buildings after replace, want 3", got)
	}
	if b, _ := r.At(hexgrid.AxialCoord{Q: 3, R: -1}); b.Type != TypeLab {
		t.Fatal("replacement building not reachable by coordinate")
	}
}

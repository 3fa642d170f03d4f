package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewBodyRejectsInvalidMass(t *testing.T) {
	for _, mass := range []float64{0, -1, math.NaN()} {
		if _, err := NewBody(0, 0, 10, mass); !errors.Is(err, ErrInvalidMass) {
			t.Errorf("Expected ErrInvalidMass for mass=%v, got %v", mass, err)
		}
	}
}

func TestNewBodyRejectsInvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -5} {
		if _, err := NewBody(0, 0, radius, 1); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("Expected ErrInvalidRadius for radius=%v, got %v", radius, err)
		}
	}
}

func TestNewBodyDefaults(t *testing.T) {
	b, err := NewBody(100, 300, 15, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("Expected body at rest, got v=(%f, %f)", b.VX, b.VY)
	}
	if b.Profile != ProfileDefault {
		t.Errorf("Expected default profile, got %+v", b.Profile)
	}
	if b.Grounded {
		t.Error("Expected new body not grounded")
	}
}

func TestWallMask(t *testing.T) {
	if !WallBoth.Has(WallLeft) || !WallBoth.Has(WallRight) {
		t.Error("Expected WallBoth to include both walls")
	}
	if WallNone.Has(WallLeft) {
		t.Error("Expected WallNone to exclude the left wall")
	}
	if ProfileDrifter.Walls.Has(WallRight) {
		t.Error("Expected drifter profile without side walls")
	}
	if ProfileWalker.Walls.Has(WallLeft) || !ProfileWalker.Walls.Has(WallRight) {
		t.Error("Expected walker profile with only the right wall")
	}
}

func TestKindString(t *testing.T) {
	if KindEnemy.String() != "enemy" {
		t.Errorf("Expected 'enemy', got %q", KindEnemy.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("Expected fallback name, got %q", Kind(99).String())
	}
}

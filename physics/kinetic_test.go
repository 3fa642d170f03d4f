package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/vmath"
)

func TestIntegrateCapsVelocity(t *testing.T) {
	env := DefaultEnvironment()
	rng := vmath.NewFastRand(12345)

	for i := 0; i < 1000; i++ {
		b := core.MustBody(rng.Range(20, 780), rng.Range(20, 580), 10, rng.Range(0.1, 10))
		b.VX = rng.Symmetric(100)
		b.VY = rng.Symmetric(100)
		if i%2 == 0 {
			b.Profile = core.ProfileDrifter
		}

		Integrate(b, &env)

		if math.Abs(b.VX) > env.MaxVelocity || math.Abs(b.VY) > env.MaxVelocity {
			t.Fatalf("Velocity exceeds cap after integrate: (%f, %f)", b.VX, b.VY)
		}
	}
}

func TestIntegrateGravityAndPosition(t *testing.T) {
	env := DefaultEnvironment()
	b := core.MustBody(400, 300, 10, 1)

	Integrate(b, &env)

	if b.VY != env.Gravity {
		t.Errorf("Expected vy=%f after one tick, got %f", env.Gravity, b.VY)
	}
	if b.Y != 300+env.Gravity {
		t.Errorf("Expected y=%f, got %f", 300+env.Gravity, b.Y)
	}
	if b.Grounded {
		t.Error("Expected airborne body not grounded")
	}
}

func TestIntegrateGroundedFrictionDecay(t *testing.T) {
	env := DefaultEnvironment()
	b := core.MustBody(200, env.Height-10, 10, 1)
	b.Grounded = true
	b.VX = 5

	expected := b.VX
	for i := 0; i < 50; i++ {
		Integrate(b, &env)
		expected *= env.Friction

		if !b.Grounded {
			t.Fatalf("Expected body resting on floor to stay grounded at step %d", i)
		}
		if !vmath.ApproxEqual(b.VX, expected, 1e-9) {
			t.Fatalf("Step %d: expected vx=%f, got %f", i, expected, b.VX)
		}
	}

	if b.VX >= 5*0.4 {
		t.Errorf("Expected vx to decay toward 0, got %f", b.VX)
	}
}

func TestIntegrateFloorBounce(t *testing.T) {
	env := DefaultEnvironment()
	b := core.MustBody(400, env.Height-10.5, 10, 1)
	b.VY = 4

	Integrate(b, &env)

	if b.Y != env.Height-b.Radius {
		t.Errorf("Expected y clamped to %f, got %f", env.Height-b.Radius, b.Y)
	}
	expectedVY := -(4 + env.Gravity) * env.BounceDamping
	if !vmath.ApproxEqual(b.VY, expectedVY, 1e-9) {
		t.Errorf("Expected vy=%f after bounce, got %f", expectedVY, b.VY)
	}
	if !b.Grounded {
		t.Error("Expected grounded after floor contact")
	}
}

func TestIntegrateWalls(t *testing.T) {
	env := DefaultEnvironment()

	left := core.MustBody(12, 300, 10, 1)
	left.VX = -5
	Integrate(left, &env)
	if left.X != left.Radius {
		t.Errorf("Expected x clamped to radius, got %f", left.X)
	}
	if !vmath.ApproxEqual(left.VX, 5*env.BounceDamping, 1e-9) {
		t.Errorf("Expected vx=%f after left wall, got %f", 5*env.BounceDamping, left.VX)
	}

	right := core.MustBody(env.Width-12, 300, 10, 1)
	right.VX = 5
	Integrate(right, &env)
	if right.X != env.Width-right.Radius {
		t.Errorf("Expected x clamped to %f, got %f", env.Width-right.Radius, right.X)
	}
	if !vmath.ApproxEqual(right.VX, -5*env.BounceDamping, 1e-9) {
		t.Errorf("Expected vx=%f after right wall, got %f", -5*env.BounceDamping, right.VX)
	}
}

func TestIntegrateDrifterIgnoresWalls(t *testing.T) {
	env := DefaultEnvironment()
	b := core.MustBody(env.Width+30, 300, 15, 5)
	b.Profile = core.ProfileDrifter
	b.VX = -3

	Integrate(b, &env)

	if b.X != env.Width+27 {
		t.Errorf("Expected drifter to move freely to %f, got %f", env.Width+27, b.X)
	}
	if b.VY != 0 {
		t.Errorf("Expected drifter unaffected by gravity, got vy=%f", b.VY)
	}
}

func TestApplyForceDividesByMass(t *testing.T) {
	b := core.MustBody(0, 0, 1, 2)
	ApplyForce(b, 8, -15)
	if b.VX != 4 || b.VY != -7.5 {
		t.Errorf("Expected v=(4, -7.5), got (%f, %f)", b.VX, b.VY)
	}
}

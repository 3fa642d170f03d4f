package vmath

import (
	"math"
	"testing"
)

func TestNormalize2D(t *testing.T) {
	nx, ny, mag := Normalize2D(3, 4)
	if mag != 5 {
		t.Errorf("Expected magnitude 5, got %f", mag)
	}
	if !ApproxEqual(nx, 0.6, 1e-12) || !ApproxEqual(ny, 0.8, 1e-12) {
		t.Errorf("Expected (0.6, 0.8), got (%f, %f)", nx, ny)
	}

	nx, ny, mag = Normalize2D(0, 0)
	if nx != 0 || ny != 0 || mag != 0 {
		t.Errorf("Expected zero vector to normalize to zero, got (%f, %f, %f)", nx, ny, mag)
	}
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(30, 40, 10)
	if !ApproxEqual(Magnitude(x, y), 10, 1e-9) {
		t.Errorf("Expected clamped magnitude 10, got %f", Magnitude(x, y))
	}

	x, y = ClampMagnitude(1, 1, 10)
	if x != 1 || y != 1 {
		t.Errorf("Expected short vector unchanged, got (%f, %f)", x, y)
	}
}

func TestReflect(t *testing.T) {
	rx, ry := Reflect(2, 3, 0, -1)
	if rx != 2 || ry != -3 {
		t.Errorf("Expected (2, -3), got (%f, %f)", rx, ry)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for identical seeds, diverged at %d", i)
		}
	}
}

func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		s := r.Symmetric(2)
		if s < -2 || s >= 2 {
			t.Fatalf("Symmetric out of range: %f", s)
		}
		v := r.Range(30, 570)
		if v < 30 || v >= 570 || math.IsNaN(v) {
			t.Fatalf("Range out of bounds: %f", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be replaced with a non-zero state")
	}
}

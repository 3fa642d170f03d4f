package physics

import (
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/vmath"
)

// Overlaps reports whether two circles intersect (strict, touching is not overlap)
func Overlaps(a, b *core.Body) bool {
	dx, dy := a.Offset(b)
	r := a.Radius + b.Radius
	return vmath.MagnitudeSq(dx, dy) < r*r
}

// ResolveCollision applies a velocity-only impulse along the contact normal
// restitution 1 is the elastic 2*rv/(ma+mb) impulse; lower values bleed normal speed
// Returns false when skipped: coincident centers or bodies already separating
func ResolveCollision(a, b *core.Body, restitution float64) bool {
	dx, dy := a.Offset(b)
	nx, ny, dist := vmath.Normalize2D(dx, dy)
	if dist == 0 {
		return false
	}

	rv := vmath.DotProduct(b.VX-a.VX, b.VY-a.VY, nx, ny)
	if rv > 0 {
		return false
	}

	// rv <= 0 here, so impulse pushes a back along -n and b along +n
	// Signs are applied this way round so head-on approach reverses; the
	// literal a -= impulse form adds approach speed instead. See DESIGN.md
	// "Collision sign" before changing them.
	impulse := (1 + restitution) * rv / (a.Mass + b.Mass)

	a.VX += impulse * b.Mass * nx
	a.VY += impulse * b.Mass * ny
	b.VX -= impulse * a.Mass * nx
	b.VY -= impulse * a.Mass * ny
	return true
}

// Separate pushes overlapping bodies apart along the normal by fraction of the penetration
// Heavier bodies move less. No-op for fraction <= 0 or coincident centers
func Separate(a, b *core.Body, fraction float64) {
	if fraction <= 0 {
		return
	}
	dx, dy := a.Offset(b)
	nx, ny, dist := vmath.Normalize2D(dx, dy)
	if dist == 0 {
		return
	}
	depth := a.Radius + b.Radius - dist
	if depth <= 0 {
		return
	}

	total := a.Mass + b.Mass
	push := depth * fraction
	a.X -= nx * push * (b.Mass / total)
	a.Y -= ny * push * (b.Mass / total)
	b.X += nx * push * (a.Mass / total)
	b.Y += ny * push * (a.Mass / total)
}

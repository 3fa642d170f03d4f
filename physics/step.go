package physics

import "github.com/lixenwraith/star-dash/core"

// IntegrateAll advances every body in the pool by one tick
func IntegrateAll(bodies []*core.Body, env *Environment) {
	for _, b := range bodies {
		Integrate(b, env)
	}
}

// ResolvePairs runs the O(n²) pairwise check and returns the number of impulses applied
// No spatial index; fine for tens of bodies
func ResolvePairs(bodies []*core.Body, env *Environment) int {
	resolved := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !Overlaps(a, b) {
				continue
			}
			if ResolveCollision(a, b, env.Restitution) {
				resolved++
			}
			Separate(a, b, env.Correction)
		}
	}
	return resolved
}

// Step integrates all bodies then resolves collisions
func Step(bodies []*core.Body, env *Environment) int {
	IntegrateAll(bodies, env)
	return ResolvePairs(bodies, env)
}

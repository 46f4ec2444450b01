// Package scene owns the per-frame composition of the demo: the
// morphing shape at the origin, every spawned copy of it, and the
// lamp markers for the point lights.
package scene

import "github.com/softbody-labs/morphview/pkg/math"

// Placement is a world-space position recorded by a spawn event.
// Immutable once recorded.
type Placement struct {
	Position math.Vec3
}

// SpawnRegistry is an append-only list of placements. It only grows
// for the lifetime of the process; every placement is drawn each
// frame as a copy of the live mesh.
type SpawnRegistry struct {
	placements []Placement
}

// NewSpawnRegistry creates an empty registry.
func NewSpawnRegistry() *SpawnRegistry {
	return &SpawnRegistry{}
}

// Record appends a placement unconditionally. No dedup, no capacity
// bound, no removal.
func (r *SpawnRegistry) Record(position math.Vec3) {
	r.placements = append(r.placements, Placement{Position: position})
}

// Placements returns all recorded placements in insertion order.
// The returned slice is the registry's backing storage; callers must
// not mutate it.
func (r *SpawnRegistry) Placements() []Placement {
	return r.placements
}

// Len returns the number of recorded placements.
func (r *SpawnRegistry) Len() int {
	return len(r.placements)
}

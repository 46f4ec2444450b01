package scene

import (
	"github.com/softbody-labs/morphview/internal/engine/shape"
	"github.com/softbody-labs/morphview/pkg/math"
)

// GeometryUploader receives the regenerated mesh each frame. An upload
// fully replaces any previously uploaded geometry of the same buffer.
type GeometryUploader interface {
	UploadMesh(vertices []shape.Vertex, indices []uint32)
}

// MeshDrawer issues one triangle-list draw of the currently uploaded
// mesh under the given model transform.
type MeshDrawer interface {
	DrawMesh(indexCount int32, model math.Mat4)
}

// Rotation rates in radians per second.
const (
	primarySpinRate = 0.5
	spawnSpinRate   = 0.2
)

// spawnScale is the uniform scale applied to spawned copies.
const spawnScale = 0.5

// Frame sequences one frame of the demo: it derives the morph
// parameters for the current time, regenerates the shared mesh,
// republishes it, and draws the origin shape plus every spawned copy.
// All copies reference the same live mesh, so they all track the
// morph animation rather than freezing their shape at spawn time.
type Frame struct {
	stacks int
	slices int
	spawns *SpawnRegistry

	mesh shape.Mesh
}

// NewFrame creates a frame orchestrator with a fixed grid resolution.
func NewFrame(stacks, slices int, spawns *SpawnRegistry) *Frame {
	if stacks < 1 || slices < 1 {
		panic("scene: grid resolution must be at least 1x1")
	}
	return &Frame{
		stacks: stacks,
		slices: slices,
		spawns: spawns,
	}
}

// Step runs one frame at the given elapsed time in seconds. The prior
// mesh is discarded wholesale; buffer sizes never change because the
// grid resolution is fixed at construction.
func (f *Frame) Step(elapsed float64, uploader GeometryUploader, drawer MeshDrawer) {
	params := shape.ParamsAt(elapsed)
	f.mesh = shape.Generate(params, f.stacks, f.slices)

	uploader.UploadMesh(f.mesh.Vertices, f.mesh.Indices)

	indexCount := int32(len(f.mesh.Indices))
	t := float32(elapsed)

	drawer.DrawMesh(indexCount, math.RotateY(primarySpinRate*t))

	for _, p := range f.spawns.Placements() {
		model := math.Translate(p.Position.X, p.Position.Y, p.Position.Z).
			Mul(math.RotateY(spawnSpinRate * t)).
			Mul(math.Scale(spawnScale, spawnScale, spawnScale))
		drawer.DrawMesh(indexCount, model)
	}
}

// Mesh returns the mesh generated by the most recent Step.
func (f *Frame) Mesh() shape.Mesh {
	return f.mesh
}

package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/softbody-labs/morphview/internal/engine/lighting"
	"github.com/softbody-labs/morphview/internal/engine/scene/shaders"
	"github.com/softbody-labs/morphview/internal/engine/shader"
	"github.com/softbody-labs/morphview/pkg/math"
)

// lampScale shrinks the marker cubes drawn at point light positions.
const lampScale = 0.2

// lampCubeVertices is a unit cube as 12 triangles, positions only.
var lampCubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// LampRenderer draws a small flat-white cube at each point light
// position so the lights are visible in the scene.
type LampRenderer struct {
	program uint32

	locModel      int32
	locView       int32
	locProjection int32

	vao uint32
	vbo uint32
}

// NewLampRenderer compiles the lamp shader and uploads the static
// cube geometry. Must be called with a current GL context.
func NewLampRenderer() (*LampRenderer, error) {
	program, err := shader.CompileProgram(shaders.LampVertexShader, shaders.LampFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lamp shader: %w", err)
	}

	r := &LampRenderer{
		program:       program,
		locModel:      shader.GetUniform(program, "model"),
		locView:       shader.GetUniform(program, "view"),
		locProjection: shader.GetUniform(program, "projection"),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(lampCubeVertices)*4, unsafe.Pointer(&lampCubeVertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return r, nil
}

// Close releases GL resources.
func (r *LampRenderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Draw renders one cube per point light in the rig.
func (r *LampRenderer) Draw(view, projection math.Mat4, rig *lighting.Rig) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())

	gl.BindVertexArray(r.vao)
	for i := range rig.Points {
		p := rig.Points[i].Position
		model := math.Translate(p[0], p[1], p[2]).
			Mul(math.Scale(lampScale, lampScale, lampScale))
		gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
		gl.DrawArrays(gl.TRIANGLES, 0, 36)
	}
	gl.BindVertexArray(0)
}

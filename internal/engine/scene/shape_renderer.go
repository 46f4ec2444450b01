package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/softbody-labs/morphview/internal/engine/lighting"
	"github.com/softbody-labs/morphview/internal/engine/scene/shaders"
	"github.com/softbody-labs/morphview/internal/engine/shader"
	"github.com/softbody-labs/morphview/internal/engine/shape"
	"github.com/softbody-labs/morphview/pkg/math"
)

// ShapeRenderer draws the lit morphing shape. It owns the lighting
// shader program and the dynamic vertex/index buffers the mesh is
// republished into each frame.
//
// It implements both GeometryUploader and MeshDrawer.
type ShapeRenderer struct {
	program uint32

	// Uniform locations looked up once and cached by name. The light
	// rig alone has several dozen uniforms, so caching avoids a GL
	// round trip per uniform per frame.
	uniforms map[string]int32

	vao uint32
	vbo uint32
	ebo uint32

	// Allocated buffer capacities in elements. Uploads within capacity
	// use BufferSubData; growth reallocates.
	vertexCap int
	indexCap  int

	diffuseMap uint32
}

// NewShapeRenderer compiles the lighting shader and creates the
// dynamic mesh buffers. Must be called with a current GL context.
func NewShapeRenderer(diffuseMap uint32) (*ShapeRenderer, error) {
	program, err := shader.CompileProgram(shaders.LightingVertexShader, shaders.LightingFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lighting shader: %w", err)
	}

	r := &ShapeRenderer{
		program:    program,
		uniforms:   make(map[string]int32),
		diffuseMap: diffuseMap,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	vertexSize := int32(unsafe.Sizeof(shape.Vertex{}))

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, uintptr(unsafe.Offsetof(shape.Vertex{}.Normal)))
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, uintptr(unsafe.Offsetof(shape.Vertex{}.TexCoord)))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	gl.UseProgram(program)
	gl.Uniform1i(r.loc("diffuseMap"), 0)

	return r, nil
}

// Close releases GL resources.
func (r *ShapeRenderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// UploadMesh fully replaces the mesh geometry on the GPU.
func (r *ShapeRenderer) UploadMesh(vertices []shape.Vertex, indices []uint32) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	vertexSize := int(unsafe.Sizeof(shape.Vertex{}))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) > r.vertexCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		r.vertexCap = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if len(indices) > r.indexCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)
		r.indexCap = len(indices)
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, unsafe.Pointer(&indices[0]))
	}
}

// BeginFrame binds the program and sets the per-frame uniforms: view
// and projection matrices, camera position, material, and the full
// light rig.
func (r *ShapeRenderer) BeginFrame(view, projection math.Mat4, viewPos math.Vec3, rig *lighting.Rig, mat lighting.Material) {
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.loc("view"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.loc("projection"), 1, false, projection.Ptr())
	gl.Uniform3f(r.loc("viewPos"), viewPos.X, viewPos.Y, viewPos.Z)

	r.setVec3("material.ambient", mat.Ambient)
	r.setVec3("material.diffuse", mat.Diffuse)
	r.setVec3("material.specular", mat.Specular)
	gl.Uniform1f(r.loc("material.shininess"), mat.Shininess)

	r.setVec3("dirLight.direction", rig.Dir.Direction)
	r.setVec3("dirLight.ambient", rig.Dir.Ambient)
	r.setVec3("dirLight.diffuse", rig.Dir.Diffuse)
	r.setVec3("dirLight.specular", rig.Dir.Specular)

	for i := range rig.Points {
		p := &rig.Points[i]
		name := fmt.Sprintf("pointLights[%d]", i)
		r.setVec3(name+".position", p.Position)
		r.setVec3(name+".ambient", p.Ambient)
		r.setVec3(name+".diffuse", p.Diffuse)
		r.setVec3(name+".specular", p.Specular)
		gl.Uniform1f(r.loc(name+".constant"), p.Constant)
		gl.Uniform1f(r.loc(name+".linear"), p.Linear)
		gl.Uniform1f(r.loc(name+".quadratic"), p.Quadratic)
	}

	r.setVec3("spotLight.position", rig.Spot.Position)
	r.setVec3("spotLight.direction", rig.Spot.Direction)
	r.setVec3("spotLight.ambient", rig.Spot.Ambient)
	r.setVec3("spotLight.diffuse", rig.Spot.Diffuse)
	r.setVec3("spotLight.specular", rig.Spot.Specular)
	gl.Uniform1f(r.loc("spotLight.constant"), rig.Spot.Constant)
	gl.Uniform1f(r.loc("spotLight.linear"), rig.Spot.Linear)
	gl.Uniform1f(r.loc("spotLight.quadratic"), rig.Spot.Quadratic)
	gl.Uniform1f(r.loc("spotLight.cutOff"), rig.Spot.CutOff)
	gl.Uniform1f(r.loc("spotLight.outerCutOff"), rig.Spot.OuterCutOff)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.diffuseMap)

	gl.BindVertexArray(r.vao)
}

// DrawMesh issues one indexed triangle-list draw with the given model
// transform. BeginFrame must have been called this frame.
func (r *ShapeRenderer) DrawMesh(indexCount int32, model math.Mat4) {
	gl.UniformMatrix4fv(r.loc("model"), 1, false, model.Ptr())
	gl.DrawElementsWithOffset(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, 0)
}

// EndFrame unbinds the shape VAO.
func (r *ShapeRenderer) EndFrame() {
	gl.BindVertexArray(0)
}

func (r *ShapeRenderer) loc(name string) int32 {
	if l, ok := r.uniforms[name]; ok {
		return l
	}
	l := shader.GetUniform(r.program, name)
	r.uniforms[name] = l
	return l
}

func (r *ShapeRenderer) setVec3(name string, v [3]float32) {
	gl.Uniform3f(r.loc(name), v[0], v[1], v[2])
}

// Package shape generates superellipsoid meshes from time-varying
// shape parameters.
package shape

import "math"

// Vertex is a single mesh vertex. The field layout matches the GPU
// vertex attribute layout (position, normal, texcoord) so the slice
// can be uploaded directly.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds a triangulated surface as an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Params are the superellipsoid shape parameters: three radii and two
// shape exponents. Exponents are conventionally kept in (0, 2] to avoid
// numerical blow-up at the poles.
type Params struct {
	A, B, C float32
	N1, N2  float32
}

// SignedPow computes sign(base) * |base|^exp, with sign(0) = +1.
// This keeps negative bases raised to non-integer exponents from
// producing NaN, which plain math.Pow would.
func SignedPow(base, exp float32) float32 {
	if base < 0 {
		return -float32(math.Pow(float64(-base), float64(exp)))
	}
	return float32(math.Pow(float64(base), float64(exp)))
}

// Generate evaluates the superellipsoid surface over a stacks x slices
// latitude/longitude grid and returns the triangulated mesh.
//
// The surface is sampled at u in [-pi/2, pi/2] (stacks+1 rows) and
// v in [-pi, pi] (slices+1 columns, wrapping in v):
//
//	x = a * signedPow(cos u, n1) * signedPow(cos v, n2)
//	y = b * signedPow(cos u, n1) * signedPow(sin v, n2)
//	z = c * signedPow(sin u, n1)
//
// Normals are the normalized vector (x/a^2, y/b^2, z/c^2). This is an
// approximation, not the true gradient of the implicit form (which
// would involve n1 and n2); it is kept for visual parity with the
// reference surface.
//
// Generate is a pure function of its arguments: identical inputs yield
// identical meshes.
func Generate(p Params, stacks, slices int) Mesh {
	if stacks < 1 {
		stacks = 1
	}
	if slices < 1 {
		slices = 1
	}

	vertices := make([]Vertex, 0, (stacks+1)*(slices+1))
	indices := make([]uint32, 0, 6*stacks*slices)

	for i := 0; i <= stacks; i++ {
		u := -math.Pi/2 + float64(i)/float64(stacks)*math.Pi
		cu := float32(math.Cos(u))
		su := float32(math.Sin(u))

		for j := 0; j <= slices; j++ {
			v := -math.Pi + float64(j)/float64(slices)*2*math.Pi
			cv := float32(math.Cos(v))
			sv := float32(math.Sin(v))

			x := p.A * SignedPow(cu, p.N1) * SignedPow(cv, p.N2)
			y := p.B * SignedPow(cu, p.N1) * SignedPow(sv, p.N2)
			z := p.C * SignedPow(su, p.N1)

			vertices = append(vertices, Vertex{
				Position: [3]float32{x, y, z},
				Normal: normalize([3]float32{
					x / (p.A * p.A),
					y / (p.B * p.B),
					z / (p.C * p.C),
				}),
				TexCoord: [2]float32{
					float32(j) / float32(slices),
					float32(i) / float32(stacks),
				},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			first := uint32(i*(slices+1) + j)
			second := first + uint32(slices) + 1

			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

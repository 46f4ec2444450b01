// Package lighting provides the light rig for the demo scene: one
// directional light, a fixed set of point lights, and a spotlight that
// follows the camera.
package lighting

import (
	gomath "math"

	"github.com/softbody-labs/morphview/pkg/math"
)

// MaxPointLights is the number of point lights the shading program
// declares. The rig always carries exactly this many.
const MaxPointLights = 4

// Directional is a sun-style light with a direction and no position.
type Directional struct {
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
}

// Point is a positioned light with quadratic distance attenuation.
type Point struct {
	Position [3]float32
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32

	Constant  float32
	Linear    float32
	Quadratic float32
}

// Spot is a cone light. CutOff and OuterCutOff are cosines of the
// inner and outer cone half-angles.
type Spot struct {
	Position  [3]float32
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32
}

// Material holds explicit Phong material colors.
type Material struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
}

// Rig is the complete light setup for one scene.
type Rig struct {
	Dir    Directional
	Points [MaxPointLights]Point
	Spot   Spot
}

// DefaultRig returns the demo lighting: a dim directional light, four
// white point lights at fixed world positions, and a camera spotlight
// with a 12.5/15 degree cone.
func DefaultRig() Rig {
	point := func(x, y, z float32) Point {
		return Point{
			Position:  [3]float32{x, y, z},
			Ambient:   [3]float32{0.05, 0.05, 0.05},
			Diffuse:   [3]float32{0.8, 0.8, 0.8},
			Specular:  [3]float32{1.0, 1.0, 1.0},
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		}
	}

	return Rig{
		Dir: Directional{
			Direction: [3]float32{-0.2, -1.0, -0.3},
			Ambient:   [3]float32{0.05, 0.05, 0.05},
			Diffuse:   [3]float32{0.4, 0.4, 0.4},
			Specular:  [3]float32{0.5, 0.5, 0.5},
		},
		Points: [MaxPointLights]Point{
			point(0.7, 0.2, 2.0),
			point(2.3, -3.3, -4.0),
			point(-4.0, 2.0, -12.0),
			point(0.0, 0.0, -3.0),
		},
		Spot: Spot{
			Ambient:     [3]float32{0, 0, 0},
			Diffuse:     [3]float32{1, 1, 1},
			Specular:    [3]float32{1, 1, 1},
			Constant:    1.0,
			Linear:      0.09,
			Quadratic:   0.032,
			CutOff:      cosDeg(12.5),
			OuterCutOff: cosDeg(15.0),
		},
	}
}

// DefaultMaterial returns the blue shape material from the demo.
func DefaultMaterial() Material {
	return Material{
		Ambient:   [3]float32{0.05, 0.1, 0.3},
		Diffuse:   [3]float32{0.2, 0.5, 0.8},
		Specular:  [3]float32{0.7, 0.9, 1.0},
		Shininess: 32.0,
	}
}

// Follow attaches the spotlight to the camera for this frame.
func (s *Spot) Follow(position, front math.Vec3) {
	s.Position = [3]float32{position.X, position.Y, position.Z}
	s.Direction = [3]float32{front.X, front.Y, front.Z}
}

func cosDeg(deg float64) float32 {
	return float32(gomath.Cos(deg * gomath.Pi / 180.0))
}

// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/softbody-labs/morphview/pkg/math"
)

// Movement directions for keyboard input.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// FlyCamera is a free-flying first-person camera driven by yaw/pitch
// angles. Yaw and pitch are in degrees.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	RightDir math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	// Zoom is the vertical field of view in degrees, narrowed by the
	// scroll wheel.
	Zoom float32

	MoveSpeed        float32
	MouseSensitivity float32
}

// NewFlyCamera creates a fly camera at the given position with
// default orientation (looking down -Z).
func NewFlyCamera(position math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:         position,
		WorldUp:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:              -90.0,
		Pitch:            0.0,
		Zoom:             45.0,
		MoveSpeed:        2.5,
		MouseSensitivity: 0.1,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// SpawnPoint returns the world position two units in front of the
// camera, where a spawned shape is placed.
func (c *FlyCamera) SpawnPoint() math.Vec3 {
	return c.Position.Add(c.Front.Scale(2.0))
}

// HandleMovement moves the camera along its basis vectors.
// dt is the frame delta time in seconds.
func (c *FlyCamera) HandleMovement(dir Direction, dt float32) {
	velocity := c.MoveSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.RightDir.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.RightDir.Scale(velocity))
	}
}

// HandleLook updates yaw/pitch from a mouse delta. deltaY is positive
// when the mouse moves down, which pitches the view down.
func (c *FlyCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.MouseSensitivity
	c.Pitch -= deltaY * c.MouseSensitivity

	// Clamp pitch to avoid flipping over the poles
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}

	c.updateVectors()
}

// HandleZoom narrows or widens the field of view from scroll input.
func (c *FlyCamera) HandleZoom(delta float32) {
	c.Zoom -= delta
	if c.Zoom < 1.0 {
		c.Zoom = 1.0
	}
	if c.Zoom > 45.0 {
		c.Zoom = 45.0
	}
}

// updateVectors recomputes the front/right/up basis from yaw and pitch.
func (c *FlyCamera) updateVectors() {
	yaw := float64(c.Yaw) * gomath.Pi / 180.0
	pitch := float64(c.Pitch) * gomath.Pi / 180.0

	front := math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.RightDir = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.RightDir.Cross(c.Front).Normalize()
}

package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera-relative movement axis.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Movement speed bounds enforced by AdjustSpeed.
const (
	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Camera is a yaw/pitch fly camera. Orientation vectors are derived from
// the angles; mutate via Move/Rotate rather than writing Front directly.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees, clamped to ±89

	Zoom             float32 // vertical field of view, degrees
	MovementSpeed    float32 // world units per second
	MouseSensitivity float32
}

func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              -90,
		Pitch:            0,
		Zoom:             80,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Move translates the camera along one of its axes by velocity world units.
func (c *Camera) Move(dir Direction, velocity float32) {
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// Rotate applies a mouse delta to yaw and pitch. Pitch is clamped to ±89°
// to keep the view matrix well defined.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
	c.updateVectors()
}

// AdjustSpeed changes the movement speed by delta, clamped to
// [MinSpeed, MaxSpeed].
func (c *Camera) AdjustSpeed(delta float32) {
	c.MovementSpeed += delta
	if c.MovementSpeed < MinSpeed {
		c.MovementSpeed = MinSpeed
	}
	if c.MovementSpeed > MaxSpeed {
		c.MovementSpeed = MaxSpeed
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// ProjectionMatrix returns the orthographic or perspective projection for
// the given viewport. The orthographic volume spans ±10 world units
// vertically, widened by the aspect ratio; both use the same depth range.
func ProjectionMatrix(ortho bool, zoomDeg float32, width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	if ortho {
		return mgl32.Ortho(-10*aspect, 10*aspect, -10, 10, 0.1, 100)
	}
	return mgl32.Perspective(mgl32.DegToRad(zoomDeg), aspect, 0.1, 100)
}

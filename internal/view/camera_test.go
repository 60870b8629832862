package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 5, 12})

	require.InDelta(t, 0, c.Front.X(), 1e-5)
	require.InDelta(t, 0, c.Front.Y(), 1e-5)
	require.InDelta(t, -1, c.Front.Z(), 1e-5)
	require.InDelta(t, 1, c.Right.X(), 1e-5)
	require.InDelta(t, 1, c.Up.Y(), 1e-5)
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.Move(Forward, 2)
	require.InDelta(t, -2, c.Position.Z(), 1e-5)

	c.Move(Right, 3)
	require.InDelta(t, 3, c.Position.X(), 1e-5)

	c.Move(Up, 1)
	c.Move(Down, 4)
	require.InDelta(t, -3, c.Position.Y(), 1e-5)
}

func TestCameraUpDownFollowWorldAxis(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.Rotate(0, 450) // pitch up 45 degrees at default sensitivity

	c.Move(Up, 1)
	require.InDelta(t, 1, c.Position.Y(), 1e-5)
	require.InDelta(t, 0, c.Position.X(), 1e-5)
	require.InDelta(t, 0, c.Position.Z(), 1e-5)
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.Rotate(0, 10000)
	require.Equal(t, float32(89), c.Pitch)

	c.Rotate(0, -100000)
	require.Equal(t, float32(-89), c.Pitch)
}

func TestCameraYawWraps(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.Rotate(900, 0) // 90 degrees at default sensitivity

	// Yaw of 0 looks down +X.
	require.InDelta(t, 1, c.Front.X(), 1e-5)
	require.InDelta(t, 0, c.Front.Z(), 1e-5)
}

func TestAdjustSpeedClamps(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.AdjustSpeed(100)
	require.Equal(t, float32(MaxSpeed), c.MovementSpeed)

	c.AdjustSpeed(-100)
	require.Equal(t, float32(MinSpeed), c.MovementSpeed)
}

func TestProjectionMatrixModes(t *testing.T) {
	persp := ProjectionMatrix(false, 80, 1000, 800)
	want := mgl32.Perspective(mgl32.DegToRad(80), 1.25, 0.1, 100)
	require.True(t, persp.ApproxEqual(want))

	ortho := ProjectionMatrix(true, 80, 1000, 800)
	wantOrtho := mgl32.Ortho(-12.5, 12.5, -10, 10, 0.1, 100)
	require.True(t, ortho.ApproxEqual(wantOrtho))

	// Zoom only affects the perspective mode.
	require.True(t, ortho.ApproxEqual(ProjectionMatrix(true, 30, 1000, 800)))
}

package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestModelMatrixIdentity(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	require.True(t, m.ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixOrder(t *testing.T) {
	scale := mgl32.Vec3{2, 3, 4}
	pos := mgl32.Vec3{1, -2, 5}
	m := ModelMatrix(scale, 30, 45, 60, pos)

	want := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(2, 3, 4))
	require.True(t, m.ApproxEqual(want))
}

func TestModelMatrixScaleBeforeRotation(t *testing.T) {
	// A point on the local X axis, scaled by 2 then rotated 90 degrees
	// around Z, ends up on the Y axis at distance 2.
	m := ModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 0, 90, mgl32.Vec3{})
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	require.InDelta(t, 0, got.X(), 1e-5)
	require.InDelta(t, 2, got.Y(), 1e-5)
	require.InDelta(t, 0, got.Z(), 1e-5)
}

func TestModelMatrixTranslationLast(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 180, 0, mgl32.Vec3{10, 0, 0})
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	require.InDelta(t, 9, got.X(), 1e-5)
	require.InDelta(t, 0, got.Z(), 1e-5)
}

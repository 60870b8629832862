package render

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix builds the per-object transform mapping local shape
// coordinates into world space. The composition order is fixed:
// translation * rotZ * rotY * rotX * scale. Angles are in degrees.
func ModelMatrix(scale mgl32.Vec3, rxDeg, ryDeg, rzDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rxDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(ryDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rzDeg))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

package render

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for GL offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type mesh struct {
	vao, vbo, ebo uint32
	parts         []part
}

func uploadMesh(g *geometry) *mesh {
	m := &mesh{parts: g.parts}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.verts)*4, gl.Ptr(g.verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.indices)*4, gl.Ptr(g.indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	// aUV (vec2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))

	gl.BindVertexArray(0)
	return m
}

func (m *mesh) drawParts(enabled ...bool) {
	gl.BindVertexArray(m.vao)
	for i, p := range m.parts {
		if i < len(enabled) && !enabled[i] {
			continue
		}
		gl.DrawElements(gl.TRIANGLES, p.count, gl.UNSIGNED_INT, glOffset(int(p.offset)*4))
	}
}

func (m *mesh) destroy() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// Meshes owns the fixed set of primitive shape meshes. Meshes are uploaded
// lazily on first load and freed together via Destroy; the owner tears the
// whole set down unconditionally at scene destruction.
type Meshes struct {
	plane     *mesh
	box       *mesh
	cylinder  *mesh
	cone      *mesh
	sphere    *mesh
	torus     *mesh
	halfTorus *mesh
}

func NewMeshes() *Meshes { return &Meshes{} }

func (m *Meshes) LoadPlane() {
	if m.plane == nil {
		m.plane = uploadMesh(planeGeometry())
	}
}

func (m *Meshes) LoadBox() {
	if m.box == nil {
		m.box = uploadMesh(boxGeometry())
	}
}

func (m *Meshes) LoadCylinder() {
	if m.cylinder == nil {
		m.cylinder = uploadMesh(cylinderGeometry())
	}
}

func (m *Meshes) LoadCone() {
	if m.cone == nil {
		m.cone = uploadMesh(coneGeometry())
	}
}

func (m *Meshes) LoadSphere() {
	if m.sphere == nil {
		m.sphere = uploadMesh(sphereGeometry())
	}
}

func (m *Meshes) LoadTorus() {
	if m.torus == nil {
		m.torus = uploadMesh(torusGeometry(2 * math.Pi))
	}
	if m.halfTorus == nil {
		m.halfTorus = uploadMesh(torusGeometry(math.Pi))
	}
}

func (m *Meshes) DrawPlane() { m.plane.drawParts() }
func (m *Meshes) DrawBox()   { m.box.drawParts() }

// DrawCylinder draws the cylinder's caps and sides selectively, matching
// the geometry's part order (bottom, top, sides).
func (m *Meshes) DrawCylinder(top, bottom, sides bool) {
	m.cylinder.drawParts(bottom, top, sides)
}

// DrawCone draws the cone with an optional bottom cap.
func (m *Meshes) DrawCone(bottom bool) {
	m.cone.drawParts(bottom, true)
}

func (m *Meshes) DrawSphere()    { m.sphere.drawParts() }
func (m *Meshes) DrawTorus()     { m.torus.drawParts() }
func (m *Meshes) DrawHalfTorus() { m.halfTorus.drawParts() }

func (m *Meshes) Destroy() {
	for _, mm := range []*mesh{m.plane, m.box, m.cylinder, m.cone, m.sphere, m.torus, m.halfTorus} {
		if mm != nil {
			mm.destroy()
		}
	}
	*m = Meshes{}
}

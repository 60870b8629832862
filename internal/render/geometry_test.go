package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkGeometry(t *testing.T, g *geometry) {
	t.Helper()

	require.Zero(t, len(g.verts)%vertexStride, "vertex data not stride aligned")
	require.Zero(t, len(g.indices)%3, "index count not a multiple of 3")

	vc := uint32(g.vertexCount())
	for _, idx := range g.indices {
		require.Less(t, idx, vc, "index out of range")
	}

	// Normals must be unit length.
	for i := 0; i < g.vertexCount(); i++ {
		nx := float64(g.verts[i*vertexStride+3])
		ny := float64(g.verts[i*vertexStride+4])
		nz := float64(g.verts[i*vertexStride+5])
		require.InDelta(t, 1.0, math.Sqrt(nx*nx+ny*ny+nz*nz), 1e-4)
	}

	// Parts must tile the index buffer exactly.
	var total int32
	for _, p := range g.parts {
		require.Equal(t, total, p.offset)
		total += p.count
	}
	require.Equal(t, int32(len(g.indices)), total)
}

func TestPlaneGeometry(t *testing.T) {
	g := planeGeometry()
	checkGeometry(t, g)
	require.Len(t, g.parts, 1)
	require.Equal(t, 4, g.vertexCount())
}

func TestBoxGeometry(t *testing.T) {
	g := boxGeometry()
	checkGeometry(t, g)
	require.Equal(t, 24, g.vertexCount())
	require.Len(t, g.indices, 36)
}

func TestCylinderGeometryParts(t *testing.T) {
	g := cylinderGeometry()
	checkGeometry(t, g)
	require.Len(t, g.parts, 3)
}

func TestConeGeometryParts(t *testing.T) {
	g := coneGeometry()
	checkGeometry(t, g)
	require.Len(t, g.parts, 2)
}

func TestSphereGeometry(t *testing.T) {
	g := sphereGeometry()
	checkGeometry(t, g)

	// Every position sits on the unit sphere.
	for i := 0; i < g.vertexCount(); i++ {
		px := float64(g.verts[i*vertexStride])
		py := float64(g.verts[i*vertexStride+1])
		pz := float64(g.verts[i*vertexStride+2])
		require.InDelta(t, 1.0, math.Sqrt(px*px+py*py+pz*pz), 1e-4)
	}
}

func TestTorusGeometry(t *testing.T) {
	full := torusGeometry(2 * math.Pi)
	checkGeometry(t, full)

	half := torusGeometry(math.Pi)
	checkGeometry(t, half)

	// The half torus stays in the z >= 0 half space (within float noise).
	for i := 0; i < half.vertexCount(); i++ {
		require.GreaterOrEqual(t, half.verts[i*vertexStride+2], float32(-1e-4))
	}
}

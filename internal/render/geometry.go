package render

import "math"

// Vertex layout shared by all shape meshes: position(3), normal(3), uv(2).
const vertexStride = 8

// part is a contiguous index range so shapes like cylinders can draw their
// caps and sides independently.
type part struct {
	offset int32 // element offset into the index buffer
	count  int32
}

type geometry struct {
	verts   []float32
	indices []uint32
	parts   []part
}

func (g *geometry) vertexCount() int { return len(g.verts) / vertexStride }

func (g *geometry) addVertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(g.vertexCount())
	g.verts = append(g.verts, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (g *geometry) addTriangle(a, b, c uint32) {
	g.indices = append(g.indices, a, b, c)
}

func (g *geometry) closePart() {
	offset := int32(0)
	for _, p := range g.parts {
		offset += p.count
	}
	g.parts = append(g.parts, part{offset: offset, count: int32(len(g.indices)) - offset})
}

// planeGeometry spans -1..1 in X and Z at y=0 with an upward normal.
func planeGeometry() *geometry {
	g := &geometry{}
	a := g.addVertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b := g.addVertex(1, 0, -1, 0, 1, 0, 1, 1)
	c := g.addVertex(1, 0, 1, 0, 1, 0, 1, 0)
	d := g.addVertex(-1, 0, 1, 0, 1, 0, 0, 0)
	g.addTriangle(a, c, b)
	g.addTriangle(a, d, c)
	g.closePart()
	return g
}

// boxGeometry is a unit cube centered at the origin, four vertices per face
// so each face gets a flat normal.
func boxGeometry() *geometry {
	g := &geometry{}
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		var idx [4]uint32
		for i, c := range f.corners {
			idx[i] = g.addVertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		g.addTriangle(idx[0], idx[1], idx[2])
		g.addTriangle(idx[0], idx[2], idx[3])
	}
	g.closePart()
	return g
}

const (
	radialSegments = 36
	heightStacks   = 18
)

// cylinderGeometry is a unit-radius cylinder from y=0 to y=1.
// Parts: 0 = bottom cap, 1 = top cap, 2 = sides.
func cylinderGeometry() *geometry {
	g := &geometry{}

	// Bottom cap.
	center := g.addVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / radialSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		g.addVertex(x, 0, z, 0, -1, 0, 0.5+x/2, 0.5+z/2)
	}
	for i := 0; i < radialSegments; i++ {
		g.addTriangle(center, center+1+uint32(i), center+2+uint32(i))
	}
	g.closePart()

	// Top cap.
	center = g.addVertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / radialSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		g.addVertex(x, 1, z, 0, 1, 0, 0.5+x/2, 0.5+z/2)
	}
	for i := 0; i < radialSegments; i++ {
		g.addTriangle(center, center+2+uint32(i), center+1+uint32(i))
	}
	g.closePart()

	// Sides.
	base := uint32(g.vertexCount())
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / radialSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		u := float32(i) / radialSegments
		g.addVertex(x, 0, z, x, 0, z, u, 0)
		g.addVertex(x, 1, z, x, 0, z, u, 1)
	}
	for i := 0; i < radialSegments; i++ {
		lo := base + uint32(i*2)
		g.addTriangle(lo, lo+2, lo+1)
		g.addTriangle(lo+1, lo+2, lo+3)
	}
	g.closePart()
	return g
}

// coneGeometry is a unit-radius cone with its base at y=0 and apex at y=1.
// Parts: 0 = bottom cap, 1 = sides.
func coneGeometry() *geometry {
	g := &geometry{}

	// Bottom cap.
	center := g.addVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / radialSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		g.addVertex(x, 0, z, 0, -1, 0, 0.5+x/2, 0.5+z/2)
	}
	for i := 0; i < radialSegments; i++ {
		g.addTriangle(center, center+1+uint32(i), center+2+uint32(i))
	}
	g.closePart()

	// Sides: apex vertex duplicated per segment for reasonable shading.
	// Slant normal for r=1, h=1 is (cos, 1, sin)/sqrt(2).
	inv := float32(1 / math.Sqrt2)
	base := uint32(g.vertexCount())
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / radialSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		u := float32(i) / radialSegments
		g.addVertex(x, 0, z, x*inv, inv, z*inv, u, 0)
		g.addVertex(0, 1, 0, x*inv, inv, z*inv, u, 1)
	}
	for i := 0; i < radialSegments; i++ {
		lo := base + uint32(i*2)
		g.addTriangle(lo, lo+2, lo+1)
	}
	g.closePart()
	return g
}

// sphereGeometry is a unit sphere centered at the origin.
func sphereGeometry() *geometry {
	g := &geometry{}
	for stack := 0; stack <= heightStacks; stack++ {
		phi := math.Pi * float64(stack) / heightStacks // 0 at north pole
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for seg := 0; seg <= radialSegments; seg++ {
			theta := 2 * math.Pi * float64(seg) / radialSegments
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			g.addVertex(x, y, z, x, y, z,
				float32(seg)/radialSegments, 1-float32(stack)/heightStacks)
		}
	}
	cols := uint32(radialSegments + 1)
	for stack := 0; stack < heightStacks; stack++ {
		for seg := 0; seg < radialSegments; seg++ {
			a := uint32(stack)*cols + uint32(seg)
			b := a + cols
			g.addTriangle(a, a+1, b)
			g.addTriangle(a+1, b+1, b)
		}
	}
	g.closePart()
	return g
}

// torusGeometry sweeps a tube of radius 0.25 around the Y axis at major
// radius 1. sweep is the swept angle in radians: 2π for a full torus,
// π for the half torus.
func torusGeometry(sweep float64) *geometry {
	const (
		major = 1.0
		tube  = 0.25
		rings = 36
		sides = 18
	)
	g := &geometry{}
	for ring := 0; ring <= rings; ring++ {
		u := sweep * float64(ring) / rings
		cu := math.Cos(u)
		su := math.Sin(u)
		for side := 0; side <= sides; side++ {
			v := 2 * math.Pi * float64(side) / sides
			cv := math.Cos(v)
			sv := math.Sin(v)
			px := float32((major + tube*cv) * cu)
			py := float32(tube * sv)
			pz := float32((major + tube*cv) * su)
			nx := float32(cv * cu)
			ny := float32(sv)
			nz := float32(cv * su)
			g.addVertex(px, py, pz, nx, ny, nz,
				float32(ring)/rings, float32(side)/sides)
		}
	}
	cols := uint32(sides + 1)
	for ring := 0; ring < rings; ring++ {
		for side := 0; side < sides; side++ {
			a := uint32(ring)*cols + uint32(side)
			b := a + cols
			g.addTriangle(a, b, a+1)
			g.addTriangle(a+1, b, b+1)
		}
	}
	g.closePart()
	return g
}

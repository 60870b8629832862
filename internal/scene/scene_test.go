package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleScene = `
textures:
  - path: textures/wood.jpg
    tag: wood
materials:
  - tag: wood
    diffuse: [0.6, 0.4, 0.2]
    specular: [0.1, 0.1, 0.1]
    shininess: 8
lights:
  directional:
    direction: [-0.2, -1, -0.3]
    ambient: [0.3, 0.3, 0.3]
    diffuse: [0.6, 0.6, 0.6]
    specular: [0.9, 0.9, 0.9]
  points:
    - position: [4, 7, 1]
      diffuse: [1, 1, 1]
      constant: 1
      linear: 0.09
      quadratic: 0.032
objects:
  - name: table
    shape: plane
    scale: [15, 1, 15]
    texture: wood
    material: wood
  - name: glass
    shape: cylinder
    color: [0.8, 0.9, 1, 0.3]
    transparent: true
    caps:
      top: false
      bottom: true
      sides: true
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScene(t *testing.T) {
	s, err := Load(writeScene(t, sampleScene))
	require.NoError(t, err)

	require.Len(t, s.Textures, 1)
	require.Equal(t, "wood", s.Textures[0].Tag)
	require.Len(t, s.Materials, 1)
	require.NotNil(t, s.Lights.Directional)
	require.Len(t, s.Lights.Points, 1)
	require.Len(t, s.Objects, 2)

	table := s.Objects[0]
	require.Equal(t, ShapePlane, table.Shape)
	require.Equal(t, Vec3{15, 1, 15}, table.Scale)
	// Omitted fields get defaults.
	require.Equal(t, Color{1, 1, 1, 1}, table.Color)
	require.Equal(t, [2]float32{1, 1}, table.UVScale)

	glass := s.Objects[1]
	require.True(t, glass.Transparent)
	require.Equal(t, float32(0.3), glass.Color.A)
	require.NotNil(t, glass.Caps)
	require.False(t, glass.Caps.Top)
	require.True(t, glass.Caps.Sides)
	// Omitted scale defaults to unit.
	require.Equal(t, Vec3{1, 1, 1}, glass.Scale)
}

func TestLoadSceneUnknownShape(t *testing.T) {
	_, err := Load(writeScene(t, `
objects:
  - name: blob
    shape: dodecahedron
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown shape")
	require.Contains(t, err.Error(), "blob")
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestColorThreeComponents(t *testing.T) {
	s, err := Load(writeScene(t, `
objects:
  - name: box
    shape: box
    color: [1, 0, 0]
`))
	require.NoError(t, err)
	require.Equal(t, Color{1, 0, 0, 1}, s.Objects[0].Color)
}

func TestVec3RejectsWrongArity(t *testing.T) {
	_, err := Load(writeScene(t, `
objects:
  - name: box
    shape: box
    scale: [1, 2]
`))
	require.Error(t, err)
}

func TestDefaultSceneValidates(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	require.NotEmpty(t, s.Objects)
	require.NotNil(t, s.Lights.Directional)

	// Every object references only defined material tags.
	tags := map[string]bool{}
	for _, m := range s.Materials {
		tags[m.Tag] = true
	}
	for _, o := range s.Objects {
		if o.Material != "" {
			require.True(t, tags[o.Material], "object %s references unknown material %s", o.Name, o.Material)
		}
	}
}

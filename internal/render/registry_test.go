package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTextureRegistryFind(t *testing.T) {
	r := NewTextureRegistry(zap.NewNop())
	r.Add("wood", 7)
	r.Add("metal", 9)

	require.Equal(t, int32(7), r.FindID("wood"))
	require.Equal(t, int32(9), r.FindID("metal"))
	require.Equal(t, int32(0), r.FindSlot("wood"))
	require.Equal(t, int32(1), r.FindSlot("metal"))
	require.Equal(t, 2, r.Len())
}

func TestTextureRegistryUnknownTag(t *testing.T) {
	r := NewTextureRegistry(zap.NewNop())
	r.Add("wood", 7)

	require.Equal(t, int32(-1), r.FindID("marble"))
	require.Equal(t, int32(-1), r.FindSlot("marble"))
}

func TestTextureRegistryDuplicateTagFirstWins(t *testing.T) {
	r := NewTextureRegistry(zap.NewNop())
	r.Add("wood", 7)
	r.Add("wood", 9)

	require.Equal(t, int32(7), r.FindID("wood"))
	require.Equal(t, int32(0), r.FindSlot("wood"))
	require.Equal(t, 2, r.Len())
}

func TestMaterialRegistryFind(t *testing.T) {
	r := &MaterialRegistry{}
	r.Define(Material{Tag: "wood", Diffuse: mgl32.Vec3{0.6, 0.4, 0.2}, Shininess: 8})
	r.Define(Material{Tag: "metal", Diffuse: mgl32.Vec3{0.8, 0.8, 0.8}, Shininess: 64})

	m, ok := r.Find("metal")
	require.True(t, ok)
	require.Equal(t, float32(64), m.Shininess)

	_, ok = r.Find("rubber")
	require.False(t, ok)
}

func TestMaterialRegistryDuplicateTagFirstWins(t *testing.T) {
	r := &MaterialRegistry{}
	r.Define(Material{Tag: "wood", Shininess: 8})
	r.Define(Material{Tag: "wood", Shininess: 99})

	m, ok := r.Find("wood")
	require.True(t, ok)
	require.Equal(t, float32(8), m.Shininess)
}

package render

import "github.com/go-gl/mathgl/mgl32"

// Material is a tagged Phong material definition.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// MaterialRegistry is an append-only ordered material table. Lookup is a
// first-match linear scan over insertion order.
type MaterialRegistry struct {
	entries []Material
}

func (r *MaterialRegistry) Define(m Material) {
	r.entries = append(r.entries, m)
}

// Find returns the first material registered under tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.entries {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int { return len(r.entries) }

// ApplyMaterial pushes m's Phong parameters into the shader.
func ApplyMaterial(p *Program, m Material) {
	p.SetVec3("material.diffuseColor", m.Diffuse)
	p.SetVec3("material.specularColor", m.Specular)
	p.SetFloat("material.shininess", m.Shininess)
}

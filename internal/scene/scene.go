package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TextureFile names an image on disk and the tag it registers under.
type TextureFile struct {
	Path string `yaml:"path"`
	Tag  string `yaml:"tag"`
}

// MaterialDef is a tagged Phong material in scene-file form.
type MaterialDef struct {
	Tag       string  `yaml:"tag"`
	Diffuse   Vec3    `yaml:"diffuse"`
	Specular  Vec3    `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

type DirectionalDef struct {
	Direction Vec3 `yaml:"direction"`
	Ambient   Vec3 `yaml:"ambient"`
	Diffuse   Vec3 `yaml:"diffuse"`
	Specular  Vec3 `yaml:"specular"`
}

type PointDef struct {
	Position  Vec3    `yaml:"position"`
	Ambient   Vec3    `yaml:"ambient"`
	Diffuse   Vec3    `yaml:"diffuse"`
	Specular  Vec3    `yaml:"specular"`
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

type Lights struct {
	Directional *DirectionalDef `yaml:"directional"`
	Points      []PointDef      `yaml:"points"`
}

// Scene is the full declarative description of what to draw: assets,
// lights, and the ordered object list. Draw order matters — transparent
// objects are expected to come after whatever shows through them.
type Scene struct {
	Textures  []TextureFile `yaml:"textures"`
	Materials []MaterialDef `yaml:"materials"`
	Lights    Lights        `yaml:"lights"`
	Objects   []Object      `yaml:"objects"`
}

// Load reads and validates a YAML scene description.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	s.applyDefaults()
	return &s, nil
}

// Validate rejects descriptors the renderer cannot draw.
func (s *Scene) Validate() error {
	for i, o := range s.Objects {
		if !o.Shape.valid() {
			return fmt.Errorf("object %d (%s): unknown shape %q", i, o.Name, o.Shape)
		}
	}
	return nil
}

// applyDefaults fills omitted descriptor fields: unit scale, unit UV scale,
// opaque white color.
func (s *Scene) applyDefaults() {
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Scale == (Vec3{}) {
			o.Scale = Vec3{1, 1, 1}
		}
		if o.UVScale == ([2]float32{}) {
			o.UVScale = [2]float32{1, 1}
		}
		if o.Color == (Color{}) {
			o.Color = Color{1, 1, 1, 1}
		}
	}
}

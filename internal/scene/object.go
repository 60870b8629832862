package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Shape names one of the fixed primitive meshes.
type Shape string

const (
	ShapePlane     Shape = "plane"
	ShapeBox       Shape = "box"
	ShapeCylinder  Shape = "cylinder"
	ShapeCone      Shape = "cone"
	ShapeSphere    Shape = "sphere"
	ShapeTorus     Shape = "torus"
	ShapeHalfTorus Shape = "half-torus"
)

func (s Shape) valid() bool {
	switch s {
	case ShapePlane, ShapeBox, ShapeCylinder, ShapeCone, ShapeSphere, ShapeTorus, ShapeHalfTorus:
		return true
	}
	return false
}

// Vec3 decodes from a YAML flow sequence like [1, 2.5, 0].
type Vec3 struct {
	X, Y, Z float32
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var parts []float32
	if err := node.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("vector needs 3 components, got %d", len(parts))
	}
	v.X, v.Y, v.Z = parts[0], parts[1], parts[2]
	return nil
}

// Color decodes from [r, g, b] or [r, g, b, a]; alpha defaults to 1.
type Color struct {
	R, G, B, A float32
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var parts []float32
	if err := node.Decode(&parts); err != nil {
		return err
	}
	switch len(parts) {
	case 3:
		c.R, c.G, c.B, c.A = parts[0], parts[1], parts[2], 1
	case 4:
		c.R, c.G, c.B, c.A = parts[0], parts[1], parts[2], parts[3]
	default:
		return fmt.Errorf("color needs 3 or 4 components, got %d", len(parts))
	}
	return nil
}

// CapOptions selects which parts of a cylinder or cone are drawn.
// A nil CapOptions draws everything.
type CapOptions struct {
	Top    bool `yaml:"top"`
	Bottom bool `yaml:"bottom"`
	Sides  bool `yaml:"sides"`
}

// Object is one declarative scene draw: which shape, where it sits, and how
// it is shaded. The renderer iterates these generically; there are no
// hand-authored per-object draw sequences.
type Object struct {
	Name     string `yaml:"name"`
	Shape    Shape  `yaml:"shape"`
	Scale    Vec3   `yaml:"scale"`
	Rotation Vec3   `yaml:"rotation"` // degrees, applied as X then Y then Z
	Position Vec3   `yaml:"position"`

	Color   Color      `yaml:"color"`
	Texture string     `yaml:"texture"` // tag; empty renders with Color
	UVScale [2]float32 `yaml:"uv_scale"`

	Material    string      `yaml:"material"` // tag; empty renders unlit
	Edges       bool        `yaml:"edges"`    // filled pass plus wireframe outline
	Transparent bool        `yaml:"transparent"`
	Caps        *CapOptions `yaml:"caps"`
}

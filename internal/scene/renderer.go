package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"glstudio/internal/render"
)

// Renderer walks a Scene's descriptor list and issues the draws. It owns
// the mesh set and the texture/material registries outright; Destroy tears
// everything down in bulk.
type Renderer struct {
	prog      *render.Program
	meshes    *render.Meshes
	textures  *render.TextureRegistry
	materials *render.MaterialRegistry
	log       *zap.Logger
}

func NewRenderer(prog *render.Program, log *zap.Logger) *Renderer {
	return &Renderer{
		prog:      prog,
		meshes:    render.NewMeshes(),
		textures:  render.NewTextureRegistry(log),
		materials: &render.MaterialRegistry{},
		log:       log,
	}
}

// Prepare loads the meshes and the scene's assets into GL memory and pushes
// the light table. Texture failures are logged and skipped; those objects
// render with their solid color.
func (r *Renderer) Prepare(s *Scene) {
	r.meshes.LoadPlane()
	r.meshes.LoadBox()
	r.meshes.LoadCylinder()
	r.meshes.LoadCone()
	r.meshes.LoadSphere()
	r.meshes.LoadTorus()

	for _, t := range s.Textures {
		r.textures.Create(t.Path, t.Tag)
	}
	r.textures.Bind()

	for _, m := range s.Materials {
		r.materials.Define(render.Material{
			Tag:       m.Tag,
			Diffuse:   mgl32.Vec3{m.Diffuse.X, m.Diffuse.Y, m.Diffuse.Z},
			Specular:  mgl32.Vec3{m.Specular.X, m.Specular.Y, m.Specular.Z},
			Shininess: m.Shininess,
		})
	}

	r.prog.Use()
	var dir *render.DirectionalLight
	if d := s.Lights.Directional; d != nil {
		dir = &render.DirectionalLight{
			Direction: mgl32.Vec3{d.Direction.X, d.Direction.Y, d.Direction.Z},
			Ambient:   mgl32.Vec3{d.Ambient.X, d.Ambient.Y, d.Ambient.Z},
			Diffuse:   mgl32.Vec3{d.Diffuse.X, d.Diffuse.Y, d.Diffuse.Z},
			Specular:  mgl32.Vec3{d.Specular.X, d.Specular.Y, d.Specular.Z},
		}
	}
	points := make([]render.PointLight, 0, len(s.Lights.Points))
	for _, p := range s.Lights.Points {
		points = append(points, render.PointLight{
			Position:  mgl32.Vec3{p.Position.X, p.Position.Y, p.Position.Z},
			Ambient:   mgl32.Vec3{p.Ambient.X, p.Ambient.Y, p.Ambient.Z},
			Diffuse:   mgl32.Vec3{p.Diffuse.X, p.Diffuse.Y, p.Diffuse.Z},
			Specular:  mgl32.Vec3{p.Specular.X, p.Specular.Y, p.Specular.Z},
			Constant:  p.Constant,
			Linear:    p.Linear,
			Quadratic: p.Quadratic,
		})
	}
	render.ApplyLights(r.prog, dir, points, nil)

	r.log.Info("scene prepared",
		zap.Int("objects", len(s.Objects)),
		zap.Int("textures", r.textures.Len()),
		zap.Int("materials", r.materials.Len()))
}

// Render draws every object descriptor in list order.
func (r *Renderer) Render(s *Scene) {
	gl.Enable(gl.DEPTH_TEST)
	gl.LineWidth(1.5)

	for i := range s.Objects {
		r.drawObject(&s.Objects[i])
	}

	gl.Disable(gl.DEPTH_TEST)
}

func (r *Renderer) Destroy() {
	r.textures.Destroy()
	r.meshes.Destroy()
}

func (r *Renderer) drawObject(o *Object) {
	r.prog.SetMat4("model", render.ModelMatrix(
		mgl32.Vec3{o.Scale.X, o.Scale.Y, o.Scale.Z},
		o.Rotation.X, o.Rotation.Y, o.Rotation.Z,
		mgl32.Vec3{o.Position.X, o.Position.Y, o.Position.Z},
	))

	if o.Transparent {
		// Transparent shapes blend over what is already drawn and must not
		// occlude each other in the depth buffer.
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	}

	// Filled pass.
	r.applyAppearance(o)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	r.drawShape(o)

	if o.Edges {
		// Wireframe pass, pulled toward the camera to avoid z-fighting.
		gl.Enable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonOffset(-1, -1)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		r.prog.SetBool("bUseTexture", false)
		r.prog.SetBool("bUseLighting", false)
		if o.Transparent {
			r.prog.SetVec4("objectColor", mgl32.Vec4{1, 1, 1, o.Color.A * 0.7})
		} else {
			r.prog.SetVec4("objectColor", mgl32.Vec4{0, 0, 0, 1})
		}
		r.drawShape(o)
		gl.Disable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	if o.Transparent {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

// applyAppearance pushes the color/texture/material uniforms for one object.
// A texture tag that never registered falls back to the solid color, which
// is the whole of the texture failure model.
func (r *Renderer) applyAppearance(o *Object) {
	slot := int32(-1)
	if o.Texture != "" {
		slot = r.textures.FindSlot(o.Texture)
	}
	if slot >= 0 {
		r.prog.SetBool("bUseTexture", true)
		r.prog.SetSampler("objectTexture", slot)
		r.prog.SetVec2("UVscale", mgl32.Vec2{o.UVScale[0], o.UVScale[1]})
	} else {
		r.prog.SetBool("bUseTexture", false)
	}
	r.prog.SetVec4("objectColor", mgl32.Vec4{o.Color.R, o.Color.G, o.Color.B, o.Color.A})

	if m, ok := r.materials.Find(o.Material); ok {
		r.prog.SetBool("bUseLighting", true)
		render.ApplyMaterial(r.prog, m)
	} else {
		r.prog.SetBool("bUseLighting", false)
	}
}

func (r *Renderer) drawShape(o *Object) {
	top, bottom, sides := true, true, true
	if o.Caps != nil {
		top, bottom, sides = o.Caps.Top, o.Caps.Bottom, o.Caps.Sides
	}
	switch o.Shape {
	case ShapePlane:
		r.meshes.DrawPlane()
	case ShapeBox:
		r.meshes.DrawBox()
	case ShapeCylinder:
		r.meshes.DrawCylinder(top, bottom, sides)
	case ShapeCone:
		r.meshes.DrawCone(bottom)
	case ShapeSphere:
		r.meshes.DrawSphere()
	case ShapeTorus:
		r.meshes.DrawTorus()
	case ShapeHalfTorus:
		r.meshes.DrawHalfTorus()
	}
}

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights matches NR_POINT_LIGHTS in the fragment shader.
const MaxPointLights = 4

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLight struct {
	Position  mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

type SpotLight struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	CutOff      float32 // cosine of inner cone angle
	OuterCutOff float32 // cosine of outer cone angle
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Constant    float32
	Linear      float32
	Quadratic   float32
}

// ApplyLights pushes the light table into the shader. Unused slots are
// marked inactive so the fragment loop skips them. Point lights beyond
// MaxPointLights are dropped.
func ApplyLights(p *Program, dir *DirectionalLight, points []PointLight, spot *SpotLight) {
	if dir != nil {
		p.SetVec3("directionalLight.direction", dir.Direction)
		p.SetVec3("directionalLight.ambient", dir.Ambient)
		p.SetVec3("directionalLight.diffuse", dir.Diffuse)
		p.SetVec3("directionalLight.specular", dir.Specular)
		p.SetBool("directionalLight.bActive", true)
	} else {
		p.SetBool("directionalLight.bActive", false)
	}

	for i := 0; i < MaxPointLights; i++ {
		name := fmt.Sprintf("pointLights[%d]", i)
		if i >= len(points) {
			p.SetBool(name+".bActive", false)
			continue
		}
		pl := points[i]
		p.SetVec3(name+".position", pl.Position)
		p.SetVec3(name+".ambient", pl.Ambient)
		p.SetVec3(name+".diffuse", pl.Diffuse)
		p.SetVec3(name+".specular", pl.Specular)
		p.SetFloat(name+".constant", pl.Constant)
		p.SetFloat(name+".linear", pl.Linear)
		p.SetFloat(name+".quadratic", pl.Quadratic)
		p.SetBool(name+".bActive", true)
	}

	if spot != nil {
		p.SetVec3("spotLight.position", spot.Position)
		p.SetVec3("spotLight.direction", spot.Direction)
		p.SetFloat("spotLight.cutOff", spot.CutOff)
		p.SetFloat("spotLight.outerCutOff", spot.OuterCutOff)
		p.SetVec3("spotLight.ambient", spot.Ambient)
		p.SetVec3("spotLight.diffuse", spot.Diffuse)
		p.SetVec3("spotLight.specular", spot.Specular)
		p.SetFloat("spotLight.constant", spot.Constant)
		p.SetFloat("spotLight.linear", spot.Linear)
		p.SetFloat("spotLight.quadratic", spot.Quadratic)
		p.SetBool("spotLight.bActive", true)
	} else {
		p.SetBool("spotLight.bActive", false)
	}
}

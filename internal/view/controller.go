package view

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"glstudio/internal/render"
)

// Controller owns the camera and projection state for one window. GLFW
// callbacks are closures over the controller instance, so no package-level
// state is involved and two windows could carry independent cameras.
type Controller struct {
	window *glfw.Window
	prog   *render.Program
	cam    *Camera

	width, height int
	ortho         bool

	lastX, lastY float64
	firstMouse   bool
	lastFrame    float64
}

func NewController(window *glfw.Window, prog *render.Program, cam *Camera, width, height int) *Controller {
	c := &Controller{
		window:     window,
		prog:       prog,
		cam:        cam,
		width:      width,
		height:     height,
		firstMouse: true,
		lastFrame:  glfw.GetTime(),
	}

	// Capture the cursor so all mouse movement drives the camera.
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		c.onCursor(x, y)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		c.cam.AdjustSpeed(float32(dy) * 0.1)
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		c.onKey(key, action)
	})
	return c
}

func (c *Controller) Camera() *Camera    { return c.cam }
func (c *Controller) Orthographic() bool { return c.ortho }

// Update computes the frame delta, polls the movement keys, and pushes the
// view, projection, and camera position uniforms for this frame.
func (c *Controller) Update() {
	now := glfw.GetTime()
	dt := now - c.lastFrame
	c.lastFrame = now

	velocity := c.cam.MovementSpeed * float32(dt)
	if c.window.GetKey(glfw.KeyW) == glfw.Press {
		c.cam.Move(Forward, velocity)
	}
	if c.window.GetKey(glfw.KeyS) == glfw.Press {
		c.cam.Move(Backward, velocity)
	}
	if c.window.GetKey(glfw.KeyA) == glfw.Press {
		c.cam.Move(Left, velocity)
	}
	if c.window.GetKey(glfw.KeyD) == glfw.Press {
		c.cam.Move(Right, velocity)
	}
	if c.window.GetKey(glfw.KeyQ) == glfw.Press {
		c.cam.Move(Up, velocity)
	}
	if c.window.GetKey(glfw.KeyE) == glfw.Press {
		c.cam.Move(Down, velocity)
	}

	c.prog.SetMat4("view", c.cam.ViewMatrix())
	c.prog.SetMat4("projection", c.Projection())
	c.prog.SetVec3("viewPosition", c.cam.Position)
}

// Projection returns the active projection matrix.
func (c *Controller) Projection() mgl32.Mat4 {
	return ProjectionMatrix(c.ortho, c.cam.Zoom, c.width, c.height)
}

func (c *Controller) onCursor(x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
	}
	dx := x - c.lastX
	dy := c.lastY - y // window y grows downward
	c.lastX, c.lastY = x, y
	c.cam.Rotate(float32(dx), float32(dy))
}

func (c *Controller) onKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyP:
		c.ortho = false
	case glfw.KeyO:
		c.ortho = true
	case glfw.KeyEscape:
		c.window.SetShouldClose(true)
	}
}

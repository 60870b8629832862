package arcade

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"glstudio/internal/render"
)

const flatVertSrc = `
#version 410 core
layout (location = 0) in vec2 aPos;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const flatFragSrc = `
#version 410 core
uniform vec3 uColor;
out vec4 fragColor;
void main() {
    fragColor = vec4(uColor, 1.0);
}
` + "\x00"

const circleSegments = 64

// Renderer draws the flat 2D field. Everything is streamed through one VBO
// in normalized device coordinates, one color per draw call.
type Renderer struct {
	prog *render.Program
	vao  uint32
	vbo  uint32
	buf  []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := render.NewProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, (circleSegments+2)*2*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.BindVertexArray(0)

	return &Renderer{prog: prog, vao: vao, vbo: vbo}, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	r.prog.Destroy()
}

// Draw renders one frame of the game.
func (r *Renderer) Draw(g *Game) {
	r.prog.Use()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	for i := range g.Bricks {
		b := &g.Bricks[i]
		if !b.Alive {
			continue
		}
		r.fillRect(b.X, b.Y, b.Width, b.Height, b.Color)
	}
	p := &g.Paddle
	r.fillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	for i := range g.Circles {
		c := &g.Circles[i]
		if c.Active {
			r.fillCircle(c.X, c.Y, c.Radius, c.Color)
		}
	}

	gl.BindVertexArray(0)
}

// fillRect streams a centered rectangle as two triangles.
func (r *Renderer) fillRect(cx, cy, w, h float32, col Color) {
	x0, y0 := cx-w/2, cy-h/2
	x1, y1 := cx+w/2, cy+h/2
	r.buf = r.buf[:0]
	r.buf = append(r.buf,
		x0, y0, x1, y0, x0, y1,
		x1, y0, x1, y1, x0, y1,
	)
	r.flush(gl.TRIANGLES, 6, col)
}

// fillCircle streams a triangle fan around the center.
func (r *Renderer) fillCircle(cx, cy, radius float32, col Color) {
	r.buf = r.buf[:0]
	r.buf = append(r.buf, cx, cy)
	for i := 0; i <= circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		r.buf = append(r.buf,
			cx+radius*float32(math.Cos(a)),
			cy+radius*float32(math.Sin(a)))
	}
	r.flush(gl.TRIANGLE_FAN, circleSegments+2, col)
}

func (r *Renderer) flush(mode uint32, count int32, col Color) {
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.buf)*4, gl.Ptr(r.buf))
	r.prog.SetVec3("uColor", mgl32.Vec3{col.R, col.G, col.B})
	gl.DrawArrays(mode, 0, count)
}

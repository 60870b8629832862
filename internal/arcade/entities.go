package arcade

// Coordinates run in normalized device space, -1..1 on both axes, so the
// simulation never needs to know the window size.

type Color struct {
	R, G, B float32
}

type Paddle struct {
	X, Y          float32
	Width, Height float32
	Color         Color
}

// Move shifts the paddle horizontally, clamped so it never leaves the field.
func (p *Paddle) Move(dx float32) {
	p.X += dx
	half := p.Width / 2
	if p.X < -1+half {
		p.X = -1 + half
	}
	if p.X > 1-half {
		p.X = 1 - half
	}
}

type BrickKind int

const (
	Reflective BrickKind = iota
	Destructible
)

type Brick struct {
	X, Y          float32
	Width, Height float32
	Color         Color
	Kind          BrickKind
	Alive         bool
	HitPoints     int
}

// Hit registers one circle impact. Reflective bricks shrug it off;
// destructible bricks lose a hit point and recolor by what remains.
func (b *Brick) Hit() {
	if b.Kind != Destructible {
		return
	}
	b.HitPoints--
	if b.HitPoints <= 0 {
		b.Alive = false
		return
	}
	b.refreshColor()
}

func (b *Brick) refreshColor() {
	switch b.HitPoints {
	case 2:
		b.Color = Color{1, 0.5, 0}
	case 1:
		b.Color = Color{1, 0, 0}
	}
}

type Circle struct {
	X, Y   float32
	VX, VY float32
	Radius float32
	Color  Color
	Active bool
}

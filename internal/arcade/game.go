package arcade

type State int

const (
	StateMenu State = iota
	StatePlaying
	StateCleared
)

const (
	brickRows = 3
	brickCols = 8

	defaultBallRadius  = 0.03
	defaultLaunchSpeed = 0.02
)

// Game holds the whole simulation. All motion happens in Step; the render
// and input layers only read the entity slices.
type Game struct {
	Paddle  Paddle
	Bricks  []Brick
	Circles []Circle
	State   State

	BallRadius  float32
	LaunchSpeed float32

	rng   *Rand
	sound *Sound
}

func New(seed uint64) *Game {
	g := &Game{
		Paddle: Paddle{
			X: 0, Y: -0.9,
			Width: 0.4, Height: 0.05,
			Color: Color{0.5, 0.5, 1},
		},
		State:       StateMenu,
		BallRadius:  defaultBallRadius,
		LaunchSpeed: defaultLaunchSpeed,
		rng:         NewRand(seed),
	}
	g.resetBricks()
	return g
}

// SetSound attaches the audio sink. A nil sink keeps the game silent.
func (g *Game) SetSound(s *Sound) { g.sound = s }

func (g *Game) resetBricks() {
	g.Bricks = g.Bricks[:0]
	const (
		startX = -0.8
		startY = 0.6
		w      = 0.2
		h      = 0.1
		gap    = 0.02
	)
	for i := 0; i < brickRows; i++ {
		for j := 0; j < brickCols; j++ {
			b := Brick{
				X:     startX + float32(j)*(w+gap),
				Y:     startY - float32(i)*(h+gap),
				Width: w, Height: h,
				Alive: true,
			}
			if (i+j)%2 == 0 {
				b.Kind = Destructible
				b.HitPoints = 3
				b.Color = Color{0, 1, 0}
			} else {
				b.Kind = Reflective
				b.Color = Color{0.5, 0.5, 0}
			}
			g.Bricks = append(g.Bricks, b)
		}
	}
}

// Start begins a fresh round, clearing any circles from the last one.
func (g *Game) Start() {
	g.resetBricks()
	g.Circles = g.Circles[:0]
	g.Paddle.X = 0
	g.State = StatePlaying
	g.Launch()
}

// Launch spawns a new circle just above the paddle center, moving up with
// a small random horizontal drift and a random color.
func (g *Game) Launch() {
	c := Circle{
		X: g.Paddle.X, Y: -0.85,
		VX:     (g.rng.Float32() - 0.5) * 0.04,
		VY:     g.LaunchSpeed,
		Radius: g.BallRadius,
		Color:  Color{g.rng.Float32(), g.rng.Float32(), g.rng.Float32()},
		Active: true,
	}
	g.Circles = append(g.Circles, c)
	g.sound.Play(SoundLaunch)
}

// Step advances the simulation one frame: integrate every circle, resolve
// its collisions, merge touching circles, then drop dead ones. Circles
// spawned by a merge this frame are not stepped until the next frame.
func (g *Game) Step() {
	n := len(g.Circles)
	for i := 0; i < n; i++ {
		c := &g.Circles[i]
		if !c.Active {
			continue
		}
		c.X += c.VX
		c.Y += c.VY
		g.collideWalls(c)
		if !c.Active {
			continue
		}
		g.collidePaddle(c)
		g.collideBricks(c)
	}
	g.collideCircles()
	g.compact()

	if g.State == StatePlaying && g.cleared() {
		g.State = StateCleared
	}
}

// collideWalls bounces off the left, right and top edges and kills the
// circle the moment its bottom edge crosses the floor.
func (g *Game) collideWalls(c *Circle) {
	if c.X < -1+c.Radius {
		c.X = -1 + c.Radius
		c.VX = -c.VX
	}
	if c.X > 1-c.Radius {
		c.X = 1 - c.Radius
		c.VX = -c.VX
	}
	if c.Y > 1-c.Radius {
		c.Y = 1 - c.Radius
		c.VY = -c.VY
	}
	if c.Y-c.Radius < -1 {
		c.Active = false
	}
}

// collidePaddle forces the circle upward, steering it by where on the
// paddle it landed, and lifts it clear of the paddle. The response applies
// whichever way the circle was moving.
func (g *Game) collidePaddle(c *Circle) {
	p := &g.Paddle
	if c.X+c.Radius < p.X-p.Width/2 || c.X-c.Radius > p.X+p.Width/2 {
		return
	}
	top := p.Y + p.Height/2
	if c.Y-c.Radius > top || c.Y+c.Radius < p.Y-p.Height/2 {
		return
	}
	if c.VY < 0 {
		c.VY = -c.VY
	}
	c.VX = (c.X - p.X) * 0.02
	c.Y = top + c.Radius
	g.sound.Play(SoundPaddle)
}

// collideBricks checks every live brick independently. A circle inside the
// corner of two bricks gets two responses in one frame, which cancels the
// bounce; that is rare enough to live with.
func (g *Game) collideBricks(c *Circle) {
	for i := range g.Bricks {
		b := &g.Bricks[i]
		if !b.Alive {
			continue
		}
		if c.X+c.Radius < b.X-b.Width/2 || c.X-c.Radius > b.X+b.Width/2 {
			continue
		}
		if c.Y+c.Radius < b.Y-b.Height/2 || c.Y-c.Radius > b.Y+b.Height/2 {
			continue
		}
		c.VY = -c.VY
		if b.Kind == Destructible {
			b.Hit()
			if !b.Alive {
				g.sound.Play(SoundBreak)
			} else {
				g.sound.Play(SoundBrick)
			}
		} else {
			g.sound.Play(SoundBrick)
		}
	}
}

// collideCircles merges the first touching pair found into a new circle at
// their midpoint, with summed radii and averaged velocity. At most one
// merge per frame; the merged circle starts moving next frame.
func (g *Game) collideCircles() {
	n := len(g.Circles)
	for i := 0; i < n; i++ {
		a := &g.Circles[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := &g.Circles[j]
			if !b.Active {
				continue
			}
			dx := a.X - b.X
			dy := a.Y - b.Y
			rr := a.Radius + b.Radius
			if dx*dx+dy*dy > rr*rr {
				continue
			}
			merged := Circle{
				X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2,
				VX:     (a.VX + b.VX) / 2,
				VY:     (a.VY + b.VY) / 2,
				Radius: rr,
				Color:  Color{1, 1, 0},
				Active: true,
			}
			a.Active = false
			b.Active = false
			g.Circles = append(g.Circles, merged)
			g.sound.Play(SoundMerge)
			return
		}
	}
}

func (g *Game) compact() {
	live := g.Circles[:0]
	for _, c := range g.Circles {
		if c.Active {
			live = append(live, c)
		}
	}
	g.Circles = live
}

func (g *Game) cleared() bool {
	for i := range g.Bricks {
		if g.Bricks[i].Alive && g.Bricks[i].Kind == Destructible {
			return false
		}
	}
	return true
}

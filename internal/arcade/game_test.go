package arcade

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame() *Game {
	g := New(42)
	g.State = StatePlaying
	return g
}

// addCircle places a circle directly, bypassing Launch's randomness.
func addCircle(g *Game, x, y, vx, vy float32) {
	g.Circles = append(g.Circles, Circle{
		X: x, Y: y, VX: vx, VY: vy,
		Radius: g.BallRadius,
		Color:  Color{1, 1, 1},
		Active: true,
	})
}

func TestBrickGrid(t *testing.T) {
	g := New(1)
	require.Len(t, g.Bricks, brickRows*brickCols)

	var destructible, reflective int
	for _, b := range g.Bricks {
		require.True(t, b.Alive)
		switch b.Kind {
		case Destructible:
			destructible++
			require.Equal(t, 3, b.HitPoints)
			require.Equal(t, Color{0, 1, 0}, b.Color)
		case Reflective:
			reflective++
		}
	}
	require.Equal(t, 12, destructible)
	require.Equal(t, 12, reflective)
}

func TestLaunchDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	a.Launch()
	b.Launch()
	require.Equal(t, a.Circles, b.Circles)

	c := a.Circles[0]
	require.True(t, c.Active)
	require.Equal(t, float32(-0.85), c.Y)
	require.Equal(t, a.LaunchSpeed, c.VY)
	require.LessOrEqual(t, c.VX, float32(0.02))
	require.GreaterOrEqual(t, c.VX, float32(-0.02))
}

func TestWallBounce(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	addCircle(g, -0.999, 0, -0.05, 0)

	g.Step()

	c := g.Circles[0]
	require.Equal(t, float32(-1+c.Radius), c.X)
	require.Equal(t, float32(0.05), c.VX)
}

func TestTopBounce(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	addCircle(g, 0, 0.999, 0, 0.05)

	g.Step()

	c := g.Circles[0]
	require.Equal(t, float32(1-c.Radius), c.Y)
	require.Equal(t, float32(-0.05), c.VY)
}

func TestBottomExitRemovesCircle(t *testing.T) {
	g := newTestGame()
	// Ends the frame at y=-0.98: center still on screen, but the bottom
	// edge (y - radius = -1.01) has crossed the floor.
	addCircle(g, 0.5, -0.95, 0, -0.03)
	addCircle(g, -0.5, 0, 0, 0.01)

	g.Step()

	require.Len(t, g.Circles, 1)
	require.Equal(t, float32(-0.5), g.Circles[0].X)
}

func TestPaddleDeflection(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	// Hit the right half of the paddle while falling.
	addCircle(g, g.Paddle.X+0.1, g.Paddle.Y+0.04, 0, -0.02)

	g.Step()

	c := g.Circles[0]
	require.Greater(t, c.VY, float32(0), "falling circle must bounce up")
	require.Greater(t, c.VX, float32(0), "right-side hit must deflect right")
	require.Equal(t, g.Paddle.Y+g.Paddle.Height/2+c.Radius, c.Y)
}

func TestPaddleHandlesRisingCircle(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	// Overlapping the paddle while moving up: vy keeps its sign, and the
	// circle is still lifted clear of the paddle.
	addCircle(g, g.Paddle.X+0.05, g.Paddle.Y, 0, 0.02)

	g.Step()

	c := g.Circles[0]
	require.Equal(t, float32(0.02), c.VY)
	require.Greater(t, c.VX, float32(0))
	require.Equal(t, g.Paddle.Y+g.Paddle.Height/2+c.Radius, c.Y)
}

func TestPaddleClamp(t *testing.T) {
	g := New(1)

	g.Paddle.Move(-5)
	require.Equal(t, float32(-1+g.Paddle.Width/2), g.Paddle.X)

	g.Paddle.Move(5)
	require.Equal(t, float32(1-g.Paddle.Width/2), g.Paddle.X)
}

func TestDestructibleBrick(t *testing.T) {
	b := Brick{Kind: Destructible, Alive: true, HitPoints: 3, Color: Color{0, 1, 0}}

	b.Hit()
	require.True(t, b.Alive)
	require.Equal(t, Color{1, 0.5, 0}, b.Color)

	b.Hit()
	require.True(t, b.Alive)
	require.Equal(t, Color{1, 0, 0}, b.Color)

	b.Hit()
	require.False(t, b.Alive)
}

func TestReflectiveBrickNeverBreaks(t *testing.T) {
	b := Brick{Kind: Reflective, Alive: true}
	for i := 0; i < 10; i++ {
		b.Hit()
	}
	require.True(t, b.Alive)
}

func TestBrickCollisionReflects(t *testing.T) {
	g := newTestGame()
	g.Bricks = []Brick{{
		X: 0, Y: 0.5, Width: 0.2, Height: 0.1,
		Kind: Destructible, Alive: true, HitPoints: 1,
	}}
	addCircle(g, 0, 0.43, 0, 0.03)

	g.Step()

	require.False(t, g.Bricks[0].Alive)
	require.Equal(t, float32(-0.03), g.Circles[0].VY)
}

func TestDeadBrickIgnored(t *testing.T) {
	g := newTestGame()
	g.Bricks = []Brick{{
		X: 0, Y: 0.5, Width: 0.2, Height: 0.1,
		Kind: Destructible, Alive: false,
	}}
	addCircle(g, 0, 0.43, 0, 0.03)

	g.Step()

	require.Equal(t, float32(0.03), g.Circles[0].VY)
}

func TestCircleMerge(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	addCircle(g, 0, 0, 0.01, 0)
	addCircle(g, 0.04, 0, -0.01, 0.02)

	g.Step()

	require.Len(t, g.Circles, 1)
	m := g.Circles[0]
	require.Equal(t, float32(0.06), m.Radius)
	require.Equal(t, Color{1, 1, 0}, m.Color)
	require.InDelta(t, 0, m.VX, 1e-6)
	require.InDelta(t, 0.01, m.VY, 1e-6)
}

func TestDistantCirclesDoNotMerge(t *testing.T) {
	g := newTestGame()
	g.Bricks = nil
	addCircle(g, -0.5, 0, 0, 0.01)
	addCircle(g, 0.5, 0, 0, 0.01)

	g.Step()

	require.Len(t, g.Circles, 2)
}

func TestClearedWhenDestructiblesGone(t *testing.T) {
	g := newTestGame()
	for i := range g.Bricks {
		if g.Bricks[i].Kind == Destructible {
			g.Bricks[i].Alive = false
		}
	}

	g.Step()

	require.Equal(t, StateCleared, g.State)
}

func TestNotClearedWhileDestructibleRemains(t *testing.T) {
	g := newTestGame()
	g.Step()
	require.Equal(t, StatePlaying, g.State)
}

func TestStartResets(t *testing.T) {
	g := New(3)
	g.Start()

	require.Equal(t, StatePlaying, g.State)
	require.Len(t, g.Circles, 1)
	require.Equal(t, float32(0), g.Paddle.X)
	for _, b := range g.Bricks {
		require.True(t, b.Alive)
	}
}

package arcade

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"glstudio/internal/config"
	"glstudio/internal/view"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

const stepInterval = time.Second / 60

// Run opens the window and drives the game loop until the window closes.
func Run(cfg *config.Config, log *zap.Logger) error {
	window, err := view.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}

	sound, err := NewSound()
	if err != nil {
		log.Warn("audio unavailable", zap.Error(err))
	}

	rend, err := NewRenderer()
	if err != nil {
		return err
	}
	defer rend.Destroy()

	g := New(uint64(time.Now().UnixNano()))
	g.BallRadius = cfg.Arcade.BallRadius
	g.LaunchSpeed = cfg.Arcade.LaunchSpeed
	g.SetSound(sound)

	input := NewInput()
	last := time.Now()
	var acc time.Duration

	log.Info("arcade started",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	for !window.ShouldClose() {
		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		switch g.State {
		case StateMenu, StateCleared:
			if input.JustPressed(window, glfw.KeySpace) {
				g.Start()
			}
		case StatePlaying:
			if window.GetKey(glfw.KeyLeft) == glfw.Press {
				g.Paddle.Move(-cfg.Arcade.PaddleSpeed)
			}
			if window.GetKey(glfw.KeyRight) == glfw.Press {
				g.Paddle.Move(cfg.Arcade.PaddleSpeed)
			}
			if input.JustPressed(window, glfw.KeySpace) {
				g.Launch()
			}
		}

		// Fixed timestep so the physics speed does not depend on vsync.
		now := time.Now()
		acc += now.Sub(last)
		last = now
		for acc >= stepInterval {
			if g.State == StatePlaying {
				g.Step()
			}
			acc -= stepInterval
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.05, 0.05, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		rend.Draw(g)
		window.SwapBuffers()
	}

	log.Info("arcade stopped")
	return nil
}

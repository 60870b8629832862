package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"glstudio/internal/config"
	"glstudio/internal/logging"
	"glstudio/internal/render"
	"glstudio/internal/scene"
	"glstudio/internal/view"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "glstudio.yaml", "path to config file")
	scenePath := flag.String("scene", "", "scene file, overrides config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.New(*debug).Named("studio")
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	sceneFile := cfg.Scene.File
	if *scenePath != "" {
		sceneFile = *scenePath
	}
	var sc *scene.Scene
	if sceneFile != "" {
		sc, err = scene.Load(sceneFile)
		if err != nil {
			log.Fatal("load scene", zap.Error(err))
		}
		log.Info("scene loaded", zap.String("file", sceneFile))
	} else {
		sc = scene.Default()
	}

	window, err := view.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		log.Fatal("open window", zap.Error(err))
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		log.Fatal("init opengl", zap.Error(err))
	}
	log.Info("opengl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	prog, err := render.NewProgram(render.SceneVertexSrc, render.SceneFragmentSrc)
	if err != nil {
		log.Fatal("build shaders", zap.Error(err))
	}
	defer prog.Destroy()

	cam := view.NewCamera(mgl32.Vec3{
		cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2],
	})
	cam.MovementSpeed = cfg.Camera.Speed
	cam.Zoom = cfg.Camera.Zoom
	ctl := view.NewController(window, prog, cam, cfg.Window.Width, cfg.Window.Height)

	rend := scene.NewRenderer(prog, log)
	defer rend.Destroy()
	prog.Use()
	rend.Prepare(sc)

	for !window.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.1, 0.1, 0.15, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Use()
		ctl.Update()
		rend.Render(sc)

		window.SwapBuffers()
	}
}

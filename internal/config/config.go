package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings for both binaries. Everything has a
// working default; the YAML file only needs the keys being changed.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Arcade ArcadeConfig `yaml:"arcade"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Speed    float32    `yaml:"speed"`
	Zoom     float32    `yaml:"zoom"`
}

type SceneConfig struct {
	// File is a YAML scene description. Empty selects the built-in scene.
	File string `yaml:"file"`
}

type ArcadeConfig struct {
	PaddleSpeed float32 `yaml:"paddle_speed"`
	BallRadius  float32 `yaml:"ball_radius"`
	LaunchSpeed float32 `yaml:"launch_speed"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "glstudio",
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 5, 12},
			Speed:    2.5,
			Zoom:     80,
		},
		Arcade: ArcadeConfig{
			PaddleSpeed: 0.05,
			BallRadius:  0.03,
			LaunchSpeed: 0.02,
		},
	}
}

// Load reads the config at path, layered over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

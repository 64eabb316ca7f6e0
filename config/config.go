// The config package loads the demo settings from a yaml file. Every field has a default,
// so a missing file or a partial file are both fine.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "glribbon.yaml"

type FailurePolicy string

const (
	// FailurePolicy_Abort makes a shader error at startup fatal
	FailurePolicy_Abort FailurePolicy = "abort"
	// FailurePolicy_Degrade logs shader errors and keeps going with whatever program was produced
	FailurePolicy_Degrade FailurePolicy = "degrade"
)

type Backend string

const (
	Backend_SDL  Backend = "sdl"
	Backend_GLFW Backend = "glfw"
)

type Window struct {
	Title   string  `yaml:"title"`
	Width   int32   `yaml:"width"`
	Height  int32   `yaml:"height"`
	Backend Backend `yaml:"backend"`
	VSync   bool    `yaml:"vsync"`
}

type Shaders struct {
	OnFailure FailurePolicy `yaml:"on_failure"`
	// Watch rebuilds shader programs when their source files change
	Watch bool `yaml:"watch"`
}

type Ribbon struct {
	Curves       int    `yaml:"curves"`
	SamplePoints int    `yaml:"sample_points"`
	Vertex       string `yaml:"vertex"`
	Fragment     string `yaml:"fragment"`
}

type Cube struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Texture  string `yaml:"texture"`
	// Model is an optional model file used instead of the built-in cube
	Model          string  `yaml:"model"`
	RotateSpeedDeg float32 `yaml:"rotate_speed_deg"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Scene   string  `yaml:"scene"`
	Shaders Shaders `yaml:"shaders"`
	Ribbon  Ribbon  `yaml:"ribbon"`
	Cube    Cube    `yaml:"cube"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:   "Hello World",
			Width:   600,
			Height:  400,
			Backend: Backend_SDL,
			VSync:   true,
		},
		Scene: "ribbon",
		Shaders: Shaders{
			OnFailure: FailurePolicy_Degrade,
		},
		Ribbon: Ribbon{
			Curves:       9,
			SamplePoints: 100000,
			Vertex:       "./res/shaders/ribbon.vert.glsl",
			Fragment:     "./res/shaders/ribbon.frag.glsl",
		},
		Cube: Cube{
			Vertex:         "./res/shaders/cube.vert.glsl",
			Fragment:       "./res/shaders/cube.frag.glsl",
			Texture:        "./res/textures/crate.png",
			RotateSpeedDeg: 50,
		},
	}
}

// Load reads the config at path on top of the defaults.
// A missing file is not an error and simply returns the defaults.
func Load(path string) (Config, error) {

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {

	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	switch c.Window.Backend {
	case Backend_SDL, Backend_GLFW:
	default:
		errs = append(errs, fmt.Errorf("unknown window backend '%s'. Must be '%s' or '%s'", c.Window.Backend, Backend_SDL, Backend_GLFW))
	}

	switch c.Shaders.OnFailure {
	case FailurePolicy_Abort, FailurePolicy_Degrade:
	default:
		errs = append(errs, fmt.Errorf("unknown shader failure policy '%s'. Must be '%s' or '%s'", c.Shaders.OnFailure, FailurePolicy_Abort, FailurePolicy_Degrade))
	}

	if c.Ribbon.Curves <= 0 {
		errs = append(errs, fmt.Errorf("ribbon curve count must be positive, got %d", c.Ribbon.Curves))
	}

	if c.Ribbon.SamplePoints < 2 {
		errs = append(errs, fmt.Errorf("ribbon needs at least 2 sample points, got %d", c.Ribbon.SamplePoints))
	}

	return errors.Join(errs...)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/colors"
	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
)

const (
	DefaultFrames       = 1000
	DefaultIntervalMS   = 50
	DefaultBoundsXY     = 1000.0
	DefaultBoundsZ      = 400.0
	DefaultGuideSamples = 150
	DefaultGuideAlpha   = 0.2
	DefaultSunSize      = 2000.0
	DefaultTheme        = "deepspace"
)

type Config struct {
	Background string          `yaml:"background"`
	Theme      string          `yaml:"theme"`
	Animation  AnimationConfig `yaml:"animation"`
	Camera     CameraConfig    `yaml:"camera"`
	Bounds     BoundsConfig    `yaml:"bounds"`
	Guides     GuideConfig     `yaml:"guides"`
	Sun        SunConfig       `yaml:"sun"`
	Bodies     []BodyConfig    `yaml:"bodies"`
}

type AnimationConfig struct {
	Frames      int     `yaml:"frames"` // 0 runs until stopped
	IntervalMS  int     `yaml:"interval_ms"`
	TimeStep    float64 `yaml:"time_step"`
	Tilt        float64 `yaml:"tilt"`
	LabelOffset float64 `yaml:"label_offset"`
	Loop        bool    `yaml:"loop"`
}

type CameraConfig struct {
	AzimuthRate float64 `yaml:"azimuth_rate"`
	Elevation   float64 `yaml:"elevation"`
}

type BoundsConfig struct {
	XY float64 `yaml:"xy"`
	Z  float64 `yaml:"z"`
}

type GuideConfig struct {
	Samples int     `yaml:"samples"`
	Alpha   float64 `yaml:"alpha"`
}

type SunConfig struct {
	Color string  `yaml:"color"`
	Size  float64 `yaml:"size"`
}

type BodyConfig struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`
	Period float64 `yaml:"period"`
	Color  string  `yaml:"color"`
	Size   float64 `yaml:"size"`
}

// DefaultBodies is the classic eight-planet table.
func DefaultBodies() []BodyConfig {
	return []BodyConfig{
		{Name: "Mercury", Radius: 50, Period: 0.24, Color: "darkgray", Size: 150},
		{Name: "Venus", Radius: 100, Period: 0.62, Color: "gold", Size: 200},
		{Name: "Earth", Radius: 150, Period: 1.00, Color: "deepskyblue", Size: 250},
		{Name: "Mars", Radius: 200, Period: 1.88, Color: "red", Size: 220},
		{Name: "Jupiter", Radius: 350, Period: 11.86, Color: "orange", Size: 350},
		{Name: "Saturn", Radius: 500, Period: 29.46, Color: "khaki", Size: 330},
		{Name: "Uranus", Radius: 650, Period: 84.01, Color: "lightblue", Size: 300},
		{Name: "Neptune", Radius: 800, Period: 164.79, Color: "blue", Size: 300},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Animation: AnimationConfig{
			Frames:      DefaultFrames,
			IntervalMS:  DefaultIntervalMS,
			TimeStep:    orbit.DefaultTimeStep,
			Tilt:        orbit.DefaultTilt,
			LabelOffset: orbit.DefaultLabelOffset,
		},
		Camera: CameraConfig{
			AzimuthRate: orbit.DefaultAzimuthRate,
			Elevation:   orbit.DefaultElevation,
		},
		Bounds: BoundsConfig{XY: DefaultBoundsXY, Z: DefaultBoundsZ},
		Guides: GuideConfig{Samples: DefaultGuideSamples, Alpha: DefaultGuideAlpha},
		Sun:    SunConfig{Color: "yellow", Size: DefaultSunSize},
		Bodies: DefaultBodies(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	// a file that lists bodies replaces the default table instead of merging into it
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Bodies) == 0 {
		cfg.Bodies = DefaultBodies()
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects a configuration that cannot be animated. It runs once,
// before the first frame.
func (c *Config) Validate() error {
	if err := orbit.Validate(c.OrbitBodies(), c.Params()); err != nil {
		return err
	}
	if c.Animation.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", c.Animation.Frames)
	}
	if c.Animation.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must be non-negative, got %d", c.Animation.IntervalMS)
	}
	if c.Bounds.XY <= 0 || c.Bounds.Z <= 0 {
		return fmt.Errorf("bounds must be positive, got xy=%g z=%g", c.Bounds.XY, c.Bounds.Z)
	}
	if c.Guides.Samples < 0 {
		return fmt.Errorf("guide samples must be non-negative, got %d", c.Guides.Samples)
	}
	if c.Sun.Size <= 0 {
		return fmt.Errorf("sun size must be positive, got %g", c.Sun.Size)
	}
	tokens := []string{c.Sun.Color}
	for _, b := range c.Bodies {
		tokens = append(tokens, b.Color)
	}
	return colors.Validate(tokens...)
}

// Params converts the animation and camera sections to updater constants.
func (c *Config) Params() orbit.Params {
	return orbit.Params{
		TimeStep:    c.Animation.TimeStep,
		Tilt:        c.Animation.Tilt,
		LabelOffset: c.Animation.LabelOffset,
		AzimuthRate: c.Camera.AzimuthRate,
		Elevation:   c.Camera.Elevation,
	}
}

func (c *Config) OrbitBodies() []orbit.Body {
	out := make([]orbit.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		out[i] = orbit.Body{Name: b.Name, Radius: b.Radius, Period: b.Period, Color: b.Color, Size: b.Size}
	}
	return out
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMS) * time.Millisecond
}

// Updater validates the configuration and builds the position updater.
func (c *Config) Updater() (*orbit.Updater, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return orbit.New(c.OrbitBodies(), c.Params())
}

// SceneContext is the drawing context before the first frame is applied.
func (c *Config) SceneContext() scene.Context {
	return scene.Context{
		Elevation: c.Camera.Elevation,
		BoundsXY:  c.Bounds.XY,
		BoundsZ:   c.Bounds.Z,
		Sun:       scene.Sun{Color: c.Sun.Color, Size: c.Sun.Size},
	}
}

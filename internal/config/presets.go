package config

import "sort"

// Presets are named variations of the default configuration.
var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"inner": func() *Config {
		cfg := DefaultConfig()
		cfg.Bodies = cfg.Bodies[:4]
		cfg.Bounds = BoundsConfig{XY: 250, Z: 100}
		cfg.Sun.Size = 800
		return cfg
	},
	"outer": func() *Config {
		cfg := DefaultConfig()
		cfg.Bodies = cfg.Bodies[4:]
		cfg.Animation.TimeStep = 0.5
		return cfg
	},
	"fast": func() *Config {
		cfg := DefaultConfig()
		cfg.Animation.TimeStep = 0.2
		cfg.Camera.AzimuthRate = 1.0
		return cfg
	},
	"overhead": func() *Config {
		cfg := DefaultConfig()
		cfg.Camera.Elevation = 90
		cfg.Camera.AzimuthRate = 0.1
		return cfg
	},
	"endless": func() *Config {
		cfg := DefaultConfig()
		cfg.Animation.Frames = 0
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// Presets are named window/pacing profiles for common deployments.
var Presets = map[string]func() *Config{
	// Small laptop screens used during sessions with a therapist.
	"compact": func() *Config {
		return preset(func(c *Config) {
			c.Width = 900
			c.Height = 650
		})
	},
	// Wall-mounted classroom display, slower cadence for group viewing.
	"kiosk": func() *Config {
		return preset(func(c *Config) {
			c.Width = 1600
			c.Height = 1000
			c.FPS = 2
		})
	},
	// Faster pacing for replaying recorded sessions.
	"review": func() *Config {
		return preset(func(c *Config) {
			c.FPS = 12
		})
	},
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

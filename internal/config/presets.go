package config

import "sort"

// Presets are named scenes. "nitrogen" is the reference scene the
// defaults come from; the rest vary density and particle mass.
var Presets = map[string]*Config{
	"nitrogen": preset(func(c *Config) {}),
	"sparse": preset(func(c *Config) {
		c.Particles = 500
	}),
	"dense": preset(func(c *Config) {
		c.Particles = 20000
		c.PlacementAttempts = 10000
	}),
	"heavy": preset(func(c *Config) {
		// Roughly argon-scale mass; slower particles at the same
		// temperature.
		c.Mass = 6.63e-26
		c.Particles = 2000
	}),
	"hot": preset(func(c *Config) {
		c.TargetTemp = 1200
		c.Particles = 2000
	}),
	"small-box": preset(func(c *Config) {
		c.Width = 200
		c.Height = 200
		c.Particles = 300
	}),
}

func preset(mutate func(*Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

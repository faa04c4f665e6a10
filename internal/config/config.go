package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the reference nitrogen scene: a 900x900 m box of N2
// molecules at 300 K, simulated at 100 Hz.
const (
	DefaultWidth          = 900.0
	DefaultHeight         = 900.0
	DefaultParticles      = 5000
	DefaultMass           = 4.65e-26 // kg, one N2 molecule
	DefaultRadius         = 1.0
	DefaultTargetTemp     = 300.0 // K
	DefaultSimulationRate = 100   // Hz
	DefaultRenderRate     = 60    // FPS
	DefaultCellSize       = 10.0
	DefaultExportPath     = "speeds.csv"
	DefaultExportInterval = 1.5 // seconds
	DefaultPlaceAttempts  = 1000
)

// Config carries every initialization-time parameter of a run. Nothing
// here is mutable once a world has been built from it.
type Config struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Particles         int     `yaml:"particles"`
	Mass              float64 `yaml:"mass"`
	Radius            float64 `yaml:"radius"`
	TargetTemp        float64 `yaml:"target_temp"`
	SimulationRate    int     `yaml:"simulation_rate"`
	RenderRate        int     `yaml:"render_rate"`
	CellSize          float64 `yaml:"cell_size"`
	Seed              int64   `yaml:"seed"`
	ExportPath        string  `yaml:"export_path"`
	ExportInterval    float64 `yaml:"export_interval"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Particles:         DefaultParticles,
		Mass:              DefaultMass,
		Radius:            DefaultRadius,
		TargetTemp:        DefaultTargetTemp,
		SimulationRate:    DefaultSimulationRate,
		RenderRate:        DefaultRenderRate,
		CellSize:          DefaultCellSize,
		ExportPath:        DefaultExportPath,
		ExportInterval:    DefaultExportInterval,
		PlacementAttempts: DefaultPlaceAttempts,
	}
}

// Load reads a YAML config file over the defaults, so partial files are
// fine.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the engine cannot run. Mass and
// radius must be strictly positive (collision impulses divide by mass),
// the grid cell must cover at least one particle diameter (otherwise
// the Moore neighborhood can miss a true overlap), and the domain must
// be able to contain a particle at all.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: domain %gx%g must be positive", c.Width, c.Height)
	}
	if c.Particles < 0 {
		return fmt.Errorf("config: particle count %d must be non-negative", c.Particles)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("config: mass %g must be positive", c.Mass)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("config: radius %g must be positive", c.Radius)
	}
	if c.TargetTemp <= 0 {
		return fmt.Errorf("config: target temperature %g must be positive", c.TargetTemp)
	}
	if c.SimulationRate <= 0 {
		return fmt.Errorf("config: simulation rate %d must be positive", c.SimulationRate)
	}
	if c.RenderRate <= 0 {
		return fmt.Errorf("config: render rate %d must be positive", c.RenderRate)
	}
	if c.CellSize < 2*c.Radius {
		return fmt.Errorf("config: cell size %g must be at least one particle diameter (%g)", c.CellSize, 2*c.Radius)
	}
	if c.Particles > 0 && (c.Width < 2*c.Radius || c.Height < 2*c.Radius) {
		return fmt.Errorf("config: domain %gx%g cannot contain a particle of radius %g", c.Width, c.Height, c.Radius)
	}
	if c.ExportInterval <= 0 {
		return fmt.Errorf("config: export interval %g must be positive", c.ExportInterval)
	}
	if c.PlacementAttempts <= 0 {
		return fmt.Errorf("config: placement attempts %d must be positive", c.PlacementAttempts)
	}
	return nil
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amesaru/horizon/internal/sim"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "Black Hole Simulator"
	DefaultParticles = 100
	DefaultHoles     = 1
	DefaultRefMass   = 1000.0
	DefaultRadius    = 15.0
)

type Config struct {
	Window    WindowConfig  `yaml:"window"`
	Particles int           `yaml:"particles"`
	Holes     int           `yaml:"holes"`
	Seed      int64         `yaml:"seed"`
	Physics   PhysicsConfig `yaml:"physics"`

	// Initial user settings, adjustable live with the keyboard.
	TimeScale    float64 `yaml:"time_scale"`
	ParticleSize float64 `yaml:"particle_size"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PhysicsConfig struct {
	RefMass       float64 `yaml:"ref_mass"`
	BaseRadius    float64 `yaml:"base_radius"`
	MinMass       float64 `yaml:"min_mass"`
	MergeDistance float64 `yaml:"merge_distance"`
	HoleMass      float64 `yaml:"hole_mass"`
	WaveLifetime  float64 `yaml:"wave_lifetime"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Particles: DefaultParticles,
		Holes:     DefaultHoles,
		Physics: PhysicsConfig{
			RefMass:       DefaultRefMass,
			BaseRadius:    DefaultRadius,
			MinMass:       1,
			MergeDistance: 30,
			HoleMass:      1000,
			WaveLifetime:  2,
		},
		TimeScale:    1,
		ParticleSize: 1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Particles <= 0 {
		return fmt.Errorf("particles must be positive, got %d", c.Particles)
	}
	if c.Holes <= 0 {
		return fmt.Errorf("holes must be positive, got %d", c.Holes)
	}
	if c.Physics.RefMass <= 0 {
		return fmt.Errorf("ref_mass must be positive, got %f", c.Physics.RefMass)
	}
	if c.Physics.MinMass <= 0 {
		return fmt.Errorf("min_mass must be positive, got %f", c.Physics.MinMass)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("time_scale must be positive, got %f", c.TimeScale)
	}
	if c.ParticleSize <= 0 {
		return fmt.Errorf("particle_size must be positive, got %f", c.ParticleSize)
	}
	return nil
}

// Settings builds the initial user settings for a fresh world.
func (c *Config) Settings() sim.Settings {
	return sim.Settings{
		TimeScale:    c.TimeScale,
		ParticleSize: c.ParticleSize,
	}
}

// Params maps the config onto the simulation tuning constants.
func (c *Config) Params() sim.Params {
	p := sim.DefaultParams()
	p.Width = float64(c.Window.Width)
	p.Height = float64(c.Window.Height)
	p.Particles = c.Particles
	p.RefMass = c.Physics.RefMass
	p.BaseRadius = c.Physics.BaseRadius
	p.MinMass = c.Physics.MinMass
	p.MergeDistance = c.Physics.MergeDistance
	p.HoleMass = c.Physics.HoleMass
	p.WaveLifetime = c.Physics.WaveLifetime
	return p
}

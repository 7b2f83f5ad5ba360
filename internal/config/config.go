package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cresas/fiziksim2/internal/sim"
)

const (
	DefaultVelocity = 0.0
	DefaultHeight   = 50.0
	DefaultMass     = 1.0
	DefaultPlanet   = "earth"
	DefaultGravity  = 9.81
	DefaultPageSize = 20

	// Edit-boundary floors: inputs are clamped, never rejected.
	MinHeight  = 1.0
	MinMass    = 0.1
	MinGravity = 0.1
)

type Config struct {
	InitialVelocity float64 `yaml:"initial_velocity"`
	InitialHeight   float64 `yaml:"initial_height"`
	Mass            float64 `yaml:"mass"`
	Planet          string  `yaml:"planet"`
	Gravity         float64 `yaml:"gravity"` // used when planet is "custom"
	PageSize        int     `yaml:"page_size"`
}

func Default() *Config {
	return &Config{
		InitialVelocity: DefaultVelocity,
		InitialHeight:   DefaultHeight,
		Mass:            DefaultMass,
		Planet:          DefaultPlanet,
		Gravity:         DefaultGravity,
		PageSize:        DefaultPageSize,
	}
}

// Load overlays a yaml file onto the defaults and clamps the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Clamp()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clamp floors every input to its valid minimum.
func (c *Config) Clamp() {
	if c.InitialHeight < MinHeight {
		c.InitialHeight = MinHeight
	}
	if c.Mass < MinMass {
		c.Mass = MinMass
	}
	if c.Gravity < MinGravity {
		c.Gravity = MinGravity
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
}

// EffectiveGravity resolves the planet selection; "custom" or an unknown
// name falls back to the clamped custom gravity value.
func (c *Config) EffectiveGravity() float64 {
	if g, ok := PlanetGravity(c.Planet); ok {
		return g
	}
	if c.Gravity < MinGravity {
		return MinGravity
	}
	return c.Gravity
}

// Params builds the simulation initial conditions.
func (c *Config) Params() sim.Params {
	return sim.Params{
		InitialVelocity: c.InitialVelocity,
		InitialHeight:   c.InitialHeight,
		Gravity:         c.EffectiveGravity(),
		Mass:            c.Mass,
	}
}

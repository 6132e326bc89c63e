// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Efocor/FLUISIMS/fluid"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Seeding   SeedingConfig   `yaml:"seeding"`
	Collision CollisionConfig `yaml:"collision"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings. The simulation domain matches the
// window, as the boundary walls are the window edges.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the SPH solver parameters.
type PhysicsConfig struct {
	DT              float64 `yaml:"dt"`
	SmoothingRadius float64 `yaml:"smoothing_radius"`
	ParticleMass    float64 `yaml:"particle_mass"`
	Viscosity       float64 `yaml:"viscosity"`
	Stiffness       float64 `yaml:"stiffness"`
	RestDensity     float64 `yaml:"rest_density"`
	GravityX        float64 `yaml:"gravity_x"`
	GravityY        float64 `yaml:"gravity_y"`
	GridCellSize    float64 `yaml:"grid_cell_size"`
}

// SeedingConfig describes the initial particle block.
type SeedingConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing"`
}

// CollisionConfig holds boundary and obstacle response parameters.
type CollisionConfig struct {
	ObstacleRadius      float64 `yaml:"obstacle_radius"`
	WallRestitution     float64 `yaml:"wall_restitution"`
	ObstacleRestitution float64 `yaml:"obstacle_restitution"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	SpeedHistorySize    int     `yaml:"speed_history_size"`    // rolling chart history length
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks averaged per perf report
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The merged result is
// validated; a cell size below the smoothing radius is rejected here rather
// than silently dropping neighbors at query time.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.FluidParams().Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FluidParams maps the configuration onto the solver parameter set.
func (c *Config) FluidParams() fluid.Params {
	return fluid.Params{
		Width:  float64(c.Screen.Width),
		Height: float64(c.Screen.Height),

		SmoothingRadius: c.Physics.SmoothingRadius,
		ParticleMass:    c.Physics.ParticleMass,
		DT:              c.Physics.DT,
		Viscosity:       c.Physics.Viscosity,
		Stiffness:       c.Physics.Stiffness,
		RestDensity:     c.Physics.RestDensity,
		Gravity:         fluid.Vec2{X: c.Physics.GravityX, Y: c.Physics.GravityY},
		CellSize:        c.Physics.GridCellSize,

		ObstacleRadius:      c.Collision.ObstacleRadius,
		WallRestitution:     c.Collision.WallRestitution,
		ObstacleRestitution: c.Collision.ObstacleRestitution,

		SeedRows:    c.Seeding.Rows,
		SeedCols:    c.Seeding.Cols,
		SeedSpacing: c.Seeding.Spacing,

		HistorySize: c.Telemetry.SpeedHistorySize,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package game hosts the fluid simulation: it owns the frame loop glue,
// input handling, rendering, and telemetry wiring around fluid.Simulation.
package game

import (
	"log/slog"
	"os"

	"github.com/Efocor/FLUISIMS/config"
	"github.com/Efocor/FLUISIMS/fluid"
	"github.com/Efocor/FLUISIMS/telemetry"
	"github.com/Efocor/FLUISIMS/ui"
)

// Options configures game startup behavior.
type Options struct {
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // stats window duration (0 = use config)
	OutputDir      string  // CSV output directory (empty = disabled)
	Headless       bool    // skip all rendering state
	StepsPerUpdate int     // simulation ticks per update call
}

// Game holds the complete host state around the simulation.
type Game struct {
	sim    *fluid.Simulation
	params fluid.Params

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Rendering (nil in headless mode)
	hud   *ui.HUD
	chart *ui.SpeedChart

	headless       bool
	stepsPerUpdate int
}

// NewGameWithOptions creates a game with custom options. The config package
// must be initialized first.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	params := cfg.FluidParams()

	sim, err := fluid.NewSimulation(params)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		sim:            sim,
		params:         params,
		collector:      telemetry.NewCollector(statsWindow, params.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: opts.StepsPerUpdate,
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
			os.Exit(1)
		}
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.chart = ui.NewSpeedChart(320, 120)
	}

	slog.Info("simulation created",
		"particles", len(sim.Particles()),
		"domain_w", params.Width,
		"domain_h", params.Height,
		"smoothing_radius", params.SmoothingRadius,
		"cell_size", params.CellSize,
	)

	return g
}

// Update runs input handling and one or more simulation steps.
func (g *Game) Update() {
	g.handleInput()

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick with per-phase timing. No-op while
// paused; telemetry windows are tick-based so they pause along with it.
func (g *Game) simulationStep() {
	if g.sim.Paused() {
		return
	}

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseGrid)
	g.sim.StepGrid()

	g.perfCollector.StartPhase(telemetry.PhaseDensity)
	g.sim.StepDensityPressure()

	g.perfCollector.StartPhase(telemetry.PhaseForces)
	g.sim.StepForces()

	g.perfCollector.StartPhase(telemetry.PhaseIntegrate)
	g.sim.StepIntegrate()

	g.perfCollector.StartPhase(telemetry.PhaseStats)
	g.sim.StepStats()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// togglePause flips the simulation pause state and records the event.
func (g *Game) togglePause() {
	g.sim.TogglePause()
	g.collector.RecordPauseToggle()
}

// reset restores the initial particle block and records the event.
func (g *Game) reset() {
	g.sim.Reset()
	g.collector.RecordReset()
	slog.Info("simulation reset")
}

// Unload releases resources and flushes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.sim.Tick()
}

package telemetry

import "github.com/Efocor/FLUISIMS/fluid"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	obstaclesAdded int
	resets         int
	pauseToggles   int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordObstacle records an obstacle placement.
func (c *Collector) RecordObstacle() {
	c.obstaclesAdded++
}

// RecordReset records a simulation reset.
func (c *Collector) RecordReset() {
	c.resets++
}

// RecordPauseToggle records a pause or unpause.
func (c *Collector) RecordPauseToggle() {
	c.pauseToggles++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples the simulation, produces a WindowStats, and resets the
// event counters for the next window.
func (c *Collector) Flush(currentTick int64, sim *fluid.Simulation) WindowStats {
	particles := sim.Particles()

	speeds := make([]float64, 0, len(particles))
	densities := make([]float64, 0, len(particles))
	var pressureSum, pressureMin, pressureMax float64
	for i := range particles {
		speeds = append(speeds, particles[i].Vel.Len())
		densities = append(densities, particles[i].Density)

		pr := particles[i].Pressure
		pressureSum += pr
		if i == 0 || pr < pressureMin {
			pressureMin = pr
		}
		if i == 0 || pr > pressureMax {
			pressureMax = pr
		}
	}

	var pressureMean float64
	if len(particles) > 0 {
		pressureMean = pressureSum / float64(len(particles))
	}

	_, speedP10, speedP50, speedP90 := ComputeFieldStats(speeds)
	densityMean, densityP10, densityP50, densityP90 := ComputeFieldStats(densities)

	agg := sim.Stats()
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Particles: len(particles),
		Obstacles: len(sim.Obstacles()),

		AvgSpeed:      agg.AvgSpeed,
		MaxSpeed:      agg.MaxSpeed,
		KineticEnergy: agg.KineticEnergy,

		SpeedP10: speedP10,
		SpeedP50: speedP50,
		SpeedP90: speedP90,

		DensityMean: densityMean,
		DensityP10:  densityP10,
		DensityP50:  densityP50,
		DensityP90:  densityP90,

		PressureMean: pressureMean,
		PressureMin:  pressureMin,
		PressureMax:  pressureMax,

		ObstaclesAdded: c.obstaclesAdded,
		Resets:         c.resets,
		PauseToggles:   c.pauseToggles,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.obstaclesAdded = 0
	c.resets = 0
	c.pauseToggles = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}

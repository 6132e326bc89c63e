// Package telemetry collects per-window simulation statistics, per-phase
// timing, and CSV/slog output for headless runs and experiments.
package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Counts at window end
	Particles int `csv:"particles"`
	Obstacles int `csv:"obstacles"`

	// Aggregate motion at window end
	AvgSpeed      float64 `csv:"avg_speed"`
	MaxSpeed      float64 `csv:"max_speed"`
	KineticEnergy float64 `csv:"kinetic_energy"`

	// Speed distribution (sampled at window end)
	SpeedP10 float64 `csv:"speed_p10"`
	SpeedP50 float64 `csv:"speed_p50"`
	SpeedP90 float64 `csv:"speed_p90"`

	// Field distributions
	DensityMean  float64 `csv:"density_mean"`
	DensityP10   float64 `csv:"density_p10"`
	DensityP50   float64 `csv:"density_p50"`
	DensityP90   float64 `csv:"density_p90"`
	PressureMean float64 `csv:"pressure_mean"`
	PressureMin  float64 `csv:"pressure_min"`
	PressureMax  float64 `csv:"pressure_max"`

	// Events during window
	ObstaclesAdded int `csv:"obstacles_added"`
	Resets         int `csv:"resets"`
	PauseToggles   int `csv:"pause_toggles"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeFieldStats calculates mean and percentiles from sampled field values.
func ComputeFieldStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.Particles),
		slog.Int("obstacles", s.Obstacles),
		slog.Float64("avg_speed", s.AvgSpeed),
		slog.Float64("max_speed", s.MaxSpeed),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("density_mean", s.DensityMean),
		slog.Float64("density_p10", s.DensityP10),
		slog.Float64("density_p50", s.DensityP50),
		slog.Float64("density_p90", s.DensityP90),
		slog.Float64("pressure_mean", s.PressureMean),
		slog.Float64("pressure_min", s.PressureMin),
		slog.Float64("pressure_max", s.PressureMax),
		slog.Int("obstacles_added", s.ObstaclesAdded),
		slog.Int("resets", s.Resets),
		slog.Int("pause_toggles", s.PauseToggles),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"particles", s.Particles,
		"obstacles", s.Obstacles,
		"avg_speed", s.AvgSpeed,
		"max_speed", s.MaxSpeed,
		"kinetic_energy", s.KineticEnergy,
		"speed_p50", s.SpeedP50,
		"density_mean", s.DensityMean,
		"pressure_mean", s.PressureMean,
		"obstacles_added", s.ObstaclesAdded,
		"resets", s.Resets,
	)
}

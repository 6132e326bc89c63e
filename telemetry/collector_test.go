package telemetry

import (
	"math"
	"testing"

	"github.com/Efocor/FLUISIMS/fluid"
)

func newCollectorSim(t *testing.T) *fluid.Simulation {
	t.Helper()
	p := fluid.DefaultParams()
	p.SeedRows, p.SeedCols = 3, 3
	sim, err := fluid.NewSimulation(p)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

func TestCollectorWindowCadence(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	if got := c.WindowDurationTicks(); got != 60 {
		t.Fatalf("WindowDurationTicks() = %d, want 60", got)
	}
	if c.ShouldFlush(59) {
		t.Error("ShouldFlush(59) = true before the window is full")
	}
	if !c.ShouldFlush(60) {
		t.Error("ShouldFlush(60) = false at the window boundary")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0.001, 1.0/60.0)
	if got := c.WindowDurationTicks(); got != 1 {
		t.Errorf("WindowDurationTicks() = %d, want clamped to 1", got)
	}
}

func TestCollectorFlushSamplesAndResets(t *testing.T) {
	sim := newCollectorSim(t)
	for i := 0; i < 10; i++ {
		sim.Step()
	}

	c := NewCollector(1.0, 1.0/60.0)
	c.RecordObstacle()
	c.RecordObstacle()
	c.RecordReset()
	c.RecordPauseToggle()

	stats := c.Flush(60, sim)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 1.0", stats.SimTimeSec)
	}
	if stats.Particles != 9 {
		t.Errorf("Particles = %d, want 9", stats.Particles)
	}
	if stats.ObstaclesAdded != 2 || stats.Resets != 1 || stats.PauseToggles != 1 {
		t.Errorf("events = (%d, %d, %d), want (2, 1, 1)",
			stats.ObstaclesAdded, stats.Resets, stats.PauseToggles)
	}
	if stats.AvgSpeed > stats.MaxSpeed {
		t.Errorf("AvgSpeed %v > MaxSpeed %v", stats.AvgSpeed, stats.MaxSpeed)
	}
	if stats.DensityMean <= 0 {
		t.Errorf("DensityMean = %v, want positive after a density pass", stats.DensityMean)
	}
	if stats.PressureMin > stats.PressureMax {
		t.Errorf("PressureMin %v > PressureMax %v", stats.PressureMin, stats.PressureMax)
	}

	// Counters reset, window advances.
	next := c.Flush(120, sim)
	if next.WindowStartTick != 60 {
		t.Errorf("next WindowStartTick = %d, want 60", next.WindowStartTick)
	}
	if next.ObstaclesAdded != 0 || next.Resets != 0 || next.PauseToggles != 0 {
		t.Error("event counters were not reset on flush")
	}
}

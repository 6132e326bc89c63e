package game

import "log/slog"

// flushTelemetry checks if the stats window is complete and, if so, samples
// the simulation and routes the window to the configured sinks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.sim.Tick()) {
		return
	}

	stats := g.collector.Flush(g.sim.Tick(), g.sim)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

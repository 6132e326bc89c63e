package fluid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats are the aggregate per-frame statistics the host reads for display.
type Stats struct {
	AvgSpeed      float64
	MaxSpeed      float64
	KineticEnergy float64 // sum of 0.5 * mass * speed^2
}

// Simulation is the facade the host drives: one Step per frame, commands
// applied strictly between steps, read accessors for rendering and stats.
// It owns the state and the solver; a single Step runs all passes to
// completion before returning.
type Simulation struct {
	params Params
	solver *Solver
	state  State

	paused bool
	tick   int64

	stats   Stats
	history []float64 // rolling average-speed history, bounded by HistorySize
	speeds  []float64 // scratch for stats computation
}

// NewSimulation creates a simulation with the initial particle block seeded
// and statistics at zero.
func NewSimulation(p Params) (*Simulation, error) {
	solver, err := NewSolver(p)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		params: p,
		solver: solver,
		state: State{
			Width:  p.Width,
			Height: p.Height,
		},
		history: make([]float64, 0, p.HistorySize),
	}
	seed(&sim.state, p, p.Width/4, p.Height/4)

	return sim, nil
}

// Reset reinitializes the particle block at the deterministic grid offset,
// clears obstacles and the rolling history, and unsets pause. The domain
// size is fixed at construction; Reset restores the initial state within it.
func (sim *Simulation) Reset() {
	seed(&sim.state, sim.params, sim.params.Width/4, sim.params.Height/4)
	sim.state.Obstacles = sim.state.Obstacles[:0]
	sim.history = sim.history[:0]
	sim.stats = Stats{}
	sim.paused = false
	sim.tick = 0
}

// Step advances the simulation by one fixed tick. No-op while paused.
func (sim *Simulation) Step() {
	if sim.paused {
		return
	}

	sim.StepGrid()
	sim.StepDensityPressure()
	sim.StepForces()
	sim.StepIntegrate()
	sim.StepStats()
}

// The StepX methods below expose the frame phases individually so the host
// can time them; call order matters and must match Step.

// StepGrid rebuilds the spatial index from current positions.
func (sim *Simulation) StepGrid() { sim.solver.RebuildGrid(&sim.state) }

// StepDensityPressure runs the density/pressure pass.
func (sim *Simulation) StepDensityPressure() { sim.solver.ComputeDensityPressure(&sim.state) }

// StepForces runs the force accumulation pass.
func (sim *Simulation) StepForces() { sim.solver.ComputeForces(&sim.state) }

// StepIntegrate advances velocities and positions and resolves collisions.
func (sim *Simulation) StepIntegrate() {
	sim.solver.Advance(&sim.state, sim.params.DT)
	sim.tick++
}

// StepStats recomputes aggregate statistics and appends to the rolling
// average-speed history.
func (sim *Simulation) StepStats() {
	sim.speeds = sim.speeds[:0]
	for i := range sim.state.Particles {
		sim.speeds = append(sim.speeds, sim.state.Particles[i].Vel.Len())
	}

	if len(sim.speeds) == 0 {
		sim.stats = Stats{}
	} else {
		avg := stat.Mean(sim.speeds, nil)
		max := floats.Max(sim.speeds)

		var kinetic float64
		for _, v := range sim.speeds {
			kinetic += 0.5 * sim.params.ParticleMass * v * v
		}

		sim.stats = Stats{AvgSpeed: avg, MaxSpeed: max, KineticEnergy: kinetic}
	}

	sim.history = append(sim.history, sim.stats.AvgSpeed)
	if len(sim.history) > sim.params.HistorySize {
		copy(sim.history, sim.history[len(sim.history)-sim.params.HistorySize:])
		sim.history = sim.history[:sim.params.HistorySize]
	}
}

// TogglePause flips the pause flag and returns the new value.
func (sim *Simulation) TogglePause() bool {
	sim.paused = !sim.paused
	return sim.paused
}

// Paused reports whether stepping is suspended.
func (sim *Simulation) Paused() bool {
	return sim.paused
}

// AddObstacle appends a fixed-radius circular obstacle centered at (x, y).
// Must be called between steps, never while a Step is in flight.
func (sim *Simulation) AddObstacle(x, y float64) {
	sim.state.Obstacles = append(sim.state.Obstacles, Obstacle{
		Center: Vec2{x, y},
		Radius: sim.params.ObstacleRadius,
	})
}

// Particles returns the live particle slice. Callers must not retain it
// across a Reset and must not mutate it.
func (sim *Simulation) Particles() []Particle {
	return sim.state.Particles
}

// Obstacles returns the live obstacle slice.
func (sim *Simulation) Obstacles() []Obstacle {
	return sim.state.Obstacles
}

// Stats returns the aggregate statistics from the most recent step.
func (sim *Simulation) Stats() Stats {
	return sim.stats
}

// History returns the rolling average-speed history, oldest first. At most
// HistorySize entries regardless of run length.
func (sim *Simulation) History() []float64 {
	return sim.history
}

// Params returns the simulation constants.
func (sim *Simulation) Params() Params {
	return sim.params
}

// Tick returns the number of completed integration steps.
func (sim *Simulation) Tick() int64 {
	return sim.tick
}

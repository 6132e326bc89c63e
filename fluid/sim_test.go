package fluid

import (
	"math"
	"testing"
)

func newTestSim(t *testing.T, mutate func(*Params)) *Simulation {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	sim, err := NewSimulation(p)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

func TestSimulationSeedGrid(t *testing.T) {
	sim := newTestSim(t, nil)

	ps := sim.Particles()
	if len(ps) != 900 {
		t.Fatalf("seeded %d particles, want 30x30 = 900", len(ps))
	}

	// Deterministic offset: block starts at (width/4, height/4).
	if ps[0].Pos != (Vec2{256, 192}) {
		t.Errorf("first particle at %v, want (256, 192)", ps[0].Pos)
	}
	if want := (Vec2{256 + 29*8, 192 + 29*8}); ps[len(ps)-1].Pos != want {
		t.Errorf("last particle at %v, want %v", ps[len(ps)-1].Pos, want)
	}
	for i, p := range ps {
		if p.Vel != (Vec2{}) {
			t.Fatalf("particle %d seeded with velocity %v, want rest", i, p.Vel)
		}
	}
}

func TestSimulationPause(t *testing.T) {
	sim := newTestSim(t, nil)

	if !sim.TogglePause() {
		t.Fatal("TogglePause() = false after first toggle")
	}
	before := sim.Particles()[0].Pos
	sim.Step()
	if sim.Tick() != 0 || sim.Particles()[0].Pos != before {
		t.Error("Step advanced the simulation while paused")
	}

	sim.TogglePause()
	sim.Step()
	if sim.Tick() != 1 {
		t.Errorf("Tick() = %d after unpaused step, want 1", sim.Tick())
	}
}

func TestSimulationStepStats(t *testing.T) {
	sim := newTestSim(t, nil)

	for i := 0; i < 5; i++ {
		sim.Step()
	}

	st := sim.Stats()
	if st.AvgSpeed < 0 {
		t.Errorf("AvgSpeed = %v, want >= 0", st.AvgSpeed)
	}
	if st.AvgSpeed > st.MaxSpeed {
		t.Errorf("AvgSpeed %v > MaxSpeed %v", st.AvgSpeed, st.MaxSpeed)
	}
	if st.MaxSpeed == 0 {
		t.Error("MaxSpeed = 0 after stepping under gravity")
	}

	// Kinetic energy matches the definition sum(0.5 m v^2).
	var want float64
	mass := sim.Params().ParticleMass
	for _, p := range sim.Particles() {
		want += 0.5 * mass * p.Vel.LenSq()
	}
	if math.Abs(st.KineticEnergy-want) > 1e-9*math.Max(1, want) {
		t.Errorf("KineticEnergy = %v, want %v", st.KineticEnergy, want)
	}
}

func TestSimulationHistoryBounded(t *testing.T) {
	sim := newTestSim(t, func(p *Params) {
		p.SeedRows, p.SeedCols = 2, 2 // keep the stepping cheap
	})

	for i := 0; i < 250; i++ {
		sim.Step()
	}

	if got := len(sim.History()); got != sim.Params().HistorySize {
		t.Errorf("history length = %d, want capped at %d", got, sim.Params().HistorySize)
	}
}

func TestSimulationObstaclesAndReset(t *testing.T) {
	sim := newTestSim(t, nil)

	sim.AddObstacle(300, 300)
	sim.AddObstacle(400, 400)
	if got := sim.Obstacles(); len(got) != 2 || got[0].Radius != 25 {
		t.Fatalf("Obstacles() = %v, want two with radius 25", got)
	}

	sim.Step()
	sim.TogglePause()

	sim.Reset()
	if len(sim.Obstacles()) != 0 {
		t.Error("Reset did not clear obstacles")
	}
	if len(sim.History()) != 0 {
		t.Error("Reset did not clear history")
	}
	if sim.Paused() {
		t.Error("Reset did not unset pause")
	}
	if sim.Tick() != 0 {
		t.Error("Reset did not rewind the tick counter")
	}
	if sim.Particles()[0].Pos != (Vec2{256, 192}) {
		t.Error("Reset did not restore the seed grid")
	}
}

// Energy sanity: with zero gravity and viscosity, an isolated particle
// experiences no net force and never moves.
func TestSimulationIsolatedParticleAtRest(t *testing.T) {
	sim := newTestSim(t, func(p *Params) {
		p.SeedRows, p.SeedCols = 1, 1
		p.Gravity = Vec2{}
		p.Viscosity = 0
	})

	start := sim.Particles()[0].Pos
	for i := 0; i < 120; i++ {
		sim.Step()
	}

	p := sim.Particles()[0]
	if p.Pos != start {
		t.Errorf("isolated particle moved from %v to %v", start, p.Pos)
	}
	if p.Vel != (Vec2{}) {
		t.Errorf("isolated particle gained velocity %v", p.Vel)
	}
}

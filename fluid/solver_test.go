package fluid

import (
	"math"
	"math/rand"
	"testing"
)

func newTestSolver(t *testing.T, mutate func(*Params)) *Solver {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	sv, err := NewSolver(p)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	return sv
}

func TestSolverRejectsUndersizedCells(t *testing.T) {
	p := DefaultParams()
	p.CellSize = 10 // below the smoothing radius of 15
	if _, err := NewSolver(p); err == nil {
		t.Error("NewSolver accepted cell size below smoothing radius")
	}
}

// Two particles at (0,0) and (5,0) with h=15, mass=1: equal densities,
// mirrored pressure forces.
func TestSolverPairSymmetry(t *testing.T) {
	sv := newTestSolver(t, nil)
	s := &State{
		Width:     1024,
		Height:    768,
		Particles: particlesAt(Vec2{0, 0}, Vec2{5, 0}),
	}

	sv.RebuildGrid(s)
	sv.ComputeDensityPressure(s)

	d0, d1 := s.Particles[0].Density, s.Particles[1].Density
	if d0 <= 0 || d1 <= 0 {
		t.Fatalf("densities %v, %v: want strictly positive", d0, d1)
	}
	if math.Abs(d0-d1) > 1e-12 {
		t.Errorf("densities %v, %v differ: pair is symmetric", d0, d1)
	}

	sv.ComputeForces(s)
	f0, f1 := s.Particles[0].Force, s.Particles[1].Force

	if math.Abs(f0.X+f1.X) > 1e-9 {
		t.Errorf("x forces %v, %v: want equal magnitude, opposite direction", f0.X, f1.X)
	}
	if f0.X == 0 {
		t.Error("x force is zero: pair at distance 5 should interact")
	}

	// Gravity is identical for both; velocities are zero so there is no
	// viscosity contribution.
	g := sv.Params().Gravity.Y
	if math.Abs(f0.Y-g) > 1e-9 || math.Abs(f1.Y-g) > 1e-9 {
		t.Errorf("y forces %v, %v: want gravity %v for both", f0.Y, f1.Y, g)
	}
}

func TestSolverDensityMonotonicAsNeighborApproaches(t *testing.T) {
	sv := newTestSolver(t, nil)

	prev := 0.0
	for i, dist := range []float64{14, 10, 6, 3, 1} {
		s := &State{
			Width:     1024,
			Height:    768,
			Particles: particlesAt(Vec2{100, 100}, Vec2{100 + dist, 100}),
		}
		sv.RebuildGrid(s)
		sv.ComputeDensityPressure(s)

		d := s.Particles[0].Density
		if i > 0 && d <= prev {
			t.Errorf("density %v at distance %v not greater than %v at larger distance", d, dist, prev)
		}
		prev = d
	}
}

func TestSolverIsolatedParticle(t *testing.T) {
	sv := newTestSolver(t, nil)
	s := &State{
		Width:     1024,
		Height:    768,
		Particles: particlesAt(Vec2{500, 400}),
	}

	sv.RebuildGrid(s)
	sv.ComputeDensityPressure(s)

	// Only the self term contributes.
	want := sv.Params().ParticleMass * sv.Kernel().Poly6(0)
	if math.Abs(s.Particles[0].Density-want) > 1e-12 {
		t.Errorf("isolated density = %v, want self term %v", s.Particles[0].Density, want)
	}

	// Pressure is negative below rest density; the force pass must still
	// produce a finite force (gravity only, no neighbors).
	if s.Particles[0].Pressure >= 0 {
		t.Errorf("pressure = %v, want negative below rest density", s.Particles[0].Pressure)
	}

	sv.ComputeForces(s)
	f := s.Particles[0].Force
	if f.X != 0 || f.Y != sv.Params().Gravity.Y {
		t.Errorf("isolated force = %v, want pure gravity", f)
	}
}

func TestSolverZeroDensityNeighborSkipped(t *testing.T) {
	sv := newTestSolver(t, nil)
	s := &State{
		Width:     1024,
		Height:    768,
		Particles: particlesAt(Vec2{100, 100}, Vec2{105, 100}),
	}

	sv.RebuildGrid(s)
	// Skip the density pass and force a degenerate neighbor.
	s.Particles[0].Density = 1
	s.Particles[1].Density = 0

	sv.ComputeForces(s)
	f := s.Particles[0].Force
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Fatalf("force = %v: zero-density neighbor must be skipped, not divided by", f)
	}
	if f.X != 0 || f.Y != sv.Params().Gravity.Y {
		t.Errorf("force = %v, want pure gravity with degenerate neighbor skipped", f)
	}
}

func TestSolverCoincidentParticlesSkipped(t *testing.T) {
	sv := newTestSolver(t, nil)
	s := &State{
		Width:     1024,
		Height:    768,
		Particles: particlesAt(Vec2{200, 200}, Vec2{200, 200}),
	}

	sv.RebuildGrid(s)
	sv.ComputeDensityPressure(s)
	sv.ComputeForces(s)

	for i, p := range s.Particles {
		if math.IsNaN(p.Force.X) || math.IsNaN(p.Force.Y) {
			t.Errorf("particle %d force = %v: coincident pair must not divide by zero", i, p.Force)
		}
	}
}

// The grid-backed passes must agree with the all-pairs reference for
// particle sets fully inside the domain.
func TestSolverGridMatchesBruteForce(t *testing.T) {
	sv := newTestSolver(t, nil)

	rng := rand.New(rand.NewSource(3))
	mk := func() *State {
		s := &State{Width: 1024, Height: 768}
		s.Particles = make([]Particle, 300)
		for i := range s.Particles {
			s.Particles[i].Pos = Vec2{rng.Float64() * 1020, rng.Float64() * 750}
			s.Particles[i].Vel = Vec2{rng.Float64()*20 - 10, rng.Float64()*20 - 10}
		}
		return s
	}

	gridState := mk()
	rng = rand.New(rand.NewSource(3))
	bruteState := mk()

	sv.RebuildGrid(gridState)
	sv.ComputeDensityPressure(gridState)
	sv.densityPressureBrute(bruteState)

	for i := range gridState.Particles {
		dg := gridState.Particles[i].Density
		db := bruteState.Particles[i].Density
		if math.Abs(dg-db) > 1e-9*math.Max(1, math.Abs(db)) {
			t.Fatalf("particle %d density: grid %v, brute %v", i, dg, db)
		}
	}

	sv.ComputeForces(gridState)
	sv.forcesBrute(bruteState)

	for i := range gridState.Particles {
		fg := gridState.Particles[i].Force
		fb := bruteState.Particles[i].Force
		if math.Abs(fg.X-fb.X) > 1e-6*math.Max(1, math.Abs(fb.X)) ||
			math.Abs(fg.Y-fb.Y) > 1e-6*math.Max(1, math.Abs(fb.Y)) {
			t.Fatalf("particle %d force: grid %v, brute %v", i, fg, fb)
		}
	}
}

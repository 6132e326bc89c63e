package fluid

// Solver runs the per-frame SPH passes: grid rebuild, density/pressure,
// force accumulation, and integration. It owns the spatial index and a
// scratch buffer for neighbor queries so steady-state stepping does not
// allocate.
type Solver struct {
	params Params
	kernel Kernel
	grid   *Grid

	scratch []int // reused neighbor candidate buffer
}

// NewSolver creates a solver for the given parameter set.
func NewSolver(p Params) (*Solver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Solver{
		params: p,
		kernel: NewKernel(p.SmoothingRadius),
		grid:   NewGrid(p.Width, p.Height, p.CellSize),
	}, nil
}

// Params returns the solver's parameter set.
func (sv *Solver) Params() Params {
	return sv.params
}

// Kernel returns the solver's kernel set.
func (sv *Solver) Kernel() Kernel {
	return sv.kernel
}

// Grid returns the solver's spatial index.
func (sv *Solver) Grid() *Grid {
	return sv.grid
}

// RebuildGrid reindexes all particles. Must run before any query pass of
// the same frame.
func (sv *Solver) RebuildGrid(s *State) {
	sv.grid.Rebuild(s.Particles)
}

// ComputeDensityPressure runs the density pass: each particle's density is
// the kernel-weighted mass sum over its grid neighborhood (including
// itself), and pressure follows from the weakly-compressible equation of
// state. Pressure goes negative below rest density; the force pass treats
// that as tension.
func (sv *Solver) ComputeDensityPressure(s *State) {
	h := sv.params.SmoothingRadius
	mass := sv.params.ParticleMass

	for i := range s.Particles {
		p := &s.Particles[i]

		sv.scratch = sv.grid.QueryInto(sv.scratch[:0], p.Pos.X, p.Pos.Y)

		density := 0.0
		for _, j := range sv.scratch {
			r := p.Pos.Sub(s.Particles[j].Pos).Len()
			if r > h {
				continue
			}
			density += mass * sv.kernel.Poly6(r)
		}

		p.Density = density
		p.Pressure = sv.params.Stiffness * (density - sv.params.RestDensity)
	}
}

// ComputeForces runs the force pass: pressure and viscosity contributions
// accumulated over exact-distance-filtered grid neighbors, plus gravity.
// Degenerate pairs are skipped locally: coincident particles have no
// defined direction, and a zero-density neighbor would divide by zero.
func (sv *Solver) ComputeForces(s *State) {
	h := sv.params.SmoothingRadius
	mass := sv.params.ParticleMass

	for i := range s.Particles {
		p := &s.Particles[i]

		sv.scratch = sv.grid.QueryInto(sv.scratch[:0], p.Pos.X, p.Pos.Y)

		var pressureForce, viscosityForce Vec2
		for _, j := range sv.scratch {
			if j == i {
				continue
			}
			q := &s.Particles[j]

			diff := p.Pos.Sub(q.Pos)
			r := diff.Len()
			if r == 0 || r >= h {
				continue
			}
			if q.Density == 0 {
				continue
			}

			// Symmetrized pressure term along the pair axis.
			grad := sv.kernel.SpikyGradient(r)
			pressureForce = pressureForce.Add(
				diff.Scale(1 / r).Scale(mass * (p.Pressure + q.Pressure) / (2 * q.Density) * grad))

			// Viscosity damps the velocity difference.
			lap := sv.kernel.ViscosityLaplacian(r)
			viscosityForce = viscosityForce.Add(
				q.Vel.Sub(p.Vel).Scale(mass / q.Density * lap))
		}

		p.Force = pressureForce.Scale(-1).
			Add(viscosityForce.Scale(sv.params.Viscosity)).
			Add(sv.params.Gravity)
	}
}

// densityPressureBrute is the all-pairs density pass. It is the reference
// path the grid-backed pass is checked against in tests; it is never used
// during normal stepping.
func (sv *Solver) densityPressureBrute(s *State) {
	mass := sv.params.ParticleMass

	for i := range s.Particles {
		p := &s.Particles[i]

		density := 0.0
		for j := range s.Particles {
			r := p.Pos.Sub(s.Particles[j].Pos).Len()
			density += mass * sv.kernel.Poly6(r)
		}

		p.Density = density
		p.Pressure = sv.params.Stiffness * (density - sv.params.RestDensity)
	}
}

// forcesBrute is the all-pairs force pass, kept as the test oracle for
// ComputeForces.
func (sv *Solver) forcesBrute(s *State) {
	h := sv.params.SmoothingRadius
	mass := sv.params.ParticleMass

	for i := range s.Particles {
		p := &s.Particles[i]

		var pressureForce, viscosityForce Vec2
		for j := range s.Particles {
			if j == i {
				continue
			}
			q := &s.Particles[j]

			diff := p.Pos.Sub(q.Pos)
			r := diff.Len()
			if r == 0 || r >= h {
				continue
			}
			if q.Density == 0 {
				continue
			}

			grad := sv.kernel.SpikyGradient(r)
			pressureForce = pressureForce.Add(
				diff.Scale(1 / r).Scale(mass * (p.Pressure + q.Pressure) / (2 * q.Density) * grad))

			lap := sv.kernel.ViscosityLaplacian(r)
			viscosityForce = viscosityForce.Add(
				q.Vel.Sub(p.Vel).Scale(mass / q.Density * lap))
		}

		p.Force = pressureForce.Scale(-1).
			Add(viscosityForce.Scale(sv.params.Viscosity)).
			Add(sv.params.Gravity)
	}
}

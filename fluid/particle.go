// Package fluid implements a weakly-compressible 2D SPH fluid: particle
// state, smoothing kernels, a uniform-grid spatial index, the density/force
// solver, and semi-implicit Euler integration with wall and obstacle
// collision response.
package fluid

import (
	"errors"
	"fmt"
)

// Particle is one SPH particle. Its identity is its index in the State
// slice; indices are stable across updates within a run but not across a
// Reset.
type Particle struct {
	Pos      Vec2
	Vel      Vec2
	Force    Vec2 // accumulated per frame, overwritten by the force pass
	Density  float64
	Pressure float64 // stiffness * (density - restDensity); may be negative
}

// Obstacle is a static circular region that deflects particles. Obstacles
// take no part in the SPH force computation.
type Obstacle struct {
	Center Vec2
	Radius float64
}

// State holds the complete mutable simulation state. It is owned by the
// Simulation facade and passed explicitly into solver passes; nothing in
// this package keeps hidden state between frames except the grid cells,
// which are rebuilt from scratch every step.
type State struct {
	Particles []Particle
	Obstacles []Obstacle
	Width     float64
	Height    float64
}

// Params are the simulation constants, fixed at construction.
type Params struct {
	Width  float64 // domain width in world units
	Height float64 // domain height in world units

	SmoothingRadius float64
	ParticleMass    float64
	DT              float64
	Viscosity       float64
	Stiffness       float64
	RestDensity     float64
	Gravity         Vec2
	CellSize        float64

	ObstacleRadius      float64
	WallRestitution     float64 // fraction of normal velocity kept, sign-inverted
	ObstacleRestitution float64 // normal response factor on obstacle contact

	// Initial seeding: SeedRows x SeedCols particles at SeedSpacing apart,
	// starting at (Width/4, Height/4).
	SeedRows    int
	SeedCols    int
	SeedSpacing float64

	HistorySize int // rolling average-speed history length
}

// DefaultParams returns the reference parameter set for a 1024x768 domain.
func DefaultParams() Params {
	return Params{
		Width:  1024,
		Height: 768,

		SmoothingRadius: 15,
		ParticleMass:    1,
		DT:              1.0 / 60.0,
		Viscosity:       250,
		Stiffness:       50,
		RestDensity:     1000,
		Gravity:         Vec2{0, 981},
		CellSize:        30,

		ObstacleRadius:      25,
		WallRestitution:     0.5,
		ObstacleRestitution: 1.8,

		SeedRows:    30,
		SeedCols:    30,
		SeedSpacing: 8,

		HistorySize: 200,
	}
}

// Validate checks the parameter set for the latent-bug configurations
// called out by the design: a cell smaller than the smoothing radius makes
// the 3x3 query window miss true neighbors without any runtime symptom.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("fluid: domain %gx%g must be positive", p.Width, p.Height)
	}
	if p.SmoothingRadius <= 0 {
		return errors.New("fluid: smoothing radius must be positive")
	}
	if p.CellSize < p.SmoothingRadius {
		return fmt.Errorf("fluid: cell size %g < smoothing radius %g: 3x3 neighbor query would miss true neighbors",
			p.CellSize, p.SmoothingRadius)
	}
	if p.DT <= 0 {
		return errors.New("fluid: time step must be positive")
	}
	if p.ParticleMass <= 0 {
		return errors.New("fluid: particle mass must be positive")
	}
	if p.SeedRows <= 0 || p.SeedCols <= 0 {
		return errors.New("fluid: seed grid must be non-empty")
	}
	if p.HistorySize <= 0 {
		return errors.New("fluid: history size must be positive")
	}
	return nil
}

// seed fills s with the initial particle block: SeedRows x SeedCols
// particles, SeedSpacing apart, upper-left corner at (startX, startY),
// all at rest.
func seed(s *State, p Params, startX, startY float64) {
	n := p.SeedRows * p.SeedCols
	if cap(s.Particles) >= n {
		s.Particles = s.Particles[:0]
	} else {
		s.Particles = make([]Particle, 0, n)
	}

	for row := 0; row < p.SeedRows; row++ {
		for col := 0; col < p.SeedCols; col++ {
			s.Particles = append(s.Particles, Particle{
				Pos: Vec2{
					X: startX + float64(col)*p.SeedSpacing,
					Y: startY + float64(row)*p.SeedSpacing,
				},
			})
		}
	}
}

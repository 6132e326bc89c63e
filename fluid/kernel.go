package fluid

import "math"

// Kernel evaluates the three standard SPH smoothing kernels for a fixed
// smoothing radius h. Powers of h and the normalization constants are
// precomputed at construction so the per-pair cost is a few multiplies.
//
// All three functions have compact support: they return 0 for r > h.
type Kernel struct {
	h  float64
	h2 float64

	poly6Norm float64 // 315 / (64 pi h^9)
	spikyNorm float64 // -45 / (pi h^6)
	viscNorm  float64 // 45 / (pi h^6)
}

// NewKernel creates a kernel set for smoothing radius h.
func NewKernel(h float64) Kernel {
	h2 := h * h
	h3 := h2 * h
	h6 := h3 * h3
	h9 := h6 * h3

	return Kernel{
		h:         h,
		h2:        h2,
		poly6Norm: 315.0 / (64.0 * math.Pi * h9),
		spikyNorm: -45.0 / (math.Pi * h6),
		viscNorm:  45.0 / (math.Pi * h6),
	}
}

// H returns the smoothing radius.
func (k Kernel) H() float64 {
	return k.h
}

// Poly6 is the density estimation kernel, proportional to (h^2 - r^2)^3.
func (k Kernel) Poly6(r float64) float64 {
	if r > k.h {
		return 0
	}
	term := k.h2 - r*r
	return k.poly6Norm * term * term * term
}

// SpikyGradient is the magnitude of the pressure kernel gradient,
// proportional to (h - r)^2. Negative for r < h: the gradient points
// toward the neighbor, so the pressure force ends up repulsive once
// negated by the solver.
func (k Kernel) SpikyGradient(r float64) float64 {
	if r > k.h {
		return 0
	}
	term := k.h - r
	return k.spikyNorm * term * term
}

// ViscosityLaplacian is the Laplacian of the viscosity kernel,
// proportional to (h - r).
func (k Kernel) ViscosityLaplacian(r float64) float64 {
	if r > k.h {
		return 0
	}
	return k.viscNorm * (k.h - r)
}

package fluid

import (
	"math"
	"testing"
)

func TestKernelCompactSupport(t *testing.T) {
	k := NewKernel(15)

	for _, r := range []float64{15.0001, 20, 1000} {
		if got := k.Poly6(r); got != 0 {
			t.Errorf("Poly6(%v) = %v, want 0 beyond support", r, got)
		}
		if got := k.SpikyGradient(r); got != 0 {
			t.Errorf("SpikyGradient(%v) = %v, want 0 beyond support", r, got)
		}
		if got := k.ViscosityLaplacian(r); got != 0 {
			t.Errorf("ViscosityLaplacian(%v) = %v, want 0 beyond support", r, got)
		}
	}
}

func TestKernelClosedForm(t *testing.T) {
	h := 15.0
	k := NewKernel(h)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"poly6 at 0", k.Poly6(0), 315.0 / (64.0 * math.Pi * math.Pow(h, 9)) * math.Pow(h*h, 3)},
		{"poly6 at 5", k.Poly6(5), 315.0 / (64.0 * math.Pi * math.Pow(h, 9)) * math.Pow(h*h-25, 3)},
		{"poly6 at h", k.Poly6(h), 0},
		{"spiky at 5", k.SpikyGradient(5), -45.0 / (math.Pi * math.Pow(h, 6)) * math.Pow(h-5, 2)},
		{"spiky at h", k.SpikyGradient(h), 0},
		{"visc at 5", k.ViscosityLaplacian(5), 45.0 / (math.Pi * math.Pow(h, 6)) * (h - 5)},
		{"visc at h", k.ViscosityLaplacian(h), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-12*math.Max(1, math.Abs(tt.want)) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestKernelShapes(t *testing.T) {
	k := NewKernel(15)

	// Poly6 decreases monotonically from r=0 to r=h.
	prev := math.Inf(1)
	for r := 0.0; r <= 15; r += 0.5 {
		v := k.Poly6(r)
		if v > prev {
			t.Fatalf("Poly6 not monotonically decreasing at r=%v: %v > %v", r, v, prev)
		}
		prev = v
	}

	// SpikyGradient is negative inside support, ViscosityLaplacian positive.
	for r := 0.5; r < 15; r += 0.5 {
		if k.SpikyGradient(r) >= 0 {
			t.Errorf("SpikyGradient(%v) = %v, want negative inside support", r, k.SpikyGradient(r))
		}
		if k.ViscosityLaplacian(r) <= 0 {
			t.Errorf("ViscosityLaplacian(%v) = %v, want positive inside support", r, k.ViscosityLaplacian(r))
		}
	}
}

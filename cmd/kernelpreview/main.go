// Kernel preview tool - interactive visualization of the SPH smoothing
// kernels with a slider for the smoothing radius.
//
// Usage: go run ./cmd/kernelpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Efocor/FLUISIMS/fluid"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	plotSize     = 512
	panelWidth   = windowWidth - plotSize - 30
)

type curve struct {
	name   string
	color  rl.Color
	sample func(k fluid.Kernel, r float64) float64
}

var curves = []curve{
	{"poly6 (density)", rl.Color{R: 100, G: 180, B: 255, A: 255},
		func(k fluid.Kernel, r float64) float64 { return k.Poly6(r) }},
	{"spiky gradient (pressure)", rl.Color{R: 255, G: 140, B: 100, A: 255},
		func(k fluid.Kernel, r float64) float64 { return -k.SpikyGradient(r) }},
	{"viscosity laplacian", rl.Color{R: 140, G: 255, B: 140, A: 255},
		func(k fluid.Kernel, r float64) float64 { return k.ViscosityLaplacian(r) }},
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Kernel Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	h := float32(15.0)
	enabled := [3]bool{true, true, true}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 15, G: 18, B: 24, A: 255})

		kernel := fluid.NewKernel(float64(h))
		drawPlot(kernel, enabled)

		// Control panel
		panelX := float32(plotSize + 20)
		panelY := float32(10)

		rl.DrawText("SPH Kernel Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText("Smoothing radius h", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		h = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"5", "40",
			h, 5, 40,
		)
		rl.DrawText(fmt.Sprintf("%.1f", h), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		panelY += 40

		// Curve toggles
		for i := range curves {
			label := "Show " + curves[i].name
			if enabled[i] {
				label = "Hide " + curves[i].name
			}
			if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 240, Height: 28}, label) {
				enabled[i] = !enabled[i]
			}
			rl.DrawRectangle(int32(panelX)+250, int32(panelY)+9, 10, 10, curves[i].color)
			panelY += 36
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
			h = 15.0
			enabled = [3]bool{true, true, true}
		}
		panelY += 45

		// Sampled values at a few distances
		rl.DrawText("Samples:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 22
		for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			r := frac * float64(h)
			rl.DrawText(
				fmt.Sprintf("r=%5.1f  W=%.3e  dW=%.3e  lap=%.3e",
					r, kernel.Poly6(r), kernel.SpikyGradient(r), kernel.ViscosityLaplacian(r)),
				int32(panelX), int32(panelY), 12, rl.Gray,
			)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

// drawPlot renders the enabled kernel curves over r in [0, 1.1h], each
// normalized to its own peak so they share the plot area.
func drawPlot(k fluid.Kernel, enabled [3]bool) {
	rl.DrawRectangle(10, 10, plotSize, plotSize, rl.Color{R: 20, G: 25, B: 30, A: 255})
	rl.DrawRectangleLines(10, 10, plotSize, plotSize, rl.DarkGray)

	rMax := k.H() * 1.1
	samples := plotSize

	// Support boundary marker at r = h
	supportX := int32(10 + float64(plotSize)*(k.H()/rMax))
	rl.DrawLine(supportX, 10, supportX, 10+plotSize, rl.Color{R: 70, G: 70, B: 70, A: 255})
	rl.DrawText("r = h", supportX+4, 16, 12, rl.Gray)

	for ci, c := range curves {
		if !enabled[ci] {
			continue
		}

		peak := 0.0
		values := make([]float64, samples)
		for i := 0; i < samples; i++ {
			r := rMax * float64(i) / float64(samples-1)
			values[i] = c.sample(k, r)
			if values[i] > peak {
				peak = values[i]
			}
		}
		if peak <= 0 {
			continue
		}

		for i := 1; i < samples; i++ {
			x0 := float32(10 + i - 1)
			x1 := float32(10 + i)
			y0 := float32(10+plotSize) - float32(values[i-1]/peak)*float32(plotSize-20)
			y1 := float32(10+plotSize) - float32(values[i]/peak)*float32(plotSize-20)
			rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, c.color)
		}
	}

	rl.DrawText("normalized kernel value vs distance", 15, 10+plotSize+5, 14, rl.Gray)
}

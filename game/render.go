package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Efocor/FLUISIMS/ui"
)

var obstacleColor = rl.Color{R: 120, G: 120, B: 120, A: 255}

// Draw renders the frame: particles, obstacles, then the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawParticles()
	g.drawObstacles()

	stats := g.sim.Stats()
	action := g.hud.Draw(ui.HUDData{
		Title:          "FLUISIMS",
		Particles:      len(g.sim.Particles()),
		Obstacles:      len(g.sim.Obstacles()),
		Tick:           g.sim.Tick(),
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            int32(rl.GetFPS()),
		Paused:         g.sim.Paused(),
		AvgSpeed:       stats.AvgSpeed,
		MaxSpeed:       stats.MaxSpeed,
		KineticEnergy:  stats.KineticEnergy,
		ScreenWidth:    int32(g.params.Width),
		ScreenHeight:   int32(g.params.Height),
	})
	if action.TogglePause {
		g.togglePause()
	}
	if action.Reset {
		g.reset()
	}

	g.chart.Draw(
		g.sim.History(), g.params.HistorySize,
		int32(g.params.Width), int32(g.params.Height),
	)
	g.hud.DrawControls(int32(g.params.Height))

	rl.EndDrawing()
}

// drawParticles renders each particle as a circle shaded by speed. The
// color is a pure display concern derived from velocity at draw time.
func (g *Game) drawParticles() {
	radius := float32(g.params.SmoothingRadius * 0.5)

	particles := g.sim.Particles()
	for i := range particles {
		p := &particles[i]

		blue := 255 - int32(p.Vel.Len()*5)
		if blue < 0 {
			blue = 0
		}

		rl.DrawCircleV(
			rl.Vector2{X: float32(p.Pos.X), Y: float32(p.Pos.Y)},
			radius,
			rl.Color{R: 0, G: 120, B: uint8(blue), A: 255},
		)
	}
}

// drawObstacles renders the placed circular obstacles.
func (g *Game) drawObstacles() {
	for _, o := range g.sim.Obstacles() {
		rl.DrawCircleV(
			rl.Vector2{X: float32(o.Center.X), Y: float32(o.Center.Y)},
			float32(o.Radius),
			obstacleColor,
		)
	}
}

package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input. Commands mutate the
// simulation strictly between steps.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Left click places an obstacle, unless the click lands on the HUD.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mousePos := rl.GetMousePosition()
		if g.hud == nil || !rl.CheckCollisionPointRec(mousePos, g.hud.Bounds()) {
			g.sim.AddObstacle(float64(mousePos.X), float64(mousePos.Y))
			g.collector.RecordObstacle()
		}
	}
}

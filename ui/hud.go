package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD for one frame.
type HUDData struct {
	Title          string
	Particles      int
	Obstacles      int
	Tick           int64
	StepsPerUpdate int
	FPS            int32
	Paused         bool

	AvgSpeed      float64
	MaxSpeed      float64
	KineticEnergy float64

	ScreenWidth  int32
	ScreenHeight int32
}

// HUDAction reports which controls the user activated this frame.
type HUDAction struct {
	TogglePause bool
	Reset       bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a new HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        10,
		y:        10,
		width:    240,
	}
}

// Bounds returns the screen region covered by the HUD panel. The host uses
// it to keep clicks on the panel from placing obstacles underneath.
func (h *HUD) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(h.x),
		Y:      float32(h.y),
		Width:  float32(h.width),
		Height: h.panelHeight(),
	}
}

func (h *HUD) panelHeight() float32 {
	t := h.renderer.Theme
	// Title + 7 stat lines + button row + padding.
	return float32(t.Padding)*3 + float32(t.LineHeight)*8 + t.ButtonHeight
}

// Draw renders the HUD and returns the actions triggered by its buttons.
func (h *HUD) Draw(data HUDData) HUDAction {
	r := h.renderer
	t := r.Theme
	padding := t.Padding

	r.DrawPanel(h.x, h.y, h.width, int32(h.panelHeight()))

	x := h.x + padding
	y := h.y + padding

	y = r.DrawSectionHeader(x, y, data.Title)
	y += 4

	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Obstacles", fmt.Sprintf("%d", data.Obstacles))
	y = r.DrawLabelValue(x, y, "Avg speed", fmt.Sprintf("%.1f", data.AvgSpeed))
	y = r.DrawLabelValue(x, y, "Max speed", fmt.Sprintf("%.1f", data.MaxSpeed))
	y = r.DrawLabelValue(x, y, "Kinetic E", fmt.Sprintf("%.0f", data.KineticEnergy))
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d (%dx)", data.Tick, data.StepsPerUpdate))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y += 6

	var action HUDAction

	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Start"
	}
	if gui.Button(rl.Rectangle{
		X: float32(x), Y: float32(y),
		Width: t.ButtonWidth, Height: t.ButtonHeight,
	}, pauseLabel) {
		action.TogglePause = true
	}
	if gui.Button(rl.Rectangle{
		X: float32(x) + t.ButtonWidth + 10, Y: float32(y),
		Width: t.ButtonWidth, Height: t.ButtonHeight,
	}, "Reset") {
		action.Reset = true
	}

	if data.Paused {
		rl.DrawText("PAUSED", h.x+h.width+10, h.y, 20, rl.Yellow)
	}

	return action
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(
		"Click: obstacle | Space: pause | R: reset | < >: speed",
		10, screenHeight-25, 14, rl.Gray,
	)
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedChart renders the rolling average-speed history as a line chart,
// anchored to the bottom-right corner of the screen.
type SpeedChart struct {
	renderer      *Renderer
	width, height int32
}

// NewSpeedChart creates a chart with the given pixel dimensions.
func NewSpeedChart(width, height int32) *SpeedChart {
	return &SpeedChart{
		renderer: NewRenderer(),
		width:    width,
		height:   height,
	}
}

// Draw renders the chart. history is oldest-first; the horizontal axis is
// scaled so capacity samples span the full width and the vertical axis is
// scaled to the current maximum.
func (c *SpeedChart) Draw(history []float64, capacity int, screenWidth, screenHeight int32) {
	r := c.renderer
	t := r.Theme

	x := screenWidth - c.width - 10
	y := screenHeight - c.height - 10

	rl.DrawRectangle(x, y, c.width, c.height, t.ChartBg)
	rl.DrawRectangleLines(x, y, c.width, c.height, t.PanelBorder)
	rl.DrawText("avg speed", x+4, y+4, t.FontSize, t.LabelColor)

	if len(history) < 2 || capacity < 2 {
		return
	}

	maxVal := history[0]
	for _, v := range history {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	plotTop := y + 20
	plotHeight := float32(c.height - 24)
	stepX := float32(c.width) / float32(capacity-1)

	for i := 1; i < len(history); i++ {
		x0 := float32(x) + float32(i-1)*stepX
		x1 := float32(x) + float32(i)*stepX
		y0 := float32(plotTop) + plotHeight*(1-float32(history[i-1]/maxVal))
		y1 := float32(plotTop) + plotHeight*(1-float32(history[i]/maxVal))
		rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, t.ChartLine)
	}

	rl.DrawText(fmt.Sprintf("%.0f", maxVal), x+4, plotTop, t.FontSize, t.ChartAxis)
}

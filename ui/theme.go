// Package ui renders the heads-up display for the fluid simulation: control
// buttons, a stats panel, and a rolling average-speed chart.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	ChartBg       rl.Color
	ChartLine     rl.Color
	ChartAxis     rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		ChartBg:       rl.Color{R: 15, G: 18, B: 24, A: 220},
		ChartLine:     rl.Color{R: 100, G: 180, B: 255, A: 255},
		ChartAxis:     rl.Color{R: 80, G: 80, B: 80, A: 255},

		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		FontSize:       12,
		HeaderFontSize: 14,
		ButtonWidth:    90,
		ButtonHeight:   26,
	}
}

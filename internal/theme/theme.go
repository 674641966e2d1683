// Package theme holds the palette, gauge ranges, and brand text shared by
// every asset generator. Default returns the stock THOR look; an optional
// HCL theme file can override individual entries (see Load).
package theme

import "github.com/gogpu/gg"

// Palette is the full color set used across the asset families.
//
// The flipbook gauges render on Background (black); the structured panel
// assets (dashboard background, labels, static bars) use the light
// PanelBackground / Dark / DarkSlate group; the glow-style turn and hazard
// icons use the Navy / Signal* group.
type Palette struct {
	Background gg.RGBA
	White      gg.RGBA
	Green      gg.RGBA
	GreenDeep  gg.RGBA
	Yellow     gg.RGBA
	Orange     gg.RGBA
	Red        gg.RGBA
	Gray       gg.RGBA
	Blue       gg.RGBA

	PanelBackground gg.RGBA
	Dark            gg.RGBA
	DarkSlate       gg.RGBA
	PanelGray       gg.RGBA

	Navy         gg.RGBA
	SignalGreen  gg.RGBA
	SignalEdge   gg.RGBA
	SignalDim    gg.RGBA
	SignalInk    gg.RGBA
	HazardYellow gg.RGBA
}

// Theme is the resolved configuration for one generation pass.
type Theme struct {
	// Brand is the wordmark drawn on the glow-style turn arrows.
	Brand string

	// SpeedMax is the top of the speedometer range in km/h. The speed
	// flipbook has SpeedMax+1 frames.
	SpeedMax int

	// RPMMax and RPMStep define the RPM flipbook: one frame per RPMStep
	// from 0 to RPMMax inclusive.
	RPMMax  int
	RPMStep int

	Palette Palette
}

func rgb255(r, g, b float64) gg.RGBA {
	return gg.RGB(r/255, g/255, b/255)
}

// Default returns the stock theme matching the reference asset set.
func Default() *Theme {
	return &Theme{
		Brand:    "THOR",
		SpeedMax: 80,
		RPMMax:   8000,
		RPMStep:  500,
		Palette: Palette{
			Background: gg.Black,
			White:      gg.White,
			Green:      rgb255(0, 220, 120),
			GreenDeep:  rgb255(0, 180, 100),
			Yellow:     rgb255(255, 200, 0),
			Orange:     rgb255(255, 140, 0),
			Red:        rgb255(220, 50, 50),
			Gray:       rgb255(120, 120, 120),
			Blue:       rgb255(0, 150, 255),

			PanelBackground: rgb255(235, 237, 240),
			Dark:            rgb255(40, 60, 80),
			DarkSlate:       rgb255(60, 90, 120),
			PanelGray:       rgb255(150, 150, 150),

			Navy:         rgb255(3, 6, 21),
			SignalGreen:  gg.Hex("#00FF66"),
			SignalEdge:   gg.Hex("#00FF99"),
			SignalDim:    gg.Hex("#1F6F4A"),
			SignalInk:    gg.Hex("#0A2A1E"),
			HazardYellow: gg.Yellow,
		},
	}
}

// RPMFrames returns the number of frames in the RPM flipbook.
func (t *Theme) RPMFrames() int {
	return t.RPMMax/t.RPMStep + 1
}

// SpeedColor returns the progress-arc color for a speed in km/h:
// green below 40, yellow below 60, red at 60 and above.
func (t *Theme) SpeedColor(v int) gg.RGBA {
	switch {
	case v < 40:
		return t.Palette.Green
	case v < 60:
		return t.Palette.Yellow
	default:
		return t.Palette.Red
	}
}

// RPMColor returns the progress-arc color for an RPM value:
// green below 4000, yellow below 6000, red at 6000 and above.
func (t *Theme) RPMColor(rpm int) gg.RGBA {
	switch {
	case rpm < 4000:
		return t.Palette.Green
	case rpm < 6000:
		return t.Palette.Yellow
	default:
		return t.Palette.Red
	}
}

// TempColor returns the bar fill color for a temperature reading.
// The thresholds are on the ratio val/max: green under one half,
// yellow under three quarters, red otherwise.
func (t *Theme) TempColor(val, max int) gg.RGBA {
	ratio := float64(val) / float64(max)
	switch {
	case ratio < 0.5:
		return t.Palette.Green
	case ratio < 0.75:
		return t.Palette.Yellow
	default:
		return t.Palette.Red
	}
}

// SOCColor returns the battery fill color for a state of charge in
// percent: green above 60, yellow above 20, red otherwise.
func (t *Theme) SOCColor(pct int) gg.RGBA {
	switch {
	case pct > 60:
		return t.Palette.Green
	case pct > 20:
		return t.Palette.Yellow
	default:
		return t.Palette.Red
	}
}

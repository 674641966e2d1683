package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// dashboardBackground renders the single 1024x600 light-theme layout
// image the display composites the live gauges onto.
type dashboardBackground struct{}

func (dashboardBackground) Name() string { return "background" }

func (dashboardBackground) Generate(ctx context.Context, env *Env) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	dir, err := env.ensureDir("background")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	c := newCanvas(1024, 600, p.PanelBackground)

	// Outlined gauge containers. The middle panel is the main dial, so
	// it gets the heavy blue capsule outline.
	c.strokeRoundedRect(40, 100, 300, 380, 20, 3, p.Dark)
	c.strokeRoundedRect(360, 80, 660, 380, 150, 5, p.Blue)
	c.strokeRoundedRect(740, 100, 980, 260, 20, 3, p.Dark)

	// Filled footer panels.
	c.fillRoundedRect(60, 430, 440, 560, 20, p.DarkSlate)
	c.fillRoundedRect(580, 430, 960, 560, 20, p.DarkSlate)

	if err := c.save(filepath.Join(dir, "dashboard_bg.png")); err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}
	env.Log.Info("generated asset family", "family", "background", "frames", 1)
	return Result{Files: 1}, nil
}

// labelStrips renders the seven transparent 260x50 text strips placed
// next to the gauges on the panel layout.
type labelStrips struct{}

func (labelStrips) Name() string { return "labels" }

func (labelStrips) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("labels")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	labels := []struct {
		text string
		file string
	}{
		{"SPEED (km/h)", "speed.png"},
		{"RPM", "rpm.png"},
		{"TEMP - MOTOR", "temp_motor.png"},
		{"TEMP - CONTROLLER", "temp_controller.png"},
		{"TEMP - BATTERY", "temp_battery.png"},
		{"BATTERY (V / I)", "battery.png"},
		{"MOTOR (V / I)", "motor.png"},
	}

	var res Result
	for _, l := range labels {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		c := newCanvas(260, 50, gg.Transparent)
		c.text(env.Fonts.Small, l.text, 10, 5, p.Dark)
		if err := c.save(filepath.Join(dir, l.file)); err != nil {
			return res, fmt.Errorf("label %s: %w", l.file, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", "labels", "frames", res.Files)
	return res, nil
}

// staticBars renders the empty/full bar pair for the panel layout:
// a vertical temperature bar and a horizontal state-of-charge bar.
type staticBars struct{}

func (staticBars) Name() string { return "bars" }

func (staticBars) Generate(ctx context.Context, env *Env) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	dir, err := env.ensureDir("bars")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	var res Result
	for _, filled := range []bool{false, true} {
		c := newCanvas(50, 200, gg.Transparent)
		c.strokeRect(0, 0, 50, 200, 3, p.Dark)
		name := "temp_bar_empty.png"
		if filled {
			c.fillRect(3, 90, 47, 197, p.Yellow)
			name = "temp_bar_fill.png"
		}
		if err := c.save(filepath.Join(dir, name)); err != nil {
			return res, fmt.Errorf("bar %s: %w", name, err)
		}
		res.Files++
	}

	for _, filled := range []bool{false, true} {
		c := newCanvas(200, 40, gg.Transparent)
		c.strokeRect(0, 0, 200, 40, 3, p.Dark)
		name := "soc_bar_empty.png"
		if filled {
			c.fillRect(3, 3, 160, 37, p.Green)
			name = "soc_bar_fill.png"
		}
		if err := c.save(filepath.Join(dir, name)); err != nil {
			return res, fmt.Errorf("bar %s: %w", name, err)
		}
		res.Files++
	}

	env.Log.Info("generated asset family", "family", "bars", "frames", res.Files)
	return res, nil
}

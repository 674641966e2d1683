package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// badgeAlpha is the translucent body fill of the warning badges; the
// edge and symbol stay at the full badge color.
const badgeAlpha = 120.0 / 255

// warningBadges renders the warnings family: five 100x100 named badges
// (triangles for battery_low and overheat, circles for the rest) plus
// the plain on/off warning triangle from the panel set.
type warningBadges struct{}

func (warningBadges) Name() string { return "warnings" }

var warningTriangle = []pt{{50, 10}, {90, 90}, {10, 90}}

func (warningBadges) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("warnings")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	badges := []struct {
		name     string
		col      gg.RGBA
		symbol   string
		triangle bool
	}{
		{"battery_low", p.Red, "!", true},
		{"overheat", p.Red, "H", true},
		{"motor_fault", p.Orange, "M", false},
		{"brake", p.Red, "B", false},
		{"abs", p.Yellow, "ABS", false},
	}

	var res Result
	for _, b := range badges {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		c := newCanvas(100, 100, p.Background)
		if b.triangle {
			c.fillPolygon(warningTriangle, withAlpha(b.col, badgeAlpha))
			c.strokePolygon(warningTriangle, 4, b.col)
		} else {
			c.fillEllipse(10, 10, 90, 90, withAlpha(b.col, badgeAlpha))
			c.strokeEllipse(10, 10, 90, 90, 4, b.col)
		}
		c.textCenteredX(env.Fonts.Big, b.symbol, 50, 35, b.col)

		if err := c.save(filepath.Join(dir, b.name+".png")); err != nil {
			return res, fmt.Errorf("warning %s: %w", b.name, err)
		}
		res.Files++
	}

	// Plain on/off triangle for the panel layout, on a transparent
	// background: red lit, gray unlit.
	for _, state := range []struct {
		name string
		col  gg.RGBA
	}{
		{"warning_on", p.Red},
		{"warning_off", p.PanelGray},
	} {
		c := newCanvas(100, 90, gg.Transparent)
		c.fillPolygon([]pt{{50, 5}, {5, 85}, {95, 85}}, state.col)
		if err := c.save(filepath.Join(dir, state.name+".png")); err != nil {
			return res, fmt.Errorf("warning %s: %w", state.name, err)
		}
		res.Files++
	}

	env.Log.Info("generated asset family", "family", "warnings", "frames", res.Files)
	return res, nil
}

package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// hazardIcons renders the hazard family: the yellow warning triangle in
// lit (glow) and unlit states, 400x400 on the navy background.
type hazardIcons struct{}

func (hazardIcons) Name() string { return "hazard" }

const hazardSize = 400

var (
	hazardUnit = []pt{{0.5, 0.95}, {0.05, 0.1}, {0.95, 0.1}}
	hazardGlow = []glowPass{{12, 0.15}, {8, 0.25}, {5, 0.4}}
)

func (hazardIcons) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("hazard")
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, lit := range []bool{true, false} {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		state := "off"
		if lit {
			state = "on"
		}
		name := fmt.Sprintf("hazard_%s.png", state)
		if err := drawHazard(env, filepath.Join(dir, name), lit); err != nil {
			return res, fmt.Errorf("hazard %s: %w", name, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", "hazard", "frames", res.Files)
	return res, nil
}

func drawHazard(env *Env, path string, lit bool) error {
	p := env.Theme.Palette
	c := newCanvas(hazardSize, hazardSize, p.Navy)

	tri := toScreen(hazardUnit, hazardSize, hazardSize)

	if lit {
		for _, g := range hazardGlow {
			c.strokePolygon(tri, g.width, withAlpha(p.HazardYellow, g.alpha))
		}
	}

	c.fillPolygon(tri, p.HazardYellow)
	c.strokePolygon(tri, 3, p.HazardYellow)

	// Exclamation mark sits in the lower body of the triangle.
	c.textCentered(env.Fonts.Big, "!", hazardSize/2, 0.62*hazardSize, gg.Black)

	return c.save(path)
}

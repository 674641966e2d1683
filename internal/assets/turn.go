package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Glow-style turn arrows, 400x200 on the navy night background, with
// the brand wordmark across the body. Geometry is kept in unit
// coordinates (y up, as authored) and scaled to the canvas.
const (
	turnWidth  = 400
	turnHeight = 200
)

var (
	leftTurnUnit = []pt{
		{0.15, 0.5}, {0.45, 0.85}, {0.45, 0.65}, {0.85, 0.65},
		{0.85, 0.35}, {0.45, 0.35}, {0.45, 0.15},
	}
	rightTurnUnit = []pt{
		{0.85, 0.5}, {0.55, 0.85}, {0.55, 0.65}, {0.15, 0.65},
		{0.15, 0.35}, {0.55, 0.35}, {0.55, 0.15},
	}

	// Stroke width / alpha pairs for the layered glow, widest first.
	turnGlow = []glowPass{{18, 0.12}, {12, 0.25}, {6, 0.45}}
)

type glowPass struct {
	width float64
	alpha float64
}

// toScreen maps unit (y-up) coordinates onto a w x h pixel canvas.
func toScreen(unit []pt, w, h float64) []pt {
	out := make([]pt, len(unit))
	for i, p := range unit {
		out[i] = pt{p.x * w, (1 - p.y) * h}
	}
	return out
}

// squash returns the unit polygon compressed to 92% height and shifted
// up 4%, the highlight shape that fakes a 3D shine.
func squash(unit []pt) []pt {
	out := make([]pt, len(unit))
	for i, p := range unit {
		out[i] = pt{p.x, p.y*0.92 + 0.04}
	}
	return out
}

// turnSignals renders the turn family: left/right arrows in lit (glow)
// and unlit states, carrying the brand wordmark.
type turnSignals struct{}

func (turnSignals) Name() string { return "turn" }

func (turnSignals) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("turn")
	if err != nil {
		return Result{}, err
	}

	sides := []struct {
		name string
		unit []pt
	}{
		{"left", leftTurnUnit},
		{"right", rightTurnUnit},
	}

	var res Result
	for _, side := range sides {
		for _, lit := range []bool{true, false} {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			state := "off"
			if lit {
				state = "on"
			}
			name := fmt.Sprintf("%s_%s.png", side.name, state)
			if err := drawTurnSignal(env, filepath.Join(dir, name), side.unit, lit); err != nil {
				return res, fmt.Errorf("turn %s: %w", name, err)
			}
			res.Files++
		}
	}
	env.Log.Info("generated asset family", "family", "turn", "frames", res.Files)
	return res, nil
}

func drawTurnSignal(env *Env, path string, unit []pt, lit bool) error {
	p := env.Theme.Palette
	c := newCanvas(turnWidth, turnHeight, p.Navy)

	arrow := toScreen(unit, turnWidth, turnHeight)

	if lit {
		for _, g := range turnGlow {
			c.strokePolygon(arrow, g.width, withAlpha(p.SignalGreen, g.alpha))
		}
	}

	body := p.SignalDim
	ink := p.SignalInk
	if lit {
		body = p.SignalGreen
		ink = gg.Black
	}
	c.fillPolygon(arrow, body)
	c.strokePolygon(arrow, 2, p.SignalEdge)

	// Faint white shine over the upper body.
	c.fillPolygon(toScreen(squash(unit), turnWidth, turnHeight), withAlpha(gg.White, 0.08))

	c.textCentered(env.Fonts.Med, env.Theme.Brand, turnWidth/2, turnHeight/2, ink)

	return c.save(path)
}

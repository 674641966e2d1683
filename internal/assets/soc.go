package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// socBar renders the state-of-charge flipbook: 101 frames, 240x80, a
// horizontal battery with terminal nub, named soc/000.png to 100.png.
type socBar struct{}

func (socBar) Name() string { return "soc" }

func (socBar) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("soc")
	if err != nil {
		return Result{}, err
	}

	var res Result
	for s := 0; s <= 100; s++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := drawSOCFrame(env, dir, s); err != nil {
			return res, fmt.Errorf("soc frame %d: %w", s, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", "soc", "frames", res.Files)
	return res, nil
}

func drawSOCFrame(env *Env, dir string, s int) error {
	p := env.Theme.Palette
	c := newCanvas(240, 80, p.Background)

	c.strokeRect(10, 20, 220, 60, 4, p.White)
	c.fillRect(220, 30, 230, 50, p.White)

	fillW := s * 200 / 100
	if fillW > 0 {
		c.fillRect(15, 25, float64(15+fillW), 55, env.Theme.SOCColor(s))
	}

	// The percentage sits over the fill once it reaches the label, so
	// flip to black text for contrast.
	textCol := p.White
	if s > 30 {
		textCol = gg.Black
	}
	c.textCenteredX(env.Fonts.Med, fmt.Sprintf("%d%%", s), 120, 28, textCol)

	return c.save(filepath.Join(dir, fmt.Sprintf("%03d.png", s)))
}

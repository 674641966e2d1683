package assets

import (
	"context"
	"fmt"
	"path/filepath"
)

// viBar renders a horizontal voltage or current flipbook: 240x70 frames
// named NNN.png from 0 to max, blue fill, value and unit in the corner.
// Two instances exist: battery_vi (0-100 V) and motor_vi (0-150 A).
type viBar struct {
	name string
	max  int
	unit string
}

func (b viBar) Name() string { return b.name }

func (b viBar) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir(b.name)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for v := 0; v <= b.max; v++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := b.drawFrame(env, dir, v); err != nil {
			return res, fmt.Errorf("%s frame %d: %w", b.name, v, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", b.name, "frames", res.Files)
	return res, nil
}

func (b viBar) drawFrame(env *Env, dir string, v int) error {
	p := env.Theme.Palette
	c := newCanvas(240, 70, p.Background)

	c.strokeRect(10, 30, 230, 60, 3, p.White)

	fillW := v * 210 / b.max
	if fillW > 0 {
		c.fillRect(13, 33, float64(13+fillW), 57, p.Blue)
	}

	c.text(env.Fonts.Small, fmt.Sprintf("%d%s", v, b.unit), 15, 5, p.White)

	return c.save(filepath.Join(dir, fmt.Sprintf("%03d.png", v)))
}

package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
)

// Vertical bar geometry for the three temperature flipbooks. The bar
// fills upward from base toward the frame top; full scale is 175 px.
const (
	tempBarWidth  = 80
	tempBarHeight = 220
	tempBarBase   = 201
	tempBarScale  = 175
	tempBarMax    = 100
)

// tempBar renders one temperature flipbook (motor, controller, or
// battery): 101 frames, 80x220, named NNN.png for 0-100 degrees C.
type tempBar struct {
	name string
}

func (b tempBar) Name() string { return b.name }

func (b tempBar) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir(b.name)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for t := 0; t <= tempBarMax; t++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := drawTempFrame(env, dir, t); err != nil {
			return res, fmt.Errorf("%s frame %d: %w", b.name, t, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", b.name, "frames", res.Files)
	return res, nil
}

func drawTempFrame(env *Env, dir string, t int) error {
	p := env.Theme.Palette
	c := newCanvas(tempBarWidth, tempBarHeight, p.Background)

	c.strokeRect(15, 15, 65, 205, 3, p.White)

	fillH := t * tempBarScale / tempBarMax
	if fillH > 0 {
		c.fillRect(19, float64(tempBarBase-fillH), 61, tempBarBase, env.Theme.TempColor(t, tempBarMax))
	}

	// Quarter-scale tick pairs on both frame edges.
	for _, q := range []int{25, 50, 75} {
		y := float64(tempBarBase - q*tempBarScale/100)
		c.line(15, y, 22, y, 2, p.Gray)
		c.line(58, y, 65, y, 2, p.Gray)
	}

	c.textCenteredX(env.Fonts.Small, strconv.Itoa(t), 40, 208, p.White)

	return c.save(filepath.Join(dir, fmt.Sprintf("%03d.png", t)))
}

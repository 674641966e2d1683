package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Arrow polygons for the 140x100 turn indicator flipbook frames.
var (
	leftArrow = []pt{
		{100, 15}, {30, 50}, {100, 85}, {100, 65}, {130, 65}, {130, 35}, {100, 35},
	}
	rightArrow = []pt{
		{40, 15}, {110, 50}, {40, 85}, {40, 65}, {10, 65}, {10, 35}, {40, 35},
	}
)

// turnIndicators renders the indicator family: three brightness-ramp
// frames per side (left_0.png to left_2.png, likewise right) plus the
// gray off states.
type turnIndicators struct{}

func (turnIndicators) Name() string { return "indicators" }

func (turnIndicators) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("indicators")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	sides := []struct {
		name string
		pts  []pt
	}{
		{"left", leftArrow},
		{"right", rightArrow},
	}

	var res Result
	for _, side := range sides {
		for frame := 0; frame < 3; frame++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			// Ramp from 30% to full brightness across the frames.
			b := float64(int(255*(0.3+0.7*float64(frame)/2))) / 255
			col := gg.RGB(0, b, float64(int(b*255*0.6))/255)

			if err := drawIndicator(env, dir, fmt.Sprintf("%s_%d.png", side.name, frame), side.pts, col); err != nil {
				return res, err
			}
			res.Files++
		}

		if err := drawIndicator(env, dir, side.name+"_off.png", side.pts, p.Gray); err != nil {
			return res, err
		}
		res.Files++
	}

	env.Log.Info("generated asset family", "family", "indicators", "frames", res.Files)
	return res, nil
}

func drawIndicator(env *Env, dir, name string, pts []pt, fill gg.RGBA) error {
	p := env.Theme.Palette
	c := newCanvas(140, 100, p.Background)
	c.fillPolygon(pts, fill)
	c.strokePolygon(pts, 2, p.White)
	if err := c.save(filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("indicator %s: %w", name, err)
	}
	return nil
}

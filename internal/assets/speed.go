package assets

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/gogpu/gg"
)

// Circular gauge geometry, shared by the speed and RPM flipbooks.
// The canvas is 200x200 with the dial centered at (100,100); the progress
// arc starts at 135 degrees and sweeps up to 270 degrees clockwise.
const (
	gaugeSize      = 200
	gaugeCenter    = 100
	gaugeRadius    = 80
	gaugeStartDeg  = 135
	gaugeSweepDeg  = 270
	gaugeArcWidth  = 12
	gaugeRingWidth = 3
	tickInner      = 75
	tickOuter      = 85
)

// speedGauge renders the speedometer flipbook: one 200x200 frame per
// integer km/h from 0 to Theme.SpeedMax, named speed/000.png onward.
type speedGauge struct{}

func (speedGauge) Name() string { return "speed" }

func (speedGauge) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("speed")
	if err != nil {
		return Result{}, err
	}

	var res Result
	max := env.Theme.SpeedMax
	for v := 0; v <= max; v++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := drawSpeedFrame(env, dir, v, max); err != nil {
			return res, fmt.Errorf("speed frame %d: %w", v, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", "speed", "frames", res.Files)
	return res, nil
}

func drawSpeedFrame(env *Env, dir string, v, max int) error {
	p := env.Theme.Palette
	c := newCanvas(gaugeSize, gaugeSize, p.Background)

	c.strokeEllipse(10, 10, 190, 190, gaugeRingWidth, p.Gray)

	// Sweep is truncated to whole degrees so frames are byte-stable
	// against the reference set.
	sweep := gaugeSweepDeg * v / max
	if sweep > 0 {
		c.arc(gaugeCenter, gaugeCenter, gaugeRadius, gaugeStartDeg, float64(sweep), gaugeArcWidth, env.Theme.SpeedColor(v))
	}

	for _, m := range []int{0, 20, 40, 60, max} {
		drawGaugeTick(c, gaugeSweepDeg*float64(m)/float64(max), p.White)
	}

	c.textCenteredX(env.Fonts.Big, strconv.Itoa(v), gaugeCenter, 65, p.White)
	c.textCenteredX(env.Fonts.Small, "km/h", gaugeCenter, 125, p.Gray)

	return c.save(filepath.Join(dir, fmt.Sprintf("%03d.png", v)))
}

// drawGaugeTick draws one radial marker at the given sweep offset from
// the arc start.
func drawGaugeTick(c *canvas, sweepDeg float64, col gg.RGBA) {
	a := radians(gaugeStartDeg + sweepDeg)
	cos, sin := math.Cos(a), math.Sin(a)
	c.line(
		gaugeCenter+tickInner*cos, gaugeCenter+tickInner*sin,
		gaugeCenter+tickOuter*cos, gaugeCenter+tickOuter*sin,
		2, col,
	)
}

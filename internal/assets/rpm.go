package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
)

// rpmGauge renders the RPM flipbook: one 200x200 frame per RPMStep from
// 0 to RPMMax (17 frames for the stock 0-8000 range), named rpm/00.png
// onward. The dial geometry matches the speedometer.
type rpmGauge struct{}

func (rpmGauge) Name() string { return "rpm" }

func (rpmGauge) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("rpm")
	if err != nil {
		return Result{}, err
	}

	var res Result
	frames := env.Theme.RPMFrames()
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := drawRPMFrame(env, dir, i, frames-1); err != nil {
			return res, fmt.Errorf("rpm frame %d: %w", i, err)
		}
		res.Files++
	}
	env.Log.Info("generated asset family", "family", "rpm", "frames", res.Files)
	return res, nil
}

func drawRPMFrame(env *Env, dir string, i, last int) error {
	p := env.Theme.Palette
	c := newCanvas(gaugeSize, gaugeSize, p.Background)

	c.strokeEllipse(10, 10, 190, 190, gaugeRingWidth, p.Gray)

	rpm := i * env.Theme.RPMStep
	sweep := gaugeSweepDeg * i / last
	if sweep > 0 {
		c.arc(gaugeCenter, gaugeCenter, gaugeRadius, gaugeStartDeg, float64(sweep), gaugeArcWidth, env.Theme.RPMColor(rpm))
	}

	// Nine major ticks, every second frame position.
	for m := 0; m <= 8; m++ {
		drawGaugeTick(c, gaugeSweepDeg*float64(m)/float64(last), p.White)
	}

	c.textCenteredX(env.Fonts.Big, strconv.Itoa(rpm), gaugeCenter, 65, p.White)
	c.text(env.Fonts.Small, "RPM", 75, 125, p.Gray)

	return c.save(filepath.Join(dir, fmt.Sprintf("%02d.png", i)))
}

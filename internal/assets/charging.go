package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// boltPoints is the lightning bolt for the animated 100x100 charge icons.
var boltPoints = []pt{
	{50, 10}, {30, 50}, {45, 50}, {35, 90}, {70, 45}, {55, 45},
}

// panelBoltPoints is the smaller bolt used by the static 80x80 panel icon.
var panelBoltPoints = []pt{
	{40, 5}, {20, 45}, {35, 45}, {25, 75}, {60, 30}, {45, 30},
}

// chargingIcons renders the charging family: four animated bolt frames
// with a pulsing ring (charging_0.png to charging_3.png), the red
// discharging bolt, and the static transparent panel bolt.
type chargingIcons struct{}

func (chargingIcons) Name() string { return "charging" }

func (chargingIcons) Generate(ctx context.Context, env *Env) (Result, error) {
	dir, err := env.ensureDir("charging")
	if err != nil {
		return Result{}, err
	}
	p := env.Theme.Palette

	var res Result
	for frame := 0; frame < 4; frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		c := newCanvas(100, 100, p.Background)

		// Alternate bolt shades and shrink the ring for a pulse.
		boltCol := p.Green
		if frame%2 == 1 {
			boltCol = p.GreenDeep
		}
		c.fillPolygon(boltPoints, boltCol)
		inset := float64(2 * frame)
		c.strokeEllipse(10+inset, 10+inset, 90-inset, 90-inset, 2, p.Green)

		if err := c.save(filepath.Join(dir, fmt.Sprintf("charging_%d.png", frame))); err != nil {
			return res, fmt.Errorf("charging frame %d: %w", frame, err)
		}
		res.Files++
	}

	c := newCanvas(100, 100, p.Background)
	c.fillPolygon(boltPoints, p.Red)
	if err := c.save(filepath.Join(dir, "discharging.png")); err != nil {
		return res, fmt.Errorf("discharging: %w", err)
	}
	res.Files++

	c = newCanvas(80, 80, gg.Transparent)
	c.fillPolygon(panelBoltPoints, p.Green)
	if err := c.save(filepath.Join(dir, "charging.png")); err != nil {
		return res, fmt.Errorf("charging static: %w", err)
	}
	res.Files++

	env.Log.Info("generated asset family", "family", "charging", "frames", res.Files)
	return res, nil
}

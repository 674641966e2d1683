package assets

import (
	"path/filepath"
	"testing"
)

func TestRPMGaugeFrames(t *testing.T) {
	env, res := generate(t, rpmGauge{})
	dir := filepath.Join(env.OutDir, "rpm")

	if res.Files != 17 {
		t.Errorf("Files = %d, want 17", res.Files)
	}
	if n := countFiles(t, dir); n != 17 {
		t.Errorf("directory has %d files, want 17", n)
	}

	checkDims(t, filepath.Join(dir, "00.png"), gaugeSize, gaugeSize)
	img := checkDims(t, filepath.Join(dir, "16.png"), gaugeSize, gaugeSize)

	// 8000 RPM is redline; the full sweep passes three o'clock.
	if r, g, _, _ := probe(img, 180, 100); r < 150 || g > 120 {
		t.Errorf("frame 16 arc at (180,100) not red: r=%d g=%d", r, g)
	}
}

func TestRPMGaugeZeroFrameHasNoArc(t *testing.T) {
	env, _ := generate(t, rpmGauge{})
	img := decodePNG(t, filepath.Join(env.OutDir, "rpm", "00.png"))
	if r, g, b, _ := probe(img, 180, 100); r > 30 || g > 30 || b > 30 {
		t.Errorf("frame 00 has arc pixels at (180,100): %d,%d,%d", r, g, b)
	}
}

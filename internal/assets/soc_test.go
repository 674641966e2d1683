package assets

import (
	"path/filepath"
	"testing"
)

func TestSOCBarFrames(t *testing.T) {
	env, res := generate(t, socBar{})
	dir := filepath.Join(env.OutDir, "soc")

	if res.Files != 101 {
		t.Errorf("Files = %d, want 101", res.Files)
	}
	if n := countFiles(t, dir); n != 101 {
		t.Errorf("directory has %d files, want 101", n)
	}

	// Empty battery: interior stays background left of the label.
	empty := checkDims(t, filepath.Join(dir, "000.png"), 240, 80)
	if r, g, b, _ := probe(empty, 60, 40); r > 30 || g > 30 || b > 30 {
		t.Errorf("frame 000 interior not empty: %d,%d,%d", r, g, b)
	}

	// Full battery: green fill.
	full := checkDims(t, filepath.Join(dir, "100.png"), 240, 80)
	if r, g, _, _ := probe(full, 60, 40); g < 150 || r > 80 {
		t.Errorf("frame 100 fill not green: r=%d g=%d", r, g)
	}

	// 10 percent is in the red band; fill width 20 ends at x=35.
	low := decodePNG(t, filepath.Join(dir, "010.png"))
	if r, g, _, _ := probe(low, 25, 40); r < 150 || g > 120 {
		t.Errorf("frame 010 fill not red: r=%d g=%d", r, g)
	}
	if r, g, b, _ := probe(low, 60, 40); r > 30 || g > 30 || b > 30 {
		t.Errorf("frame 010 fill extends past its width: %d,%d,%d", r, g, b)
	}
}

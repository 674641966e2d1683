package assets

import (
	"path/filepath"
	"testing"
)

func TestTempBarFrames(t *testing.T) {
	env, res := generate(t, tempBar{name: "temp_motor"})
	dir := filepath.Join(env.OutDir, "temp_motor")

	if res.Files != 101 {
		t.Errorf("Files = %d, want 101", res.Files)
	}
	if n := countFiles(t, dir); n != 101 {
		t.Errorf("directory has %d files, want 101", n)
	}

	// Empty bar: the fill zone is background.
	empty := checkDims(t, filepath.Join(dir, "000.png"), tempBarWidth, tempBarHeight)
	if r, g, b, _ := probe(empty, 40, 150); r > 30 || g > 30 || b > 30 {
		t.Errorf("frame 000 fill zone not empty: %d,%d,%d", r, g, b)
	}

	// Full bar is in the red band.
	full := checkDims(t, filepath.Join(dir, "100.png"), tempBarWidth, tempBarHeight)
	if r, g, _, _ := probe(full, 40, 150); r < 150 || g > 120 {
		t.Errorf("frame 100 fill not red: r=%d g=%d", r, g)
	}

	// 40 degrees is under the half-scale threshold: green.
	low := decodePNG(t, filepath.Join(dir, "040.png"))
	if r, g, _, _ := probe(low, 40, 190); g < 150 || r > 80 {
		t.Errorf("frame 040 fill not green: r=%d g=%d", r, g)
	}
}

func TestTempBarFamilies(t *testing.T) {
	for _, name := range []string{"temp_motor", "temp_controller", "temp_battery"} {
		found := false
		for _, g := range All() {
			if g.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("family %q not registered", name)
		}
	}
}

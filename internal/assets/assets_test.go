package assets

import (
	"context"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ATHARVA316-DEV/thor-offroading/internal/fontpack"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/theme"
)

// testEnv returns an Env rendering into a temp dir with the stock theme
// and the embedded fallback font.
func testEnv(t *testing.T) *Env {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	fonts, err := fontpack.Load(log, "")
	if err != nil {
		t.Fatalf("fontpack.Load: %v", err)
	}
	t.Cleanup(func() { fonts.Close() })
	return &Env{
		OutDir: t.TempDir(),
		Theme:  theme.Default(),
		Fonts:  fonts,
		Log:    log,
	}
}

func generate(t *testing.T, g Generator) (*Env, Result) {
	t.Helper()
	env := testEnv(t)
	res, err := g.Generate(context.Background(), env)
	if err != nil {
		t.Fatalf("%s.Generate: %v", g.Name(), err)
	}
	return env, res
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

// checkDims decodes the frame and verifies the exact canvas size.
func checkDims(t *testing.T, path string, w, h int) image.Image {
	t.Helper()
	img := decodePNG(t, path)
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		t.Errorf("%s: size = %dx%d, want %dx%d", path, b.Dx(), b.Dy(), w, h)
	}
	return img
}

// probe returns the 8-bit RGBA of one pixel.
func probe(img image.Image, x, y int) (r, g, b, a uint8) {
	r16, g16, b16, a16 := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	return len(entries)
}

func TestAllFamilyNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, g := range All() {
		if seen[g.Name()] {
			t.Errorf("duplicate family name %q", g.Name())
		}
		seen[g.Name()] = true
	}
}

func TestSelectUnknownName(t *testing.T) {
	if _, err := Select([]string{"speed", "warp_drive"}); err == nil {
		t.Fatal("Select accepted unknown family name")
	}
}

func TestSelectPreservesPassOrder(t *testing.T) {
	gens, err := Select([]string{"soc", "speed"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(gens) != 2 {
		t.Fatalf("Select returned %d generators, want 2", len(gens))
	}
	// speed precedes soc in pass order regardless of request order.
	if gens[0].Name() != "speed" || gens[1].Name() != "soc" {
		t.Errorf("order = %s, %s; want speed, soc", gens[0].Name(), gens[1].Name())
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatalf("Names returned %d entries, want %d", len(names), len(All()))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names not sorted: %v", names)
	}
}

func TestGenerateCancelled(t *testing.T) {
	env := testEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (speedGauge{}).Generate(ctx, env); err == nil {
		t.Fatal("Generate ignored cancelled context")
	}
	if n := countFiles(t, filepath.Join(env.OutDir, "speed")); n != 0 {
		t.Errorf("cancelled pass wrote %d files", n)
	}
}

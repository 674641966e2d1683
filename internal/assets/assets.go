// Package assets renders the DGUS dashboard asset set: one PNG per
// discrete gauge value, written to a fixed directory tree for
// flipbook-style animation on the display.
package assets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ATHARVA316-DEV/thor-offroading/internal/fontpack"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/theme"
)

// Env carries everything a generator needs for one pass.
type Env struct {
	// OutDir is the root of the asset tree (dgus_assets by default).
	OutDir string
	Theme  *theme.Theme
	Fonts  *fontpack.Pack
	Log    *slog.Logger
}

// ensureDir creates the named family directory under OutDir and returns
// its path.
func (e *Env) ensureDir(name string) (string, error) {
	dir := filepath.Join(e.OutDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	return dir, nil
}

// Result reports what one generator produced.
type Result struct {
	Files int
}

// Generator renders one asset family. Generation is synchronous: each
// frame is rendered, encoded, and closed before the next begins.
type Generator interface {
	// Name is the family name, which is also its directory under the
	// output root (except for families sharing a directory, like the
	// charging statics).
	Name() string

	Generate(ctx context.Context, env *Env) (Result, error)
}

// All returns every generator in pass order.
func All() []Generator {
	return []Generator{
		speedGauge{},
		rpmGauge{},
		tempBar{name: "temp_motor"},
		tempBar{name: "temp_controller"},
		tempBar{name: "temp_battery"},
		socBar{},
		viBar{name: "battery_vi", max: 100, unit: "V"},
		viBar{name: "motor_vi", max: 150, unit: "A"},
		chargingIcons{},
		turnIndicators{},
		warningBadges{},
		dashboardBackground{},
		labelStrips{},
		staticBars{},
		turnSignals{},
		hazardIcons{},
	}
}

// Select resolves a list of family names to generators, preserving pass
// order. An unknown name is an error listing the valid names.
func Select(names []string) ([]Generator, error) {
	byName := make(map[string]Generator)
	for _, g := range All() {
		byName[g.Name()] = g
	}

	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown asset family %q (valid: %s)", name, strings.Join(Names(), ", "))
		}
		seen[name] = true
	}

	var out []Generator
	for _, g := range All() {
		if seen[g.Name()] {
			out = append(out, g)
		}
	}
	return out, nil
}

// Names returns the sorted family names, for usage text and errors.
func Names() []string {
	var names []string
	for _, g := range All() {
		names = append(names, g.Name())
	}
	sort.Strings(names)
	return names
}

// Package app orchestrates a thorgen run: logger setup, theme and font
// loading, the sequential generator pass, and the closing summary.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"

	"github.com/ATHARVA316-DEV/thor-offroading/internal/assets"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/fontpack"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/theme"
)

// App runs one generation pass.
type App struct {
	out io.Writer
	log *slog.Logger
	cfg *Config
}

// New builds an App. Log output goes to stderr; the summary goes to out.
func New(out io.Writer, cfg *Config) *App {
	return &App{
		out: out,
		log: newLogger(os.Stderr, cfg),
		cfg: cfg,
	}
}

// NewWithLogger is like New but with an explicit logger, for tests.
func NewWithLogger(out io.Writer, cfg *Config, log *slog.Logger) *App {
	return &App{out: out, log: log, cfg: cfg}
}

// Run executes the generation pass. Generators run one after another;
// the first failure aborts the pass.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	gg.SetLogger(a.log)

	th := theme.Default()
	if a.cfg.ThemePath != "" {
		var err error
		th, err = theme.Load(a.cfg.ThemePath)
		if err != nil {
			return err
		}
		a.log.Info("loaded theme", "path", a.cfg.ThemePath, "brand", th.Brand)
	}

	fonts, err := fontpack.Load(a.log, a.cfg.FontPath)
	if err != nil {
		return err
	}
	defer fonts.Close()
	a.log.Info("loaded fonts", "family", fonts.Name)

	gens := assets.All()
	if len(a.cfg.Only) > 0 {
		gens, err = assets.Select(a.cfg.Only)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(a.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	env := &assets.Env{
		OutDir: a.cfg.OutDir,
		Theme:  th,
		Fonts:  fonts,
		Log:    a.log,
	}

	total := 0
	for _, g := range gens {
		res, err := g.Generate(ctx, env)
		if err != nil {
			return fmt.Errorf("generating %s: %w", g.Name(), err)
		}
		total += res.Files
	}

	elapsed := time.Since(start).Round(time.Millisecond)
	a.log.Info("asset pass complete", "families", len(gens), "files", total, "elapsed", elapsed)

	fmt.Fprintf(a.out, "Generated %d files across %d asset families in %s\n", total, len(gens), elapsed)
	fmt.Fprintf(a.out, "Output directory: %s\n", a.cfg.OutDir)
	return nil
}

// Command thorgen renders the full THOR dashboard asset set for DGUS
// smart displays: speedometer and RPM gauge flipbooks, temperature and
// state-of-charge bars, charging and turn indicator animations, and
// warning icons, written as PNG files under one output directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ATHARVA316-DEV/thor-offroading/internal/app"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/cli"
)

func main() {
	// Minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the main logic behind an error return so exit codes stay in
// one place.
func run(out io.Writer, args []string) error {
	cfg, done, err := cli.Parse(args, out)
	if err != nil || done {
		return err
	}
	return app.New(out, cfg).Run(context.Background())
}

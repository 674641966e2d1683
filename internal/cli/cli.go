// Package cli parses command-line arguments for thorgen into an
// app.Config, with usage errors mapped to process exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ATHARVA316-DEV/thor-offroading/internal/app"
	"github.com/ATHARVA316-DEV/thor-offroading/internal/assets"
)

// ExitError carries a specific process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly
// (help requested), or an ExitError for usage mistakes.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("thorgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `thorgen - renders the THOR dashboard asset set for DGUS displays.

Usage:
  thorgen [options]

Asset families:
  %s

Options:
`, strings.Join(assets.Names(), ", "))
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("out", "dgus_assets", "Output directory for the asset tree.")
	themeFlag := flagSet.String("theme", "", "Optional HCL theme file overriding palette and ranges.")
	fontFlag := flagSet.String("font", "DejaVuSans-Bold.ttf", "TrueType font file; embedded Go Bold is used when missing.")
	onlyFlag := flagSet.String("only", "", "Comma-separated asset families to generate. Empty means all.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	var only []string
	if *onlyFlag != "" {
		only = strings.Split(*onlyFlag, ",")
		for i := range only {
			only[i] = strings.TrimSpace(only[i])
		}
		if _, err := assets.Select(only); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	cfg, err := app.NewConfig(app.Config{
		OutDir:    *outFlag,
		ThemePath: *themeFlag,
		FontPath:  *fontFlag,
		Only:      only,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

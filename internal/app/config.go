package app

import "fmt"

// Config is the validated application configuration for one run.
type Config struct {
	// OutDir is the root directory of the generated asset tree.
	OutDir string

	// ThemePath optionally names an HCL theme file. Empty uses the
	// stock theme.
	ThemePath string

	// FontPath names the TrueType font to load; the embedded fallback
	// is used when it is missing.
	FontPath string

	// Only optionally restricts the pass to the named asset families.
	Only []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "dgus_assets"
	}
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}

package cli

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, done, err := Parse(nil, &out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if done {
		t.Fatal("Parse requested exit for empty args")
	}
	if cfg.OutDir != "dgus_assets" {
		t.Errorf("OutDir = %q, want dgus_assets", cfg.OutDir)
	}
	if cfg.LogFormat != "text" || cfg.LogLevel != "info" {
		t.Errorf("log defaults = %s/%s, want text/info", cfg.LogFormat, cfg.LogLevel)
	}
	if len(cfg.Only) != 0 {
		t.Errorf("Only = %v, want empty", cfg.Only)
	}
}

func TestParseOnly(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-only", "speed, rpm"}, &out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Only) != 2 || cfg.Only[0] != "speed" || cfg.Only[1] != "rpm" {
		t.Errorf("Only = %v, want [speed rpm]", cfg.Only)
	}
}

func TestParseUnknownFamily(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-only", "flux_capacitor"}, &out)
	assertExitCode(t, err, 2)
}

func TestParseBadLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-level", "loud"}, &out)
	assertExitCode(t, err, 2)
}

func TestParseUnexpectedArgument(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"extra"}, &out)
	assertExitCode(t, err, 2)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, done, err := Parse([]string{"-h"}, &out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !done || cfg != nil {
		t.Errorf("help: done=%v cfg=%v, want done with nil config", done, cfg)
	}
	if out.Len() == 0 {
		t.Error("help produced no usage text")
	}
}

func assertExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if exitErr.Code != code {
		t.Errorf("exit code = %d, want %d", exitErr.Code, code)
	}
}

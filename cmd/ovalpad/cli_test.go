package main

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/example/ovalpad/internal/config"
	"github.com/example/ovalpad/internal/theme"
)

func testRoot(cfg *config.Config) *root {
	if cfg == nil {
		cfg = config.New()
	}
	r := &root{
		fs:      flag.NewFlagSet("ovalpad", flag.ContinueOnError),
		program: "ovalpad",
		config:  cfg,
	}
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use")
	r.fs.Usage = func() {}
	return r
}

func TestRunUnknownCommand(t *testing.T) {
	r := testRoot(nil)
	err := r.Run([]string{"bogus"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "Usage: ovalpad") {
		t.Fatalf("expected rendered usage, got %q", uerr.Error())
	}
}

func TestConfigRequiresSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd(nil, testRoot(nil))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	runErr := cmd.Run()
	var uerr *UsageError
	if !errors.As(runErr, &uerr) {
		t.Fatalf("expected usage error, got %v", runErr)
	}
}

func TestConfigRejectsUnknownSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd([]string{"bogus"}, testRoot(nil))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	runErr := cmd.Run()
	if runErr == nil {
		t.Fatalf("expected error")
	}
	if want := "unknown config command"; !strings.Contains(runErr.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, runErr)
	}
}

func TestThemePrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("OVALPAD_THEME", "default")
		r := testRoot(nil)
		r.config.Theme = "default"
		if err := r.Run([]string{"-theme", "dark", "version"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.activeTheme.Name != "Dark" {
			t.Fatalf("active theme = %q, want Dark", r.activeTheme.Name)
		}
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("OVALPAD_THEME", "dark")
		r := testRoot(nil)
		r.config.Theme = "default"
		if err := r.Run([]string{"version"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.activeTheme.Name != "Dark" {
			t.Fatalf("active theme = %q, want Dark", r.activeTheme.Name)
		}
	})

	t.Run("config theme section", func(t *testing.T) {
		t.Setenv("OVALPAD_THEME", "")
		cfg := config.New()
		custom := theme.Default()
		custom.Name = "Custom"
		cfg.Themes["custom"] = custom
		cfg.Theme = "custom"
		r := testRoot(cfg)
		if err := r.Run([]string{"version"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.activeTheme != custom {
			t.Fatalf("active theme = %+v, want the configured custom theme", r.activeTheme)
		}
	})
}

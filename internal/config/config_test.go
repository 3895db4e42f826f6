package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, "empty.yaml", "{}\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &config.Config{
		Template: config.TemplateConfig{Default: "classic"},
		Output:   config.OutputConfig{Format: config.FormatTerminal, Width: 96},
		Preview:  config.PreviewConfig{TruncateAt: 120, Scale: 0.5},
		Log:      config.LogConfig{Level: "info"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if mode := cfg.Preview.Mode(true); !mode.Preview || mode.TruncateAt != 120 {
		t.Fatalf("unexpected mode %+v", mode)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "resumegen.yaml", `
template:
  default: modern
output:
  format: HTML
preview:
  truncate_at: 40
log:
  level: debug
`)
	t.Setenv("RESUMEGEN_TEMPLATE", "chronicle")
	t.Setenv("RESUMEGEN_PREVIEW_SCALE", "0.25")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Template.Default != "chronicle" {
		t.Fatalf("env should override file, got %q", cfg.Template.Default)
	}
	if cfg.Output.Format != config.FormatHTML || cfg.Preview.TruncateAt != 40 || cfg.Preview.Scale != 0.25 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Log.SlogLevel())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "unknown format", env: "RESUMEGEN_OUTPUT_FORMAT", val: "pdf"},
		{name: "zero truncation", env: "RESUMEGEN_PREVIEW_TRUNCATE_AT", val: "0"},
		{name: "negative truncation", env: "RESUMEGEN_PREVIEW_TRUNCATE_AT", val: "-4"},
		{name: "zero scale", env: "RESUMEGEN_PREVIEW_SCALE", val: "0"},
		{name: "scale too large", env: "RESUMEGEN_PREVIEW_SCALE", val: "3"},
		{name: "zero width", env: "RESUMEGEN_OUTPUT_WIDTH", val: "0"},
		{name: "narrow width", env: "RESUMEGEN_OUTPUT_WIDTH", val: "10"},
		{name: "unknown level", env: "RESUMEGEN_LOG_LEVEL", val: "loud"},
	}
	path := writeFile(t, "empty.yaml", "{}\n")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.env, tc.val)
			if _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s=%s", tc.env, tc.val)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	const key = "RESUMEGEN_OUTPUT_WIDTH"
	// Register cleanup for a variable the env file is about to set.
	t.Setenv(key, "")
	os.Unsetenv(key)

	envFile := writeFile(t, ".env", key+"=120\n")
	if err := config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env"), envFile); err != nil {
		t.Fatalf("load env files: %v", err)
	}

	cfg, err := config.Load(writeFile(t, "empty.yaml", "{}\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Width != 120 {
		t.Fatalf("expected width from env file, got %d", cfg.Output.Width)
	}
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	envVars := []string{
		"TRADEOFF_PORT", "TRADEOFF_METRICS_PORT", "TRADEOFF_ADMIN_TOKEN",
		"TRADEOFF_EXHIBIT_PATH", "TRADEOFF_REFERENCE_THRESHOLD",
		"TRADEOFF_SAMPLE_FLOOR", "TRADEOFF_RATE_LIMIT_PER_MINUTE", "TRADEOFF_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Exhibit.Path != "" {
		t.Errorf("expected empty exhibit path, got %q", cfg.Exhibit.Path)
	}
	if cfg.Engine.ReferenceThreshold != 0.60 {
		t.Errorf("expected reference threshold 0.60, got %f", cfg.Engine.ReferenceThreshold)
	}
	if cfg.Engine.SampleFloor != 30 {
		t.Errorf("expected sample floor 30, got %d", cfg.Engine.SampleFloor)
	}
	if cfg.API.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.API.RateLimitPerMinute)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRADEOFF_PORT", "9100")
	t.Setenv("TRADEOFF_METRICS_PORT", "9101")
	t.Setenv("TRADEOFF_ADMIN_TOKEN", "secret-token")
	t.Setenv("TRADEOFF_EXHIBIT_PATH", "/etc/tradeoff/exhibit.yaml")
	t.Setenv("TRADEOFF_REFERENCE_THRESHOLD", "0.55")
	t.Setenv("TRADEOFF_SAMPLE_FLOOR", "50")
	t.Setenv("TRADEOFF_RATE_LIMIT_PER_MINUTE", "60")
	t.Setenv("TRADEOFF_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 || cfg.Server.MetricsPort != 9101 {
		t.Errorf("env ports not applied: %+v", cfg.Server)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token, got %q", cfg.Server.AdminToken)
	}
	if cfg.Exhibit.Path != "/etc/tradeoff/exhibit.yaml" {
		t.Errorf("exhibit path not applied: %q", cfg.Exhibit.Path)
	}
	if cfg.Engine.ReferenceThreshold != 0.55 {
		t.Errorf("reference threshold not applied: %f", cfg.Engine.ReferenceThreshold)
	}
	if cfg.Engine.SampleFloor != 50 {
		t.Errorf("sample floor not applied: %d", cfg.Engine.SampleFloor)
	}
	if cfg.API.RateLimitPerMinute != 60 {
		t.Errorf("rate limit not applied: %d", cfg.API.RateLimitPerMinute)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level not applied: %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	yml := `
server:
  port: 8800
engine:
  reference_threshold: 0.65
  sample_floor: 25
logging:
  level: warn
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("file port not applied: %d", cfg.Server.Port)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("metrics port default lost: %d", cfg.Server.MetricsPort)
	}
	if cfg.Engine.ReferenceThreshold != 0.65 || cfg.Engine.SampleFloor != 25 {
		t.Errorf("engine config not applied: %+v", cfg.Engine)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level not applied: %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		lc := LoggingConfig{Level: tt.level}
		if got := lc.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

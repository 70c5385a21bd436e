package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Exhibit ExhibitConfig `yaml:"exhibit"`
	Engine  EngineConfig  `yaml:"engine"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

// ExhibitConfig points at an optional YAML exhibit file. An empty path uses
// the embedded case data.
type ExhibitConfig struct {
	Path string `yaml:"path"`
}

type EngineConfig struct {
	// ReferenceThreshold is the default comparison point for metric deltas.
	ReferenceThreshold float64 `yaml:"reference_threshold"`
	// SampleFloor marks regional cohorts below this size as statistically
	// unreliable.
	SampleFloor int `yaml:"sample_floor"`
}

type APIConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// fall back to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Engine: EngineConfig{
			ReferenceThreshold: 0.60,
			SampleFloor:        30,
		},
		API: APIConfig{
			RateLimitPerMinute: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TRADEOFF_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("TRADEOFF_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("TRADEOFF_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("TRADEOFF_EXHIBIT_PATH"); v != "" {
		cfg.Exhibit.Path = v
	}
	if v := os.Getenv("TRADEOFF_REFERENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.ReferenceThreshold = f
		}
	}
	if v := os.Getenv("TRADEOFF_SAMPLE_FLOOR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.SampleFloor = n
		}
	}
	if v := os.Getenv("TRADEOFF_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("TRADEOFF_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

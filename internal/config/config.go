package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	LLMNone       = "none"
	LLMOpenRouter = "openrouter"
)

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	StorageDriver     string
	DatabaseDSN       string
	LLMProvider       string
	LLMModel          string
	LLMFallbackModels []string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	LLMTimeout        time.Duration
	MonitorCapacity   int
	CORSOrigins       []string
	SessionTTL        time.Duration
}

// fileConfig is the optional TOML file named by TAROT_CONFIG. Environment
// variables override anything set here.
type fileConfig struct {
	HTTPAddr    string   `toml:"http_addr"`
	LogLevel    string   `toml:"log_level"`
	CORSOrigins []string `toml:"cors_origins"`
	SessionTTL  string   `toml:"session_ttl"`

	Storage struct {
		Driver string `toml:"driver"`
		DSN    string `toml:"dsn"`
	} `toml:"storage"`

	LLM struct {
		Provider       string   `toml:"provider"`
		Model          string   `toml:"model"`
		FallbackModels []string `toml:"fallback_models"`
		APIKey         string   `toml:"api_key"`
		BaseURL        string   `toml:"base_url"`
		Timeout        string   `toml:"timeout"`
	} `toml:"llm"`

	Monitor struct {
		Capacity int `toml:"capacity"`
	} `toml:"monitor"`
}

func defaults() fileConfig {
	var f fileConfig
	f.HTTPAddr = ":8080"
	f.LogLevel = "info"
	f.SessionTTL = "1h"
	f.Storage.Driver = StorageMemory
	f.LLM.Provider = LLMNone
	f.LLM.Model = "qwen/qwen3-4b:free"
	f.LLM.BaseURL = "https://openrouter.ai/api/v1"
	f.LLM.Timeout = "10s"
	f.Monitor.Capacity = 100
	return f
}

func Load() (Config, error) {
	f := defaults()
	if path := os.Getenv("TAROT_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", f.HTTPAddr),
		StorageDriver:     envOr("STORAGE_DRIVER", f.Storage.Driver),
		DatabaseDSN:       envOr("DATABASE_DSN", f.Storage.DSN),
		LLMProvider:       envOr("LLM_PROVIDER", f.LLM.Provider),
		LLMModel:          envOr("LLM_MODEL", f.LLM.Model),
		OpenRouterAPIKey:  envOr("OPENROUTER_API_KEY", f.LLM.APIKey),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", f.LLM.BaseURL),
		LLMFallbackModels: f.LLM.FallbackModels,
		CORSOrigins:       f.CORSOrigins,
		MonitorCapacity:   f.Monitor.Capacity,
	}

	if v := os.Getenv("LLM_FALLBACK_MODELS"); v != "" {
		c.LLMFallbackModels = parseList(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = parseList(v)
	}

	var err error
	if c.LLMTimeout, err = parseDuration("LLM_TIMEOUT", envOr("LLM_TIMEOUT", f.LLM.Timeout)); err != nil {
		return Config{}, err
	}
	if c.SessionTTL, err = parseDuration("SESSION_TTL", envOr("SESSION_TTL", f.SessionTTL)); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("MONITOR_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid MONITOR_CAPACITY %q", v)
		}
		c.MonitorCapacity = n
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", f.LogLevel))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.LLMProvider {
	case LLMNone:
	case LLMOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required when LLM_PROVIDER=openrouter")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			items = append(items, m)
		}
	}
	return items
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

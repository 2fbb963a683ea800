package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"TAROT_CONFIG", "HTTP_ADDR", "LOG_LEVEL", "STORAGE_DRIVER", "DATABASE_DSN",
	"LLM_PROVIDER", "LLM_MODEL", "LLM_FALLBACK_MODELS", "OPENROUTER_API_KEY",
	"OPENROUTER_BASE_URL", "LLM_TIMEOUT", "MONITOR_CAPACITY", "CORS_ORIGINS", "SESSION_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, StorageMemory, c.StorageDriver)
	assert.Equal(t, LLMNone, c.LLMProvider)
	assert.Equal(t, 10*time.Second, c.LLMTimeout)
	assert.Equal(t, time.Hour, c.SessionTTL)
	assert.Equal(t, 100, c.MonitorCapacity)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "tarot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr = ":9000"
log_level = "debug"
cors_origins = ["https://tarot.example"]

[storage]
driver = "postgres"
dsn = "postgres://file"

[llm]
provider = "openrouter"
api_key = "from-file"
fallback_models = ["a", "b"]
timeout = "3s"

[monitor]
capacity = 5
`), 0o600))

	t.Setenv("TAROT_CONFIG", path)
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("LLM_FALLBACK_MODELS", " x , ,y ")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "from-file", c.OpenRouterAPIKey)
	assert.Equal(t, []string{"x", "y"}, c.LLMFallbackModels)
	assert.Equal(t, 3*time.Second, c.LLMTimeout)
	assert.Equal(t, 5, c.MonitorCapacity)
	assert.Equal(t, []string{"https://tarot.example"}, c.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad timeout", map[string]string{"LLM_TIMEOUT": "soon"}},
		{"bad driver", map[string]string{"STORAGE_DRIVER": "mongo"}},
		{"postgres without dsn", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"openrouter without key", map[string]string{"LLM_PROVIDER": "openrouter"}},
		{"bad provider", map[string]string{"LLM_PROVIDER": "gemini"}},
		{"bad capacity", map[string]string{"MONITOR_CAPACITY": "0"}},
		{"missing file", map[string]string{"TAROT_CONFIG": "/nonexistent/tarot.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadCLI_CreatesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadCLI()
	require.NoError(t, err)
	assert.Equal(t, "three-card", cfg.DefaultSpread)
	assert.True(t, cfg.Color)
	assert.FileExists(t, CLIConfigPath())

	require.NoError(t, os.WriteFile(CLIConfigPath(), []byte("default_spread = \"celtic-cross\"\ncolor = false\n"), 0o600))
	cfg, err = LoadCLI()
	require.NoError(t, err)
	assert.Equal(t, "celtic-cross", cfg.DefaultSpread)
	assert.False(t, cfg.Color)
}

func TestWriteCLI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	require.NoError(t, writeCLI(path, CLIConfig{DefaultSpread: "one-card", Color: false}))
	cfg, err := LoadCLIFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "one-card", cfg.DefaultSpread)
	assert.False(t, cfg.Color)

	err = writeCLI(dir, CLIConfig{})
	assert.ErrorContains(t, err, "create config file")
}

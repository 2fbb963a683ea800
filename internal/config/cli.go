package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// CLIConfig is the per-user config of the tarot command.
type CLIConfig struct {
	DefaultSpread string `toml:"default_spread"`
	Color         bool   `toml:"color"`
}

// XDGConfigHome returns XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func CLIConfigPath() string {
	return filepath.Join(XDGConfigHome(), "tarot", "config.toml")
}

// LoadCLI reads the CLI config, writing the defaults on first use.
func LoadCLI() (CLIConfig, error) {
	return LoadCLIFrom(CLIConfigPath())
}

func LoadCLIFrom(path string) (CLIConfig, error) {
	cfg := CLIConfig{DefaultSpread: "three-card", Color: true}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeCLI(path, cfg); err != nil {
			return CLIConfig{}, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

func writeCLI(path string, cfg CLIConfig) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", cerr)
		}
	}()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

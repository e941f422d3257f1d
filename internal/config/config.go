// Package config holds the greviews configuration, merged from defaults,
// the config file, environment variables, and CLI flag overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the greviews configuration.
type Config struct {
	DataDir    string `json:"dataDir"`
	OutputDir  string `json:"outputDir"`
	Engine     string `json:"engine"`
	MaxReviews int    `json:"maxReviews"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		DataDir:    "data",
		OutputDir:  "output",
		Engine:     "prose",
		MaxReviews: 10,
	}
}

// ConfigDir returns the platform-appropriate config directory for greviews.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "greviews"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "greviews"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "greviews"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "greviews"), nil
	default:
		return filepath.Join(home, ".config", "greviews"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.Engine != "" {
		dst.Engine = src.Engine
	}
	if src.MaxReviews > 0 {
		dst.MaxReviews = src.MaxReviews
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GREVIEWS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GREVIEWS_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("GREVIEWS_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("GREVIEWS_MAX_REVIEWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxReviews = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["dataDir"]; ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := overrides["outputDir"]; ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := overrides["engine"]; ok && v != "" {
		cfg.Engine = v
	}
	if v, ok := overrides["maxReviews"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxReviews = n
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "dataDir":
		cfg.DataDir = value
	case "outputDir":
		cfg.OutputDir = value
	case "engine":
		cfg.Engine = value
	case "maxReviews":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxReviews must be an integer: %w", err)
		}
		cfg.MaxReviews = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

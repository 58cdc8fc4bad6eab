// Package config loads and saves the goalchaser TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that take precedence over the config file.
const (
	EnvDB       = "GOALCHASER_DB"
	EnvTheme    = "GOALCHASER_THEME"
	EnvLogLevel = "GOALCHASER_LOG_LEVEL"
	EnvLogFile  = "GOALCHASER_LOG_FILE"
)

// Config holds all goalchaser configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultDays int    `toml:"default_days"`
	DBPath      string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultDays: 7,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalchaser")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goalchaser")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalchaser")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goalchaser")
}

// LoadEnvFile reads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.DefaultDays < 1 || cfg.General.DefaultDays > 31 {
		cfg.General.DefaultDays = DefaultConfig().General.DefaultDays
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetDBPath returns the database path from env var, config, or the default.
func GetDBPath(cfg Config) string {
	if p := os.Getenv(EnvDB); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "goals.db")
}

// GetTheme returns the theme name from env var or config.
func GetTheme(cfg Config) string {
	if t := os.Getenv(EnvTheme); t != "" {
		return t
	}
	return cfg.Appearance.Theme
}

// GetLogLevel returns the log level from env var or config.
func GetLogLevel(cfg Config) string {
	if l := os.Getenv(EnvLogLevel); l != "" {
		return l
	}
	return cfg.Log.Level
}

// GetLogFile returns the log file path from env var or config.
func GetLogFile(cfg Config) string {
	if f := os.Getenv(EnvLogFile); f != "" {
		return f
	}
	return cfg.Log.File
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation and input settings.
type UIConfig struct {
	Theme      string `mapstructure:"theme"`       // "dark" or "light"
	StartColor string `mapstructure:"start_color"` // hex color shown on first launch
	ThrottleMS int    `mapstructure:"throttle_ms"` // minimum ms between text-edit recomputations
	FieldWidth int    `mapstructure:"field_width"` // saturation/lightness field width in cells
}

// Load reads configuration from file and env. Env var overrides use prefix COLORPICKER_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "colorpicker", "colorpicker.db"))
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.start_color", "#4f46e5")
	v.SetDefault("ui.throttle_ms", 100)
	v.SetDefault("ui.field_width", 48)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COLORPICKER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "colorpicker"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COLORPICKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize pins out-of-range values back to their defaults rather than
// failing startup over a bad config file.
func normalize(c Config) Config {
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case "light":
		c.UI.Theme = "light"
	default:
		c.UI.Theme = "dark"
	}
	if c.UI.ThrottleMS < 16 || c.UI.ThrottleMS > 1000 {
		c.UI.ThrottleMS = 100
	}
	if c.UI.FieldWidth < 16 || c.UI.FieldWidth > 120 {
		c.UI.FieldWidth = 48
	}
	if strings.TrimSpace(c.UI.StartColor) == "" {
		c.UI.StartColor = "#4f46e5"
	}
	return c
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI to persist non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("COLORPICKER_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "colorpicker", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.start_color", cfg.UI.StartColor)
	v.Set("ui.throttle_ms", cfg.UI.ThrottleMS)
	v.Set("ui.field_width", cfg.UI.FieldWidth)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

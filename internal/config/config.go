// Package config loads the engine configuration: where theme packs
// live, which theme applies by default, and where each subsystem's
// rendered output is written.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the engine settings.
type Config struct {
	// ThemesDir is where user theme packs are discovered.
	ThemesDir string `mapstructure:"themes_dir"`

	// DefaultTheme is applied when no theme is named.
	DefaultTheme string `mapstructure:"default_theme"`

	// Outputs maps a subsystem name to the file its rendered
	// descriptor is written to.
	Outputs map[string]string `mapstructure:"outputs"`

	// ScreenWidth drives display scaling for sized values. Zero
	// disables scaling.
	ScreenWidth int `mapstructure:"screen_width"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ThemesDir:    defaultThemesDir(),
		DefaultTheme: "palenight",
		Outputs:      map[string]string{},
		LogLevel:     "info",
	}
}

// Load reads configuration from path, or from themer.yaml in the
// standard config locations when path is empty. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("themes_dir", defaultThemesDir())
	v.SetDefault("default_theme", "palenight")
	v.SetDefault("log_level", "info")
	v.SetDefault("screen_width", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("themer")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "themer"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Outputs == nil {
		cfg.Outputs = map[string]string{}
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return &cfg, nil
}

func defaultThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "themes")
	}
	return filepath.Join(dir, "themer", "themes")
}

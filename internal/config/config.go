package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Scroll  ScrollConfig  `mapstructure:"scroll"`
	Display DisplayConfig `mapstructure:"display"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// ScrollConfig holds playback settings restored between runs.
type ScrollConfig struct {
	Speed           float64 `mapstructure:"speed"`             // px/sec, clamped to [10,500] by the controller
	PauseAtHeadings bool    `mapstructure:"pause_at_headings"` // suspend playback when a heading scrolls in
	PauseDuration   float64 `mapstructure:"pause_duration"`    // seconds, clamped to [0.5,10]
	AutoRestart     bool    `mapstructure:"auto_restart"`      // jump back to the top at end of content
}

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	FontSize float64 `mapstructure:"font_size"` // base row scale in px, clamped to [8,72]
}

// ThemeConfig points at the active entry in themes.toml by name.
type ThemeConfig struct {
	Name string `mapstructure:"name"`
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	viper.SetDefault("scroll.speed", 50.0)
	viper.SetDefault("scroll.pause_at_headings", false)
	viper.SetDefault("scroll.pause_duration", 2.0)
	viper.SetDefault("scroll.auto_restart", false)
	viper.SetDefault("display.font_size", 18.0)
	viper.SetDefault("theme.name", "")

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// GetConfigDir returns the XDG config directory for markprompt.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "markprompt"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "markprompt"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetThemesPath returns the path of the theme collection file.
func GetThemesPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "themes.toml"), nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`scroll:
  speed: %g
  pause_at_headings: %t
  # Seconds to hold at each heading (0.5 - 10)
  pause_duration: %g
  auto_restart: %t

display:
  # Base row scale in px (8 - 72)
  font_size: %g

theme:
  # Entry from themes.toml; empty picks the first theme
  name: %q
`, cfg.Scroll.Speed, cfg.Scroll.PauseAtHeadings, cfg.Scroll.PauseDuration,
		cfg.Scroll.AutoRestart, cfg.Display.FontSize, cfg.Theme.Name)

	return os.WriteFile(path, []byte(content), 0600)
}

package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scroll.Speed != 50 {
		t.Fatalf("speed=%v, want 50", cfg.Scroll.Speed)
	}
	if cfg.Scroll.PauseDuration != 2.0 {
		t.Fatalf("pause_duration=%v, want 2", cfg.Scroll.PauseDuration)
	}
	if cfg.Scroll.PauseAtHeadings || cfg.Scroll.AutoRestart {
		t.Fatal("toggles should default to off")
	}
	if cfg.Display.FontSize != 18 {
		t.Fatalf("font_size=%v, want 18", cfg.Display.FontSize)
	}
	if cfg.Theme.Name != "" {
		t.Fatalf("theme=%q, want empty", cfg.Theme.Name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Scroll: ScrollConfig{
			Speed:           120,
			PauseAtHeadings: true,
			PauseDuration:   3.5,
			AutoRestart:     true,
		},
		Display: DisplayConfig{FontSize: 24},
		Theme:   ThemeConfig{Name: "Forest"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	viper.Reset()
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Scroll.Speed != 120 {
		t.Fatalf("speed=%v, want 120", got.Scroll.Speed)
	}
	if !got.Scroll.PauseAtHeadings || !got.Scroll.AutoRestart {
		t.Fatal("toggles lost on round trip")
	}
	if got.Scroll.PauseDuration != 3.5 {
		t.Fatalf("pause_duration=%v, want 3.5", got.Scroll.PauseDuration)
	}
	if got.Display.FontSize != 24 {
		t.Fatalf("font_size=%v, want 24", got.Display.FontSize)
	}
	if got.Theme.Name != "Forest" {
		t.Fatalf("theme=%q, want Forest", got.Theme.Name)
	}
}

package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenMissingFileSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(s.Themes()) != len(Defaults()) {
		t.Fatalf("themes=%d, want %d", len(s.Themes()), len(Defaults()))
	}
	if s.SelectedName() != "Light" {
		t.Fatalf("selected=%q, want Light", s.SelectedName())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not written: %v", err)
	}
}

func TestSelectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Select("Forest"); err != nil {
		t.Fatalf("select: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reloaded.SelectedName() != "Forest" {
		t.Fatalf("selected=%q, want Forest", reloaded.SelectedName())
	}
	if reloaded.Selected().Background != (RGB{5, 46, 22}) {
		t.Fatalf("background=%v", reloaded.Selected().Background)
	}
}

func TestSelectUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	s, _ := Open(path)
	if err := s.Select("Nope"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestUnknownSelectionFallsBackToFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	content := `selected_theme = "Vanished"

[[themes]]
name = "Mono"
background_color = [0, 0, 0]
text_color = [255, 255, 255]
heading_colors = [[255, 0, 0], [0, 255, 0], [0, 0, 255], [255, 255, 0], [0, 255, 255], [255, 0, 255]]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.SelectedName() != "Mono" {
		t.Fatalf("selected=%q, want Mono", s.SelectedName())
	}
}

func TestMalformedEntriesSkippedIndividually(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	content := `[[themes]]
name = "Good"
background_color = [10, 20, 30]
text_color = [200, 200, 200]
heading_colors = [[1, 2, 3], [4, 5, 6], [7, 8, 9], [10, 11, 12], [13, 14, 15], [16, 17, 18]]

[[themes]]
name = "BadChannel"
background_color = [10, 20, 999]
text_color = [200, 200, 200]
heading_colors = [[1, 2, 3], [4, 5, 6], [7, 8, 9], [10, 11, 12], [13, 14, 15], [16, 17, 18]]

[[themes]]
name = "MissingHeadings"
background_color = [10, 20, 30]
text_color = [200, 200, 200]
heading_colors = [[1, 2, 3]]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(s.Themes()) != 1 {
		t.Fatalf("themes=%d, want 1 (bad entries skipped)", len(s.Themes()))
	}
	if s.Themes()[0].Name != "Good" {
		t.Fatalf("kept theme=%q, want Good", s.Themes()[0].Name)
	}
}

func TestGarbageFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err == nil {
		t.Fatal("expected a ConfigError for garbage input")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("error type %T, want *ConfigError", err)
	}
	if len(s.Themes()) != len(Defaults()) {
		t.Fatalf("themes=%d, want defaults", len(s.Themes()))
	}
}

func TestHexAndHeadingColor(t *testing.T) {
	c := RGB{255, 180, 100}
	if got := c.Hex(); !strings.EqualFold(got, "#ffb464") {
		t.Fatalf("hex=%q, want #ffb464", got)
	}

	th := Defaults()[1] // Dark
	if th.HeadingColor(1) != (RGB{255, 180, 100}) {
		t.Fatalf("h1 color=%v", th.HeadingColor(1))
	}
	if th.HeadingColor(0) != th.Text {
		t.Fatalf("out of range level should fall back to text color")
	}
	if th.HeadingColor(7) != th.Text {
		t.Fatalf("out of range level should fall back to text color")
	}
}

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Store holds the theme collection and the persisted selection. The
// backing file is TOML: a top-level selected_theme string plus a
// [[themes]] table array.
type Store struct {
	path     string
	themes   []Theme
	selected string
}

type themesFile struct {
	SelectedTheme string  `toml:"selected_theme,omitempty"`
	Themes        []Theme `toml:"themes"`
}

// rawThemesFile decodes entries loosely so a malformed entry can be
// skipped on its own instead of failing the whole load.
type rawThemesFile struct {
	SelectedTheme string           `toml:"selected_theme"`
	Themes        []map[string]any `toml:"themes"`
}

// FallbackStore returns an in-memory store over the built-in themes.
// Selections are not persisted.
func FallbackStore() *Store {
	s := &Store{themes: Defaults()}
	s.selected = s.themes[0].Name
	return s
}

// Open loads the theme store at path. A missing file is seeded with the
// built-in defaults. Any problem reading or decoding falls back to the
// defaults and is reported as a *ConfigError the caller may log; the
// returned store is always usable.
func Open(path string) (*Store, error) {
	s := &Store{path: path, themes: Defaults()}
	s.selected = s.themes[0].Name

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := s.save(); werr != nil {
			return s, &ConfigError{Path: path, Err: werr}
		}
		return s, nil
	}
	if err != nil {
		return s, &ConfigError{Path: path, Err: err}
	}

	var raw rawThemesFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return s, &ConfigError{Path: path, Err: err}
	}

	var themes []Theme
	for _, entry := range raw.Themes {
		t, err := decodeEntry(entry)
		if err != nil {
			continue // skip the bad entry, keep the rest
		}
		themes = append(themes, t)
	}
	if len(themes) == 0 {
		return s, &ConfigError{Path: path, Err: errors.New("no usable theme entries")}
	}

	s.themes = themes
	s.selected = themes[0].Name
	if _, ok := s.Lookup(raw.SelectedTheme); ok {
		s.selected = raw.SelectedTheme
	}
	return s, nil
}

// Path returns the backing file's location.
func (s *Store) Path() string { return s.path }

// Themes returns the loaded themes in file order.
func (s *Store) Themes() []Theme { return s.themes }

// Selected returns the active theme.
func (s *Store) Selected() Theme {
	if t, ok := s.Lookup(s.selected); ok {
		return t
	}
	return s.themes[0]
}

// SelectedName returns the active theme's name.
func (s *Store) SelectedName() string { return s.selected }

// Lookup finds a theme by name.
func (s *Store) Lookup(name string) (Theme, bool) {
	for _, t := range s.themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Select makes name the active theme and persists the choice.
func (s *Store) Select(name string) error {
	if _, ok := s.Lookup(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	s.selected = name
	return s.save()
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := toml.Marshal(themesFile{
		SelectedTheme: s.selected,
		Themes:        s.themes,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func decodeEntry(entry map[string]any) (Theme, error) {
	var t Theme

	name, ok := entry["name"].(string)
	if !ok || name == "" {
		return t, errors.New("missing name")
	}
	t.Name = name

	bg, err := decodeRGB(entry["background_color"])
	if err != nil {
		return t, fmt.Errorf("background_color: %w", err)
	}
	t.Background = bg

	text, err := decodeRGB(entry["text_color"])
	if err != nil {
		return t, fmt.Errorf("text_color: %w", err)
	}
	t.Text = text

	levels, ok := entry["heading_colors"].([]any)
	if !ok || len(levels) != 6 {
		return t, errors.New("heading_colors must list 6 colors")
	}
	for i, lv := range levels {
		c, err := decodeRGB(lv)
		if err != nil {
			return t, fmt.Errorf("heading_colors[%d]: %w", i, err)
		}
		t.Headings[i] = c
	}
	return t, nil
}

func decodeRGB(v any) (RGB, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		return RGB{}, errors.New("want [r, g, b]")
	}
	var c RGB
	for i, ch := range arr {
		n, ok := ch.(int64)
		if !ok || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("channel %d out of range", i)
		}
		c[i] = uint8(n)
	}
	return c, nil
}

package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color as three 0-255 channels, matching the on-disk form.
type RGB [3]uint8

// Hex returns the color as "#rrggbb" for terminal styling.
func (c RGB) Hex() string {
	col := colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
	return col.Hex()
}

// Lighten blends the color toward white by amount (0..1). Used to
// derive the inline-code background from the theme background.
func (c RGB) Lighten(amount float64) RGB {
	col := colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	out := col.BlendLab(white, amount).Clamped()
	return RGB{uint8(out.R * 255), uint8(out.G * 255), uint8(out.B * 255)}
}

// Theme is one named color scheme. Immutable after load; playback
// never mutates it.
type Theme struct {
	Name       string `toml:"name"`
	Background RGB    `toml:"background_color"`
	Text       RGB    `toml:"text_color"`
	Headings   [6]RGB `toml:"heading_colors"`
}

// HeadingColor returns the color for a heading level (1-6). Out-of-range
// levels fall back to the text color.
func (t Theme) HeadingColor(level int) RGB {
	if level < 1 || level > 6 {
		return t.Text
	}
	return t.Headings[level-1]
}

// ConfigError reports a theme file problem. It is never fatal: loading
// recovers by falling back to the built-in themes.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("theme config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Package theme centralizes Lip Gloss styles for the medbook shell.
package theme

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const (
	DarkName  = "dark"
	LightName = "light"
)

// Theme groups every style the shell uses.
type Theme struct {
	Name    string
	Panel   PanelTheme
	Command CommandTheme
	List    ListTheme
	Modal   ModalTheme
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame       lipgloss.Style
	ActiveFrame lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
}

// CommandTheme styles the command box and the result line.
type CommandTheme struct {
	Prompt   lipgloss.Style
	Feedback lipgloss.Style
	Error    lipgloss.Style
	Cursor   string
}

// ListTheme styles person and appointment rows.
type ListTheme struct {
	Index lipgloss.Style
	Name  lipgloss.Style
	Tag   lipgloss.Style
	Faint lipgloss.Style
	When  lipgloss.Style
}

// ModalTheme styles the help overlay.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Palette is the handful of colours a theme is derived from.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	Warm       string
	Error      string
}

var (
	darkPalette = Palette{
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",
		Accent:     "#f5c2e7",
		Warm:       "#f9e2af",
		Error:      "#f38ba8",
	}
	lightPalette = Palette{
		Background: "#eff1f5",
		Foreground: "#4c4f69",
		Accent:     "#8839ef",
		Warm:       "#df8e1d",
		Error:      "#d20f39",
	}
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// blend mixes a towards b by t in Lab space.
func blend(a, b string, t float64) string {
	return hex(a).BlendLab(hex(b), t).Clamped().Hex()
}

// Build derives a Theme from p.
func Build(name string, p Palette) Theme {
	fg := lipgloss.Color(p.Foreground)
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(blend(p.Foreground, p.Background, 0.45))
	border := lipgloss.Color(blend(p.Foreground, p.Background, 0.65))
	tag := lipgloss.Color(blend(p.Accent, p.Foreground, 0.35))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Theme{
		Name: name,
		Panel: PanelTheme{
			Frame:       frame,
			ActiveFrame: frame.BorderForeground(accent),
			Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:        lipgloss.NewStyle().Foreground(fg),
		},
		Command: CommandTheme{
			Prompt:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Feedback: lipgloss.NewStyle().Foreground(fg),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
			Cursor:   p.Accent,
		},
		List: ListTheme{
			Index: lipgloss.NewStyle().Foreground(muted),
			Name:  lipgloss.NewStyle().Foreground(fg).Bold(true),
			Tag:   lipgloss.NewStyle().Foreground(tag),
			Faint: lipgloss.NewStyle().Foreground(muted),
			When:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warm)),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle().Foreground(fg),
		},
	}
}

// Dark returns the dark theme.
func Dark() Theme { return Build(DarkName, darkPalette) }

// Light returns the light theme.
func Light() Theme { return Build(LightName, lightPalette) }

// Named returns the theme called name.
func Named(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DarkName:
		return Dark(), true
	case LightName:
		return Light(), true
	}
	return Theme{}, false
}

// FromPath resolves a stylesheet path such as "themes/light". Unknown paths
// fall back to Default.
func FromPath(p string) Theme {
	if t, ok := Named(path.Base(p)); ok {
		return t
	}
	return Default()
}

// Detect picks light or dark from the terminal background.
func Detect() string {
	if termenv.HasDarkBackground() {
		return DarkName
	}
	return LightName
}

// Default returns the built-in theme used when nothing else is configured.
func Default() Theme { return Dark() }

// Resolve returns the named theme, the detected one when name is empty, or
// Default for anything unknown.
func Resolve(name string) Theme {
	if name == "" {
		name = Detect()
	}
	if t, ok := Named(name); ok {
		return t
	}
	return Default()
}

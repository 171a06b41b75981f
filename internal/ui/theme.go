// Package ui provides terminal presentation for the generator: theme,
// banner, progress reporting, and the post-generation help screen.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the brand colors used across the terminal UI.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// DefaultPalette is the forgekit brand palette (dark-terminal values).
var DefaultPalette = Palette{
	Primary:   "#F97316",
	Secondary: "#8B5CF6",
	Success:   "#10B981",
	Error:     "#EF4444",
	Text:      "#E5E7EB",
	Muted:     "#6B7280",
	Border:    "#4B5563",
}

// Theme bundles the palette with a no-color switch and the derived
// lipgloss styles.
type Theme struct {
	NoColor bool
	Colors  Palette

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Box     lipgloss.Style
}

// NewTheme creates a Theme. NO_COLOR in the environment disables all
// styling.
func NewTheme() *Theme {
	noColor := os.Getenv("NO_COLOR") != ""
	t := &Theme{NoColor: noColor, Colors: DefaultPalette}

	if noColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Success, t.Error, t.Muted, t.Box = plain, plain, plain, plain, plain
		return t
	}

	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Border)).
		Padding(0, 2)
	return t
}

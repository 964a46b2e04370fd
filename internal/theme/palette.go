// Package theme holds the fixed light and dark colour tables and the lipgloss
// styles derived from them.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the semantic colour set every screen draws with.
type Palette struct {
	Name          string
	Primary       lipgloss.Color
	Background    lipgloss.Color
	Card          lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Info          lipgloss.Color
}

var (
	lightPalette = Palette{
		Name:          "light",
		Primary:       lipgloss.Color("#2563eb"),
		Background:    lipgloss.Color("#f8fafc"),
		Card:          lipgloss.Color("#ffffff"),
		Text:          lipgloss.Color("#0f172a"),
		TextSecondary: lipgloss.Color("#64748b"),
		Border:        lipgloss.Color("#e2e8f0"),
		Success:       lipgloss.Color("#16a34a"),
		Error:         lipgloss.Color("#dc2626"),
		Warning:       lipgloss.Color("#d97706"),
		Info:          lipgloss.Color("#0891b2"),
	}

	darkPalette = Palette{
		Name:          "dark",
		Primary:       lipgloss.Color("#60a5fa"),
		Background:    lipgloss.Color("#0f172a"),
		Card:          lipgloss.Color("#1e293b"),
		Text:          lipgloss.Color("#f1f5f9"),
		TextSecondary: lipgloss.Color("#94a3b8"),
		Border:        lipgloss.Color("#334155"),
		Success:       lipgloss.Color("#4ade80"),
		Error:         lipgloss.Color("#f87171"),
		Warning:       lipgloss.Color("#fbbf24"),
		Info:          lipgloss.Color("#22d3ee"),
	}
)

// Light returns the light palette.
func Light() Palette {
	return lightPalette
}

// Dark returns the dark palette.
func Dark() Palette {
	return darkPalette
}

// For returns the palette matching the dark-mode flag.
func For(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

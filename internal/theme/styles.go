package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles the TUI renders with. It is rebuilt
// whenever the palette changes.
type Styles struct {
	Palette Palette

	Title        lipgloss.Style
	Header       lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Price        lipgloss.Style
	Muted        lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Card         lipgloss.Style
	ErrorBanner  lipgloss.Style
	Footer       lipgloss.Style
	Spinner      lipgloss.Style
	Button       lipgloss.Style
	Confirm      lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(1).
			PaddingRight(1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginBottom(1),

		Tab: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		Item: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(p.Text),

		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(p.Primary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary),

		Price: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		Label: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Bold(true).
			Width(14),

		Value: lipgloss.NewStyle().
			Foreground(p.Text),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			MarginTop(1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary),

		Button: lipgloss.NewStyle().
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),

		Confirm: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Warning).
			Padding(1, 3),
	}
}

// Toast returns the toast style for a severity name. Unknown severities fall
// back to the text colour, as info toasts do.
func (s Styles) Toast(severity string) lipgloss.Style {
	bg := s.Palette.Text
	switch severity {
	case "success":
		bg = s.Palette.Success
	case "error":
		bg = s.Palette.Error
	case "warning":
		bg = s.Palette.Warning
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Bold(true).
		Padding(0, 2).
		MarginTop(1)
}

package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// MaxRating is the top of the gateway's rating scale.
const MaxRating = 5.0

// Rating renders a product rating as a label and a bar.
type Rating struct {
	bar progress.Model
}

// NewRating creates a rating bar of the given width.
func NewRating(width int, color string) Rating {
	bar := progress.New(progress.WithSolidFill(color), progress.WithoutPercentage())
	bar.Width = width
	return Rating{bar: bar}
}

// View renders the rating and, when reviews is non-negative, the review count.
func (r Rating) View(rating float64, reviews int) string {
	ratio := math.Max(0, math.Min(1.0, rating/MaxRating))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("★ %.2f", rating))
	parts := []string{label, " ", r.bar.ViewAs(ratio)}
	if reviews >= 0 {
		parts = append(parts, fmt.Sprintf(" (%d reviews)", reviews))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

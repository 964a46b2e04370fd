package components

import (
	"fmt"
)

// SummaryData describes what the listing currently shows.
type SummaryData struct {
	Query   string
	Shown   int
	Loading bool
}

// Summary renders a one-line listing summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	switch {
	case s.data.Loading && s.data.Query != "":
		return fmt.Sprintf("Searching for %q...", s.data.Query)
	case s.data.Loading:
		return "Loading products..."
	case s.data.Query != "":
		noun := "results"
		if s.data.Shown == 1 {
			noun = "result"
		}
		return fmt.Sprintf("%d %s for %q", s.data.Shown, noun, s.data.Query)
	default:
		return fmt.Sprintf("%d products", s.data.Shown)
	}
}

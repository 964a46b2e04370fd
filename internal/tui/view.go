package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/navigation"
	"github.com/alexisbeaulieu97/storefront/internal/state"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
	"github.com/alexisbeaulieu97/storefront/internal/tui/components"
)

const ratingWidth = 20

// View renders the current model state
func (m Model) View() string {
	st := m.store.State()
	styles := theme.NewStyles(st.Theme.Palette)

	var content strings.Builder

	if m.nav.Graph() == navigation.Unauthenticated {
		content.WriteString(m.renderAuth(st, styles))
	} else {
		content.WriteString(m.renderTabs(styles))
		content.WriteString("\n")
		switch m.Screen() {
		case navigation.ScreenHome:
			content.WriteString(m.renderHome(st, styles))
		case navigation.ScreenListing:
			content.WriteString(m.renderListing(styles))
		case navigation.ScreenProfile:
			content.WriteString(m.renderProfile(st, styles))
		case navigation.ScreenDetail:
			content.WriteString(m.renderDetail(st, styles))
		}
	}

	if toast := renderToast(st.Notification, styles); toast != "" {
		content.WriteString("\n")
		content.WriteString(toast)
	}

	content.WriteString("\n")
	content.WriteString(styles.Footer.Render(m.helpText()))

	return content.String()
}

func (m Model) renderAuth(st state.State, styles theme.Styles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Welcome"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(" Sign in to continue"))
	b.WriteString("\n\n")

	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if st.Session.Loading || m.loggingIn {
		b.WriteString(styles.Spinner.Render(m.spinner.View()))
		b.WriteString(" Signing in...")
	} else {
		b.WriteString(styles.Button.Render("Login"))
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render("Skip for now (ctrl+s)"))
	}
	b.WriteString("\n")

	if m.authNotice != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorBanner.Render("Error: " + m.authNotice))
		b.WriteString("\n")
	}
	if st.Session.Error != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorBanner.Render("Login Failed: " + st.Session.Error))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderTabs(styles theme.Styles) string {
	active := m.nav.Tab()
	tabs := make([]string, 0, len(navigation.Tabs))
	for i, tab := range navigation.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == active {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Center, styles.Title.Render("Storefront"), row))
}

// Greeting is the home screen headline.
func Greeting(session state.SessionState) string {
	if session.IsAuthenticated && session.User != nil {
		return fmt.Sprintf("Hello, %s!", session.User.FirstName)
	}
	return "Welcome, Guest!"
}

func (m Model) renderHome(st state.State, styles theme.Styles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(Greeting(st.Session)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(" Featured Products"))
	b.WriteString("\n\n")

	switch {
	case m.homeLoading && len(m.featured) == 0:
		b.WriteString(styles.Spinner.Render(m.spinner.View()))
		b.WriteString(" Loading products...")
	case m.homeErr != "" && len(m.featured) == 0:
		b.WriteString(styles.ErrorBanner.Render(m.homeErr))
	default:
		b.WriteString(components.NewProductList(m.featured, m.homeCursor).View(styles, "No products found"))
	}

	if len(m.categories) > 0 {
		names := make([]string, 0, len(m.categories))
		for _, c := range m.categories {
			names = append(names, c.Name)
		}
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("Categories"))
		b.WriteString(styles.Muted.Render(truncate(strings.Join(names, ", "), max(m.width-16, 20))))
	}

	return b.String()
}

func (m Model) renderListing(styles theme.Styles) string {
	var b strings.Builder

	b.WriteString(m.search.View())
	if m.listingLoading {
		b.WriteString(" ")
		b.WriteString(styles.Spinner.Render(m.spinner.View()))
	}
	b.WriteString("\n\n")

	switch {
	case m.listingErr != "":
		b.WriteString(styles.ErrorBanner.Render(m.listingErr))
	case !m.listingLoaded:
		b.WriteString(styles.Muted.Render("Loading products..."))
	default:
		summary := components.NewSummary(components.SummaryData{
			Query:   m.listingQuery,
			Shown:   len(m.products),
			Loading: m.listingLoading,
		})
		b.WriteString(styles.Muted.Render(summary.View()))
		b.WriteString("\n")
		b.WriteString(components.NewProductList(m.products, m.listCursor).View(styles, "No products found"))
	}

	return b.String()
}

func (m Model) renderProfile(st state.State, styles theme.Styles) string {
	var b strings.Builder
	session := st.Session

	if session.IsAuthenticated && session.User != nil {
		u := session.User
		card := strings.Join([]string{
			styles.Title.Render(u.FullName()),
			styles.Price.Render("@" + u.Username),
			styles.Muted.Render(u.Email),
		}, "\n")
		b.WriteString(styles.Card.Render(card))
		b.WriteString("\n\n")

		gender := u.Gender
		if gender == "" {
			gender = "Not specified"
		}
		b.WriteString(styles.Header.Render("Personal Information"))
		b.WriteString("\n")
		b.WriteString(row(styles, "First Name:", u.FirstName))
		b.WriteString(row(styles, "Last Name:", u.LastName))
		b.WriteString(row(styles, "Gender:", gender))
		if exp, ok := api.TokenExpiry(session.Token); ok {
			b.WriteString(row(styles, "Session:", "expires "+exp.Local().Format("2006-01-02 15:04")))
		}
	} else {
		b.WriteString(styles.Title.Render("Welcome, Guest!"))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(" Login to access personalized features and your profile"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	mode := "Disabled"
	if st.Theme.IsDarkMode {
		mode = "Enabled"
	}
	b.WriteString(row(styles, "Dark Mode:", mode+"  (t to toggle)"))
	b.WriteString("\n")

	if session.IsSkipped {
		b.WriteString(styles.Button.Render("Login (l)"))
	} else {
		b.WriteString(styles.Button.Render("Logout (l)"))
	}

	if m.confirmLogout {
		b.WriteString("\n\n")
		b.WriteString(styles.Confirm.Render("Logout\n\nAre you sure you want to logout? (y/n)"))
	}

	return b.String()
}

func (m Model) renderDetail(st state.State, styles theme.Styles) string {
	switch {
	case m.detailLoading:
		return styles.Spinner.Render(m.spinner.View()) + " Loading product..."
	case m.product == nil:
		msg := "Product not found"
		if m.detailErr != "" {
			msg += ": " + m.detailErr
		}
		return styles.ErrorBanner.Render(msg)
	}

	p := m.product
	var b strings.Builder

	b.WriteString(styles.Muted.Render(strings.ToUpper(BrandLabel(*p))))
	b.WriteString("\n")
	b.WriteString(styles.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(styles.Price.Render(components.FormatPrice(p.Price)))
	b.WriteString("  ")
	b.WriteString(components.NewRating(ratingWidth, string(st.Theme.Palette.Warning)).View(p.Rating, len(p.Reviews)))
	if p.DiscountPercentage > 0 {
		b.WriteString("  ")
		b.WriteString(styles.Toast(string(state.SeverityError)).MarginTop(0).Render(fmt.Sprintf("%s%% OFF", strconv.FormatFloat(p.DiscountPercentage, 'f', -1, 64))))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Header.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(p.Description))
	b.WriteString("\n\n")

	b.WriteString(styles.Header.Render("Product Details"))
	b.WriteString("\n")
	b.WriteString(row(styles, "Category:", p.Category))
	b.WriteString(row(styles, "Stock:", StockLabel(*p)))
	b.WriteString(row(styles, "SKU:", p.SKU))
	b.WriteString(row(styles, "Weight:", strconv.FormatFloat(p.Weight, 'f', -1, 64)+"g"))
	b.WriteString(row(styles, "Warranty:", p.WarrantyInformation))
	b.WriteString(row(styles, "Shipping:", p.ShippingInformation))

	if len(p.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Tags"))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(strings.Join(p.Tags, " · ")))
	}

	return b.String()
}

// BrandLabel returns the product brand or "No Brand".
func BrandLabel(p api.Product) string {
	if p.Brand == "" {
		return "No Brand"
	}
	return p.Brand
}

// StockLabel describes availability.
func StockLabel(p api.Product) string {
	if p.InStock() {
		return fmt.Sprintf("%d available", p.Stock)
	}
	return "Out of Stock"
}

func renderToast(n state.NotificationState, styles theme.Styles) string {
	if !n.Visible || n.Message == "" {
		return ""
	}
	return styles.Toast(string(n.Severity)).Render(n.Message)
}

func row(styles theme.Styles, label, value string) string {
	return styles.Label.Render(label) + styles.Value.Render(value) + "\n"
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width > len(r) {
		width = len(r)
	}
	return string(r[:width-1]) + "…"
}

func (m Model) helpText() string {
	if m.nav.Graph() == navigation.Unauthenticated {
		return "tab switch field • enter login • ctrl+s skip • ctrl+c quit"
	}
	if m.confirmLogout {
		return "y confirm • n cancel"
	}
	if m.searching {
		return "type to search • enter search now • esc done"
	}

	switch m.Screen() {
	case navigation.ScreenHome:
		return "↑/↓ select • enter open • r refresh • 1-3 tabs • q quit"
	case navigation.ScreenListing:
		return "/ search • ↑/↓ select • enter open • r reload • 1-3 tabs • q quit"
	case navigation.ScreenProfile:
		return "t toggle theme • l logout • 1-3 tabs • q quit"
	case navigation.ScreenDetail:
		return "esc back • r reload • 1-3 tabs • q quit"
	}
	return "q quit"
}

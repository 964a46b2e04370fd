package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/forms"
	"github.com/alexisbeaulieu97/storefront/internal/navigation"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case stateChangedMsg:
		cmds = append(cmds, waitForStateCmd(m.w.changes))

	case LoginDoneMsg:
		m.loggingIn = false
		if msg.Err != nil {
			m.log.Debug("login attempt rejected")
		}

	case toastExpiredMsg:
		if msg.seq == m.w.toastSeq.Load() && m.store.State().Notification.Visible {
			m.store.HideNotification()
		}

	case errorExpiredMsg:
		if msg.seq == m.w.errorSeq.Load() && m.store.State().Session.Error != "" {
			m.store.ClearError()
		}

	case HomeLoadedMsg:
		m.homeLoading = false
		if msg.Err != nil {
			m.homeErr = apperrors.Reason(msg.Err)
			break
		}
		m.homeErr = ""
		m.featured = msg.Overview.Featured
		m.categories = msg.Overview.Categories
		m.homeCursor = clampCursor(m.homeCursor, len(m.featured))

	case HomeRefreshedMsg:
		m.homeLoading = false
		if msg.Err != nil {
			m.homeErr = apperrors.Reason(msg.Err)
			break
		}
		m.homeErr = ""
		m.featured = msg.Products
		m.homeCursor = clampCursor(m.homeCursor, len(m.featured))

	case searchDebounceMsg:
		if msg.seq == m.searchSeq {
			m.listingLoading = true
			cmds = append(cmds, searchCmd(m.ctx, m.browser, msg.seq, msg.query))
		}

	case ListingLoadedMsg:
		if msg.Seq != m.searchSeq {
			break
		}
		m.listingLoading = false
		m.listingLoaded = true
		m.listingQuery = msg.Query
		if msg.Err != nil {
			m.listingErr = apperrors.Reason(msg.Err)
			break
		}
		m.listingErr = ""
		m.products = msg.Products
		m.listCursor = clampCursor(m.listCursor, len(m.products))

	case DetailLoadedMsg:
		current := m.nav.Current()
		if current.Screen != navigation.ScreenDetail || current.ProductID != msg.ID {
			break
		}
		m.detailLoading = false
		if msg.Err != nil {
			m.detailErr = apperrors.Reason(msg.Err)
			m.product = nil
			break
		}
		m.detailErr = ""
		m.product = msg.Product

	default:
		cmds = append(cmds, m.updateInputs(msg))
	}

	cmds = append(cmds, m.sync()...)
	return m, tea.Batch(cmds...)
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused text input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	case m.focus == 0:
		m.username, cmd = m.username.Update(msg)
	default:
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.nav.Graph() == navigation.Unauthenticated {
		return m.handleAuthKey(msg)
	}

	if m.confirmLogout {
		return m.handleConfirmKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "1", "2", "3":
		return m.selectTab(navigation.Tabs[int(msg.Runes[0]-'1')])
	case "tab":
		return m.selectTab(m.adjacentTab(1))
	case "shift+tab":
		return m.selectTab(m.adjacentTab(-1))
	}

	switch m.Screen() {
	case navigation.ScreenHome:
		return m.handleHomeKey(msg)
	case navigation.ScreenListing:
		return m.handleListingKey(msg)
	case navigation.ScreenProfile:
		return m.handleProfileKey(msg)
	case navigation.ScreenDetail:
		return m.handleDetailKey(msg)
	}
	return nil
}

func (m *Model) handleAuthKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		m.store.Skip()
		return nil

	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.password.Blur()
			return m.username.Focus()
		}
		m.username.Blur()
		return m.password.Focus()

	case "enter":
		if m.loggingIn || m.store.State().Session.Loading {
			return nil
		}
		creds, err := forms.Login(m.username.Value(), m.password.Value())
		if err != nil {
			m.authNotice = apperrors.Reason(err)
			return nil
		}
		m.authNotice = ""
		m.loggingIn = true
		return loginCmd(m.ctx, m.store, m.auth, creds)

	case "esc":
		if m.store.State().Session.Error != "" {
			m.store.ClearError()
		}
		return nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmLogout = false
		m.store.Logout()
	case "n", "N", "esc":
		m.confirmLogout = false
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m.startSearch(m.search.Value(), true)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.startSearch(m.search.Value(), false))
}

// startSearch supersedes any pending query. Debounced searches wait for the
// configured pause; immediate ones run now.
func (m *Model) startSearch(query string, immediate bool) tea.Cmd {
	m.searchSeq++
	if immediate {
		m.listingLoading = true
		return searchCmd(m.ctx, m.browser, m.searchSeq, query)
	}
	return searchDebounceCmd(m.opts.SearchDebounce, m.searchSeq, query)
}

func (m *Model) selectTab(screen navigation.Screen) tea.Cmd {
	if err := m.nav.SelectTab(screen); err != nil {
		m.log.Error(err, "tab change refused")
		return nil
	}
	m.confirmLogout = false

	if screen == navigation.ScreenListing && !m.listingLoaded && !m.listingLoading {
		return m.startSearch("", true)
	}
	return nil
}

func (m *Model) adjacentTab(step int) navigation.Screen {
	current := m.nav.Tab()
	for i, tab := range navigation.Tabs {
		if tab == current {
			n := len(navigation.Tabs)
			return navigation.Tabs[((i+step)%n+n)%n]
		}
	}
	return navigation.Tabs[0]
}

func (m *Model) openDetail(id int) tea.Cmd {
	if err := m.nav.OpenDetail(id); err != nil {
		m.log.Error(err, "cannot open product")
		return nil
	}
	m.product = nil
	m.detailErr = ""
	m.detailLoading = true
	return detailCmd(m.ctx, m.browser, id)
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.homeCursor = moveCursor(m.homeCursor, -1, len(m.featured))
	case "down", "j":
		m.homeCursor = moveCursor(m.homeCursor, 1, len(m.featured))
	case "enter":
		if len(m.featured) > 0 {
			return m.openDetail(m.featured[m.homeCursor].ID)
		}
	case "r":
		if !m.homeLoading {
			m.homeLoading = true
			return refreshHomeCmd(m.ctx, m.browser)
		}
	}
	return nil
}

func (m *Model) handleListingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.searching = true
		return m.search.Focus()
	case "up", "k":
		m.listCursor = moveCursor(m.listCursor, -1, len(m.products))
	case "down", "j":
		m.listCursor = moveCursor(m.listCursor, 1, len(m.products))
	case "enter":
		if len(m.products) > 0 {
			return m.openDetail(m.products[m.listCursor].ID)
		}
	case "r":
		return m.startSearch(m.search.Value(), true)
	}
	return nil
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "t":
		m.store.ToggleTheme()
	case "l":
		// Guests have nothing to confirm; "Login" simply returns to sign-in.
		if m.store.State().Session.IsSkipped {
			m.store.Logout()
			return nil
		}
		m.confirmLogout = true
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace", "left", "h":
		m.nav.Back()
		m.product = nil
		m.detailErr = ""
		m.detailLoading = false
	case "r":
		if !m.detailLoading {
			m.detailLoading = true
			return detailCmd(m.ctx, m.browser, m.nav.Current().ProductID)
		}
	}
	return nil
}

func moveCursor(cursor, step, n int) int {
	if n == 0 {
		return 0
	}
	return ((cursor+step)%n + n) % n
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		return 0
	}
	return cursor
}

var _ tea.Model = Model{}

// Package tui is the interactive storefront: a bubbletea program that renders
// whichever screen the navigator points at.
package tui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/catalog"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/navigation"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// Options tunes timers.
type Options struct {
	ToastDuration  time.Duration
	ErrorDismiss   time.Duration
	SearchDebounce time.Duration
}

func (o Options) withDefaults() Options {
	if o.ToastDuration <= 0 {
		o.ToastDuration = 3 * time.Second
	}
	if o.ErrorDismiss <= 0 {
		o.ErrorDismiss = 3 * time.Second
	}
	if o.SearchDebounce < 0 {
		o.SearchDebounce = 0
	}
	return o
}

// Dependencies are the collaborators the screens drive.
type Dependencies struct {
	Store     *state.Store
	Navigator *navigation.Navigator
	Browser   *catalog.Browser
	Auth      state.Authenticator
	Logger    *logger.Logger
}

// watcher bridges store transitions into the program. It is shared by every
// copy of the Model.
type watcher struct {
	sub      state.Subscription
	changes  chan struct{}
	toastSeq atomic.Uint64
	errorSeq atomic.Uint64
}

func newWatcher(store *state.Store) *watcher {
	w := &watcher{changes: make(chan struct{}, 1)}
	w.sub = store.Subscribe(func(_, _ state.State, action state.Action) {
		switch action.(type) {
		case state.ShowNotification:
			w.toastSeq.Add(1)
		case state.LoginRejected:
			w.errorSeq.Add(1)
		}
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
	return w
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	store   *state.Store
	nav     *navigation.Navigator
	browser *catalog.Browser
	auth    state.Authenticator
	log     *logger.Logger
	opts    Options
	w       *watcher

	// Dimensions
	width  int
	height int

	spinner spinner.Model

	// Gate tracking
	graph navigation.Graph

	// Timers already scheduled
	toastScheduled uint64
	errorScheduled uint64

	// Auth screen
	username   textinput.Model
	password   textinput.Model
	focus      int
	authNotice string
	loggingIn  bool // set when a login command is issued, cleared on LoginDoneMsg

	// Home screen
	featured    []api.Product
	categories  []api.Category
	homeCursor  int
	homeLoading bool
	homeErr     string

	// Listing screen
	products       []api.Product
	listCursor     int
	listingLoading bool
	listingLoaded  bool
	listingErr     string
	listingQuery   string
	search         textinput.Model
	searching      bool
	searchSeq      uint64

	// Detail screen
	product       *api.Product
	detailLoading bool
	detailErr     string

	// Profile screen
	confirmLogout bool
}

// NewModel wires a model to its collaborators.
func NewModel(ctx context.Context, deps Dependencies, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Prompt = "  "

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Prompt = "  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	search := textinput.New()
	search.Placeholder = "Search products..."
	search.CharLimit = 100
	search.Prompt = "/ "

	m := Model{
		ctx:      ctx,
		store:    deps.Store,
		nav:      deps.Navigator,
		browser:  deps.Browser,
		auth:     deps.Auth,
		log:      deps.Logger,
		opts:     opts.withDefaults(),
		w:        newWatcher(deps.Store),
		spinner:  s,
		username: username,
		password: password,
		search:   search,
		width:    80,
		height:   24,
	}
	m.username.Focus()

	m.graph = m.nav.Graph()
	if m.graph == navigation.Authenticated {
		m.homeLoading = true
	}
	return m
}

// Init starts the spinner, the cursor blink and the store watcher, and
// loads the home screen when the session was restored inside the app.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		textinput.Blink,
		waitForStateCmd(m.w.changes),
	}
	if m.graph == navigation.Authenticated {
		cmds = append(cmds, loadHomeCmd(m.ctx, m.browser))
	}
	return tea.Batch(cmds...)
}

// Close detaches the model from the store.
func (m Model) Close() {
	if m.w != nil && m.w.sub != nil {
		m.w.sub.Unsubscribe()
	}
}

// Screen returns the screen currently shown.
func (m Model) Screen() navigation.Screen {
	return m.nav.Current().Screen
}

// sync reconciles the model with the store after every message: it schedules
// toast and error timers for new notifications and resets the screens when
// the gate flips.
func (m *Model) sync() []tea.Cmd {
	var cmds []tea.Cmd

	if seq := m.w.toastSeq.Load(); seq != m.toastScheduled {
		m.toastScheduled = seq
		cmds = append(cmds, toastTimerCmd(m.opts.ToastDuration, seq))
	}

	if seq := m.w.errorSeq.Load(); seq != m.errorScheduled {
		m.errorScheduled = seq
		cmds = append(cmds, errorTimerCmd(m.opts.ErrorDismiss, seq))
	}

	g := m.nav.Graph()
	if g == m.graph {
		return cmds
	}
	m.graph = g
	m.resetScreens()

	if g == navigation.Authenticated {
		m.log.Debug("entering app")
		m.homeLoading = true
		cmds = append(cmds, loadHomeCmd(m.ctx, m.browser))
	} else {
		m.log.Debug("showing sign-in")
		m.username.SetValue("")
		m.password.SetValue("")
		m.focus = 0
		m.username.Focus()
		m.password.Blur()
	}
	return cmds
}

func (m *Model) resetScreens() {
	m.authNotice = ""
	m.featured = nil
	m.categories = nil
	m.homeCursor = 0
	m.homeLoading = false
	m.homeErr = ""
	m.products = nil
	m.listCursor = 0
	m.listingLoading = false
	m.listingLoaded = false
	m.listingErr = ""
	m.listingQuery = ""
	m.search.SetValue("")
	m.search.Blur()
	m.searching = false
	m.searchSeq++
	m.product = nil
	m.detailLoading = false
	m.detailErr = ""
	m.confirmLogout = false
}
